package swipemenu

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
)

// Default values for Config.
const (
	defaultRequiredForceForFlick = 7.0
	defaultMaxForce              = 15.0
	defaultSpacing               = 1.0
	defaultMenuItemAngle         = 50.0
	defaultCentreZOffset         = 0.5
	defaultCentreHalfWidth       = 1.0
	defaultAnimationDuration     = 0.5

	spacingStep        = 0.5
	minCentreHalfWidth = 1e-6
)

// ErrNoItems is wrapped by the ConfigurationError returned when a menu is
// built with zero items.
var ErrNoItems = errors.New("no menu items")

// ErrNilItem is wrapped by the ConfigurationError returned when one of the
// item nodes is nil.
var ErrNilItem = errors.New("menu item not set")

// ConfigurationError reports an unusable menu setup. It is only ever
// returned during construction; runtime inputs are clamped instead.
type ConfigurationError struct {
	Field string
	Index int // item index for per-item errors, -1 otherwise
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("swipemenu: %s[%d]: %v", e.Field, e.Index, e.Err)
	}
	return fmt.Sprintf("swipemenu: %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Config holds every tunable of a menu. Start from DefaultConfig; the zero
// value disables swipes, flicks, locking, and taps.
type Config struct {
	// HandleSwipes makes the menu follow the pointer while it is held down.
	HandleSwipes bool `json:"handleSwipes"`
	// HandleFlicks turns fast releases into animated impulses or steps.
	HandleFlicks bool `json:"handleFlicks"`
	// FlickMode selects between inertia scrolling and single-item steps.
	FlickMode FlickMode `json:"flickMode"`
	// RequiredForceForFlick is the clamped force a release must exceed to
	// count as a flick.
	RequiredForceForFlick float64 `json:"requiredForceForFlick"`
	// MaxForce bounds the release force in both directions.
	MaxForce float64 `json:"maxForce"`
	// LockToClosest snaps the nearest item to centre after a gesture or
	// impulse finishes.
	LockToClosest bool `json:"lockToClosest"`
	// RequireCentredForSelection makes a tap on an off-centre item only
	// bring it to centre instead of also selecting it.
	RequireCentredForSelection bool `json:"requireCentredForSelection"`
	// HandleTaps enables tap-to-select.
	HandleTaps bool `json:"handleTaps"`

	// StartingItemIndex is the 1-based item centred at startup.
	StartingItemIndex int `json:"startingItemIndex"`
	// Spacing is the scroll distance between adjacent items. Truncated to a
	// multiple of 0.5.
	Spacing float64 `json:"spacing"`
	// MenuItemAngle is the yaw in degrees of items outside the centre band.
	MenuItemAngle float64 `json:"menuItemAngle"`
	// CentreZOffset pulls the centred item towards the viewer.
	CentreZOffset float64 `json:"centreZOffset"`
	// CentreHalfWidth is the half width of the band in which items rotate
	// and move in depth.
	CentreHalfWidth float64 `json:"centreHalfWidth"`
	// AnimationDuration is the length in seconds of impulse and re-centre
	// animations.
	AnimationDuration float32 `json:"animationDuration"`

	// Debug enables diagnostic logging and per-frame timing stats.
	Debug bool `json:"debug"`
	// Logger receives diagnostics. When nil, a stderr logger is used in
	// debug mode and output is discarded otherwise.
	Logger *slog.Logger `json:"-"`
}

// DefaultConfig returns the stock menu configuration.
func DefaultConfig() Config {
	return Config{
		HandleSwipes:               true,
		HandleFlicks:               true,
		FlickMode:                  FlickInertia,
		RequiredForceForFlick:      defaultRequiredForceForFlick,
		MaxForce:                   defaultMaxForce,
		LockToClosest:              true,
		RequireCentredForSelection: true,
		HandleTaps:                 true,
		StartingItemIndex:          1,
		Spacing:                    defaultSpacing,
		MenuItemAngle:              defaultMenuItemAngle,
		CentreZOffset:              defaultCentreZOffset,
		CentreHalfWidth:            defaultCentreHalfWidth,
		AnimationDuration:          defaultAnimationDuration,
	}
}

// LoadConfig parses JSON and overlays it onto DefaultConfig. Fields absent
// from the document keep their defaults.
func LoadConfig(jsonData []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse menu config: %w", err)
	}
	return cfg, nil
}

// MarshalText implements encoding.TextMarshaler.
func (m FlickMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *FlickMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "inertia", "Inertia":
		*m = FlickInertia
	case "step", "StepMove", "move-one", "MoveOne":
		*m = FlickStepMove
	default:
		return fmt.Errorf("unknown flick mode %q", text)
	}
	return nil
}

// normalized returns a copy with out-of-range values pulled back into range.
func (c Config) normalized() Config {
	c.Spacing -= math.Mod(c.Spacing, spacingStep)
	if c.Spacing < spacingStep {
		c.Spacing = spacingStep
	}
	c.MaxForce = math.Abs(c.MaxForce)
	if c.CentreHalfWidth < minCentreHalfWidth {
		c.CentreHalfWidth = minCentreHalfWidth
	}
	if c.AnimationDuration <= 0 {
		c.AnimationDuration = defaultAnimationDuration
	}
	return c
}

// logger returns the configured logger, falling back to stderr in debug mode
// and a discarding logger otherwise.
func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	if c.Debug {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		return slog.New(h).With("component", "swipemenu")
	}
	return slog.New(slog.DiscardHandler)
}

// mapper builds the Mapper described by the config.
func (c Config) mapper() Mapper {
	return Mapper{
		CentreHalfWidth: c.CentreHalfWidth,
		MaxAngle:        c.MenuItemAngle,
		CentreZOffset:   c.CentreZOffset,
	}
}
