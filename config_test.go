package swipemenu

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	want := Config{
		HandleSwipes:               true,
		HandleFlicks:               true,
		FlickMode:                  FlickInertia,
		RequiredForceForFlick:      7,
		MaxForce:                   15,
		LockToClosest:              true,
		RequireCentredForSelection: true,
		HandleTaps:                 true,
		StartingItemIndex:          1,
		Spacing:                    1,
		MenuItemAngle:              50,
		CentreZOffset:              0.5,
		CentreHalfWidth:            1,
		AnimationDuration:          0.5,
	}
	if diff := cmp.Diff(want, cfg, cmpopts.IgnoreFields(Config{}, "Logger")); diff != "" {
		t.Errorf("DefaultConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{
		"flickMode": "step",
		"spacing": 2,
		"lockToClosest": false,
		"startingItemIndex": 3
	}`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.FlickMode != FlickStepMove || cfg.Spacing != 2 || cfg.LockToClosest || cfg.StartingItemIndex != 3 {
		t.Errorf("overlay not applied: %+v", cfg)
	}
	if cfg.MaxForce != 15 || !cfg.HandleSwipes {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"unknown flick mode", `{"flickMode": "bounce"}`},
		{"wrong type", `{"spacing": "wide"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.HasPrefix(err.Error(), "parse menu config: ") {
				t.Errorf("error = %q, want parse menu config prefix", err)
			}
		})
	}
}

func TestFlickModeText(t *testing.T) {
	for _, m := range []FlickMode{FlickInertia, FlickStepMove} {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back FlickMode
		if err := back.UnmarshalText(text); err != nil || back != m {
			t.Errorf("round trip %v -> %q -> %v (%v)", m, text, back, err)
		}
	}
	var m FlickMode
	if err := m.UnmarshalText([]byte("MoveOne")); err != nil || m != FlickStepMove {
		t.Errorf("MoveOne alias = %v, %v", m, err)
	}
}

func TestConfigurationErrorMessage(t *testing.T) {
	tests := []struct {
		err  *ConfigurationError
		want string
	}{
		{&ConfigurationError{Field: "items", Index: -1, Err: ErrNoItems}, "swipemenu: items: no menu items"},
		{&ConfigurationError{Field: "items", Index: 4, Err: ErrNilItem}, "swipemenu: items[4]: menu item not set"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
		if !errors.Is(tt.err, tt.err.Err) {
			t.Errorf("%v does not unwrap to %v", tt.err, tt.err.Err)
		}
	}
}

func TestConfigNormalized(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxForce = -12
	cfg.CentreHalfWidth = 0
	cfg.AnimationDuration = -1
	cfg.Spacing = 2.9

	n := cfg.normalized()
	if n.MaxForce != 12 {
		t.Errorf("MaxForce = %v, want 12", n.MaxForce)
	}
	if n.CentreHalfWidth <= 0 {
		t.Errorf("CentreHalfWidth = %v, want positive", n.CentreHalfWidth)
	}
	if n.AnimationDuration != 0.5 {
		t.Errorf("AnimationDuration = %v, want 0.5", n.AnimationDuration)
	}
	if n.Spacing != 2.5 {
		t.Errorf("Spacing = %v, want 2.5", n.Spacing)
	}
}

func TestConfigLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if _, err := NewController(makeNodes(3), cfg, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "menu initialised") || !strings.Contains(buf.String(), "items=3") {
		t.Errorf("log = %q", buf.String())
	}

	if DefaultConfig().logger() == nil {
		t.Error("nil fallback logger")
	}
}
