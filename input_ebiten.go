package swipemenu

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenCursor reads the mouse through Ebitengine. It satisfies
// PointerReader.
type EbitenCursor struct {
	// Button is the button treated as primary. Defaults to the left button.
	Button ebiten.MouseButton
}

// Pointer returns the cursor position and the primary button state.
func (c EbitenCursor) Pointer() (x, y float64, pressed bool) {
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(c.Button)
}

// EbitenTouches reads the primary touch through Ebitengine. The first finger
// to touch down becomes primary and stays primary until it lifts; extra
// fingers are ignored. It satisfies TouchReader.
type EbitenTouches struct {
	ids     []ebiten.TouchID
	primary ebiten.TouchID
	has     bool
}

// PrimaryTouch returns the primary finger's ID and position.
func (t *EbitenTouches) PrimaryTouch() (id int, x, y float64, ok bool) {
	if t.has {
		t.ids = ebiten.AppendTouchIDs(t.ids[:0])
		for _, tid := range t.ids {
			if tid == t.primary {
				tx, ty := ebiten.TouchPosition(tid)
				return int(tid), float64(tx), float64(ty), true
			}
		}
		t.has = false
	}

	t.ids = inpututil.AppendJustPressedTouchIDs(t.ids[:0])
	if len(t.ids) == 0 {
		return 0, 0, 0, false
	}
	t.primary = t.ids[0]
	t.has = true
	tx, ty := ebiten.TouchPosition(t.primary)
	return int(t.primary), float64(tx), float64(ty), true
}

// NewEbitenPointerSource returns a PointerSource reading the left mouse
// button.
func NewEbitenPointerSource() *PointerSource {
	return NewPointerSource(EbitenCursor{Button: ebiten.MouseButtonLeft})
}

// NewEbitenTouchSource returns a TouchSource reading Ebitengine touches.
func NewEbitenTouchSource() *TouchSource {
	return NewTouchSource(&EbitenTouches{})
}
