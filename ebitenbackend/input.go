package ebitenbackend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gantry-engine/gantry/engine"
)

var keyMap = map[engine.Key]ebiten.Key{
	engine.KeyUp:     ebiten.KeyArrowUp,
	engine.KeyDown:   ebiten.KeyArrowDown,
	engine.KeyLeft:   ebiten.KeyArrowLeft,
	engine.KeyRight:  ebiten.KeyArrowRight,
	engine.KeySpace:  ebiten.KeySpace,
	engine.KeyEscape: ebiten.KeyEscape,
	engine.KeyEnter:  ebiten.KeyEnter,
	engine.KeyW:      ebiten.KeyW,
	engine.KeyA:      ebiten.KeyA,
	engine.KeyS:      ebiten.KeyS,
	engine.KeyD:      ebiten.KeyD,
}

var mouseMap = map[engine.MouseButton]ebiten.MouseButton{
	engine.MouseLeft:   ebiten.MouseButtonLeft,
	engine.MouseRight:  ebiten.MouseButtonRight,
	engine.MouseMiddle: ebiten.MouseButtonMiddle,
}

var _ engine.InputManager = (*Input)(nil)

// Input reads ebiten's polled keyboard and mouse state.
type Input struct{}

func NewInput() *Input { return &Input{} }

// Poll is a no-op: ebiten refreshes input state per tick on its own.
func (in *Input) Poll() {}

func (in *Input) KeyDown(k engine.Key) bool {
	ek, ok := keyMap[k]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(ek)
}

func (in *Input) KeyJustPressed(k engine.Key) bool {
	ek, ok := keyMap[k]
	if !ok {
		return false
	}
	return inpututil.IsKeyJustPressed(ek)
}

func (in *Input) MouseDown(b engine.MouseButton) bool {
	eb, ok := mouseMap[b]
	if !ok {
		return false
	}
	return ebiten.IsMouseButtonPressed(eb)
}

func (in *Input) MousePosition() (int, int) {
	return ebiten.CursorPosition()
}
