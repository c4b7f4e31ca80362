package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

const stickDeadzone = 0.2

// InputSystem copies the current keyboard, mouse and gamepad state into every
// Input component.
type InputSystem struct {
	read func() component.Input
}

func NewInputSystem() *InputSystem {
	return &InputSystem{read: readInput}
}

// NewInputSystemFrom uses read instead of the live devices.
func NewInputSystemFrom(read func() component.Input) *InputSystem {
	return &InputSystem{read: read}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.read == nil {
		return
	}

	snapshot := i.read()
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = snapshot
	})
}

func readInput() component.Input {
	var in component.Input

	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		in.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		in.MoveY += 1
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.PanX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.PanX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.PanY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.PanY += 1
	}

	in.Fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.Recenter = inpututil.IsKeyJustPressed(ebiten.KeyHome)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			// Gamepad Y grows downwards.
			in.MoveX, in.MoveY = lx, -ly
		}

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			in.PanX, in.PanY = rx, -ry
		}

		in.Fire = in.Fire || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		in.Recenter = in.Recenter || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightStick)
	}

	return in
}
