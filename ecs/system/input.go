package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/megaman/common"
	"github.com/milk9111/megaman/ecs"
	"github.com/milk9111/megaman/ecs/component"
	"github.com/milk9111/megaman/input"
)

const stickDeadzone = 0.2

var dpadButtons = []struct {
	button ebiten.StandardGamepadButton
	dir    input.Direction
}{
	{ebiten.StandardGamepadButtonLeftLeft, input.DirectionLeft},
	{ebiten.StandardGamepadButtonLeftRight, input.DirectionRight},
	{ebiten.StandardGamepadButtonLeftTop, input.DirectionUp},
	{ebiten.StandardGamepadButtonLeftBottom, input.DirectionDown},
}

// InputSystem polls mouse, touch, keyboard and gamepad, turns them into
// samples through a Recognizer and queues the classified commands on the
// player character. Characters tagged for the demo are left alone.
type InputSystem struct {
	recognizer *input.Recognizer
	tick       int
	touchID    ebiten.TouchID
	touching   bool

	// Ignore reports screen points owned by an overlay, such as the
	// on-screen joystick, so presses there are not taken as taps.
	Ignore func(x, y int) bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{recognizer: input.NewRecognizer()}
}

// Recognizer exposes the sample sink so overlays can push joystick samples.
func (i *InputSystem) Recognizer() *input.Recognizer {
	if i == nil {
		return nil
	}
	return i.recognizer
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}
	i.tick++
	scene := SceneRect(w)

	i.pollPointer(scene)
	i.pollTouch(scene)
	i.pollButtons()

	commands := input.ClassifyAll(i.recognizer.Drain())
	if len(commands) == 0 {
		return
	}
	ecs.ForEach(w, component.CommandQueueComponent.Kind(), func(e ecs.Entity, q *component.CommandQueue) {
		if !ecs.Has(w, e, component.MegamanTagComponent.Kind()) || ecs.Has(w, e, component.DemoTagComponent.Kind()) {
			return
		}
		for _, cmd := range commands {
			q.Push(cmd)
		}
	})
}

func (i *InputSystem) pollPointer(scene common.Rect) {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !i.ignored(x, y) {
		i.recognizer.Press(toScene(scene, x, y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		i.recognizer.Release(toScene(scene, x, y), i.tick)
	}
}

func (i *InputSystem) pollTouch(scene common.Rect) {
	if !i.touching {
		for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
			x, y := ebiten.TouchPosition(id)
			if i.ignored(x, y) {
				continue
			}
			i.touchID = id
			i.touching = true
			i.recognizer.Press(toScene(scene, x, y))
			break
		}
		return
	}
	if inpututil.IsTouchJustReleased(i.touchID) {
		x, y := inpututil.TouchPositionInPreviousTick(i.touchID)
		i.recognizer.Release(toScene(scene, x, y), i.tick)
		i.touching = false
	}
}

func (i *InputSystem) pollButtons() {
	dx := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += 1
	}
	shoot := inpututil.IsKeyJustPressed(ebiten.KeyX) || inpututil.IsKeyJustPressed(ebiten.KeyJ)
	jump := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyZ)
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		i.recognizer.Push(input.Sample{Kind: input.SampleJoystickButton, Direction: input.DirectionUp})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		i.recognizer.Push(input.Sample{Kind: input.SampleJoystickButton, Direction: input.DirectionDown})
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if dx == 0 {
			dx = input.AxisToDrag(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal), stickDeadzone)
		}
		shoot = shoot || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		jump = jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)

		for _, b := range dpadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b.button) {
				i.recognizer.Push(input.Sample{Kind: input.SampleJoystickButton, Direction: b.dir})
			}
		}
		break
	}

	i.recognizer.Drag(dx)
	if shoot {
		i.recognizer.Push(input.Sample{Kind: input.SampleButtonA})
	}
	if jump {
		i.recognizer.Push(input.Sample{Kind: input.SampleButtonB})
	}
}

func (i *InputSystem) ignored(x, y int) bool {
	return i.Ignore != nil && i.Ignore(x, y)
}

// toScene converts a screen point to y-up scene space.
func toScene(scene common.Rect, x, y int) common.Vec2 {
	return common.Vec2{X: scene.MinX() + float64(x), Y: scene.MaxY() - float64(y)}
}
