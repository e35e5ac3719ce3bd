package system

import (
	"math"

	"github.com/milk9111/megaman/common"
	"github.com/milk9111/megaman/ecs"
	"github.com/milk9111/megaman/ecs/component"
	"github.com/milk9111/megaman/input"
)

// Still requests the still locomotion, keeping any shot in progress. It is
// ignored mid-jump; the jump lands on its own.
func Still(w *ecs.World, e ecs.Entity) {
	ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
	if !ok || ch.Locomotion == component.LocomotionJumping {
		return
	}
	setState(w, e, ch, component.LocomotionStill, ch.Attack)
}

// Run requests the running locomotion. It is ignored mid-jump.
func Run(w *ecs.World, e ecs.Entity) {
	ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
	if !ok || ch.Locomotion == component.LocomotionJumping {
		return
	}
	setState(w, e, ch, component.LocomotionRunning, ch.Attack)
}

// Jump rises JumpHeight over JumpDuration, falls back over the same time and
// lands still. Horizontal movement is cancelled first; a jump in progress is
// not restarted.
func Jump(w *ecs.World, e ecs.Entity) {
	ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
	if !ok || ch.Locomotion == component.LocomotionJumping {
		return
	}
	RemoveAction(w, e, movementKey)
	setState(w, e, ch, component.LocomotionJumping, ch.Attack)

	RunAction(w, e, jumpKey, &component.Sequence{
		Steps: []component.Step{
			component.MoveBy(0, ch.JumpHeight, ch.JumpDuration),
			component.MoveBy(0, -ch.JumpHeight, ch.JumpDuration),
		},
		OnComplete: func() {
			if ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind()); ok && ch.Locomotion == component.LocomotionJumping {
				setState(w, e, ch, component.LocomotionStill, ch.Attack)
			}
		},
	})
}

// Shoot fires at target. With MaxLiveShots already in the scene nothing
// happens at all. Turning around while running stops the run before the
// shot is layered on.
func Shoot(w *ecs.World, e ecs.Entity, target common.Vec2) bool {
	ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
	if !ok || LiveShots(w, e) >= ch.MaxLiveShots {
		return false
	}

	loco := ch.Locomotion
	if FaceLocation(w, e, target) && loco == component.LocomotionRunning {
		RemoveAction(w, e, movementKey)
		loco = component.LocomotionStill
	}
	setState(w, e, ch, loco, component.AttackShooting)

	_, spawned := SpawnShot(w, e)
	return spawned
}

// ShootAhead fires in the facing direction.
func ShootAhead(w *ecs.World, e ecs.Entity) bool {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	return Shoot(w, e, common.Vec2{X: t.X + facing(t), Y: t.Y})
}

// MoveTo runs horizontally to dest.X, taking TimeToCrossScreen for a full
// scene width, and stands still on arrival.
func MoveTo(w *ecs.World, e ecs.Entity, dest common.Vec2) {
	ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
	if !ok || ch.Locomotion == component.LocomotionJumping {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}

	bounds := SceneRect(w)
	x := clampToScene(w, e, dest.X)
	duration := 0.0
	if bounds.Width > 0 {
		duration = math.Abs(x-t.X) / bounds.Width * ch.TimeToCrossScreen
	}

	FaceLocation(w, e, common.Vec2{X: dest.X, Y: t.Y})
	Run(w, e)
	runMovement(w, e, x, t.Y, duration)
}

// MoveOneStepTo moves a fixed StepSize for a discrete joystick press. Up
// jumps and down stands still.
func MoveOneStepTo(w *ecs.World, e ecs.Entity, dir input.Direction) {
	ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
	if !ok {
		return
	}
	switch dir {
	case input.DirectionUp:
		Jump(w, e)
		return
	case input.DirectionDown:
		RemoveAction(w, e, movementKey)
		Still(w, e)
		return
	case input.DirectionLeft, input.DirectionRight:
	default:
		return
	}
	if ch.Locomotion == component.LocomotionJumping {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}

	step := ch.StepSize
	if dir == input.DirectionLeft {
		step = -step
	}
	x := clampToScene(w, e, t.X+step)

	FaceLocation(w, e, common.Vec2{X: t.X + step, Y: t.Y})
	Run(w, e)
	runMovement(w, e, x, t.Y, ch.StepDuration)
}

// StopMoving cancels horizontal movement and stands still.
func StopMoving(w *ecs.World, e ecs.Entity) {
	RemoveAction(w, e, movementKey)
	Still(w, e)
}

// FaceLocation turns e toward p: p.X at or left of e faces left. Only the
// sign of ScaleX changes. It reports whether e turned around.
func FaceLocation(w *ecs.World, e ecs.Entity, p common.Vec2) bool {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	want := 1.0
	if p.X <= t.X {
		want = -1
	}
	if facing(t) == want {
		return false
	}
	t.ScaleX = math.Abs(t.ScaleX) * want
	return true
}

// LiveShots counts the shots in the world owned by e.
func LiveShots(w *ecs.World, e ecs.Entity) int {
	n := 0
	ecs.ForEach(w, component.ShotComponent.Kind(), func(_ ecs.Entity, shot *component.Shot) {
		if ecs.Entity(shot.Owner) == e {
			n++
		}
	})
	return n
}

// EntityRect returns e's scaled sprite bounds in scene space.
func EntityRect(w *ecs.World, e ecs.Entity) common.Rect {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.Rect{}
	}
	sw, sh := 0.0, 0.0
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sw, sh = sprite.Size()
	}
	return common.RectAround(t.X, t.Y, sw*math.Abs(t.ScaleX), sh*math.Abs(t.ScaleY))
}

// SceneRect returns the scene bounds, defaulting to the base resolution.
func SceneRect(w *ecs.World) common.Rect {
	if e, ok := w.First(component.SceneBoundsComponent.Kind()); ok {
		if b, ok := ecs.Get(w, e, component.SceneBoundsComponent.Kind()); ok {
			return common.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
		}
	}
	return common.Rect{Width: common.BaseWidth, Height: common.BaseHeight}
}

func setState(w *ecs.World, e ecs.Entity, ch *component.Character, loco component.Locomotion, attack component.Attack) {
	if ch.Locomotion == loco && ch.Attack == attack {
		return
	}
	prev := ch.State()
	ch.Locomotion, ch.Attack = loco, attack
	ch.Transitions++
	next := ch.State()

	w.Events().Push(ecs.Event{
		Type: ecs.EventStateChanged,
		Data: ecs.StateChanged{Entity: e, From: prev.String(), To: next.String()},
	})
	RunAction(w, e, stateKey, stateSequence(w, e, prev, next))
}

func stateSequence(w *ecs.World, e ecs.Entity, prev, next component.CharacterState) *component.Sequence {
	clip, loop := ClipForState(next)

	if next == component.StateRunning && prev == component.StateStill {
		return &component.Sequence{
			Steps: []component.Step{component.Animate(ClipStartRunning)},
			OnComplete: func() {
				RunAction(w, e, stateKey, &component.Sequence{
					Steps:  []component.Step{component.Animate(ClipRunning)},
					Repeat: true,
				})
			},
		}
	}

	seq := &component.Sequence{
		Steps:  []component.Step{component.Animate(clip)},
		Repeat: loop,
	}
	if !loop {
		seq.OnComplete = func() {
			if ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind()); ok {
				setState(w, e, ch, ch.Locomotion, component.AttackIdle)
			}
		}
	}
	return seq
}

func runMovement(w *ecs.World, e ecs.Entity, x, y, duration float64) {
	RunAction(w, e, movementKey, &component.Sequence{
		Steps:      []component.Step{component.MoveTo(x, y, duration)},
		OnComplete: func() { Still(w, e) },
	})
}

// clampToScene keeps e's sprite inside the scene horizontally.
func clampToScene(w *ecs.World, e ecs.Entity, x float64) float64 {
	bounds := SceneRect(w)
	half := EntityRect(w, e).Width / 2
	lo, hi := bounds.MinX()+half, bounds.MaxX()-half
	if lo > hi {
		return bounds.MidX()
	}
	return common.Clamp(x, lo, hi)
}

func facing(t *component.Transform) float64 {
	if t.ScaleX < 0 {
		return -1
	}
	return 1
}

// RestartStateAnimation shows the clip of e's current state from its first
// frame. Spawning and prefab reloads use it.
func RestartStateAnimation(w *ecs.World, e ecs.Entity) {
	ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
	if !ok {
		return
	}
	s := ch.State()
	RunAction(w, e, stateKey, stateSequence(w, e, s, s))
}
