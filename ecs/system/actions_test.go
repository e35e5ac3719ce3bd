package system

import (
	"math"
	"testing"

	"github.com/milk9111/megaman/ecs"
	"github.com/milk9111/megaman/ecs/component"
)

func newMover(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	return e
}

func TestMoveByInterpolatesAndCompletes(t *testing.T) {
	w := ecs.NewWorld()
	e := newMover(t, w)
	completed := 0
	RunAction(w, e, "move", &component.Sequence{
		Steps:      []component.Step{component.MoveBy(100, 0, 1)},
		OnComplete: func() { completed++ },
	})

	advance(w, 30)
	if x := transform(t, w, e).X; math.Abs(x-50) > 1e-6 {
		t.Fatalf("expected halfway at 50, got %v", x)
	}
	if completed != 0 {
		t.Fatalf("completed too early")
	}

	advance(w, 31)
	if x := transform(t, w, e).X; math.Abs(x-100) > 1e-9 {
		t.Fatalf("expected to arrive at 100, got %v", x)
	}
	if completed != 1 {
		t.Fatalf("expected one completion, got %d", completed)
	}
	if HasAction(w, e, "move") {
		t.Fatalf("expected completed sequence to be removed")
	}
}

func TestRunActionReplacesKey(t *testing.T) {
	w := ecs.NewWorld()
	e := newMover(t, w)
	var done []string
	RunAction(w, e, "move", &component.Sequence{
		Steps:      []component.Step{component.MoveTo(100, 0, 0.5)},
		OnComplete: func() { done = append(done, "first") },
	})
	advance(w, 5)
	RunAction(w, e, "move", &component.Sequence{
		Steps:      []component.Step{component.MoveTo(-100, 0, 0.5)},
		OnComplete: func() { done = append(done, "second") },
	})
	advance(w, ticksFor(1))

	if len(done) != 1 || done[0] != "second" {
		t.Fatalf("expected only the replacement to complete, got %v", done)
	}
	if x := transform(t, w, e).X; math.Abs(x+100) > 1e-9 {
		t.Fatalf("expected x=-100, got %v", x)
	}
}

func TestRemoveActionCancelsWithoutCompleting(t *testing.T) {
	w := ecs.NewWorld()
	e := newMover(t, w)
	completed := false
	RunAction(w, e, "wait", &component.Sequence{
		Steps:      []component.Step{component.Wait(0.2)},
		OnComplete: func() { completed = true },
	})
	if !RemoveAction(w, e, "wait") {
		t.Fatalf("expected action to be removed")
	}
	advance(w, ticksFor(0.5))
	if completed {
		t.Fatalf("cancelled sequence must not complete")
	}
	if RemoveAction(w, e, "wait") {
		t.Fatalf("expected second remove to report nothing")
	}
}

func TestRepeatingSequenceCalls(t *testing.T) {
	w := ecs.NewWorld()
	e := newMover(t, w)
	calls := 0
	RunAction(w, e, "tick", &component.Sequence{
		Steps:  []component.Step{component.Wait(0.1), component.Call(func() { calls++ })},
		Repeat: true,
	})
	advance(w, 60)
	if calls < 9 || calls > 10 {
		t.Fatalf("expected about 10 calls in a second, got %d", calls)
	}
	if !HasAction(w, e, "tick") {
		t.Fatalf("repeating sequence must stay installed")
	}
}

func TestZeroTimeRepeatIsBounded(t *testing.T) {
	w := ecs.NewWorld()
	e := newMover(t, w)
	calls := 0
	RunAction(w, e, "spin", &component.Sequence{
		Steps:  []component.Step{component.Call(func() { calls++ })},
		Repeat: true,
	})
	advance(w, 1)
	if calls != maxStepsPerTick {
		t.Fatalf("expected %d calls, got %d", maxStepsPerTick, calls)
	}
}

func TestCallThatDestroysEntityStopsSequence(t *testing.T) {
	w := ecs.NewWorld()
	e := newMover(t, w)
	after := false
	RunAction(w, e, "die", &component.Sequence{
		Steps: []component.Step{
			component.Call(func() { ecs.DestroyEntity(w, e) }),
			component.Call(func() { after = true }),
		},
	})
	advance(w, 1)
	if ecs.IsAlive(w, e) {
		t.Fatalf("expected entity to be destroyed")
	}
	if after {
		t.Fatalf("steps after destruction must not run")
	}
}

func TestAnimateShowsFrames(t *testing.T) {
	w := ecs.NewWorld()
	e := newMover(t, w)
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{})
	_ = ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Clips: testClips()})

	RunAction(w, e, "anim", &component.Sequence{Steps: []component.Step{component.Animate(ClipRunning)}})
	advance(w, 1)
	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	if anim.Current != ClipRunning || anim.Frame != 0 {
		t.Fatalf("expected running frame 0, got %s/%d", anim.Current, anim.Frame)
	}

	advance(w, 8)
	if anim.Frame != 1 {
		t.Fatalf("expected frame 1 after 0.15s, got %d", anim.Frame)
	}
	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	if sprite.Source.Min.X != 4*24 || !sprite.UseSource {
		t.Fatalf("expected sprite to show the second running cell, got %v", sprite.Source)
	}

	advance(w, ticksFor(0.4))
	if HasAction(w, e, "anim") {
		t.Fatalf("expected one-shot animation to finish")
	}
}
