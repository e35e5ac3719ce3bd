package system

import (
	"image"
	"testing"

	"github.com/milk9111/megaman/common"
	"github.com/milk9111/megaman/ecs"
	"github.com/milk9111/megaman/ecs/component"
)

func testClip(name string, col int, durations ...float64) *component.Clip {
	clip := &component.Clip{Name: name}
	for i, d := range durations {
		x := (col + i) * 24
		clip.Frames = append(clip.Frames, component.Frame{Source: image.Rect(x, 0, x+24, 24), Duration: d})
	}
	return clip
}

func testClips() map[string]*component.Clip {
	return map[string]*component.Clip{
		ClipStill:        testClip(ClipStill, 0, 3.0, 0.1),
		ClipStartRunning: testClip(ClipStartRunning, 2, 0.1),
		ClipRunning:      testClip(ClipRunning, 3, 0.1, 0.1, 0.1, 0.1),
		ClipJumping:      testClip(ClipJumping, 2, 0.1),
		ClipStillShoot:   testClip(ClipStillShoot, 7, 0.2),
		ClipRunShoot:     testClip(ClipRunShoot, 8, 0.1, 0.1, 0.1, 0.1),
		ClipJumpShoot:    testClip(ClipJumpShoot, 7, 0.2),
	}
}

// newTestWorld returns a world with a base resolution scene.
func newTestWorld() *ecs.World {
	w := ecs.NewWorld()
	scene := ecs.CreateEntity(w)
	_ = ecs.Add(w, scene, component.SceneBoundsComponent.Kind(), &component.SceneBounds{
		Width:  common.BaseWidth,
		Height: common.BaseHeight,
	})
	return w
}

// newTestCharacter builds a 96x96 character facing right at (x, y).
func newTestCharacter(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	adds := []error{
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 4, ScaleY: 4}),
		ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Source: image.Rect(0, 0, 24, 24), UseSource: true}),
		ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Clips: testClips()}),
		ecs.Add(w, e, component.CharacterComponent.Kind(), &component.Character{
			MaxLiveShots:      3,
			TimeToCrossScreen: 3,
			StepSize:          48,
			StepDuration:      0.2,
			JumpHeight:        120,
			JumpDuration:      0.3,
			ShotClearance:     10,
			CannonOffset:      10,
		}),
		ecs.Add(w, e, component.ShotTemplateComponent.Kind(), &component.ShotTemplate{
			Width:       8,
			Height:      6,
			Interval:    0.05,
			BaseStep:    20,
			RenderLayer: component.RenderLayerShots,
		}),
		ecs.Add(w, e, component.CommandQueueComponent.Kind(), &component.CommandQueue{}),
	}
	for _, err := range adds {
		if err != nil {
			t.Fatalf("add component: %v", err)
		}
	}
	RestartStateAnimation(w, e)
	return e
}

// advance runs the action system for n ticks.
func advance(w *ecs.World, n int) {
	a := NewActionSystem()
	for i := 0; i < n; i++ {
		a.Update(w)
	}
}

func ticksFor(seconds float64) int {
	return int(seconds/common.TickSeconds) + 1
}

func character(t *testing.T, w *ecs.World, e ecs.Entity) *component.Character {
	t.Helper()
	ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no character", e)
	}
	return ch
}

func transform(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	return tr
}
