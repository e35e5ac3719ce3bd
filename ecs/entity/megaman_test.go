package entity

import (
	"image"
	"testing"

	"github.com/milk9111/megaman/common"
	"github.com/milk9111/megaman/ecs"
	"github.com/milk9111/megaman/ecs/component"
	"github.com/milk9111/megaman/ecs/system"
)

func buildTestMegaman(t *testing.T, w *ecs.World, at common.Vec2) ecs.Entity {
	t.Helper()
	p, err := LoadMegamanPrefab(MegamanPrefab)
	if err != nil {
		t.Fatalf("load prefab: %v", err)
	}
	e, err := BuildMegaman(w, p, MegamanAssets{ShotWidth: 8, ShotHeight: 6}, at)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return e
}

func TestBuildMegaman(t *testing.T) {
	w := ecs.NewWorld()
	e := buildTestMegaman(t, w, common.Vec2{X: 100, Y: 200})

	ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
	if !ok {
		t.Fatalf("missing character")
	}
	if ch.State() != component.StateStill || ch.Transitions != 0 {
		t.Fatalf("expected fresh still character, got %v after %d transitions", ch.State(), ch.Transitions)
	}
	if ch.MaxLiveShots != 3 || ch.TimeToCrossScreen != 3 {
		t.Fatalf("unexpected tunables %+v", ch)
	}

	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !sprite.UseSource || sprite.Source != image.Rect(0, 0, 24, 24) {
		t.Fatalf("expected first still frame, got %v", sprite.Source)
	}
	tmpl, _ := ecs.Get(w, e, component.ShotTemplateComponent.Kind())
	if tmpl == nil || tmpl.Width != 8 || tmpl.Height != 6 || tmpl.Interval != 0.05 {
		t.Fatalf("unexpected shot template %+v", tmpl)
	}
	if !ecs.Has(w, e, component.MegamanTagComponent.Kind()) || !ecs.Has(w, e, component.CommandQueueComponent.Kind()) {
		t.Fatalf("expected tag and command queue")
	}

	system.NewActionSystem().Advance(w, common.TickSeconds)
	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	if anim.Current != system.ClipStill {
		t.Fatalf("expected still clip to be showing, got %q", anim.Current)
	}
}

func TestApplyMegamanPrefabKeepsFacing(t *testing.T) {
	w := ecs.NewWorld()
	e := buildTestMegaman(t, w, common.Vec2{X: 100, Y: 200})
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	tr.ScaleX = -tr.ScaleX
	tr.X = 321

	p, err := LoadMegamanPrefab(MegamanPrefab)
	if err != nil {
		t.Fatalf("load prefab: %v", err)
	}
	p.Spec.Character.MaxLiveShots = 2
	ApplyMegamanPrefab(w, e, p, MegamanAssets{ShotWidth: 8, ShotHeight: 6})

	ch, _ := ecs.Get(w, e, component.CharacterComponent.Kind())
	if ch.MaxLiveShots != 2 {
		t.Fatalf("expected tunables to update, got %d", ch.MaxLiveShots)
	}
	p.Spec.Character.MaxLiveShots = 5
	ApplyMegamanPrefab(w, e, p, MegamanAssets{ShotWidth: 8, ShotHeight: 6})
	if ch.MaxLiveShots != 3 {
		t.Fatalf("expected shot cap to stay at 3, got %d", ch.MaxLiveShots)
	}
	if tr.ScaleX != -4 || tr.X != 321 {
		t.Fatalf("expected facing and position kept, got scale %v x %v", tr.ScaleX, tr.X)
	}
}

func TestPlaceOnGround(t *testing.T) {
	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()
	w.SetPhysicsWorld(pw)
	ground := ecs.CreateEntity(w)
	pw.AddStaticBox(ground, common.Rect{Width: 1280, Height: 32})

	e := buildTestMegaman(t, w, common.Vec2{X: 100, Y: 400})
	if !PlaceOnGround(w, e) {
		t.Fatalf("expected a surface below")
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	// 24px frames at scale 4 are 96 tall
	if tr.Y != 32+48 {
		t.Fatalf("expected feet on the ground at y=80, got %v", tr.Y)
	}

	far := buildTestMegaman(t, w, common.Vec2{X: 2000, Y: 400})
	if PlaceOnGround(w, far) {
		t.Fatalf("expected no surface outside the ground")
	}
}
