package system

import (
	"math"
	"testing"

	"github.com/milk9111/megaman/common"
	"github.com/milk9111/megaman/ecs"
	"github.com/milk9111/megaman/ecs/component"
)

func TestSpriteGeoM(t *testing.T) {
	scene := common.Rect{Width: 1280, Height: 720}
	cases := []struct {
		name         string
		tr           component.Transform
		w, h         int
		inX, inY     float64
		wantX, wantY float64
	}{
		// a 10x10 sprite centered at (100,100) has its top-left at (95, 615)
		{"top_left_corner", component.Transform{X: 100, Y: 100, ScaleX: 1, ScaleY: 1}, 10, 10, 0, 0, 95, 615},
		{"scaled", component.Transform{X: 100, Y: 100, ScaleX: 2, ScaleY: 2}, 10, 10, 0, 0, 90, 610},
		{"mirrored", component.Transform{X: 100, Y: 100, ScaleX: -1, ScaleY: 1}, 10, 10, 0, 0, 105, 615},
		{"zero_scale_draws_unscaled", component.Transform{X: 0, Y: 720}, 4, 4, 4, 4, 2, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := SpriteGeoM(scene, &c.tr, c.w, c.h)
			x, y := g.Apply(c.inX, c.inY)
			if math.Abs(x-c.wantX) > 1e-9 || math.Abs(y-c.wantY) > 1e-9 {
				t.Fatalf("got (%v,%v), want (%v,%v)", x, y, c.wantX, c.wantY)
			}
		})
	}
}

func TestDrawOrder(t *testing.T) {
	w := ecs.NewWorld()
	add := func(layer int) ecs.Entity {
		e := ecs.CreateEntity(w)
		_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{})
		_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{})
		_ = ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer})
		return e
	}
	shot := add(component.RenderLayerShots)
	tile := add(component.RenderLayerTiles)
	hero := add(component.RenderLayerCharacter)
	tile2 := add(component.RenderLayerTiles)

	got := drawOrder(w)
	want := []ecs.Entity{tile, tile2, hero, shot}
	if len(got) != len(want) {
		t.Fatalf("expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
