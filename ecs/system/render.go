package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/megaman/common"
	"github.com/milk9111/megaman/ecs"
	"github.com/milk9111/megaman/ecs/component"
)

// RenderSystem draws sprites centered on their transforms, converting y-up
// scene space to ebiten's y-down screen space. A negative ScaleX mirrors
// the sprite about its center.
type RenderSystem struct {
	Background color.Color
}

func NewRenderSystem(background color.Color) *RenderSystem {
	return &RenderSystem{Background: background}
}

func (r *RenderSystem) Update(w *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if r.Background != nil {
		screen.Fill(r.Background)
	}

	scene := SceneRect(w)
	for _, e := range drawOrder(w) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Image == nil || s.Hidden {
			continue
		}

		img := s.Image
		if s.UseSource {
			sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image)
			if !ok {
				continue
			}
			img = sub
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM = SpriteGeoM(scene, t, img.Bounds().Dx(), img.Bounds().Dy())
		if s.Alpha > 0 && s.Alpha < 1 {
			op.ColorScale.ScaleAlpha(float32(s.Alpha))
		}
		screen.DrawImage(img, op)
	}
}

// SpriteGeoM places a w×h image centered on t in screen space.
func SpriteGeoM(scene common.Rect, t *component.Transform, w, h int) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-float64(w)/2, -float64(h)/2)

	sx := t.ScaleX
	if sx == 0 {
		sx = 1
	}
	sy := t.ScaleY
	if sy == 0 {
		sy = 1
	}
	g.Scale(sx, math.Abs(sy))
	// scene rotation is counter-clockwise, screen rotation is clockwise
	g.Rotate(-t.Rotation)
	g.Translate(t.X-scene.MinX(), scene.MaxY()-t.Y)
	return g
}

func drawOrder(w *ecs.World) []ecs.Entity {
	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	layerOf := func(e ecs.Entity) int {
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return layer.Index
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layerOf(entities[i]), layerOf(entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
	return entities
}
