package entity

import (
	"github.com/milk9111/megaman/common"
	"github.com/milk9111/megaman/ecs"
	"github.com/milk9111/megaman/ecs/component"
	"github.com/milk9111/megaman/tiled"
)

// SetScene stores the visible scene rectangle, reusing the existing
// SceneBounds entity when there is one.
func SetScene(w *ecs.World, r common.Rect) ecs.Entity {
	bounds := &component.SceneBounds{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
	if e, ok := w.First(component.SceneBoundsComponent.Kind()); ok {
		if b, ok := ecs.Get(w, e, component.SceneBoundsComponent.Kind()); ok {
			*b = *bounds
			return e
		}
	}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.SceneBoundsComponent.Kind(), bounds)
	return e
}

// SceneForMap is the map's pixel area, or the base resolution for an empty map.
func SceneForMap(m *tiled.Map) common.Rect {
	if m == nil {
		return common.Rect{Width: common.BaseWidth, Height: common.BaseHeight}
	}
	pw, ph := m.PixelSize()
	if pw <= 0 || ph <= 0 {
		return common.Rect{Width: common.BaseWidth, Height: common.BaseHeight}
	}
	return common.Rect{Width: float64(pw), Height: float64(ph)}
}
