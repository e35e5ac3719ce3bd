package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/megaman/common"
	"github.com/milk9111/megaman/ecs"
	"github.com/milk9111/megaman/ecs/component"
	"github.com/milk9111/megaman/ecs/render"
	"github.com/milk9111/megaman/tiled"
)

// LoadTileMapImage loads the atlas of the map's main tileset.
func LoadTileMapImage(m *tiled.Map) *ebiten.Image {
	ts, ok := m.MainTileSet()
	if !ok {
		return nil
	}
	return render.MustLoadImage(ts.ImagePath, ts.ImageWidth, ts.ImageHeight)
}

// LoadTileMap creates one sprite entity per non-empty cell that resolves in
// the main tileset, grouped under a TileLayer entity per layer. A tile is
// centered at (col*tileW, layerHeight - row*tileH) in scene space, shifted
// by the layer offset which Tiled gives in tiles. Collision layers add a
// static box per tile. Layers without tiles are left out of the result.
func LoadTileMap(w *ecs.World, m *tiled.Map, sheet *ebiten.Image) ([]ecs.Entity, error) {
	if w == nil {
		return nil, fmt.Errorf("load tile map: world is nil")
	}
	if m == nil {
		return nil, fmt.Errorf("load tile map: map is nil")
	}
	ts, ok := m.MainTileSet()
	if !ok {
		return nil, nil
	}

	var layers []ecs.Entity
	for i, l := range m.Layers {
		if l.Type != tiled.TileLayer {
			continue
		}
		e, ok := loadTileLayer(w, l, i, ts, sheet)
		if ok {
			layers = append(layers, e)
		}
	}
	return layers, nil
}

func loadTileLayer(w *ecs.World, l *tiled.Layer, index int, ts *tiled.TileSet, sheet *ebiten.Image) (ecs.Entity, bool) {
	layerEntity := ecs.CreateEntity(w)
	layer := &component.TileLayer{
		Name:      l.Name,
		Index:     index,
		Collision: l.Collision,
		Player:    l.Player,
	}

	pw := w.PhysicsWorld()
	if l.Collision && pw == nil {
		pw = ecs.NewPhysicsWorld()
		w.SetPhysicsWorld(pw)
	}

	tw, th := float64(ts.TileWidth), float64(ts.TileHeight)
	alpha := l.Opacity
	hidden := !l.Visible || alpha <= 0

	for row := 0; row < l.Height; row++ {
		for col := 0; col < l.Width; col++ {
			idx := l.TileAt(col, row)
			src, ok := ts.Rect(idx)
			if !ok {
				continue
			}

			x, y := cellPosition(l, col, row, tw, th)

			tile := ecs.CreateEntity(w)
			_ = ecs.Add(w, tile, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
			_ = ecs.Add(w, tile, component.SpriteComponent.Kind(), &component.Sprite{
				Image:     sheet,
				Source:    src,
				UseSource: true,
				Alpha:     alpha,
				Hidden:    hidden,
			})
			_ = ecs.Add(w, tile, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.RenderLayerTiles + index})
			_ = ecs.Add(w, tile, component.TileComponent.Kind(), &component.Tile{
				Layer: uint64(layerEntity),
				Index: uint32(idx),
				Col:   col,
				Row:   row,
			})
			if l.Collision {
				pw.AddStaticBox(tile, common.RectAround(x, y, float64(src.Dx()), float64(src.Dy())))
			}
			layer.Tiles = append(layer.Tiles, uint64(tile))
		}
	}

	if len(layer.Tiles) == 0 {
		ecs.DestroyEntity(w, layerEntity)
		return 0, false
	}
	_ = ecs.Add(w, layerEntity, component.TileLayerComponent.Kind(), layer)
	return layerEntity, true
}

// ClearTileMap destroys every tile and layer entity along with their
// collision boxes.
func ClearTileMap(w *ecs.World) int {
	pw := w.PhysicsWorld()
	n := 0
	ecs.ForEach(w, component.TileComponent.Kind(), func(e ecs.Entity, _ *component.Tile) {
		if pw != nil {
			pw.RemoveEntity(e)
		}
		if ecs.DestroyEntity(w, e) {
			n++
		}
	})
	ecs.ForEach(w, component.TileLayerComponent.Kind(), func(e ecs.Entity, _ *component.TileLayer) {
		ecs.DestroyEntity(w, e)
	})
	return n
}

// cellPosition is where a layer cell lands in y-up scene space.
func cellPosition(l *tiled.Layer, col, row int, tw, th float64) (float64, float64) {
	x := float64(col+l.OffsetX) * tw
	y := float64(l.Height-row-l.OffsetY) * th
	return x, y
}

// SpawnPoint is the position of the first cell of the player layer, or the
// scene center when the map has none.
func SpawnPoint(m *tiled.Map) common.Vec2 {
	scene := SceneForMap(m)
	if m == nil {
		return common.Vec2{X: scene.MidX(), Y: scene.MidY()}
	}
	for _, l := range m.Layers {
		if !l.Player {
			continue
		}
		col, row, ok := l.FirstCell()
		if !ok {
			continue
		}
		tw, th := float64(m.TileWidth), float64(m.TileHeight)
		if ts, ok := m.MainTileSet(); ok {
			tw, th = float64(ts.TileWidth), float64(ts.TileHeight)
		}
		return common.Vec2{
			X: float64(col)*tw + tw/2 + float64(l.OffsetX),
			Y: float64(l.Height)*th - float64(row)*th - th/2 - float64(l.OffsetY),
		}
	}
	return common.Vec2{X: scene.MidX(), Y: scene.MidY()}
}
