package tiled

import "fmt"

// TileIndex is a global tile id as stored per cell; 0 marks an empty cell.
type TileIndex uint32

const (
	flipHorizontal TileIndex = 0x80000000
	flipVertical   TileIndex = 0x40000000
	flipDiagonal   TileIndex = 0x20000000
	flipRotatedHex TileIndex = 0x10000000

	indexMask = ^(flipHorizontal | flipVertical | flipDiagonal | flipRotatedHex)
)

type LayerType string

const (
	TileLayer   LayerType = "tilelayer"
	ObjectGroup LayerType = "objectgroup"
	ImageLayer  LayerType = "imagelayer"
	GroupLayer  LayerType = "group"
)

// Layer is one named grid of tile indices.
type Layer struct {
	Name       string
	Type       LayerType
	Tiles      []TileIndex
	OffsetX    int
	OffsetY    int
	Width      int
	Height     int
	Opacity    float64
	Visible    bool
	Collision  bool
	Player     bool
	Properties Properties
}

func decodeLayer(d document) (*Layer, bool) {
	if d == nil {
		return nil, false
	}
	l := &Layer{
		Type:    TileLayer,
		OffsetX: d.int("x"),
		OffsetY: d.int("y"),
		Width:   d.int("width"),
		Height:  d.int("height"),
		Opacity: 1,
		Visible: true,
	}
	if name, ok := d.string("name"); ok {
		l.Name = name
	}
	if typ, ok := d.string("type"); ok {
		switch LayerType(typ) {
		case TileLayer, ObjectGroup, ImageLayer, GroupLayer:
			l.Type = LayerType(typ)
		}
	}
	if data, ok := d["data"].([]any); ok {
		l.Tiles = make([]TileIndex, len(data))
		for i, v := range data {
			n, ok := v.(float64)
			if !ok || n < 0 {
				continue
			}
			l.Tiles[i] = TileIndex(uint32(n)) & indexMask
		}
	}
	if opacity, ok := d.number("opacity"); ok {
		l.Opacity = opacity
	}
	if visible, ok := d.bool("visible"); ok {
		l.Visible = visible
	}
	l.Properties = parseProperties(d["properties"])
	l.Collision = l.Properties.Bool("collision")
	l.Player = l.Properties.Bool("player")
	return l, true
}

// TileAt returns the index at the given cell, or 0 when out of range.
func (l *Layer) TileAt(col, row int) TileIndex {
	if l == nil || col < 0 || row < 0 || col >= l.Width || row >= l.Height {
		return 0
	}
	i := row*l.Width + col
	if i >= len(l.Tiles) {
		return 0
	}
	return l.Tiles[i]
}

// FirstCell returns the column and row of the first non-empty cell.
func (l *Layer) FirstCell() (col, row int, ok bool) {
	if l == nil || l.Width <= 0 {
		return 0, 0, false
	}
	for i, idx := range l.Tiles {
		if idx != 0 {
			return i % l.Width, i / l.Width, true
		}
	}
	return 0, 0, false
}

func (l *Layer) String() string {
	visibility := "visible"
	if !l.Visible {
		visibility = "hidden"
	}
	return fmt.Sprintf("Layer %q - size: %dtiles x %dtiles; offset: (%d, %d)tiles; visibility: %s; opacity: %.3f;",
		l.Name, l.Width, l.Height, l.OffsetX, l.OffsetY, visibility, l.Opacity)
}
