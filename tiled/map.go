package tiled

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

type Orientation string

const (
	Orthogonal Orientation = "orthogonal"
	Isometric  Orientation = "isometric"
	Staggered  Orientation = "staggered"
)

func parseOrientation(s string) (Orientation, bool) {
	switch o := Orientation(s); o {
	case Orthogonal, Isometric, Staggered:
		return o, true
	}
	return "", false
}

// Map is a decoded Tiled map. Width and Height are in tiles, TileWidth and
// TileHeight in pixels.
type Map struct {
	Version         string
	Orientation     Orientation
	Width           int
	Height          int
	TileWidth       int
	TileHeight      int
	BackgroundColor color.Color
	Properties      Properties
	Layers          []*Layer
	TileSets        []*TileSet
}

// Load reads and decodes a Tiled JSON map from disk.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tiled: read %s: %w", path, err)
	}
	return Decode(data)
}

// LoadFS reads and decodes a Tiled JSON map from fsys.
func LoadFS(fsys fs.FS, name string) (*Map, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("tiled: read %s: %w", name, err)
	}
	return Decode(data)
}

// Decode parses a Tiled JSON document. Only a malformed top level and a
// missing orientation are fatal; every other field falls back to its zero
// value and malformed layers or tilesets are dropped.
func Decode(data []byte) (*Map, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrInvalidFormat
	}
	d := document(obj)

	s, _ := d.string("orientation")
	orientation, ok := parseOrientation(s)
	if !ok {
		return nil, ErrNoOrientation
	}

	m := &Map{
		Orientation: orientation,
		Width:       d.int("width"),
		Height:      d.int("height"),
		TileWidth:   d.int("tilewidth"),
		TileHeight:  d.int("tileheight"),
		Properties:  parseProperties(d["properties"]),
	}

	switch v := d["version"].(type) {
	case float64:
		m.Version = strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		m.Version = v
	}

	if bg, ok := d.string("backgroundcolor"); ok {
		if c, ok := parseColor(bg); ok {
			m.BackgroundColor = c
		}
	}

	for _, ld := range d.objects("layers") {
		if layer, ok := decodeLayer(ld); ok {
			m.Layers = append(m.Layers, layer)
		}
	}
	for _, td := range d.objects("tilesets") {
		if ts, ok := decodeTileSet(td); ok {
			m.TileSets = append(m.TileSets, ts)
		}
	}
	return m, nil
}

// MainTileSet returns the tileset tiles are resolved against.
func (m *Map) MainTileSet() (*TileSet, bool) {
	if m == nil || len(m.TileSets) == 0 {
		return nil, false
	}
	return m.TileSets[0], true
}

// PixelSize returns the map size in pixels.
func (m *Map) PixelSize() (int, int) {
	if m == nil {
		return 0, 0
	}
	return m.Width * m.TileWidth, m.Height * m.TileHeight
}

// LayerByName returns the first layer with the given name.
func (m *Map) LayerByName(name string) (*Layer, bool) {
	if m == nil {
		return nil, false
	}
	for _, l := range m.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

func (m *Map) String() string {
	return fmt.Sprintf("Map v%s %dtiles x %dtiles: tiles %dpx x %dpx", m.Version, m.Width, m.Height, m.TileWidth, m.TileHeight)
}

// parseColor accepts #rrggbb and Tiled's #aarrggbb.
func parseColor(s string) (color.NRGBA, bool) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	c := color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
	if len(hex) == 8 {
		c.A = uint8(v >> 24)
	}
	return c, true
}
