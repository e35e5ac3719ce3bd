package tiled

import (
	"fmt"
	"image"
	"path"
	"strings"
)

// TileSet maps a contiguous range of global tile indices onto a shared image atlas.
type TileSet struct {
	Name        string
	ImagePath   string
	ImageWidth  int
	ImageHeight int
	Margin      int
	Spacing     int
	TileWidth   int
	TileHeight  int
	FirstIndex  TileIndex
	Properties  Properties
}

// UnitRect is a rectangle normalized to the 0..1 range of the atlas with
// its origin at the bottom-left corner.
type UnitRect struct {
	X, Y          float64
	Width, Height float64
}

func decodeTileSet(d document) (*TileSet, bool) {
	if d == nil {
		return nil, false
	}
	ts := &TileSet{
		ImageWidth:  d.int("imagewidth"),
		ImageHeight: d.int("imageheight"),
		Margin:      d.int("margin"),
		Spacing:     d.int("spacing"),
		TileWidth:   d.int("tilewidth"),
		TileHeight:  d.int("tileheight"),
		FirstIndex:  TileIndex(d.int("firstgid")),
		Properties:  parseProperties(d["properties"]),
	}
	if name, ok := d.string("name"); ok {
		ts.Name = name
	}
	if img, ok := d.string("image"); ok {
		// only the file name is kept; atlases are looked up among embedded assets
		ts.ImagePath = path.Base(strings.ReplaceAll(img, "\\", "/"))
	}
	return ts, true
}

// Columns returns the number of tiles per atlas row.
func (ts *TileSet) Columns() int {
	return tilesAlong(ts.ImageWidth, ts.TileWidth, ts.Margin, ts.Spacing)
}

// Rows returns the number of tile rows in the atlas.
func (ts *TileSet) Rows() int {
	return tilesAlong(ts.ImageHeight, ts.TileHeight, ts.Margin, ts.Spacing)
}

// TileCount returns how many global indices this set owns.
func (ts *TileSet) TileCount() int {
	return ts.Columns() * ts.Rows()
}

// LastIndex returns the highest global index owned by the set. It is below
// FirstIndex when the set is empty.
func (ts *TileSet) LastIndex() TileIndex {
	return ts.FirstIndex + TileIndex(ts.TileCount()) - 1
}

// tilesAlong counts tiles along one atlas axis. Margins surround the grid and
// there is no spacing after the last tile.
func tilesAlong(size, tile, margin, spacing int) int {
	step := tile + spacing
	if tile <= 0 || step <= 0 {
		return 0
	}
	avail := size - 2*margin + spacing
	if avail <= 0 {
		return 0
	}
	return avail / step
}

// Contains reports whether idx is owned by this set.
func (ts *TileSet) Contains(idx TileIndex) bool {
	if ts == nil || idx == 0 {
		return false
	}
	count := TileIndex(ts.TileCount())
	return idx >= ts.FirstIndex && idx < ts.FirstIndex+count
}

// Rect returns the pixel region of idx within the atlas, top-left origin.
func (ts *TileSet) Rect(idx TileIndex) (image.Rectangle, bool) {
	if !ts.Contains(idx) {
		return image.Rectangle{}, false
	}
	offset := int(idx - ts.FirstIndex)
	cols := ts.Columns()
	col := offset % cols
	row := offset / cols
	x := ts.Margin + col*(ts.TileWidth+ts.Spacing)
	y := ts.Margin + row*(ts.TileHeight+ts.Spacing)
	return image.Rect(x, y, x+ts.TileWidth, y+ts.TileHeight), true
}

// UnitRect returns Rect normalized to the atlas size with the vertical axis
// flipped, since atlas rows run top to bottom.
func (ts *TileSet) UnitRect(idx TileIndex) (UnitRect, bool) {
	r, ok := ts.Rect(idx)
	if !ok || ts.ImageWidth <= 0 || ts.ImageHeight <= 0 {
		return UnitRect{}, false
	}
	iw := float64(ts.ImageWidth)
	ih := float64(ts.ImageHeight)
	return UnitRect{
		X:      float64(r.Min.X) / iw,
		Y:      (ih - float64(r.Min.Y) - float64(r.Dy())) / ih,
		Width:  float64(r.Dx()) / iw,
		Height: float64(r.Dy()) / ih,
	}, true
}

func (ts *TileSet) String() string {
	return fmt.Sprintf("TileSet %q - size: %dpx x %dpx; path: %s; tiles size: %dpx x %dpx; spacing: %dpx; margin: %dpx; first tile index: %d;",
		ts.Name, ts.ImageWidth, ts.ImageHeight, ts.ImagePath, ts.TileWidth, ts.TileHeight, ts.Spacing, ts.Margin, ts.FirstIndex)
}
