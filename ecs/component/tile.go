package component

// TileLayer is the container entity for one Tiled layer's sprites.
type TileLayer struct {
	Name      string
	Index     int
	Collision bool
	Player    bool
	Tiles     []uint64
}

var TileLayerComponent = NewComponent[TileLayer]()

// Tile is one rendered cell. Layer is the owning TileLayer entity.
type Tile struct {
	Layer uint64
	Index uint32
	Col   int
	Row   int
}

var TileComponent = NewComponent[Tile]()
