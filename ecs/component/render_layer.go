package component

// RenderLayer is used to sort draw order deterministically. Lower draws first.
type RenderLayer struct {
	Index int
}

const (
	RenderLayerBackground = 0
	RenderLayerTiles      = 10
	RenderLayerCharacter  = 20
	RenderLayerShots      = 30
)

var RenderLayerComponent = NewComponent[RenderLayer]()
