package component

// MegamanTag marks the player-controlled character.
type MegamanTag struct{}

var MegamanTagComponent = NewComponent[MegamanTag]()

// DemoTag marks a character driven by the demo script instead of input.
type DemoTag struct{}

var DemoTagComponent = NewComponent[DemoTag]()
