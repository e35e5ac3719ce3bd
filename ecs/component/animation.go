package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Frame is one cell of a sprite sheet shown for Duration seconds.
type Frame struct {
	Source   image.Rectangle
	Duration float64
}

// Clip is an ordered run of frames from one sheet.
type Clip struct {
	Name   string
	Sheet  *ebiten.Image
	Frames []Frame
}

// Duration is the total time the clip takes to play once.
func (c *Clip) Duration() float64 {
	if c == nil {
		return 0
	}
	total := 0.0
	for _, f := range c.Frames {
		total += f.Duration
	}
	return total
}

// FrameAt returns the index of the frame showing after elapsed seconds.
func (c *Clip) FrameAt(elapsed float64) int {
	if c == nil || len(c.Frames) == 0 {
		return 0
	}
	acc := 0.0
	for i, f := range c.Frames {
		acc += f.Duration
		if elapsed < acc {
			return i
		}
	}
	return len(c.Frames) - 1
}

// Animation holds an entity's clip library and what is currently showing.
type Animation struct {
	Clips   map[string]*Clip
	Current string
	Frame   int
}

var AnimationComponent = NewComponent[Animation]()
