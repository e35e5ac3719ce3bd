package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/megaman/common"
	"github.com/milk9111/megaman/ecs/component"
	"github.com/milk9111/megaman/ecs/entity"
	"github.com/milk9111/megaman/ecs/render"
)

const (
	screenWidth  = 512
	screenHeight = 512
	previewScale = 8
)

// clipViewer plays one clip of a character prefab at a time. Left and right
// switch clips, space restarts the current one.
type clipViewer struct {
	clips   map[string]*component.Clip
	names   []string
	current int
	elapsed float64
}

func (g *clipViewer) Update() error {
	if len(g.names) == 0 {
		return nil
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.current = (g.current + 1) % len(g.names)
		g.elapsed = 0
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.current = (g.current + len(g.names) - 1) % len(g.names)
		g.elapsed = 0
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.elapsed = 0
	}

	g.elapsed += common.TickSeconds
	if d := g.clip().Duration(); d > 0 && g.elapsed >= d {
		g.elapsed -= d
	}
	return nil
}

func (g *clipViewer) clip() *component.Clip {
	return g.clips[g.names[g.current]]
}

func (g *clipViewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x30, 0xff})
	if len(g.names) == 0 {
		ebitenutil.DebugPrint(screen, "no clips")
		return
	}
	clip := g.clip()
	idx := clip.FrameAt(g.elapsed)
	if clip.Sheet != nil && idx < len(clip.Frames) {
		frame := clip.Frames[idx]
		if sub, ok := clip.Sheet.SubImage(frame.Source).(*ebiten.Image); ok {
			fw, fh := frame.Source.Dx()*previewScale, frame.Source.Dy()*previewScale
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(previewScale, previewScale)
			op.GeoM.Translate(float64(screenWidth-fw)/2, float64(screenHeight-fh)/2)
			op.Filter = ebiten.FilterNearest
			screen.DrawImage(sub, op)
		}
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  frame %d/%d  %.2fs\n<- -> switch clip, space restarts",
		clip.Name, idx+1, len(clip.Frames), clip.Duration()))
}

func (g *clipViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	prefab := flag.String("prefab", entity.MegamanPrefab, "character prefab to preview")
	start := flag.String("clip", "", "clip to show first")
	flag.Parse()

	p, err := entity.LoadMegamanPrefab(*prefab)
	if err != nil {
		log.Fatal(err)
	}
	sheet, err := render.LoadImage(p.Spec.Animation.Sheet)
	if err != nil {
		log.Fatal(err)
	}

	g := &clipViewer{clips: render.BuildClips(p.Spec.Animation, sheet)}
	for name := range g.clips {
		g.names = append(g.names, name)
	}
	sort.Strings(g.names)
	for i, name := range g.names {
		if name == *start {
			g.current = i
		}
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("clip viewer: " + *prefab)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
