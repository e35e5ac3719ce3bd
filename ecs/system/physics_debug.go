package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/megaman/common"
	"github.com/milk9111/megaman/ecs"
	"github.com/milk9111/megaman/ecs/component"
)

func DrawPhysicsDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil || w.PhysicsWorld() == nil {
		return
	}
	drawer := &physicsDebugDrawer{
		screen: screen,
		scene:  SceneRect(w),
	}
	cp.DrawSpace(w.PhysicsWorld().Space(), drawer)
}

// DrawCharacterDebug prints the player character's state in the top-left
// corner.
func DrawCharacterDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	player, ok := w.First(component.MegamanTagComponent.Kind())
	if !ok {
		return
	}
	ch, ok := ecs.Get(w, player, component.CharacterComponent.Kind())
	if !ok {
		return
	}
	clip := "none"
	if anim, ok := ecs.Get(w, player, component.AnimationComponent.Kind()); ok && anim.Current != "" {
		clip = fmt.Sprintf("%s[%d]", anim.Current, anim.Frame)
	}
	x, y := 0.0, 0.0
	if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		x, y = t.X, t.Y
	}
	text := fmt.Sprintf("State: %s\nClip: %s\nTransitions: %d\nShots: %d/%d\nPos: %.0f,%.0f\nFPS: %.1f",
		ch.State(), clip, ch.Transitions, LiveShots(w, player), ch.MaxLiveShots, x, y, ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	scene  common.Rect
}

// The space only holds boxes, so circles and dots are never drawn.
func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, color cp.FColor) {
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	ebitenutil.DrawLine(d.screen, x1, y1, x2, y2, toNRGBA(color))
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, color cp.FColor) {
	if len(verts) == 0 {
		return
	}
	for i := 0; i < len(verts); i++ {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		d.drawLine(a, b, color)
	}
}

func (d *physicsDebugDrawer) toScreen(v cp.Vector) (float64, float64) {
	return v.X - d.scene.MinX(), d.scene.MaxY() - v.Y
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
