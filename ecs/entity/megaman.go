package entity

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/megaman/common"
	"github.com/milk9111/megaman/ecs"
	"github.com/milk9111/megaman/ecs/component"
	"github.com/milk9111/megaman/ecs/render"
	"github.com/milk9111/megaman/ecs/system"
	"github.com/milk9111/megaman/prefabs"
)

// MegamanPrefab is the default character prefab.
const MegamanPrefab = "megaman.yaml"

const (
	fallbackShotWidth  = 8
	fallbackShotHeight = 6
)

var clipLibrary = render.NewAnimationLibrary()

// MegamanAssets are the images a character prefab refers to.
type MegamanAssets struct {
	Sheet      *ebiten.Image
	Shot       *ebiten.Image
	ShotWidth  int
	ShotHeight int
}

// MegamanPrefabData is a character prefab with its shot prefab resolved.
type MegamanPrefabData struct {
	Name string
	Spec *prefabs.MegamanSpec
	Shot *prefabs.ShotSpec
}

// LoadMegamanPrefab loads a character prefab and the shot prefab it names.
func LoadMegamanPrefab(name string) (*MegamanPrefabData, error) {
	spec, err := prefabs.LoadMegamanSpec(name)
	if err != nil {
		return nil, err
	}
	shot, err := prefabs.LoadShotSpec(spec.Character.Shot)
	if err != nil {
		return nil, fmt.Errorf("megaman %q: %w", name, err)
	}
	return &MegamanPrefabData{Name: name, Spec: spec, Shot: shot}, nil
}

// LoadMegamanAssets loads the sheet and shot image, falling back to
// placeholders for missing files.
func LoadMegamanAssets(p *MegamanPrefabData) MegamanAssets {
	sw, sh := sheetSize(p.Spec.Animation)
	a := MegamanAssets{Sheet: render.MustLoadImage(p.Spec.Animation.Sheet, sw, sh)}

	w, h, ok := render.ImageSize(p.Shot.Sprite.Image)
	if !ok {
		w, h = fallbackShotWidth, fallbackShotHeight
	}
	a.Shot = render.MustLoadImage(p.Shot.Sprite.Image, w, h)
	a.ShotWidth, a.ShotHeight = w, h
	return a
}

// NewMegaman spawns a character from a prefab centered at at.
func NewMegaman(w *ecs.World, prefab string, at common.Vec2) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("new megaman: world is nil")
	}
	p, err := LoadMegamanPrefab(prefab)
	if err != nil {
		return 0, fmt.Errorf("new megaman: %w", err)
	}
	return BuildMegaman(w, p, LoadMegamanAssets(p), at)
}

// BuildMegaman creates the character entity from already loaded data. The
// character starts still and idle, showing the still clip.
func BuildMegaman(w *ecs.World, p *MegamanPrefabData, a MegamanAssets, at common.Vec2) (ecs.Entity, error) {
	if p == nil || p.Spec == nil || p.Shot == nil {
		return 0, fmt.Errorf("build megaman: prefab is incomplete")
	}
	e := ecs.CreateEntity(w)
	ts := p.Spec.Transform
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        at.X,
		Y:        at.Y,
		ScaleX:   ts.ScaleX,
		ScaleY:   ts.ScaleY,
		Rotation: ts.Rotation,
	}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build megaman: %w", err)
	}
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: a.Sheet})
	_ = ecs.Add(w, e, component.CharacterComponent.Kind(), &component.Character{})
	_ = ecs.Add(w, e, component.CommandQueueComponent.Kind(), &component.CommandQueue{})
	_ = ecs.Add(w, e, component.MegamanTagComponent.Kind(), &component.MegamanTag{})

	ApplyMegamanPrefab(w, e, p, a)
	return e, nil
}

// ApplyMegamanPrefab copies tunables, clips and the shot template from the
// prefab onto e. Position, facing and state are kept so a reload does not
// interrupt play.
func ApplyMegamanPrefab(w *ecs.World, e ecs.Entity, p *MegamanPrefabData, a MegamanAssets) {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		facing := 1.0
		if t.FacingLeft() {
			facing = -1
		}
		t.ScaleX = math.Abs(p.Spec.Transform.ScaleX) * facing
		t.ScaleY = p.Spec.Transform.ScaleY
	}

	clips, ok := clipLibrary.Get(p.Name)
	if !ok {
		clips = render.BuildClips(p.Spec.Animation, a.Sheet)
		clipLibrary.Register(p.Name, clips)
	}
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		anim.Clips = clips
	} else {
		_ = ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Clips: clips})
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Image = a.Sheet
		if still := clips[system.ClipStill]; still != nil && len(still.Frames) > 0 {
			sprite.Source = still.Frames[0].Source
			sprite.UseSource = true
		}
	}

	layer := p.Spec.RenderLayer.Index
	if layer == 0 {
		layer = component.RenderLayerCharacter
	}
	setRenderLayer(w, e, layer)

	if ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind()); ok {
		cs := p.Spec.Character
		ch.MaxLiveShots = min(cs.MaxLiveShots, prefabs.MaxLiveShots)
		ch.TimeToCrossScreen = cs.TimeToCrossScreen
		ch.StepSize = cs.StepSize
		ch.StepDuration = cs.StepDuration
		ch.JumpHeight = cs.JumpHeight
		ch.JumpDuration = cs.JumpDuration
		ch.ShotClearance = cs.ShotClearance
		ch.CannonOffset = cs.CannonOffset
	}

	shotLayer := p.Shot.RenderLayer.Index
	if shotLayer == 0 {
		shotLayer = component.RenderLayerShots
	}
	tmpl := &component.ShotTemplate{
		Image:       a.Shot,
		Width:       float64(a.ShotWidth),
		Height:      float64(a.ShotHeight),
		Interval:    p.Shot.Interval,
		BaseStep:    p.Shot.BaseStep,
		RenderLayer: shotLayer,
	}
	if cur, ok := ecs.Get(w, e, component.ShotTemplateComponent.Kind()); ok {
		*cur = *tmpl
	} else {
		_ = ecs.Add(w, e, component.ShotTemplateComponent.Kind(), tmpl)
	}

	system.RestartStateAnimation(w, e)
}

// ReloadMegaman rebuilds a prefab's clips and applies it to every live
// character tagged MegamanTag.
func ReloadMegaman(w *ecs.World, prefab string) error {
	p, err := LoadMegamanPrefab(prefab)
	if err != nil {
		return fmt.Errorf("reload megaman: %w", err)
	}
	clipLibrary.Forget(prefab)
	a := LoadMegamanAssets(p)
	for _, e := range w.Query(component.MegamanTagComponent.Kind(), component.CharacterComponent.Kind()) {
		ApplyMegamanPrefab(w, e, p, a)
	}
	return nil
}

// PlaceOnGround drops e so its feet rest on the highest collision surface
// at or below its center. It reports whether a surface was found.
func PlaceOnGround(w *ecs.World, e ecs.Entity) bool {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	r := system.EntityRect(w, e)
	top, ok := w.PhysicsWorld().SurfaceBelow(t.X, t.Y)
	if !ok {
		return false
	}
	t.Y = top + r.Height/2
	return true
}

func setRenderLayer(w *ecs.World, e ecs.Entity, index int) {
	if rl, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		rl.Index = index
		return
	}
	_ = ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: index})
}

// sheetSize is the smallest sheet that holds every frame the clips use.
func sheetSize(a prefabs.AnimationSpec) (int, int) {
	w, h := a.FrameW, a.FrameH
	for _, frames := range a.Clips {
		for _, f := range frames {
			r := a.FrameRect(f)
			if r.Max.X > w {
				w = r.Max.X
			}
			if r.Max.Y > h {
				h = r.Max.Y
			}
		}
	}
	return w, h
}
