package system

import (
	"image"
	"math"

	"github.com/milk9111/megaman/ecs"
	"github.com/milk9111/megaman/ecs/component"
)

// SpawnShot creates a projectile beside owner in its facing direction. The
// shot inherits the owner's scale, sits ShotClearance beyond the owner's
// edge and CannonOffset above its feet, and flies at a speed derived from
// the owner's cross-screen speed.
func SpawnShot(w *ecs.World, owner ecs.Entity) (ecs.Entity, bool) {
	ch, ok := ecs.Get(w, owner, component.CharacterComponent.Kind())
	if !ok {
		return 0, false
	}
	tmpl, ok := ecs.Get(w, owner, component.ShotTemplateComponent.Kind())
	if !ok {
		return 0, false
	}
	ot, ok := ecs.Get(w, owner, component.TransformComponent.Kind())
	if !ok {
		return 0, false
	}

	dir := facing(ot)
	sx, sy := math.Abs(ot.ScaleX), math.Abs(ot.ScaleY)
	shotW, shotH := tmpl.Width*sx, tmpl.Height*sy
	ownerRect := EntityRect(w, owner)

	x := ownerRect.MaxX() + shotW/2 + ch.ShotClearance
	if dir < 0 {
		x = ownerRect.MinX() - shotW/2 - ch.ShotClearance
	}
	y := ownerRect.MinY() + shotH/2 + ch.CannonOffset*sy

	ownerDxPerSec := 0.0
	if ch.TimeToCrossScreen > 0 {
		ownerDxPerSec = SceneRect(w).Width / ch.TimeToCrossScreen
	}
	interval := tmpl.Interval
	step := tmpl.BaseStep + ownerDxPerSec*interval

	shot := ecs.CreateEntity(w)
	if err := ecs.Add(w, shot, component.TransformComponent.Kind(), &component.Transform{
		X:      x,
		Y:      y,
		ScaleX: ot.ScaleX,
		ScaleY: ot.ScaleY,
	}); err != nil {
		ecs.DestroyEntity(w, shot)
		return 0, false
	}
	_ = ecs.Add(w, shot, component.SpriteComponent.Kind(), &component.Sprite{
		Image:     tmpl.Image,
		Source:    image.Rect(0, 0, int(tmpl.Width), int(tmpl.Height)),
		UseSource: true,
	})
	_ = ecs.Add(w, shot, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: tmpl.RenderLayer})
	_ = ecs.Add(w, shot, component.ShotComponent.Kind(), &component.Shot{
		Owner:     uint64(owner),
		Direction: dir,
		Step:      step,
		Interval:  interval,
	})

	RunAction(w, shot, movementKey, &component.Sequence{
		Steps: []component.Step{
			component.MoveBy(dir*step, 0, interval),
			component.Call(func() { despawnIfOutside(w, shot) }),
		},
		Repeat: true,
	})
	return shot, true
}

// DespawnShot stops and removes a shot, publishing ShotDespawned. It does
// nothing for an entity that is not a live shot, so each shot is reported
// once.
func DespawnShot(w *ecs.World, e ecs.Entity) bool {
	shot, ok := ecs.Get(w, e, component.ShotComponent.Kind())
	if !ok {
		return false
	}
	owner := ecs.Entity(shot.Owner)
	RemoveAllActions(w, e)
	if !ecs.DestroyEntity(w, e) {
		return false
	}
	w.Events().Push(ecs.Event{
		Type: ecs.EventShotDespawned,
		Data: ecs.ShotDespawned{Owner: owner, Shot: e},
	})
	return true
}

func despawnIfOutside(w *ecs.World, e ecs.Entity) {
	if !ecs.IsAlive(w, e) {
		return
	}
	if EntityRect(w, e).Intersects(SceneRect(w)) {
		return
	}
	DespawnShot(w, e)
}

// ShotsOwnedBy lists the live shots of owner.
func ShotsOwnedBy(w *ecs.World, owner ecs.Entity) []ecs.Entity {
	var out []ecs.Entity
	ecs.ForEach(w, component.ShotComponent.Kind(), func(e ecs.Entity, shot *component.Shot) {
		if ecs.Entity(shot.Owner) == owner {
			out = append(out, e)
		}
	})
	return out
}

