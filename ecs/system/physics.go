package system

import (
	"log"

	"github.com/milk9111/megaman/common"
	"github.com/milk9111/megaman/ecs"
)

// PhysicsSystem steps the static collision space and drops boxes whose tile
// entities were destroyed, e.g. by a level reload.
type PhysicsSystem struct {
	Debug bool
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	if n := pw.Prune(w.IsAlive); n > 0 && ps.Debug {
		log.Printf("physics: pruned %d static boxes", n)
	}
	pw.Step(common.TickSeconds)
}
