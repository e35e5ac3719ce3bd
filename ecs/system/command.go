package system

import (
	"log"

	"github.com/milk9111/megaman/common"
	"github.com/milk9111/megaman/ecs"
	"github.com/milk9111/megaman/ecs/component"
	"github.com/milk9111/megaman/input"
)

// CommandSystem applies queued input commands to their characters.
type CommandSystem struct {
	Debug bool
}

func NewCommandSystem() *CommandSystem {
	return &CommandSystem{}
}

func (c *CommandSystem) Update(w *ecs.World) {
	if c == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.CommandQueueComponent.Kind(), func(e ecs.Entity, q *component.CommandQueue) {
		for _, cmd := range q.Drain() {
			if c.Debug {
				log.Printf("command: entity=%s %s", e, cmd)
			}
			Apply(w, e, cmd)
		}
	})
}

// Apply maps one command onto the character e.
func Apply(w *ecs.World, e ecs.Entity, cmd input.Command) {
	if !ecs.Has(w, e, component.CharacterComponent.Kind()) {
		return
	}
	switch cmd.Kind {
	case input.CommandShoot:
		if cmd.Ahead {
			ShootAhead(w, e)
			return
		}
		Shoot(w, e, cmd.At)
	case input.CommandSwipe:
		switch cmd.Direction {
		case input.DirectionLeft, input.DirectionRight:
			MoveTo(w, e, cmd.At)
		case input.DirectionUp:
			Jump(w, e)
		case input.DirectionDown:
			StopMoving(w, e)
		}
	case input.CommandHold:
		bounds := SceneRect(w)
		switch cmd.Direction {
		case input.DirectionLeft:
			MoveTo(w, e, common.Vec2{X: bounds.MinX()})
		case input.DirectionRight:
			MoveTo(w, e, common.Vec2{X: bounds.MaxX()})
		default:
			StopMoving(w, e)
		}
	case input.CommandStep:
		MoveOneStepTo(w, e, cmd.Direction)
	case input.CommandJump:
		Jump(w, e)
	}
}
