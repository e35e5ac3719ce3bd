package ecs

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/megaman/common"
)

const collisionTypeSolid cp.CollisionType = 1

// PhysicsWorld owns the Chipmunk space and the static collision shapes
// built from tile map collision layers. Scene space is y-up, like cp's.
type PhysicsWorld struct {
	space *cp.Space

	shapeToEntity map[*cp.Shape]Entity
	shapeRects    map[*cp.Shape]common.Rect
	debug         bool
}

// NewPhysicsWorld creates an empty space without gravity; nothing in the
// scene is simulated dynamically.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})

	return &PhysicsWorld{
		space:         space,
		shapeToEntity: make(map[*cp.Shape]Entity),
		shapeRects:    make(map[*cp.Shape]common.Rect),
	}
}

// SetDebug enables per-shape logging.
func (pw *PhysicsWorld) SetDebug(on bool) {
	if pw != nil {
		pw.debug = on
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// AddStaticBox adds a static box covering rect and ties it to e.
func (pw *PhysicsWorld) AddStaticBox(e Entity, rect common.Rect) *cp.Shape {
	if pw == nil || pw.space == nil || rect.Width <= 0 || rect.Height <= 0 {
		return nil
	}
	bb := cp.BB{L: rect.MinX(), B: rect.MinY(), R: rect.MaxX(), T: rect.MaxY()}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeSolid)
	pw.space.AddShape(shape)

	pw.shapeToEntity[shape] = e
	pw.shapeRects[shape] = rect
	if pw.debug {
		log.Printf("PhysicsWorld: static box for entity %s at %.0f,%.0f %.0fx%.0f", e, rect.X, rect.Y, rect.Width, rect.Height)
	}
	return shape
}

// RemoveEntity drops every shape tied to e.
func (pw *PhysicsWorld) RemoveEntity(e Entity) int {
	if pw == nil || pw.space == nil {
		return 0
	}
	removed := 0
	for shape, owner := range pw.shapeToEntity {
		if owner != e {
			continue
		}
		pw.space.RemoveShape(shape)
		delete(pw.shapeToEntity, shape)
		delete(pw.shapeRects, shape)
		removed++
	}
	return removed
}

// Prune drops the shapes of entities that keep reports false for.
func (pw *PhysicsWorld) Prune(keep func(Entity) bool) int {
	if pw == nil || pw.space == nil || keep == nil {
		return 0
	}
	removed := 0
	for shape, owner := range pw.shapeToEntity {
		if keep(owner) {
			continue
		}
		pw.space.RemoveShape(shape)
		delete(pw.shapeToEntity, shape)
		delete(pw.shapeRects, shape)
		removed++
	}
	return removed
}

// StaticCount returns the number of static boxes in the space.
func (pw *PhysicsWorld) StaticCount() int {
	if pw == nil {
		return 0
	}
	return len(pw.shapeRects)
}

// Overlaps returns the entities whose static boxes overlap rect.
func (pw *PhysicsWorld) Overlaps(rect common.Rect) []Entity {
	if pw == nil || pw.space == nil {
		return nil
	}
	var out []Entity
	seen := make(map[Entity]bool)
	pw.query(rect, func(shape *cp.Shape, r common.Rect) {
		e := pw.shapeToEntity[shape]
		if seen[e] || !r.Intersects(rect) {
			return
		}
		seen[e] = true
		out = append(out, e)
	})
	return out
}

// SurfaceBelow returns the highest static box top at or below y in the
// column at x.
func (pw *PhysicsWorld) SurfaceBelow(x, y float64) (float64, bool) {
	if pw == nil || pw.space == nil {
		return 0, false
	}
	best := math.Inf(-1)
	column := common.Rect{X: x - 0.5, Y: -math.MaxFloat32, Width: 1, Height: y + math.MaxFloat32}
	pw.query(column, func(_ *cp.Shape, r common.Rect) {
		if x < r.MinX() || x > r.MaxX() {
			return
		}
		if top := r.MaxY(); top <= y+common.Epsilon && top > best {
			best = top
		}
	})
	if math.IsInf(best, -1) {
		return 0, false
	}
	return best, true
}

// Step advances the physics simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}

func (pw *PhysicsWorld) query(rect common.Rect, fn func(*cp.Shape, common.Rect)) {
	bb := cp.BB{L: rect.MinX(), B: rect.MinY(), R: rect.MaxX(), T: rect.MaxY()}
	pw.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		r, ok := pw.shapeRects[shape]
		if !ok {
			return
		}
		fn(shape, r)
	}, nil)
}
