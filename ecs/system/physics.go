package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starcatcher/ecs"
	"github.com/milk9111/starcatcher/ecs/component"
)

const (
	physicsStep       = 1.0 / ticksPerSecond
	physicsIterations = 20
	boundsThickness   = 1.0
	groundSensorDepth = 2.0
)

// Collision types are the entity kinds themselves; the ground sensor sits
// above every kind.
const collisionTypeGroundSensor cp.CollisionType = 64

// Category bit 0 is the world bounds; each entity kind takes bit kind.
const boundsCategory uint = 1

func collisionTypeFor(kind component.EntityKind) cp.CollisionType {
	return cp.CollisionType(kind)
}

func categoryFor(kind component.EntityKind) uint {
	return 1 << uint(kind)
}

// PairHandler is called once per new contact between two registered kinds.
// a has the first kind of the registered pair, b the second.
type PairHandler func(w *ecs.World, a, b ecs.Entity)

type pairKey struct {
	a component.EntityKind
	b component.EntityKind
}

type pairSpec struct {
	overlap bool
	handler PairHandler
}

type contact struct {
	handler PairHandler
	a       ecs.Entity
	b       ecs.Entity
}

type bodyInfo struct {
	kind        component.EntityKind
	body        *cp.Body
	shape       *cp.Shape
	groundShape *cp.Shape
	static      bool
	worldBounds bool
	halfW       float64
	halfH       float64
	elasticity  float64
}

// PhysicsSystem owns the Chipmunk space. Only kind pairs registered through
// Collide or Overlap interact; everything else passes through.
type PhysicsSystem struct {
	space  *cp.Space
	paused bool

	masks    map[component.EntityKind]uint
	pairs    map[pairKey]pairSpec
	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity
	grounds  map[*cp.Shape]ecs.Entity
	grounded map[ecs.Entity]bool
	pending  []contact

	boundsShapes []*cp.Shape
	boundsW      float64
	boundsH      float64
}

func NewPhysicsSystem(gravity float64) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = physicsIterations
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	ps := &PhysicsSystem{
		space:    space,
		masks:    make(map[component.EntityKind]uint),
		pairs:    make(map[pairKey]pairSpec),
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
		grounds:  make(map[*cp.Shape]ecs.Entity),
		grounded: make(map[ecs.Entity]bool),
	}
	ps.installGroundHandler()
	return ps
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Collide registers a blocking pair. handler may be nil.
func (ps *PhysicsSystem) Collide(a, b component.EntityKind, handler PairHandler) {
	ps.register(a, b, pairSpec{handler: handler})
}

// Overlap registers a non-blocking pair: the bodies pass through each other
// and handler still fires when they first touch.
func (ps *PhysicsSystem) Overlap(a, b component.EntityKind, handler PairHandler) {
	ps.register(a, b, pairSpec{overlap: true, handler: handler})
}

// Pause freezes the world: no more integration and no more handler dispatch.
func (ps *PhysicsSystem) Pause() {
	if ps == nil {
		return
	}
	ps.paused = true
	ps.pending = nil
}

func (ps *PhysicsSystem) Paused() bool {
	return ps != nil && ps.paused
}

// BodyCount returns the number of entity bodies currently in the space.
func (ps *PhysicsSystem) BodyCount() int {
	if ps == nil {
		return 0
	}
	return len(ps.entities)
}

func (ps *PhysicsSystem) register(a, b component.EntityKind, spec pairSpec) {
	if ps == nil || ps.space == nil || a == component.EntityKindNone || b == component.EntityKindNone {
		return
	}
	ps.masks[a] |= categoryFor(b)
	ps.masks[b] |= categoryFor(a)
	ps.pairs[pairKey{a: a, b: b}] = spec

	if spec.overlap || spec.handler != nil {
		ps.installPairHandler(a, b, spec)
	}

	for _, info := range ps.entities {
		if info.kind == a || info.kind == b {
			info.shape.SetFilter(ps.filterFor(info.kind, info.worldBounds))
		}
	}
}

func (ps *PhysicsSystem) installPairHandler(a, b component.EntityKind, spec pairSpec) {
	handler := ps.space.NewCollisionHandler(collisionTypeFor(a), collisionTypeFor(b))
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return !spec.overlap
		}
		shapeA, shapeB := arb.Shapes()
		entA, okA := sys.shapes[shapeA]
		entB, okB := sys.shapes[shapeB]
		if !okA || !okB {
			return !spec.overlap
		}
		// keep the registered order regardless of how the arbiter was built
		if info := sys.entities[entA]; info != nil && info.kind != a {
			entA, entB = entB, entA
		}
		if spec.handler != nil && !sys.paused {
			sys.pending = append(sys.pending, contact{handler: spec.handler, a: entA, b: entB})
		}
		return !spec.overlap
	}
}

func (ps *PhysicsSystem) installGroundHandler() {
	handler := ps.space.NewCollisionHandler(collisionTypeGroundSensor, collisionTypeFor(component.EntityKindPlatform))
	handler.UserData = ps
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		player, okA := sys.grounds[shapeA]
		platform := shapeB
		if !okA {
			var okB bool
			player, okB = sys.grounds[shapeB]
			if !okB {
				return true
			}
			platform = shapeA
		}
		info := sys.entities[player]
		if info == nil || info.body == nil {
			return true
		}
		// only a platform whose top lies below the player's centre counts
		if platform.BB().B < info.body.Position().Y {
			return true
		}
		sys.grounded[player] = true
		return true
	}
}

func (ps *PhysicsSystem) filterFor(kind component.EntityKind, worldBounds bool) cp.ShapeFilter {
	mask := ps.masks[kind]
	if worldBounds {
		mask |= boundsCategory
	}
	return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: categoryFor(kind), Mask: mask}
}

// Update syncs bodies, steps the space once and dispatches the handlers of
// every new contact, all within the calling frame.
func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || ps.space == nil || w == nil {
		return
	}
	if s, ok := sessionOf(w); ok && s.Over() {
		ps.Pause()
	}
	if ps.paused {
		return
	}

	ps.syncWorldBounds(w)
	ps.syncEntities(w)
	ps.pushVelocities(w)

	clear(ps.grounded)
	ps.space.Step(physicsStep)
	ps.clampToBounds()

	ps.pullState(w)
	ps.flushPlayerContacts(w)
	ps.dispatch(w)
}

func (ps *PhysicsSystem) dispatch(w *ecs.World) {
	pending := ps.pending
	ps.pending = nil
	for _, c := range pending {
		if ps.paused {
			return
		}
		if !ecs.IsAlive(w, c.a) || !ecs.IsAlive(w, c.b) {
			continue
		}
		c.handler(w, c.a, c.b)
		if s, ok := sessionOf(w); ok && s.Over() {
			ps.Pause()
		}
	}
}

func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	e, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	bounds, ok := ecs.Get(w, e, component.LevelBoundsComponent.Kind())
	if !ok || bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	if len(ps.boundsShapes) > 0 && bounds.Width == ps.boundsW && bounds.Height == ps.boundsH {
		return
	}
	for _, shape := range ps.boundsShapes {
		ps.space.RemoveShape(shape)
	}
	ps.boundsShapes = ps.boundsShapes[:0]

	worldW := bounds.Width
	worldH := bounds.Height
	// segments sit outside the level so their inner faces are the edges
	lo := -boundsThickness
	right := worldW + boundsThickness
	bottom := worldH + boundsThickness
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: lo, Y: lo}, b: cp.Vector{X: right, Y: lo}},         // top
		{a: cp.Vector{X: lo, Y: bottom}, b: cp.Vector{X: right, Y: bottom}}, // bottom
		{a: cp.Vector{X: lo, Y: lo}, b: cp.Vector{X: lo, Y: bottom}},        // left
		{a: cp.Vector{X: right, Y: lo}, b: cp.Vector{X: right, Y: bottom}},  // right
	}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, boundsThickness)
		shape.SetElasticity(1)
		shape.SetFriction(0)
		shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: boundsCategory, Mask: cp.ALL_CATEGORIES})
		ps.space.AddShape(shape)
		ps.boundsShapes = append(ps.boundsShapes, shape)
	}
	ps.boundsW = worldW
	ps.boundsH = worldH
}

// clampToBounds keeps bounded bodies inside the world. The segments alone
// push a body out once its centre crosses them, so any body past the edge is
// moved back and its outward velocity reflected by its bounce.
func (ps *PhysicsSystem) clampToBounds() {
	if ps.boundsW <= 0 || ps.boundsH <= 0 {
		return
	}
	for _, info := range ps.entities {
		if info.static || !info.worldBounds {
			continue
		}
		pos := info.body.Position()
		vel := info.body.Velocity()
		x, vx := clampAxis(pos.X, vel.X, info.halfW, ps.boundsW, info.elasticity)
		y, vy := clampAxis(pos.Y, vel.Y, info.halfH, ps.boundsH, info.elasticity)
		if x == pos.X && y == pos.Y && vx == vel.X && vy == vel.Y {
			continue
		}
		info.body.SetPosition(cp.Vector{X: x, Y: y})
		info.body.SetVelocity(vx, vy)
	}
}

// clampAxis limits a centre coordinate to [half, size-half].
func clampAxis(pos, vel, half, size, bounce float64) (float64, float64) {
	lo, hi := half, size-half
	if lo > hi {
		return size / 2, 0
	}
	switch {
	case pos < lo:
		pos = lo
		if vel < 0 {
			vel = -vel * bounce
		}
	case pos > hi:
		pos = hi
		if vel > 0 {
			vel = -vel * bounce
		}
	}
	return pos, vel
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	for e, info := range ps.entities {
		body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if ecs.IsAlive(w, e) && ok && !body.Disabled {
			continue
		}
		ps.removeBody(e, info)
		if ok {
			body.Body = nil
			body.Shape = nil
		}
	}

	ecs.ForEach3(w,
		component.PhysicsBodyComponent.Kind(),
		component.TransformComponent.Kind(),
		component.EntityTagComponent.Kind(),
		func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform, tag *component.EntityTag) {
			if body.Disabled {
				return
			}
			if info, ok := ps.entities[e]; ok {
				if body.Reposition && !info.static {
					info.body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
					if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
						info.body.SetVelocity(vel.X, vel.Y)
					}
				}
				body.Reposition = false
				return
			}

			info := ps.createBody(e, tag.Kind, body, t)
			if info == nil {
				return
			}
			if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok && !info.static {
				info.body.SetVelocity(vel.X, vel.Y)
			}
			body.Body = info.body
			body.Shape = info.shape
			body.Reposition = false
		},
	)
}

func (ps *PhysicsSystem) createBody(e ecs.Entity, kind component.EntityKind, bodyComp *component.PhysicsBody, t *component.Transform) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	radius := bodyComp.Radius
	if radius <= 0 && (width <= 0 || height <= 0) {
		return nil
	}

	info := &bodyInfo{
		kind:        kind,
		static:      bodyComp.Static,
		worldBounds: bodyComp.CollideWorldBounds,
		halfW:       width / 2,
		halfH:       height / 2,
		elasticity:  bodyComp.Elasticity,
	}
	if radius > 0 {
		info.halfW = radius
		info.halfH = radius
	}

	if bodyComp.Static {
		var shape *cp.Shape
		if radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, radius, cp.Vector{X: t.X, Y: t.Y})
		} else {
			bb := cp.BB{L: t.X - width/2, B: t.Y - height/2, R: t.X + width/2, T: t.Y + height/2}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		info.body = ps.space.StaticBody
		info.shape = shape
	} else {
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		// bodies never rotate
		body := cp.NewBody(mass, math.Inf(1))
		body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
		ps.space.AddBody(body)

		var shape *cp.Shape
		if radius > 0 {
			shape = cp.NewCircle(body, radius, cp.Vector{})
		} else {
			shape = cp.NewBox(body, width, height, 0)
		}
		info.body = body
		info.shape = shape
	}

	info.shape.SetFriction(bodyComp.Friction)
	info.shape.SetElasticity(bodyComp.Elasticity)
	info.shape.SetCollisionType(collisionTypeFor(kind))
	info.shape.SetFilter(ps.filterFor(kind, bodyComp.CollideWorldBounds))
	ps.space.AddShape(info.shape)
	ps.shapes[info.shape] = e

	if kind == component.EntityKindPlayer && !info.static && radius <= 0 {
		info.groundShape = ps.createGroundSensor(info.body, width, height)
		ps.space.AddShape(info.groundShape)
		ps.grounds[info.groundShape] = e
	}

	ps.entities[e] = info
	return info
}

// createGroundSensor adds a thin sensor strip under the body's feet.
func (ps *PhysicsSystem) createGroundSensor(body *cp.Body, width, height float64) *cp.Shape {
	bb := cp.BB{
		L: -width * 0.45,
		B: height / 2.0,
		R: width * 0.45,
		T: height/2.0 + groundSensorDepth,
	}
	shape := cp.NewBox2(body, bb, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeGroundSensor)
	shape.SetFilter(cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: categoryFor(component.EntityKindPlayer),
		Mask:       categoryFor(component.EntityKindPlatform),
	})
	return shape
}

func (ps *PhysicsSystem) removeBody(e ecs.Entity, info *bodyInfo) {
	if info == nil {
		delete(ps.entities, e)
		return
	}
	for _, shape := range []*cp.Shape{info.shape, info.groundShape} {
		if shape == nil {
			continue
		}
		ps.space.RemoveShape(shape)
		delete(ps.shapes, shape)
		delete(ps.grounds, shape)
	}
	if info.body != nil && !info.static {
		ps.space.RemoveBody(info.body)
	}
	delete(ps.entities, e)
	delete(ps.grounded, e)
}

func (ps *PhysicsSystem) pushVelocities(w *ecs.World) {
	ecs.ForEach(w, component.VelocityComponent.Kind(), func(e ecs.Entity, vel *component.Velocity) {
		info := ps.entities[e]
		if info == nil || info.static {
			return
		}
		info.body.SetVelocity(vel.X, vel.Y)
	})
}

func (ps *PhysicsSystem) pullState(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		pos := info.body.Position()
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.X = pos.X
			t.Y = pos.Y
		}
		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			v := info.body.Velocity()
			vel.X = v.X
			vel.Y = v.Y
		}
	}
}

func (ps *PhysicsSystem) flushPlayerContacts(w *ecs.World) {
	ecs.ForEach(w, component.PlayerCollisionComponent.Kind(), func(e ecs.Entity, pc *component.PlayerCollision) {
		pc.Grounded = ps.grounded[e]
	})
}
