package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// A body with Radius > 0 is a circle, otherwise a Width x Height box.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape

	Width      float64
	Height     float64
	Radius     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	Static     bool

	// CollideWorldBounds keeps the body inside the level bounds.
	CollideWorldBounds bool
	// Disabled bodies are removed from the space until re-enabled. They are
	// recreated at the current Transform.
	Disabled bool
	// Reposition moves a live body to the current Transform on the next step.
	Reposition bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
