package component

// Velocity is mirrored into the physics body before each step and read back
// after it, so controllers never touch Chipmunk directly.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
