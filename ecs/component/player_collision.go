package component

// PlayerCollision stores per-player contact state derived from the last
// physics step.
type PlayerCollision struct {
	// Grounded is true while the player rests on a platform.
	Grounded bool
}

var PlayerCollisionComponent = NewComponent[PlayerCollision]()
