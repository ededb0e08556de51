package component

type Bomb struct {
	// Wave is the number of cleared waves when the bomb was spawned.
	Wave int
}

var BombComponent = NewComponent[Bomb]()
