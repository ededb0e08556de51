package component

// EntityKind tags an entity for collision pair dispatch.
type EntityKind uint8

const (
	EntityKindNone EntityKind = iota
	EntityKindPlayer
	EntityKindPlatform
	EntityKindStar
	EntityKindBomb
)

func (k EntityKind) String() string {
	switch k {
	case EntityKindPlayer:
		return "player"
	case EntityKindPlatform:
		return "platform"
	case EntityKindStar:
		return "star"
	case EntityKindBomb:
		return "bomb"
	default:
		return "none"
	}
}

type EntityTag struct {
	Kind EntityKind
}

var EntityTagComponent = NewComponent[EntityTag]()
