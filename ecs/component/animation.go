package component

// AnimationID names a player animation clip.
type AnimationID uint8

const (
	AnimationIdle AnimationID = iota
	AnimationMovingLeft
	AnimationMovingRight
)

func (id AnimationID) String() string {
	switch id {
	case AnimationMovingLeft:
		return "left"
	case AnimationMovingRight:
		return "right"
	default:
		return "idle"
	}
}

// RepeatForever loops a clip until another one is played.
const RepeatForever = -1

type AnimationDef struct {
	Frames []int // sprite sheet frame indices, in play order
	FPS    float64
	// Repeat is the number of extra passes after the first one:
	// RepeatForever loops, 0 plays once.
	Repeat int
}

type Animation struct {
	Defs    map[AnimationID]AnimationDef
	Current AnimationID
	// Frame indexes Defs[Current].Frames.
	Frame   int
	Timer   int
	Loops   int
	Playing bool
}

// Play switches to clip id from its first frame. With ignoreIfPlaying a
// request for the clip that is already running is dropped.
func (a *Animation) Play(id AnimationID, ignoreIfPlaying bool) {
	if a == nil {
		return
	}
	if ignoreIfPlaying && a.Playing && a.Current == id {
		return
	}
	a.Current = id
	a.Frame = 0
	a.Timer = 0
	a.Loops = 0
	a.Playing = true
}

// SheetFrame returns the sprite sheet frame for the current state.
func (a *Animation) SheetFrame() (int, bool) {
	if a == nil {
		return 0, false
	}
	def, ok := a.Defs[a.Current]
	if !ok || len(def.Frames) == 0 {
		return 0, false
	}
	idx := a.Frame
	if idx < 0 || idx >= len(def.Frames) {
		idx = len(def.Frames) - 1
	}
	return def.Frames[idx], true
}

var AnimationComponent = NewComponent[Animation]()
