package component

// Score is derived from the number of collected stars.
type Score struct {
	Collected int
	PerStar   int
	// Waves counts how many times the whole star pool was cleared.
	Waves  int
	Prefix string
}

func (s *Score) Value() int {
	if s == nil {
		return 0
	}
	return s.Collected * s.PerStar
}

var ScoreComponent = NewComponent[Score]()
