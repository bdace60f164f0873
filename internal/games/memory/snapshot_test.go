package memory

// Snapshot captures the board for assertions.
type Snapshot struct {
	State    State
	Matches  int
	Pairs    int
	Keys     []int
	Revealed []bool
	Matched  []bool
}

// Snapshot returns the current board state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:    g.state,
		Matches:  g.matches,
		Pairs:    g.cfg.Pairs(),
		Keys:     make([]int, len(g.cards)),
		Revealed: make([]bool, len(g.cards)),
		Matched:  make([]bool, len(g.cards)),
	}
	for i, c := range g.cards {
		s.Keys[i] = c.Key
		s.Revealed[i] = c.Revealed
		s.Matched[i] = c.Matched
	}
	return s
}
