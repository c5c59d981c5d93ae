// internal/game/moves.go
//
// Move enumeration for search drivers.
//
// Moves lists every action Apply would accept from a given State. Candidate
// pairs are filtered through the same check used by Apply, so the enumerator
// cannot drift from the rules.

package game

// MoveBufferHint is a sizing guideline for callers that keep moves in a
// fixed-capacity buffer. No reachable deal comes close to it, but it is not
// enforced: Moves returns however many legal actions exist.
const MoveBufferHint = 256

// Moves returns Draw followed by every legal Move from s, each exactly once.
// Order: sources are tableau piles left to right (lowest movable slot first),
// then the exposed talon card, then foundation tops; for each source,
// tableau destinations come before foundation destinations.
func (s State) Moves() []Action {
	return s.AppendMoves(make([]Action, 0, 32))
}

// AppendMoves appends the actions Moves would return to dst.
func (s State) AppendMoves(dst []Action) []Action {
	dst = append(dst, Draw())

	var dests [TableauPiles + FoundationPiles]Coord
	nd := 0
	for i := range s.tableau {
		dests[nd] = At(Tableau(i), s.tableau[i].size)
		nd++
	}
	for i := range s.foundation {
		dests[nd] = At(Foundation(i), s.foundation[i].size)
		nd++
	}

	try := func(from Coord) {
		for _, to := range dests[:nd] {
			if _, ok := s.check(from, to); ok {
				dst = append(dst, Move(from, to))
			}
		}
	}

	for i, p := range s.tableau {
		for slot := p.boundary; slot < p.size; slot++ {
			try(At(Tableau(i), slot))
		}
	}
	if s.talon.cursor >= 0 {
		try(At(Talon(), s.talon.cursor))
	}
	for i, p := range s.foundation {
		if p.size > 0 {
			try(At(Foundation(i), p.size-1))
		}
	}
	return dst
}
