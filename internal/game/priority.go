// internal/game/priority.go
//
// Move ordering heuristic, after the action-ordering scheme of
// "Searching Solitaire in Real Time" (Bjarnason, Fern, Tadepalli), section 4.4.

package game

import (
	"cmp"
	"slices"
)

// Priority ranks a for search ordering; higher values should be explored
// first. It is total over actions and does not check legality.
//
//	Draw                                       0
//	to foundation, revealing a hidden card     5
//	to foundation, otherwise                   4
//	tableau to tableau, revealing              3
//	talon to tableau                           2
//	foundation to tableau                      1
//	tableau to tableau, revealing nothing      0
//
// A move reveals when its run starts at the pile's face-up boundary and at
// least one face-down card lies beneath it. A run lifted from a pile with no
// hidden cards (boundary 0) reveals nothing, even though its source index
// equals the boundary.
func (s State) Priority(a Action) int {
	if a.IsDraw() {
		return 0
	}
	from, to := a.From.Loc, a.To.Loc
	switch {
	case to.IsFoundation():
		if s.reveals(a.From) {
			return 5
		}
		return 4
	case to.IsTableau() && from.IsTableau():
		if s.reveals(a.From) {
			return 3
		}
		return 0
	case to.IsTableau() && from.IsTalon():
		return 2
	case to.IsTableau() && from.IsFoundation():
		return 1
	}
	return 0
}

// reveals reports whether lifting the run at c turns a face-down card up.
func (s State) reveals(c Coord) bool {
	if !c.Loc.IsTableau() || !validPile(c.Loc) {
		return false
	}
	b := s.tableau[c.Loc.Pile].boundary
	return b > 0 && c.Slot == b
}

// SortByPriority orders actions from highest to lowest priority, keeping the
// enumeration order among equals.
func (s State) SortByPriority(actions []Action) {
	slices.SortStableFunc(actions, func(a, b Action) int {
		return cmp.Compare(s.Priority(b), s.Priority(a))
	})
}
