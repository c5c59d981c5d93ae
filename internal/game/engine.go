// internal/game/engine.go
//
// State transition function for K+ solitaire.
// Responsibilities:
//   - Apply an Action to a State, producing the next State.
//   - Validate moves with a single ordered guard sequence (check), shared with
//     the move enumerator so the two can never disagree.
//   - Transfer cards between piles, including whole face-up tableau runs.
//
// Apply is total: an illegal action returns the input State unchanged. There
// is no error path; interactive callers revert a bad drop by ignoring the
// result, and search callers probe legality with Legal.

package game

import "github.com/robalobadob/ksolitaire/internal/cards"

// Apply returns the State that results from performing a.
// Illegal actions return s unchanged.
func (s State) Apply(a Action) State {
	switch a.Kind {
	case ActionDraw:
		return s.draw()
	case ActionMove:
		if _, ok := s.check(a.From, a.To); !ok {
			return s
		}
		return s.transfer(a.From, a.To)
	}
	return s
}

// Legal reports whether a would change s.
// Draw is always legal, even when it leaves an empty talon unchanged.
func (s State) Legal(a Action) bool {
	switch a.Kind {
	case ActionDraw:
		return true
	case ActionMove:
		_, ok := s.check(a.From, a.To)
		return ok
	}
	return false
}

// draw exposes the next talon card. Once the last stored card has been
// exposed the cursor wraps to -1, ready for the next pass.
func (s State) draw() State {
	next := s.talon.cursor + 1
	if next >= s.talon.size {
		next = -1
	}
	s.talon.cursor = next
	return s
}

// check runs the move guards in order and returns the card being moved.
func (s State) check(from, to Coord) (cards.Card, bool) {
	// 1-3: distinct coordinates, never onto the talon, never within one pile.
	if from == to || to.Loc.IsTalon() || from.Loc == to.Loc {
		return cards.Card{}, false
	}

	// 4: a source card must exist; a foundation gives up only its top card.
	if !validPile(from.Loc) {
		return cards.Card{}, false
	}
	card, ok := s.Read(from)
	if !ok {
		return cards.Card{}, false
	}
	if from.Loc.IsFoundation() && from.Slot != s.foundation[from.Loc.Pile].size-1 {
		return cards.Card{}, false
	}

	// 5: the destination must be the free slot just above the pile.
	if !validPile(to.Loc) || to.Slot != s.Size(to.Loc) {
		return cards.Card{}, false
	}
	if _, occupied := s.Read(to); occupied {
		return cards.Card{}, false
	}

	// 6: face-down tableau cards never move.
	run := 1
	if from.Loc.IsTableau() {
		p := s.tableau[from.Loc.Pile]
		if from.Slot < p.boundary {
			return cards.Card{}, false
		}
		run = p.size - from.Slot
	}

	// 7-8: order against the anchor card below the destination slot.
	anchor, hasAnchor := cards.Card{}, false
	if to.Slot > 0 {
		anchor, hasAnchor = s.Read(At(to.Loc, to.Slot-1))
	}
	switch to.Loc.Area {
	case AreaFoundation:
		if run != 1 {
			return cards.Card{}, false
		}
		if hasAnchor {
			if anchor.Suit != card.Suit || anchor.Rank+1 != card.Rank {
				return cards.Card{}, false
			}
		} else if card.Rank != cards.Ace {
			return cards.Card{}, false
		}
	case AreaTableau:
		if to.Slot+run > TableauCap {
			return cards.Card{}, false
		}
		if hasAnchor {
			if anchor.Color() == card.Color() || anchor.Rank != card.Rank+1 {
				return cards.Card{}, false
			}
		} else if card.Rank != cards.King {
			return cards.Card{}, false
		}
	default:
		return cards.Card{}, false
	}
	return card, true
}

// transfer moves the card or run at from onto to. The move must already have
// passed check. s is a copy, so it is safe to modify in place.
func (s State) transfer(from, to Coord) State {
	var (
		moved [TableauCap]cards.Card
		n     int
	)

	switch from.Loc.Area {
	case AreaFoundation:
		p := &s.foundation[from.Loc.Pile]
		p.size--
		moved[0], p.cards[p.size] = p.cards[p.size], cards.Card{}
		n = 1
	case AreaTableau:
		p := &s.tableau[from.Loc.Pile]
		n = copy(moved[:], p.cards[from.Slot:p.size])
		clear(p.cards[from.Slot:p.size])
		p.size = from.Slot
		if from.Slot == p.boundary && p.boundary > 0 {
			p.boundary--
		}
	case AreaTalon:
		t := &s.talon
		moved[0] = t.cards[from.Slot]
		copy(t.cards[from.Slot:], t.cards[from.Slot+1:t.size])
		t.size--
		t.cards[t.size] = cards.Card{}
		t.cursor--
		n = 1
	}

	switch to.Loc.Area {
	case AreaFoundation:
		p := &s.foundation[to.Loc.Pile]
		p.cards[to.Slot] = moved[0]
		p.size++
	case AreaTableau:
		p := &s.tableau[to.Loc.Pile]
		copy(p.cards[to.Slot:], moved[:n])
		p.size += n
	}
	return s
}

func validPile(l Location) bool {
	switch l.Area {
	case AreaFoundation:
		return l.Pile >= 0 && l.Pile < FoundationPiles
	case AreaTableau:
		return l.Pile >= 0 && l.Pile < TableauPiles
	case AreaTalon:
		return l.Pile == 0
	}
	return false
}
