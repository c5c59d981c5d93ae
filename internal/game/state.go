// internal/game/state.go
//
// Board state for a single K+ solitaire deal.
//
// State is a plain value built from fixed-size arrays: assigning it copies the
// whole board, and two States compare equal with == exactly when every pile,
// boundary and the talon cursor match. Emptied slots are always reset to the
// zero Card so that equality is never disturbed by stale storage.
//
// Invariants held by every State produced by Deal or Apply:
//   - each of the 52 cards sits in exactly one slot;
//   - piles are contiguous from slot 0;
//   - 0 <= boundary <= size for every tableau pile;
//   - a foundation pile is an ascending same-suit run from the Ace;
//   - -1 <= cursor < talon size.

package game

import "github.com/robalobadob/ksolitaire/internal/cards"

type tableauPile struct {
	cards    [TableauCap]cards.Card
	size     int
	boundary int // slots below this index are face down
}

type foundationPile struct {
	cards [FoundationCap]cards.Card
	size  int
}

type talon struct {
	cards  [TalonCap]cards.Card
	size   int
	cursor int // -1: nothing exposed
}

// State is the whole board.
type State struct {
	tableau    [TableauPiles]tableauPile
	foundation [FoundationPiles]foundationPile
	talon      talon
}

// Deal lays out a deck: tableau pile i receives i+1 cards from the front of
// the deck with only the last one face up, and the remaining 24 cards become
// the talon with nothing exposed.
func Deal(d cards.Deck) State {
	var s State
	next := 0
	for i := range s.tableau {
		p := &s.tableau[i]
		for j := 0; j <= i; j++ {
			p.cards[j] = d[next]
			next++
		}
		p.size = i + 1
		p.boundary = i
	}
	for i := 0; next < len(d); i++ {
		s.talon.cards[i] = d[next]
		next++
	}
	s.talon.size = len(d) - 28
	s.talon.cursor = -1
	return s
}

// Tableau returns a copy of tableau pile i, bottom card first.
func (s State) Tableau(i int) []cards.Card {
	if i < 0 || i >= TableauPiles {
		return nil
	}
	p := s.tableau[i]
	return append([]cards.Card(nil), p.cards[:p.size]...)
}

// Boundary returns the face-up boundary of tableau pile i: every card at or
// above this index is visible and movable.
func (s State) Boundary(i int) int {
	if i < 0 || i >= TableauPiles {
		return 0
	}
	return s.tableau[i].boundary
}

// Foundation returns a copy of foundation pile i, Ace first.
func (s State) Foundation(i int) []cards.Card {
	if i < 0 || i >= FoundationPiles {
		return nil
	}
	p := s.foundation[i]
	return append([]cards.Card(nil), p.cards[:p.size]...)
}

// Talon returns a copy of every card still in the talon, in storage order.
func (s State) Talon() []cards.Card {
	return append([]cards.Card(nil), s.talon.cards[:s.talon.size]...)
}

// Cursor returns the index of the exposed talon card, or -1.
func (s State) Cursor() int { return s.talon.cursor }

// Exposed returns the exposed talon card, if any.
func (s State) Exposed() (cards.Card, bool) {
	if s.talon.cursor < 0 {
		return cards.Card{}, false
	}
	return s.talon.cards[s.talon.cursor], true
}

// Size returns the number of cards in the pile at loc.
func (s State) Size(loc Location) int {
	switch {
	case loc.IsTableau() && loc.Pile >= 0 && loc.Pile < TableauPiles:
		return s.tableau[loc.Pile].size
	case loc.IsFoundation() && loc.Pile >= 0 && loc.Pile < FoundationPiles:
		return s.foundation[loc.Pile].size
	case loc.IsTalon() && loc.Pile == 0:
		return s.talon.size
	}
	return 0
}

// Read returns the card stored at c. Tableau reads ignore the face-up
// boundary. Talon reads only succeed for the exposed slot. Coordinates off the
// board read as empty.
func (s State) Read(c Coord) (cards.Card, bool) {
	if c.Slot < 0 {
		return cards.Card{}, false
	}
	var card cards.Card
	switch c.Loc.Area {
	case AreaFoundation:
		if c.Loc.Pile < 0 || c.Loc.Pile >= FoundationPiles || c.Slot >= FoundationCap {
			return cards.Card{}, false
		}
		card = s.foundation[c.Loc.Pile].cards[c.Slot]
	case AreaTableau:
		if c.Loc.Pile < 0 || c.Loc.Pile >= TableauPiles || c.Slot >= TableauCap {
			return cards.Card{}, false
		}
		card = s.tableau[c.Loc.Pile].cards[c.Slot]
	case AreaTalon:
		if c.Loc.Pile != 0 || c.Slot != s.talon.cursor {
			return cards.Card{}, false
		}
		card = s.talon.cards[c.Slot]
	default:
		return cards.Card{}, false
	}
	return card, !card.IsZero()
}

// Won reports whether every foundation pile is complete.
func (s State) Won() bool {
	for _, p := range s.foundation {
		if p.size != FoundationCap {
			return false
		}
	}
	return true
}

// AllCards returns every card on the board: tableau, then foundation, then
// talon.
func (s State) AllCards() []cards.Card {
	out := make([]cards.Card, 0, cards.DeckSize)
	for _, p := range s.tableau {
		out = append(out, p.cards[:p.size]...)
	}
	for _, p := range s.foundation {
		out = append(out, p.cards[:p.size]...)
	}
	return append(out, s.talon.cards[:s.talon.size]...)
}
