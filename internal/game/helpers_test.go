package game

import "github.com/robalobadob/ksolitaire/internal/cards"

// Board builders for hand-made positions. They do not keep the 52-card
// conservation invariant; tests that need it start from Deal.

func card(s cards.Suit, r cards.Rank) cards.Card { return cards.New(s, r) }

func emptyBoard() State {
	var s State
	s.talon.cursor = -1
	return s
}

func withTableau(s State, i, boundary int, cs ...cards.Card) State {
	var p tableauPile
	copy(p.cards[:], cs)
	p.size = len(cs)
	p.boundary = boundary
	s.tableau[i] = p
	return s
}

func withFoundation(s State, i int, cs ...cards.Card) State {
	var p foundationPile
	copy(p.cards[:], cs)
	p.size = len(cs)
	s.foundation[i] = p
	return s
}

func withTalon(s State, cursor int, cs ...cards.Card) State {
	var t talon
	copy(t.cards[:], cs)
	t.size = len(cs)
	t.cursor = cursor
	s.talon = t
	return s
}

func suitRun(s cards.Suit, upTo cards.Rank) []cards.Card {
	out := make([]cards.Card, 0, upTo)
	for r := cards.Ace; r <= upTo; r++ {
		out = append(out, card(s, r))
	}
	return out
}

// allCoords lists every addressable slot plus a ring of off-board ones.
func allCoords() []Coord {
	var out []Coord
	for i := -1; i <= TableauPiles; i++ {
		for slot := -1; slot <= TableauCap; slot++ {
			out = append(out, At(Tableau(i), slot))
		}
	}
	for i := -1; i <= FoundationPiles; i++ {
		for slot := -1; slot <= FoundationCap; slot++ {
			out = append(out, At(Foundation(i), slot))
		}
	}
	for _, pile := range []int{-1, 0, 3} {
		for slot := -1; slot <= TalonCap; slot++ {
			out = append(out, At(Location{Area: AreaTalon, Pile: pile}, slot))
		}
	}
	return out
}
