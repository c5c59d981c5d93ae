// internal/cards/card.go
//
// Core card model for the solitaire engine.
// Defines:
//   - Suit: one of the four French suits, with a derived Color.
//   - Rank: Ace (1) through King (13).
//   - Card: an immutable (suit, rank) value.
//
// The zero Card is "no card" and is used by the board to mark empty slots;
// it never appears in a Deck.

package cards

import "strconv"

// Suit identifies one of the four suits.
type Suit uint8

const (
	Hearts Suit = iota
	Spades
	Clubs
	Diamonds
)

// Suits lists every suit in declaration order.
var Suits = [4]Suit{Hearts, Spades, Clubs, Diamonds}

// Color is the colour of a suit.
type Color uint8

const (
	Red Color = iota
	Black
)

// Color reports Red for Hearts and Diamonds, Black otherwise.
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool { return s <= Diamonds }

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	}
	return "Suit(" + strconv.Itoa(int(s)) + ")"
}

// Symbol returns the single-rune glyph for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	}
	return "?"
}

// Rank is a card value from Ace (1) to King (13).
type Rank uint8

const (
	Ace   Rank = 1
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Valid reports whether r lies in Ace..King.
func (r Rank) Valid() bool { return r >= Ace && r <= King }

func (r Rank) String() string {
	switch r {
	case Ace:
		return "Ace"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	return strconv.Itoa(int(r))
}

// Short returns the one or two character label used on a rendered board.
func (r Rank) Short() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return strconv.Itoa(int(r))
}

// Card is a single playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

// New builds a card from its suit and rank.
func New(s Suit, r Rank) Card { return Card{Suit: s, Rank: r} }

// IsZero reports whether c is the empty-slot marker.
func (c Card) IsZero() bool { return c == Card{} }

// Valid reports whether c names a real card.
func (c Card) Valid() bool { return c.Suit.Valid() && c.Rank.Valid() }

// Color is shorthand for c.Suit.Color().
func (c Card) Color() Color { return c.Suit.Color() }

// String renders the card in deck-record form, e.g. "Hearts Ace".
func (c Card) String() string { return c.Suit.String() + " " + c.Rank.String() }

// Short renders the compact board form, e.g. "A♥" or "10♠".
func (c Card) Short() string { return c.Rank.Short() + c.Suit.Symbol() }

// index maps a valid card to 0..51.
func (c Card) index() int { return int(c.Suit)*13 + int(c.Rank) - 1 }
