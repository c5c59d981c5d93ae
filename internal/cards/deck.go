// internal/cards/deck.go
//
// Deck construction and validation.
//
// A Deck is exactly 52 cards with one card per (suit, rank) pair. It is
// validated once at construction; everything downstream relies on that
// contract and never re-checks it.

package cards

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// ErrMalformedDeck is returned (wrapped) when a card sequence is not a
// permutation of the 52-card set.
var ErrMalformedDeck = errors.New("malformed deck")

// Deck is an ordered permutation of the 52-card set.
type Deck [DeckSize]Card

// NewDeck validates cs and copies it into a Deck.
func NewDeck(cs []Card) (Deck, error) {
	var d Deck
	if len(cs) != DeckSize {
		return d, fmt.Errorf("%w: got %d cards, want %d", ErrMalformedDeck, len(cs), DeckSize)
	}
	var seen [DeckSize]bool
	for i, c := range cs {
		if !c.Valid() {
			return d, fmt.Errorf("%w: card %d is not a playing card", ErrMalformedDeck, i+1)
		}
		if seen[c.index()] {
			return d, fmt.Errorf("%w: duplicate %s", ErrMalformedDeck, c)
		}
		seen[c.index()] = true
		d[i] = c
	}
	return d, nil
}

// Ordered returns the unshuffled deck: Hearts, Diamonds, Spades then Clubs,
// each from Ace to King.
func Ordered() Deck {
	var d Deck
	i := 0
	for _, s := range [4]Suit{Hearts, Diamonds, Spades, Clubs} {
		for r := Ace; r <= King; r++ {
			d[i] = New(s, r)
			i++
		}
	}
	return d
}

// Shuffled returns a uniformly shuffled deck drawn from rng.
// A nil rng uses the package-level generator.
func Shuffled(rng *rand.Rand) Deck {
	d := Ordered()
	swap := func(i, j int) { d[i], d[j] = d[j], d[i] }
	if rng == nil {
		rand.Shuffle(len(d), swap)
	} else {
		rng.Shuffle(len(d), swap)
	}
	return d
}

// Seeded returns the deck produced by a PCG generator seeded with seed.
// The same seed always yields the same deck.
func Seeded(seed uint64) Deck {
	return Shuffled(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Cards returns the deck as a slice.
func (d Deck) Cards() []Card {
	out := make([]Card, len(d))
	copy(out, d[:])
	return out
}
