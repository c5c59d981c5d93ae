// internal/cards/record.go
//
// Text record codec for decks.
//
// Format: one card per line, "<SuitName> <RankNameOrNumber>", e.g.
//
//	Hearts Ace
//	Spades 10
//	Clubs Queen
//
// Names are case-insensitive. Blank lines and lines starting with '#' are
// skipped, the same way the embedded asset lists are read.

package cards

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDeck reads a deck record and validates it.
// Any unreadable line, wrong count or duplicate yields ErrMalformedDeck.
func ParseDeck(r io.Reader) (Deck, error) {
	var (
		cs   []Card
		line int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		c, err := ParseCard(s)
		if err != nil {
			return Deck{}, fmt.Errorf("line %d: %w", line, err)
		}
		cs = append(cs, c)
	}
	if err := sc.Err(); err != nil {
		return Deck{}, fmt.Errorf("read deck: %w", err)
	}
	return NewDeck(cs)
}

// ParseCard parses a single "<SuitName> <RankNameOrNumber>" token pair.
func ParseCard(s string) (Card, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Card{}, fmt.Errorf("%w: %q is not \"<suit> <rank>\"", ErrMalformedDeck, s)
	}
	suit, ok := parseSuit(fields[0])
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit %q", ErrMalformedDeck, fields[0])
	}
	rank, ok := parseRank(fields[1])
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank %q", ErrMalformedDeck, fields[1])
	}
	return New(suit, rank), nil
}

func parseSuit(s string) (Suit, bool) {
	for _, suit := range Suits {
		if strings.EqualFold(s, suit.String()) {
			return suit, true
		}
	}
	return 0, false
}

func parseRank(s string) (Rank, bool) {
	switch strings.ToLower(s) {
	case "ace":
		return Ace, true
	case "jack":
		return Jack, true
	case "queen":
		return Queen, true
	case "king":
		return King, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < int(Ace) || n > int(King) {
		return 0, false
	}
	return Rank(n), true
}

// WriteTo writes d in record form, one card per line, with a single Write
// to w. The returned count is what w accepted.
func (d Deck) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for _, c := range d {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
