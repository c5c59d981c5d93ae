package cards

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuitColor(t *testing.T) {
	tests := []struct {
		suit Suit
		want Color
	}{
		{Hearts, Red},
		{Diamonds, Red},
		{Spades, Black},
		{Clubs, Black},
	}
	for _, tt := range tests {
		t.Run(tt.suit.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.suit.Color())
		})
	}
}

func TestCardLabels(t *testing.T) {
	assert.Equal(t, "Hearts Ace", New(Hearts, Ace).String())
	assert.Equal(t, "Spades 10", New(Spades, Ten).String())
	assert.Equal(t, "Q♣", New(Clubs, Queen).Short())
	assert.True(t, Card{}.IsZero())
	assert.False(t, Card{}.Valid())
}

func TestOrderedDeck(t *testing.T) {
	d := Ordered()
	assert.Equal(t, New(Hearts, Ace), d[0])
	assert.Equal(t, New(Diamonds, Ace), d[13])
	assert.Equal(t, New(Clubs, King), d[51])

	_, err := NewDeck(d.Cards())
	require.NoError(t, err)
}

func TestSeededDeckIsDeterministic(t *testing.T) {
	a, b := Seeded(42), Seeded(42)
	assert.Equal(t, a, b)
	assert.NotEqual(t, Seeded(43), a)

	_, err := NewDeck(a.Cards())
	require.NoError(t, err, "shuffle must stay a permutation")
}

func TestNewDeckRejects(t *testing.T) {
	full := Ordered().Cards()
	dup := Ordered().Cards()
	dup[51] = dup[0]
	bad := Ordered().Cards()
	bad[3] = Card{Suit: Spades, Rank: 14}

	tests := []struct {
		name  string
		cards []Card
	}{
		{"too few", full[:51]},
		{"too many", append(Ordered().Cards(), New(Hearts, Ace))},
		{"duplicate", dup},
		{"bad rank", bad},
		{"empty", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDeck(tt.cards)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedDeck), "got %v", err)
		})
	}
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in      string
		want    Card
		wantErr bool
	}{
		{"Hearts Ace", New(Hearts, Ace), false},
		{"spades 10", New(Spades, Ten), false},
		{"  CLUBS   queen ", New(Clubs, Queen), false},
		{"Diamonds 13", New(Diamonds, King), false},
		{"Diamonds 1", New(Diamonds, Ace), false},
		{"Stars Ace", Card{}, true},
		{"Hearts 0", Card{}, true},
		{"Hearts 14", Card{}, true},
		{"Hearts 269", Card{}, true},
		{"Hearts", Card{}, true},
		{"Hearts Ace extra", Card{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCard(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedDeck)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeckRecordRoundTrip(t *testing.T) {
	d := Seeded(7)
	var buf bytes.Buffer
	_, err := d.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, DeckSize, strings.Count(buf.String(), "\n"))

	got, err := ParseDeck(&buf)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

// shortWriter accepts limit bytes and then fails.
type shortWriter struct{ limit int }

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		n := w.limit
		w.limit = 0
		return n, errors.New("disk full")
	}
	w.limit -= len(p)
	return len(p), nil
}

func TestDeckWriteToReportsAcceptedBytes(t *testing.T) {
	var buf bytes.Buffer
	full, err := Ordered().WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), full)

	n, err := Ordered().WriteTo(&shortWriter{limit: 10})
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, int64(10), n)
}

func TestParseDeckSkipsCommentsAndBlanks(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("# a comment\n\n")
	_, err := Ordered().WriteTo(&buf)
	require.NoError(t, err)
	buf.WriteString("\n# trailing\n")

	got, err := ParseDeck(&buf)
	require.NoError(t, err)
	assert.Equal(t, Ordered(), got)
}

func TestParseDeckMalformed(t *testing.T) {
	var full bytes.Buffer
	_, _ = Ordered().WriteTo(&full)
	lines := strings.Split(strings.TrimSpace(full.String()), "\n")

	tests := []struct {
		name string
		text string
	}{
		{"short", strings.Join(lines[:51], "\n")},
		{"duplicate", strings.Join(append(lines[:51], lines[0]), "\n")},
		{"bad token", strings.Join(append(lines[:51], "Hearts Joker"), "\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDeck(strings.NewReader(tt.text))
			assert.ErrorIs(t, err, ErrMalformedDeck)
		})
	}
}
