package decks

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/ksolitaire/internal/cards"
	"github.com/robalobadob/ksolitaire/internal/daily"
)

func writeDeck(t *testing.T, d cards.Deck) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := d.WriteTo(&buf)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "game.deck")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	want := cards.Seeded(3)
	path := writeDeck(t, want)

	got, desc, err := Load(Source{File: path, Builtin: "ordered"})
	require.NoError(t, err)
	assert.Equal(t, want, got, "file wins over builtin")
	assert.Equal(t, "file "+path, desc)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.deck")
	require.NoError(t, os.WriteFile(path, []byte("Hearts Ace\nHearts Ace\n"), 0o600))

	_, _, err := Load(Source{File: path})
	assert.ErrorIs(t, err, cards.ErrMalformedDeck)
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(Source{File: filepath.Join(t.TempDir(), "nope.deck")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBuiltin(t *testing.T) {
	got, desc, err := Load(Source{Builtin: "ordered"})
	require.NoError(t, err)
	assert.Equal(t, cards.Ordered(), got)
	assert.Equal(t, "builtin ordered", desc)

	sample, _, err := Load(Source{Builtin: "Sample"})
	require.NoError(t, err)
	assert.NotEqual(t, cards.Ordered(), sample)

	_, _, err = Load(Source{Builtin: "missing"})
	assert.ErrorContains(t, err, "ordered, sample")
}

func TestLoadDaily(t *testing.T) {
	day := time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

	got, desc, err := Load(Source{Daily: "2026-10-19", Salt: "s"})
	require.NoError(t, err)
	assert.Equal(t, daily.Deck(day, "s"), got)
	assert.Equal(t, "daily 2026-10-19", desc)

	today, _, err := Load(Source{Daily: "today", Salt: "s", Now: func() time.Time { return day }})
	require.NoError(t, err)
	assert.Equal(t, got, today)

	_, _, err = Load(Source{Daily: "tomorrow"})
	assert.Error(t, err)
}

func TestLoadSeedAndFallback(t *testing.T) {
	seed := uint64(99)
	got, desc, err := Load(Source{Seed: &seed})
	require.NoError(t, err)
	assert.Equal(t, cards.Seeded(99), got)
	assert.Equal(t, "seed 99", desc)

	path := writeDeck(t, cards.Seeded(5))
	got, _, err = Load(Source{Fallback: path})
	require.NoError(t, err)
	assert.Equal(t, cards.Seeded(5), got)

	got, _, err = Load(Source{Seed: &seed, Fallback: path})
	require.NoError(t, err)
	assert.Equal(t, cards.Seeded(99), got, "explicit seed wins over the environment file")
}

func TestLoadRandom(t *testing.T) {
	got, desc, err := Load(Source{})
	require.NoError(t, err)
	assert.Equal(t, "random", desc)
	_, err = cards.NewDeck(got.Cards())
	assert.NoError(t, err)
}
