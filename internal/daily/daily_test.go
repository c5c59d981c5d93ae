package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/ksolitaire/internal/cards"
)

func TestDateKeyIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	at := time.Date(2026, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-03-01", DateKey(at))
}

func TestParseDateKey(t *testing.T) {
	d, err := ParseDateKey("2026-10-19")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", DateKey(d))

	_, err = ParseDateKey("19/10/2026")
	assert.Error(t, err)
}

func TestDeckOfTheDay(t *testing.T) {
	day := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	later := day.Add(12 * time.Hour)

	assert.Equal(t, Seed(day, "salt"), Seed(later, "salt"), "same UTC date, same seed")
	assert.NotEqual(t, Seed(day, "salt"), Seed(day, "pepper"))
	assert.NotEqual(t, Seed(day, "salt"), Seed(day.AddDate(0, 0, 1), "salt"))

	d := Deck(day, "salt")
	assert.Equal(t, d, Deck(later, "salt"))
	_, err := cards.NewDeck(d.Cards())
	require.NoError(t, err)
}
