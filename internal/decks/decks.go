// internal/decks/decks.go
//
// Chooses where a game's deck comes from.
//
// Sources, in order of precedence:
//  1. File:     a deck record on disk.
//  2. Builtin:  a deck record embedded in the binary (see assets).
//  3. Daily:    the deal of the day for a YYYY-MM-DD date, or "today".
//  4. Seed:     a deterministic shuffle.
//  5. Fallback: a deck record named by SOLITAIRE_DECK_FILE.
//  6. otherwise a fresh random shuffle.
//
// Every record is validated by cards.ParseDeck, so a bad file surfaces as
// cards.ErrMalformedDeck before any board exists.

package decks

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/ksolitaire/assets"
	"github.com/robalobadob/ksolitaire/internal/cards"
	"github.com/robalobadob/ksolitaire/internal/daily"
)

// Source describes a requested deck. The zero Source means a random shuffle.
type Source struct {
	File     string
	Builtin  string
	Daily    string
	Seed     *uint64
	Fallback string
	Salt     string           // daily salt
	Now      func() time.Time // clock for Daily "today"; time.Now when nil
}

// Load resolves src into a validated deck and a short description of where
// it came from (for logs and headers).
func Load(src Source) (cards.Deck, string, error) {
	switch {
	case src.File != "":
		return fromFile(src.File)
	case src.Builtin != "":
		return fromBuiltin(src.Builtin)
	case src.Daily != "":
		return fromDaily(src)
	case src.Seed != nil:
		log.Debug().Uint64("seed", *src.Seed).Msg("seeded deck")
		return cards.Seeded(*src.Seed), "seed " + strconv.FormatUint(*src.Seed, 10), nil
	case src.Fallback != "":
		log.Debug().Str("file", src.Fallback).Msg("deck from SOLITAIRE_DECK_FILE")
		return fromFile(src.Fallback)
	}
	log.Debug().Msg("random deck")
	return cards.Shuffled(nil), "random", nil
}

func fromFile(path string) (cards.Deck, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return cards.Deck{}, "", fmt.Errorf("open deck: %w", err)
	}
	defer f.Close()

	d, err := cards.ParseDeck(f)
	if err != nil {
		return cards.Deck{}, "", fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("file", path).Msg("deck loaded")
	return d, "file " + path, nil
}

func fromBuiltin(name string) (cards.Deck, string, error) {
	rc, err := assets.Deck(name)
	if err != nil {
		names, _ := assets.DeckNames()
		return cards.Deck{}, "", fmt.Errorf("unknown builtin deck %q (have %s)", name, strings.Join(names, ", "))
	}
	defer rc.Close()

	d, err := cards.ParseDeck(rc)
	if err != nil {
		return cards.Deck{}, "", fmt.Errorf("builtin %s: %w", name, err)
	}
	log.Debug().Str("builtin", name).Msg("deck loaded")
	return d, "builtin " + name, nil
}

func fromDaily(src Source) (cards.Deck, string, error) {
	var date time.Time
	if strings.EqualFold(src.Daily, "today") {
		now := time.Now
		if src.Now != nil {
			now = src.Now
		}
		date = now()
	} else {
		var err error
		if date, err = daily.ParseDateKey(src.Daily); err != nil {
			return cards.Deck{}, "", fmt.Errorf("daily date: %w", err)
		}
	}
	key := daily.DateKey(date)
	log.Debug().Str("date", key).Msg("deal of the day")
	return daily.Deck(date, src.Salt), "daily " + key, nil
}
