// internal/game/game.go
//
// Game wraps a State for callers that play one deal from start to finish
// (the CLI, an interactive front end). It keeps an identifier and simple
// counters; it does not keep history, so callers that want undo must retain
// earlier States themselves.

package game

import (
	"github.com/google/uuid"

	"github.com/robalobadob/ksolitaire/internal/cards"
)

// Game holds the current board of a single deal.
type Game struct {
	ID       string // random identifier for log correlation
	State    State
	Applied  int // actions that changed the board
	Rejected int // actions that left it unchanged
}

// New deals d into a fresh game.
func New(d cards.Deck) *Game {
	return &Game{
		ID:    uuid.NewString(),
		State: Deal(d),
	}
}

// Do applies a and reports whether it changed the board. A Draw on an
// empty talon is legal but changes nothing, so it counts as rejected.
func (g *Game) Do(a Action) bool {
	next := g.State.Apply(a)
	if next == g.State {
		g.Rejected++
		return false
	}
	g.State = next
	g.Applied++
	return true
}

// Won reports whether all foundations are complete.
func (g *Game) Won() bool { return g.State.Won() }
