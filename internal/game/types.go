// internal/game/types.go
//
// Addressing and action types for the solitaire engine.
// Defines:
//   - Location: a pile on the board (Foundation n, Tableau n, or the Talon).
//   - Coord: a Location plus a slot index inside that pile.
//   - Action: Draw, or Move(from, to).
//
// All three are small comparable values so they can be used as map keys and
// compared with ==.

package game

// Board dimensions.
const (
	TableauPiles    = 7
	FoundationPiles = 4
	TableauCap      = 19 // six face-down cards under a King..Ace run
	FoundationCap   = 13
	TalonCap        = 24
)

// Area is the kind of pile a Location refers to.
type Area uint8

const (
	AreaFoundation Area = iota
	AreaTableau
	AreaTalon
)

// Location names a single pile.
type Location struct {
	Area Area
	Pile int
}

// Foundation returns the location of foundation pile i.
func Foundation(i int) Location { return Location{Area: AreaFoundation, Pile: i} }

// Tableau returns the location of tableau pile i.
func Tableau(i int) Location { return Location{Area: AreaTableau, Pile: i} }

// Talon returns the location of the talon.
func Talon() Location { return Location{Area: AreaTalon} }

// IsFoundation reports whether l is a foundation pile.
func (l Location) IsFoundation() bool { return l.Area == AreaFoundation }

// IsTableau reports whether l is a tableau pile.
func (l Location) IsTableau() bool { return l.Area == AreaTableau }

// IsTalon reports whether l is the talon.
func (l Location) IsTalon() bool { return l.Area == AreaTalon }

// Coord addresses one slot of one pile.
type Coord struct {
	Loc  Location
	Slot int
}

// At builds a Coord.
func At(loc Location, slot int) Coord { return Coord{Loc: loc, Slot: slot} }

// ActionKind discriminates Action values.
type ActionKind uint8

const (
	ActionDraw ActionKind = iota
	ActionMove
)

// Action is a single player input: either a Draw or a Move between coordinates.
// From and To are ignored for Draw.
type Action struct {
	Kind ActionKind
	From Coord
	To   Coord
}

// Draw advances the talon cursor.
func Draw() Action { return Action{Kind: ActionDraw} }

// Move relocates the card (or tableau run) at from onto to.
func Move(from, to Coord) Action { return Action{Kind: ActionMove, From: from, To: to} }

// IsDraw reports whether a is a Draw.
func (a Action) IsDraw() bool { return a.Kind == ActionDraw }
