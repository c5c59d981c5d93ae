// internal/game/notation.go
//
// Short text notation for actions, used by the command line.
//
//	draw          Draw
//	T2:4>F0:3     Move from tableau pile 2 slot 4 to foundation pile 0 slot 3
//	S:5>T6:9      Move the exposed talon card (slot 5) onto tableau pile 6
//
// Piles and slots are zero-based. Parsing is case-insensitive.

package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadNotation is returned (wrapped) by ParseAction and ParseCoord.
var ErrBadNotation = errors.New("bad action notation")

func (l Location) String() string {
	switch l.Area {
	case AreaFoundation:
		return "F" + strconv.Itoa(l.Pile)
	case AreaTableau:
		return "T" + strconv.Itoa(l.Pile)
	case AreaTalon:
		return "S"
	}
	return "?"
}

func (c Coord) String() string { return c.Loc.String() + ":" + strconv.Itoa(c.Slot) }

func (a Action) String() string {
	if a.IsDraw() {
		return "draw"
	}
	return a.From.String() + ">" + a.To.String()
}

// ParseAction parses the notation produced by Action.String.
func ParseAction(s string) (Action, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "draw") {
		return Draw(), nil
	}
	lhs, rhs, ok := strings.Cut(s, ">")
	if !ok {
		return Action{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}
	from, err := ParseCoord(lhs)
	if err != nil {
		return Action{}, err
	}
	to, err := ParseCoord(rhs)
	if err != nil {
		return Action{}, err
	}
	return Move(from, to), nil
}

// ParseCoord parses "T<pile>:<slot>", "F<pile>:<slot>" or "S:<slot>".
func ParseCoord(s string) (Coord, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	head, slotText, ok := strings.Cut(s, ":")
	if !ok || head == "" {
		return Coord{}, fmt.Errorf("%w: coordinate %q", ErrBadNotation, s)
	}
	slot, err := strconv.Atoi(slotText)
	if err != nil || slot < 0 {
		return Coord{}, fmt.Errorf("%w: slot in %q", ErrBadNotation, s)
	}

	var loc Location
	switch head[0] {
	case 'S':
		if head != "S" {
			return Coord{}, fmt.Errorf("%w: talon takes no pile number in %q", ErrBadNotation, s)
		}
		return At(Talon(), slot), nil
	case 'T':
		loc.Area = AreaTableau
	case 'F':
		loc.Area = AreaFoundation
	default:
		return Coord{}, fmt.Errorf("%w: unknown pile %q", ErrBadNotation, head)
	}
	pile, err := strconv.Atoi(head[1:])
	if err != nil || !validPile(Location{Area: loc.Area, Pile: pile}) {
		return Coord{}, fmt.Errorf("%w: pile in %q", ErrBadNotation, s)
	}
	loc.Pile = pile
	return At(loc, slot), nil
}
