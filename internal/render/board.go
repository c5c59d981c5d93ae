// internal/render/board.go
//
// Plain-text board rendering for the command line. This is a snapshot
// printer, not an interactive front end: it turns a game.State into a block
// of lines, one per pile.
//
//	F0  A♥ 2♥
//	F1  --
//	...
//	S   Q♠  (cursor 4 of 17)
//	T0  K♠ Q♥
//	T1  ## ## 7♦
//
// Face-down tableau cards print as "##"; an empty pile prints as "--".

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/ksolitaire/internal/cards"
	"github.com/robalobadob/ksolitaire/internal/game"
)

var (
	colorRed   = lipgloss.Color("#E74C3C")
	colorBlack = lipgloss.Color("#ECF0F1")
	colorMuted = lipgloss.Color("#2C4A54")
	colorLabel = lipgloss.Color("#20B9B4")
)

// Styles holds the lipgloss styles used for each kind of cell.
type Styles struct {
	Label  lipgloss.Style
	Red    lipgloss.Style
	Black  lipgloss.Style
	Hidden lipgloss.Style
	Muted  lipgloss.Style
}

// NewStyles returns coloured styles, or unstyled ones when color is false.
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{Label: plain, Red: plain, Black: plain, Hidden: plain, Muted: plain}
	}
	return Styles{
		Label:  lipgloss.NewStyle().Bold(true).Foreground(colorLabel),
		Red:    lipgloss.NewStyle().Foreground(colorRed),
		Black:  lipgloss.NewStyle().Foreground(colorBlack),
		Hidden: lipgloss.NewStyle().Foreground(colorMuted),
		Muted:  lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
	}
}

// Board renders s.
func Board(s game.State, st Styles) string {
	var b strings.Builder

	for i := 0; i < game.FoundationPiles; i++ {
		line(&b, st, game.Foundation(i).String(), pile(st, s.Foundation(i), 0))
	}

	talon := s.Talon()
	exposed := st.Hidden.Render("##")
	if len(talon) == 0 {
		exposed = st.Muted.Render("--")
	} else if c, ok := s.Exposed(); ok {
		exposed = Card(st, c)
	}
	line(&b, st, game.Talon().String(), exposed+"  "+
		st.Muted.Render(fmt.Sprintf("(cursor %d of %d)", s.Cursor(), len(talon))))

	for i := 0; i < game.TableauPiles; i++ {
		line(&b, st, game.Tableau(i).String(), pile(st, s.Tableau(i), s.Boundary(i)))
	}
	return b.String()
}

// Card renders one face-up card in its suit colour.
func Card(st Styles, c cards.Card) string {
	if c.Color() == cards.Red {
		return st.Red.Render(c.Short())
	}
	return st.Black.Render(c.Short())
}

func pile(st Styles, cs []cards.Card, boundary int) string {
	if len(cs) == 0 {
		return st.Muted.Render("--")
	}
	cells := make([]string, len(cs))
	for i, c := range cs {
		if i < boundary {
			cells[i] = st.Hidden.Render("##")
			continue
		}
		cells[i] = Card(st, c)
	}
	return strings.Join(cells, " ")
}

func line(b *strings.Builder, st Styles, label, body string) {
	b.WriteString(st.Label.Render(label))
	b.WriteString(strings.Repeat(" ", max(1, 4-len(label))))
	b.WriteString(body)
	b.WriteString("\n")
}
