// commands.go
//
// Command tree for ksolitaire.
//
//	ksolitaire deal                 print the opening board
//	ksolitaire deck                 print the deck record
//	ksolitaire moves [action...]    list legal moves, best first
//	ksolitaire play  [action...]    play actions and print the board
//
// Every command shares the deck flags (--deck, --builtin, --daily, --seed).
// Actions use the board notation: "draw", or FROM>TO with coordinates like
// T2:4 (tableau 2, slot 4), F0:3 (foundation 0, slot 3) and S:5 (talon slot 5).

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/ksolitaire/internal/cards"
	"github.com/robalobadob/ksolitaire/internal/config"
	"github.com/robalobadob/ksolitaire/internal/decks"
	"github.com/robalobadob/ksolitaire/internal/game"
	"github.com/robalobadob/ksolitaire/internal/render"
)

type deckFlags struct {
	file    string
	builtin string
	daily   string
	seed    uint64
}

type cli struct {
	cfg   config.Config
	flags deckFlags
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "ksolitaire",
		Short:         "K+ solitaire engine",
		Long:          "Deal, inspect and play K+ solitaire boards from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			c.cfg = cfg
			return setupLogging(cfg, cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.file, "deck", "", "read the deck record from `file`")
	pf.StringVar(&c.flags.builtin, "builtin", "", "use an embedded deck record by `name`")
	pf.StringVar(&c.flags.daily, "daily", "", "deal of the day for a YYYY-MM-DD `date` or \"today\"")
	pf.Uint64Var(&c.flags.seed, "seed", 0, "shuffle deterministically from `n`")

	root.AddCommand(c.dealCmd(), c.deckCmd(), c.movesCmd(), c.playCmd())
	return root
}

func setupLogging(cfg config.Config, w io.Writer) error {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	if cfg.LogFormat == "json" {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
		return nil
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !cfg.Color}).
		With().Timestamp().Logger()
	return nil
}

// deck resolves the deck flags, falling back to SOLITAIRE_DECK_FILE.
func (c *cli) deck(cmd *cobra.Command) (cards.Deck, string, error) {
	src := decks.Source{
		File:     c.flags.file,
		Builtin:  c.flags.builtin,
		Daily:    c.flags.daily,
		Fallback: c.cfg.DeckFile,
		Salt:     c.cfg.DailySalt,
	}
	if cmd.Flags().Changed("seed") {
		seed := c.flags.seed
		src.Seed = &seed
	}
	return decks.Load(src)
}

func (c *cli) dealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deal",
		Short: "Print the opening board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, desc, err := c.deck(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "deck: %s\n", desc)
			fmt.Fprint(out, render.Board(game.Deal(d), render.NewStyles(c.cfg.Color)))
			return nil
		},
	}
}

func (c *cli) deckCmd() *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Print the deck record, one card per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, desc, err := c.deck(cmd)
			if err != nil {
				return err
			}
			if outFile == "" {
				_, err = d.WriteTo(cmd.OutOrStdout())
				return err
			}
			f, err := os.Create(outFile)
			if err != nil {
				return err
			}
			if _, err := d.WriteTo(f); err != nil {
				f.Close()
				return err
			}
			log.Info().Str("deck", desc).Str("file", outFile).Msg("deck written")
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write the record to `file` instead of stdout")
	return cmd
}

func (c *cli) movesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moves [action...]",
		Short: "List legal moves after the given actions, best first",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := c.deck(cmd)
			if err != nil {
				return err
			}
			s := game.Deal(d)
			for _, arg := range args {
				a, err := game.ParseAction(arg)
				if err != nil {
					return err
				}
				if !s.Legal(a) {
					return fmt.Errorf("illegal action %s", a)
				}
				s = s.Apply(a)
			}

			moves := s.Moves()
			s.SortByPriority(moves)
			out := cmd.OutOrStdout()
			for _, a := range moves {
				fmt.Fprintf(out, "%d  %s\n", s.Priority(a), describe(s, a))
			}
			return nil
		},
	}
}

func (c *cli) playCmd() *cobra.Command {
	var auto int
	cmd := &cobra.Command{
		Use:   "play [action...]",
		Short: "Play actions from the deal and print the resulting board",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, desc, err := c.deck(cmd)
			if err != nil {
				return err
			}
			g := game.New(d)
			log.Info().Str("game", g.ID).Str("deck", desc).Msg("game started")

			for _, arg := range args {
				a, err := game.ParseAction(arg)
				if err != nil {
					return err
				}
				if !g.Do(a) {
					log.Warn().Str("game", g.ID).Str("action", a.String()).Msg("action had no effect")
				}
			}
			prev := g.State
			for i := 0; i < auto && !g.Won(); i++ {
				cur := g.State
				g.Do(best(cur, prev))
				prev = cur
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, render.Board(g.State, render.NewStyles(c.cfg.Color)))
			if g.Won() {
				fmt.Fprintln(out, "won")
			}
			log.Info().Str("game", g.ID).
				Int("applied", g.Applied).
				Int("rejected", g.Rejected).
				Bool("won", g.Won()).
				Msg("game finished")
			return nil
		},
	}
	cmd.Flags().IntVar(&auto, "auto", 0, "then play up to `n` highest-priority actions")
	return cmd
}

// best picks the highest-priority action that makes progress. Ties keep
// enumeration order, so a board with no scoring move draws. Foundation to
// foundation moves, and moves that would restore prev, are skipped.
func best(s, prev game.State) game.Action {
	moves := s.Moves()
	s.SortByPriority(moves)
	for _, a := range moves {
		if a.From.Loc.IsFoundation() && a.To.Loc.IsFoundation() {
			continue
		}
		if s.Apply(a) == prev {
			continue
		}
		return a
	}
	return game.Draw()
}

func describe(s game.State, a game.Action) string {
	if a.IsDraw() {
		return a.String()
	}
	card, _ := s.Read(a.From)
	return fmt.Sprintf("%-12s %s", a.String(), card.Short())
}
