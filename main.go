// main.go
//
// Entry point for the ksolitaire command.
// Responsibilities:
//   - Build the cobra command tree (see commands.go).
//   - Exit non-zero when a command fails; the error has already been logged.

package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("ksolitaire failed")
		os.Exit(1)
	}
}
