package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathsprint/internal/console"
	"github.com/abhisek/mathsprint/internal/highscore"
	"github.com/abhisek/mathsprint/internal/problemgen"
)

// runGame resolves the score file, builds dependencies, and starts the
// interactive game loop.
func runGame(cmd *cobra.Command) error {
	scorePath, err := resolveScorePath(cmd)
	if err != nil {
		return fmt.Errorf("resolve score path: %w", err)
	}

	// The colorprofile writer downgrades styling to whatever the terminal
	// supports and strips it entirely under NO_COLOR or a dumb TERM.
	opts := console.Options{
		In:        os.Stdin,
		Out:       colorprofile.NewWriter(os.Stdout, os.Environ()),
		Generator: problemgen.NewDefault(),
		Scores:    highscore.NewStore(scorePath),
	}

	return console.Run(opts)
}
