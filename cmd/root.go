package cmd

import (
	"github.com/abhisek/mathsprint/internal/highscore"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathsprint",
	Short: "Timed mental-arithmetic sprints in the terminal",
	Long:  "Math Sprint — a timed arithmetic game: pick a difficulty, answer as many problems as you can before the clock runs out, and chase your high score.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGame(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("scores", "", "Path to high-score file (overrides MATHSPRINT_SCORES env var)")

	rootCmd.AddCommand(versionCmd)
}

// resolveScorePath returns the high-score file path using --scores flag
// (highest priority), then the MATHSPRINT_SCORES env var, then a dotfile
// in the user's home directory.
func resolveScorePath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("scores"); p != "" {
		return p, highscore.EnsureDir(p)
	}
	return highscore.DefaultPath(), nil
}
