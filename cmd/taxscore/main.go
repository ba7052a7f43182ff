// Package main implements the taxscore CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"taxscore/internal/report"
	"taxscore/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "taxscore",
	Short: "Per-taxon confidence scores from classifier output",
	Long:  `taxscore turns the per-read output of a taxonomic classifier into per-taxon summary statistics and confidence scores`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress per-sample report blocks")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of per-record diagnostics to keep per file")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		report.SetColor(colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout)))
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
