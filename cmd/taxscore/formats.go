package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"taxscore/internal/classifier"
	"taxscore/internal/report"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "Describe supported input layouts and scoring policies",
	RunE:  runFormats,
}

func runFormats(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, report.Blue("Native layout"), "(Kraken/Kraken2 direct output)")
	fmt.Fprintln(out, "  5 tab-separated columns: C/U flag, read label, taxid, length, k-mer mappings")
	fmt.Fprintln(out, "  paired reads join mate lengths with \"|\" and may carry a \"|:|\" mapping separator")
	fmt.Fprintln(out)
	fmt.Fprintln(out, report.Blue("Generic layout"), "(via --format)")
	fmt.Fprintln(out, "  comma-separated KEY:VALUE pairs, all mandatory:")
	fmt.Fprintln(out, "    TYP  file subtype, CSV or TSV")
	fmt.Fprintln(out, "    TID  taxid column number (1-based)")
	fmt.Fprintln(out, "    LEN  read-length column number")
	fmt.Fprintln(out, "    SCO  score column number")
	fmt.Fprintln(out, "    UNC  taxid value marking unclassified reads")
	fmt.Fprintln(out, `  example: "TYP:csv,TID:1,LEN:3,SCO:6,UNC:0"`)
	fmt.Fprintln(out)
	fmt.Fprintln(out, report.Blue("Scoring policies"))
	fmt.Fprintf(out, "  %-10s mean single-hit-equivalent length (k-mer hits + %d)\n", classifier.ScoringSHEL, classifier.KmerSize)
	fmt.Fprintf(out, "  %-10s mean relative k-mer percentage\n", classifier.ScoringKraken)
	fmt.Fprintf(out, "  %-10s mean read length\n", classifier.ScoringLength)
	fmt.Fprintf(out, "  %-10s log10 of the mean read length\n", classifier.ScoringLogLength)
	fmt.Fprintf(out, "  %-10s mean SHEL over mean length, as a percentage\n", classifier.ScoringNorma)
	fmt.Fprintf(out, "  %-10s mean of the generic score column\n", classifier.ScoringGeneric)
	return nil
}
