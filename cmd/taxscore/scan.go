package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"taxscore/internal/classifier"
	"taxscore/internal/discover"
	"taxscore/internal/driver"
	"taxscore/internal/observ"
	"taxscore/internal/project"
	"taxscore/internal/report"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] [file|dir]...",
	Short: "Scan classifier output files and score their taxa",
	Long: `Scan reads per-read classifier output (Kraken/Kraken2 direct output by
default, or a generic CSV/TSV layout described with --format), accumulates
per-taxon metrics, and prints one confidence score per taxon under the
selected scoring policy. Directory arguments are expanded to the output
files they contain; with no arguments the current directory is searched.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().String("scoring", "", "scoring policy ("+classifier.ScoringNames()+")")
	scanCmd.Flags().Float64("minscore", 0, "minimum confidence score, reads below it are dropped")
	scanCmd.Flags().String("format", "", `generic layout descriptor, e.g. "TYP:csv,TID:1,LEN:3,SCO:6,UNC:0"`)
	scanCmd.Flags().String("ext", "", "output file extension for directory arguments")
	scanCmd.Flags().Int("jobs", 0, "number of files scanned in parallel (0 = all CPUs)")
	scanCmd.Flags().String("ui", "auto", "live progress display (auto|on|off)")
	scanCmd.Flags().Bool("cache", false, "reuse cached results for unchanged files")
}

func runScan(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	maxDiags, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	timer := observ.NewTimer()
	setup := timer.Begin("setup")

	settings, _, err := project.LoadSettings(project.SettingsFile)
	if err != nil {
		return err
	}
	scoringName := settings.Scan.Scoring
	if cmd.Flags().Changed("scoring") {
		scoringName, _ = cmd.Flags().GetString("scoring")
	}
	scoring, err := classifier.ParseScoring(scoringName)
	if err != nil {
		return err
	}
	opts := classifier.Options{Scoring: scoring, MaxDiags: maxDiags}
	if cmd.Flags().Changed("minscore") {
		opts.MinScore, _ = cmd.Flags().GetFloat64("minscore")
		opts.MinScoreSet = true
	} else if settings.Scan.MinScore != nil {
		opts.MinScore = *settings.Scan.MinScore
		opts.MinScoreSet = true
	}
	ext := settings.Scan.Extension
	if cmd.Flags().Changed("ext") {
		ext, _ = cmd.Flags().GetString("ext")
	}
	jobs := settings.Scan.Jobs
	if cmd.Flags().Changed("jobs") {
		jobs, _ = cmd.Flags().GetInt("jobs")
	}

	scanFn, err := resolveScanFunc(cmd, opts)
	if err != nil {
		return err
	}
	if useCache, _ := cmd.Flags().GetBool("cache"); useCache {
		cache, err := driver.OpenResultCache("taxscore")
		if err != nil {
			fmt.Fprintln(os.Stderr, report.Yellow("Warning:"), "result cache unavailable:", err)
		} else {
			scanFn = cache.Wrap(opts, scanFn)
		}
	}

	files, err := resolveInputs(args, ext)
	if err != nil {
		return err
	}
	timer.End(setup, fmt.Sprintf("%d files", len(files)))

	scanPhase := timer.Begin("scan")
	uiValue, _ := cmd.Flags().GetString("ui")
	withUI, err := readUIMode(uiValue, len(files), quiet)
	if err != nil {
		return err
	}
	var results []driver.FileResult
	if withUI {
		results, err = runScanWithUI(cmd.Context(), "scanning classifier output", files, jobs, scanFn)
		if err != nil {
			return err
		}
	} else {
		results = driver.ScanAll(cmd.Context(), files, jobs, scanFn, driver.NopSink{})
	}
	timer.End(scanPhase, "")

	render := timer.Begin("render")
	failed := 0
	out := cmd.OutOrStdout()
	for _, fr := range results {
		if fr.Err != nil {
			failed++
			fmt.Fprintln(os.Stderr, report.Red("ERROR!"), fr.Err)
			continue
		}
		printResult(out, fr, quiet)
	}
	timer.End(render, "")

	if timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// resolveScanFunc binds the scan options to the native or the generic
// scanner, depending on --format.
func resolveScanFunc(cmd *cobra.Command, opts classifier.Options) (driver.ScanFunc, error) {
	formatSpec, _ := cmd.Flags().GetString("format")
	if formatSpec == "" {
		return func(path string) (*classifier.ScanResult, error) {
			return classifier.ScanOutput(path, opts)
		}, nil
	}
	gf, err := classifier.ParseGenericFormat(formatSpec)
	if err != nil {
		return nil, err
	}
	return func(path string) (*classifier.ScanResult, error) {
		return classifier.ScanGeneric(path, gf, opts)
	}, nil
}

// resolveInputs expands directory arguments into the output files they
// contain. With no arguments the current directory is searched.
func resolveInputs(args []string, ext string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot read %q: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		found, err := discover.Outputs(arg, ext)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, errors.New("no classifier output files found")
	}
	return files, nil
}

func readUIMode(value string, numFiles int, quiet bool) (bool, error) {
	switch value {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return !quiet && numFiles > 1 && isTerminal(os.Stdout), nil
	default:
		return false, fmt.Errorf("unknown ui mode %q (must be auto, on, or off)", value)
	}
}

// printResult writes the report block, per-record diagnostic summary,
// and the score table for one scanned file.
func printResult(out io.Writer, fr driver.FileResult, quiet bool) {
	res := fr.Result
	if !quiet {
		fmt.Fprint(out, res.Report)
	}
	if n := res.Diags.Total(); n > 0 && !quiet {
		// Recoverable problems are summarized, never itemized.
		fmt.Fprintln(out, report.Yellow("Warning:"),
			fmt.Sprintf("%s lines ignored in %s", report.Count(n), fr.Path))
	}
	if res.Truncated {
		fmt.Fprintln(out, report.Yellow("Warning!"), fr.Path, "seems truncated!")
	}
	if quiet {
		return
	}
	printScores(out, res)
	fmt.Fprintln(out)
}

// printScores renders the per-taxon score table, highest score first.
func printScores(out io.Writer, res *classifier.ScanResult) {
	type row struct {
		tid   classifier.TaxID
		count int
		score float64
	}
	rows := make([]row, 0, len(res.Scores))
	widest := len("taxid")
	for tid, score := range res.Scores {
		rows = append(rows, row{tid: tid, count: res.Counts[tid], score: score})
		if len(tid) > widest {
			widest = len(tid)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].score != rows[j].score {
			return rows[i].score > rows[j].score
		}
		return rows[i].tid < rows[j].tid
	})
	fmt.Fprintln(out, report.Gray(report.PadLeft("taxid", widest)+"  "+
		report.PadLeft("reads", 8)+"  score"))
	for _, r := range rows {
		fmt.Fprintf(out, "%s  %s  %.2f\n",
			report.PadLeft(string(r.tid), widest),
			report.PadLeft(report.Count(r.count), 8),
			r.score)
	}
}
