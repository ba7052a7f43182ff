package classifier

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"taxscore/internal/diag"
)

// ScanGeneric scans a file in a user-described CSV/TSV layout. The
// descriptor names the taxid, length, and score columns; there is no
// header row and no k-mer breakdown, so the score column doubles as the
// confidence metric and relative percentages are not available. Only the
// generic, length, and loglength policies apply.
func ScanGeneric(path string, gf GenericFormat, opts Options) (*ScanResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}
	defer f.Close()
	return ScanGenericReader(f, path, gf, opts)
}

// ScanGenericReader scans generic-format rows from an arbitrary stream.
func ScanGenericReader(r io.Reader, name string, gf GenericFormat, opts Options) (*ScanResult, error) {
	switch opts.Scoring {
	case ScoringGeneric, ScoringLength, ScoringLogLength:
	default:
		return nil, fmt.Errorf("%w %q for generic format (supported: generic, length, loglength)",
			ErrUnknownScoring, opts.Scoring)
	}
	maxDiags := opts.MaxDiags
	if maxDiags <= 0 {
		maxDiags = defaultMaxDiags
	}
	bag := diag.NewBag(maxDiags)
	reporter := diag.BagReporter{Bag: bag}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	sep := gf.Typ.separator()
	minCols := gf.minColumns()
	acc := NewAccumulator()
	numRead, ntRead, numUncl := 0, 0, 0
	errorRead := -1

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cols := strings.Split(line, sep)
		if len(cols) < minCols {
			reporter.Report(diag.ScanBadColumn, diag.SevWarning, numRead+1, "",
				fmt.Sprintf("expected at least %d columns, found %d", minCols, len(cols)))
			errorRead = numRead + 1
			continue
		}
		length, err := strconv.Atoi(strings.TrimSpace(cols[gf.Len-1]))
		if err != nil || length < 0 {
			reporter.Report(diag.ScanBadLength, diag.SevWarning, numRead+1, "length",
				fmt.Sprintf("bad length %q", cols[gf.Len-1]))
			errorRead = numRead + 1
			continue
		}
		numRead++
		ntRead += length
		tid := TaxID(strings.TrimSpace(cols[gf.TID-1]))
		if tid == gf.Unc {
			numUncl++
			continue
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(cols[gf.Sco-1]), 64)
		if err != nil {
			reporter.Report(diag.ScanBadScore, diag.SevWarning, numRead, "score",
				fmt.Sprintf("bad score %q", cols[gf.Sco-1]))
			errorRead = numRead + 1
			continue
		}
		if opts.MinScoreSet && score < opts.MinScore {
			continue
		}
		// No k-mer breakdown in generic layouts: the relative list carries
		// the score itself to keep the three lists parallel.
		acc.Add(tid, score, score, length)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	truncated := errorRead == numRead+1
	if truncated {
		reporter.Report(diag.ScanTruncatedFile, diag.SevWarning, 0, "",
			fmt.Sprintf("%s seems truncated: its last line could not be parsed", name))
	}

	minScore := math.NaN()
	if opts.MinScoreSet {
		minScore = opts.MinScore
	}
	stats, err := Summarize(acc, numRead, numUncl, ntRead, minScore)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	scores, err := opts.Scoring.Select(acc)
	if err != nil {
		return nil, err
	}

	return &ScanResult{
		Report:    renderReport(name, stats),
		Stats:     stats,
		Counts:    acc.Counts(),
		Scores:    scores,
		Diags:     bag,
		Truncated: truncated,
	}, nil
}
