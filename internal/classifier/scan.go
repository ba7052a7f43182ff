package classifier

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"taxscore/internal/diag"
	"taxscore/internal/report"
)

// Options configures one scan. The scoring policy is an explicit input:
// the minimum-score filter derives its metric from it, so filter and
// final score can never disagree.
type Options struct {
	Scoring     Scoring
	MinScore    float64
	MinScoreSet bool
	MaxDiags    int // cap on collected per-record diagnostics
}

const defaultMaxDiags = 100

// ScanResult carries everything a scan produces: the human-readable
// report, the run statistics, the retained-read count per taxon, and the
// per-taxon scores under the selected policy. Diags holds the capped
// per-record diagnostics; Truncated flags a file whose very last record
// failed to parse, the usual sign of a write cut off midway.
type ScanResult struct {
	Report    string
	Stats     SampleStats
	Counts    map[TaxID]int
	Scores    map[TaxID]float64
	Diags     *diag.Bag
	Truncated bool
}

// ScanOutput scans one native classifier output file. The file is held
// open only for the duration of the pass.
func ScanOutput(path string, opts Options) (*ScanResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}
	defer f.Close()
	return ScanReader(f, path, opts)
}

// ScanReader scans native classifier output from an arbitrary stream.
// name is used in the report and in error context only.
func ScanReader(r io.Reader, name string, opts Options) (*ScanResult, error) {
	maxDiags := opts.MaxDiags
	if maxDiags <= 0 {
		maxDiags = defaultMaxDiags
	}
	bag := diag.NewBag(maxDiags)
	reporter := diag.BagReporter{Bag: bag}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	// The header is only validated by column count. Any other count means
	// the stream is not direct classifier output and the whole scan aborts.
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return nil, fmt.Errorf("%s: empty stream: %w", name, ErrHeaderMismatch)
	}
	header := strings.Split(scanner.Text(), "\t")
	if len(header) != nativeFields {
		return nil, fmt.Errorf("%s: expected %d header columns (C/U, label, taxid, length, mappings), found %d: %w",
			name, nativeFields, len(header), ErrHeaderMismatch)
	}

	acc := NewAccumulator()
	numRead, ntRead, numUncl := 0, 0, 0
	errorRead := -1 // read index right after the last failed line

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields, err := splitFields(line)
		if err != nil {
			reporter.Report(diag.ScanBadFieldCount, diag.SevWarning, numRead+1, "", err.Error())
			errorRead = numRead + 1
			continue
		}
		length, err := parseLength(fields[3])
		if err != nil {
			reporter.Report(diag.ScanBadLength, diag.SevWarning, numRead+1, "length", err.Error())
			errorRead = numRead + 1
			continue
		}
		numRead++
		ntRead += length
		if fields[0] == UnclassifiedFlag {
			numUncl++
			continue
		}
		rec := Record{
			Flag:   fields[0],
			Label:  fields[1],
			Taxon:  TaxID(fields[2]),
			Length: length,
		}
		rec.Mappings, err = parseMappings(fields[4])
		if err != nil {
			reporter.Report(diag.ScanBadMapping, diag.SevWarning, numRead, "mappings", err.Error())
			errorRead = numRead + 1
			continue
		}
		shel, relative, err := rec.Metrics()
		if err != nil {
			reporter.Report(diag.ScanZeroKmers, diag.SevWarning, numRead, "mappings", err.Error())
			errorRead = numRead + 1
			continue
		}
		if opts.MinScoreSet && opts.Scoring.FilterValue(shel, relative) < opts.MinScore {
			continue // rejected, not an error
		}
		acc.Add(rec.Taxon, shel, relative, length)
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

// renderReport builds the per-sample report block. Informational only:
// nothing downstream parses it.
func renderReport(name string, stats SampleStats) string {
	var b strings.Builder
	b.WriteString(report.Gray("Loading output file ", name, "... "))
	b.WriteString(report.Green("OK!\n"))
	fmt.Fprintf(&b, "%s%s\t%s%s%s\n",
		report.Gray("  Seqs read: "), report.Count(stats.SeqRead),
		report.Gray("["), report.Count(stats.NtRead), report.Gray("]"))
	fmt.Fprintf(&b, "%s%s\t%s%.2f%%%s\n",
		report.Gray("  Seqs clas: "), report.Count(stats.SeqClas()),
		report.Gray("("), stats.UnclasRatio()*100, report.Gray(" unclassified)"))
	fmt.Fprintf(&b, "%s%s\t%s%.2f%%%s\n",
		report.Gray("  Seqs pass: "), report.Count(stats.SeqFilt),
		report.Gray("("), stats.RejectRatio()*100, report.Gray(" rejected)"))
	b.WriteString(metricLine("  Scores SHEL: ", stats.Score, "%.1f"))
	b.WriteString(metricLine("  Coverage(%): ", stats.Relative, "%.1f"))
	b.WriteString(metricLine("  Read length: ", stats.Length, "%.0f"))
	fmt.Fprintf(&b, "  %d%s\n", stats.NumTaxa, report.Gray(" taxa with assigned reads"))
	return b.String()
}

func metricLine(label string, m MetricStats, verb string) string {
	f := func(v float64) string { return fmt.Sprintf(verb, v) }
	return report.Gray(label) +
		report.Gray("min = ") + f(m.Min) + ", " +
		report.Gray("max = ") + f(m.Max) + ", " +
		report.Gray("avr = ") + f(m.Mean) + "\n"
}
