package classifier

import (
	"fmt"
	"math"
	"strings"
)

// Scoring selects how per-taxon confidence scores are derived from the
// accumulated per-read metrics. The set is closed: unknown names are
// rejected when the configuration is parsed, never at scoring time.
type Scoring uint8

const (
	// ScoringSHEL scores a taxon with the mean single-hit-equivalent
	// length of its retained reads.
	ScoringSHEL Scoring = iota
	// ScoringKraken scores with the mean relative k-mer percentage, the
	// classifier's native confidence notion.
	ScoringKraken
	// ScoringLength scores with the mean read length.
	ScoringLength
	// ScoringLogLength scores with log10 of the mean read length.
	ScoringLogLength
	// ScoringNorma scores with mean SHEL normalized by mean read length,
	// as a percentage.
	ScoringNorma
	// ScoringGeneric scores with the mean of the score column of a
	// generic-format file. Only valid for generic scans.
	ScoringGeneric
)

var scoringNames = map[string]Scoring{
	"shel":      ScoringSHEL,
	"kraken":    ScoringKraken,
	"length":    ScoringLength,
	"loglength": ScoringLogLength,
	"norma":     ScoringNorma,
	"generic":   ScoringGeneric,
}

// ParseScoring resolves a policy name (case-insensitive).
func ParseScoring(name string) (Scoring, error) {
	s, ok := scoringNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w %q (supported: %s)", ErrUnknownScoring, name, ScoringNames())
	}
	return s, nil
}

// ScoringNames lists the accepted policy names in declaration order.
func ScoringNames() string {
	return "shel, kraken, length, loglength, norma, generic"
}

func (s Scoring) String() string {
	switch s {
	case ScoringSHEL:
		return "shel"
	case ScoringKraken:
		return "kraken"
	case ScoringLength:
		return "length"
	case ScoringLogLength:
		return "loglength"
	case ScoringNorma:
		return "norma"
	case ScoringGeneric:
		return "generic"
	}
	return "unknown"
}

// FilterValue returns the metric the minimum-score threshold applies to
// under this policy. The threshold must filter on the same metric the
// final score is built from, so the choice is tied to the policy here
// instead of being decided at the call site.
func (s Scoring) FilterValue(score, relative float64) float64 {
	if s == ScoringKraken {
		return relative
	}
	return score
}

// Select reduces the accumulated per-taxon lists to one score per taxon.
// The returned map has exactly one entry per taxon with at least one
// retained read.
func (s Scoring) Select(acc *Accumulator) (map[TaxID]float64, error) {
	out := make(map[TaxID]float64, acc.NumTaxa())
	switch s {
	case ScoringSHEL, ScoringGeneric:
		for tid, scores := range acc.scores {
			out[tid] = meanFloats(scores)
		}
	case ScoringKraken:
		for tid, rels := range acc.kmerel {
			out[tid] = meanFloats(rels)
		}
	case ScoringLength:
		for tid, lengths := range acc.lengths {
			out[tid] = meanInts(lengths)
		}
	case ScoringLogLength:
		for tid, lengths := range acc.lengths {
			out[tid] = math.Log10(meanInts(lengths))
		}
	case ScoringNorma:
		for tid, scores := range acc.scores {
			out[tid] = meanFloats(scores) / meanInts(acc.lengths[tid]) * 100
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownScoring, s)
	}
	return out, nil
}

func meanFloats(vs []float64) float64 {
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

func meanInts(vs []int) float64 {
	var sum int
	for _, v := range vs {
		sum += v
	}
	return float64(sum) / float64(len(vs))
}
