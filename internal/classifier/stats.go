package classifier

import "math"

// MetricStats summarizes one per-read metric over every retained read of
// every taxon.
type MetricStats struct {
	Min  float64
	Max  float64
	Mean float64
}

// SampleStats is the immutable run synopsis of one scanned file.
type SampleStats struct {
	SeqRead   int // sequences read, malformed lines excluded
	SeqUnclas int // sequences the classifier left unclassified
	SeqFilt   int // sequences retained after the minimum-score filter
	NtRead    int // nucleotides read, unclassified and rejected included
	NumTaxa   int // taxa with at least one retained read

	MinScore float64 // active threshold, NaN when no filter was set
	Score    MetricStats
	Relative MetricStats
	Length   MetricStats
}

// SeqClas returns the number of classified sequences.
func (s SampleStats) SeqClas() int { return s.SeqRead - s.SeqUnclas }

// UnclasRatio returns the unclassified fraction of all reads.
func (s SampleStats) UnclasRatio() float64 {
	if s.SeqRead == 0 {
		return 0
	}
	return float64(s.SeqUnclas) / float64(s.SeqRead)
}

// RejectRatio returns the fraction of classified reads rejected by the
// minimum-score filter.
func (s SampleStats) RejectRatio() float64 {
	clas := s.SeqClas()
	if clas == 0 {
		return 0
	}
	return float64(clas-s.SeqFilt) / float64(clas)
}

// Summarize reduces a finished accumulation into run-level statistics.
// Both failure modes are unrecoverable for the input source: with zero
// reads or zero retained reads there is nothing to score.
func Summarize(acc *Accumulator, seqRead, seqUnclas, ntRead int, minScore float64) (SampleStats, error) {
	if seqRead == 0 {
		return SampleStats{}, ErrNoReads
	}
	retained := acc.Retained()
	if retained == 0 {
		return SampleStats{}, ErrNoneRetained
	}
	stats := SampleStats{
		SeqRead:   seqRead,
		SeqUnclas: seqUnclas,
		SeqFilt:   retained,
		NtRead:    ntRead,
		NumTaxa:   acc.NumTaxa(),
		MinScore:  minScore,
	}
	stats.Score = summarizeFloats(acc.scores)
	stats.Relative = summarizeFloats(acc.kmerel)
	stats.Length = summarizeInts(acc.lengths)
	return stats, nil
}

func summarizeFloats(lists map[TaxID][]float64) MetricStats {
	m := MetricStats{Min: math.Inf(1), Max: math.Inf(-1)}
	sum, n := 0.0, 0
	for _, vs := range lists {
		for _, v := range vs {
			m.Min = math.Min(m.Min, v)
			m.Max = math.Max(m.Max, v)
			sum += v
			n++
		}
	}
	m.Mean = sum / float64(n)
	return m
}

func summarizeInts(lists map[TaxID][]int) MetricStats {
	m := MetricStats{Min: math.Inf(1), Max: math.Inf(-1)}
	sum, n := 0, 0
	for _, vs := range lists {
		for _, v := range vs {
			m.Min = math.Min(m.Min, float64(v))
			m.Max = math.Max(m.Max, float64(v))
			sum += v
			n++
		}
	}
	m.Mean = float64(sum) / float64(n)
	return m
}
