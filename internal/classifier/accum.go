package classifier

import "sort"

// Accumulator grows three parallel per-taxon lists as retained reads
// arrive: score (shel, or the score column of a generic file), relative
// k-mer percentage, and read length. A read contributes one entry to all
// three lists or to none, so the lists of a taxon always have matching
// lengths. Owned by a single scan; not safe for concurrent use.
type Accumulator struct {
	scores  map[TaxID][]float64
	kmerel  map[TaxID][]float64
	lengths map[TaxID][]int
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		scores:  make(map[TaxID][]float64),
		kmerel:  make(map[TaxID][]float64),
		lengths: make(map[TaxID][]int),
	}
}

// Add appends one retained read to the taxon's lists, creating them on
// first sighting.
func (a *Accumulator) Add(tid TaxID, score, relative float64, length int) {
	a.scores[tid] = append(a.scores[tid], score)
	a.kmerel[tid] = append(a.kmerel[tid], relative)
	a.lengths[tid] = append(a.lengths[tid], length)
}

// NumTaxa returns the number of taxa with at least one retained read.
func (a *Accumulator) NumTaxa() int { return len(a.scores) }

// Retained returns the total number of reads that passed the filter.
func (a *Accumulator) Retained() int {
	n := 0
	for _, s := range a.scores {
		n += len(s)
	}
	return n
}

// Counts returns the retained-read count per taxon.
func (a *Accumulator) Counts() map[TaxID]int {
	counts := make(map[TaxID]int, len(a.scores))
	for tid, s := range a.scores {
		counts[tid] = len(s)
	}
	return counts
}

// Taxa returns the taxon ids in lexicographic order.
func (a *Accumulator) Taxa() []TaxID {
	taxa := make([]TaxID, 0, len(a.scores))
	for tid := range a.scores {
		taxa = append(taxa, tid)
	}
	sort.Slice(taxa, func(i, j int) bool { return taxa[i] < taxa[j] })
	return taxa
}
