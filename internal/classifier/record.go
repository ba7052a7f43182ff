package classifier

import (
	"fmt"
	"strconv"
	"strings"
)

// TaxID is an opaque taxon identifier. Kraken emits NCBI taxids, but
// nothing here assumes the value is numeric.
type TaxID string

const (
	// KmerSize is the classifier's k-mer length, the fixed additive term
	// of the single-hit-equivalent length.
	KmerSize = 35

	// UnclassifiedFlag marks an unclassified read in native output.
	UnclassifiedFlag = "U"

	// nativeFields is the column count of Kraken/Kraken2 direct output.
	nativeFields = 5

	// mappingSeparator is the paired-read separator token that may appear
	// inside the k-mer mapping list; it carries no data.
	mappingSeparator = "|:|"
)

// Mapping is one k-mer run assigned to a taxon. The same taxon may
// appear in several mappings of one read; counts are summed per taxon.
type Mapping struct {
	Taxon TaxID
	Kmers int
}

// Record is one classified read, alive only while its line is processed.
type Record struct {
	Flag     string
	Label    string
	Taxon    TaxID
	Length   int
	Mappings []Mapping
}

// splitFields breaks a native output line into its five columns.
func splitFields(line string) ([]string, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != nativeFields {
		return nil, fmt.Errorf("expected %d tab-separated fields, found %d", nativeFields, len(fields))
	}
	return fields, nil
}

// parseLength sums the |-delimited segments of a length field. Paired
// reads report both mate lengths joined with "|" ("50|50" -> 100).
func parseLength(field string) (int, error) {
	total := 0
	for _, seg := range strings.Split(field, "|") {
		n, err := strconv.Atoi(seg)
		if err != nil {
			return 0, fmt.Errorf("bad length segment %q", seg)
		}
		if n < 0 {
			return 0, fmt.Errorf("negative length segment %q", seg)
		}
		total += n
	}
	return total, nil
}

// parseMappings decodes the space-separated "taxid:count" tokens,
// discarding any paired-read separator tokens first.
func parseMappings(field string) ([]Mapping, error) {
	tokens := strings.Fields(field)
	mappings := make([]Mapping, 0, len(tokens))
	for _, tok := range tokens {
		if tok == mappingSeparator {
			continue
		}
		couple := strings.Split(tok, ":")
		if len(couple) != 2 {
			return nil, fmt.Errorf("bad mapping token %q", tok)
		}
		count, err := strconv.Atoi(couple[1])
		if err != nil {
			return nil, fmt.Errorf("bad k-mer count in %q", tok)
		}
		mappings = append(mappings, Mapping{Taxon: TaxID(couple[0]), Kmers: count})
	}
	return mappings, nil
}

// Metrics derives the two confidence proxies of a classified read:
// shel, the single-hit-equivalent length (own-taxon k-mer hits plus the
// k-mer size), and the relative score, own-taxon hits as a percentage of
// all hits. Fails if the read carries no k-mer hits at all.
func (r Record) Metrics() (shel, relative float64, err error) {
	own, total := 0, 0
	for _, m := range r.Mappings {
		total += m.Kmers
		if m.Taxon == r.Taxon {
			own += m.Kmers
		}
	}
	if total == 0 {
		return 0, 0, fmt.Errorf("zero k-mer hits for read %q", r.Label)
	}
	return float64(own + KmerSize), float64(own) / float64(total) * 100, nil
}
