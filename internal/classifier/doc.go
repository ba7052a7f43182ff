// Package classifier parses per-read taxonomic classifier output and
// reduces it to per-taxon confidence scores.
//
// The native layout is the Kraken/Kraken2 direct output: five
// tab-separated columns (classification flag, read label, taxon id, read
// length, k-mer mappings). A generic CSV/TSV layout can be described with
// a GenericFormat descriptor instead. Either way a scan produces a
// textual report, run-level statistics, per-taxon retained-read counts,
// and one score per taxon under the selected scoring policy.
package classifier
