// Command sibeliaz-lcb (package github.com/wangdi2014/SibeliaZ) finds locally
// collinear blocks shared across a set of genomes, the way SibeliaZ's own
// block finder does: build a junction store over k-mer windows (junction),
// grow bubble-tolerant paths from each seed vertex outward (pathwalk,
// chooser, extender), finalize non-overlapping chains under ordered range
// locks (finalizer), dispatch the whole search across a worker pool
// (dispatch), and trim + renumber the surviving blocks before writing GFF
// coordinates and optional FASTA sequences (trim).
//
// See cmd/sibeliaz-lcb for the command-line entry point.
package sibeliaz
