// Package junction implements the junction storage layer that spec.md
// treats as an out-of-scope external collaborator (see SPEC_FULL.md
// "SUPPLEMENTED FEATURE"): vertex/edge access, per-chromosome sequential
// iterators, the Assignment table soft-lock, the permanent per-position
// used flag, and per-chromosome range locking.
//
// Store is built once from a set of input chromosomes and a k-mer size; it
// is then read concurrently by many block-finding workers (package
// dispatch) for the lifetime of one dispatch.Run call.
package junction
