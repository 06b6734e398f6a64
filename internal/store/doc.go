// Package store loads the ISO 286 reference tables used by the fit engine.
//
// The tables ship as an embedded YAML document (reference.yaml). A different
// document can be supplied by path, which lets a shop pin its own table
// revision or a test substitute small tables. Parse validates the document
// and returns an immutable Reference:
//
//   - size bands (over/up-to bounds) together with the main ISO size steps
//   - IT grade factors, non-decreasing in grade
//   - tabulated shaft fundamental deviations (ei) keyed by letter and band
//   - the fit catalog
//
// Every Reference carries a short BLAKE2b digest of the raw document so that
// results can be tied to the exact table revision that produced them.
package store
