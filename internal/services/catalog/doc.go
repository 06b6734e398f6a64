// Package catalog resolves descriptive fit names to hole/shaft class pairs.
//
// Names are matched after normalisation: surrounding whitespace is trimmed,
// internal runs of whitespace collapse to one space, and the text is NFKC
// normalised and case-folded. "  locational   CLEARANCE " therefore finds
// "Locational clearance". Aliases are matched the same way.
package catalog
