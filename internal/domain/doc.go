// Package domain defines the data model and contracts of the fit engine.
// It contains plain types (classes, bands, limits, results), the error kinds
// and the interfaces between calculators, services and presentation layers.
package domain
