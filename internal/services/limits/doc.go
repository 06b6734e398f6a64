// Package limits turns a tolerance class and a nominal size into absolute
// dimensional limits.
//
// The size band, IT width and deviations come from injected calculators, so
// the same code runs against the shipped ISO tables or against substitute
// tables in tests.
package limits
