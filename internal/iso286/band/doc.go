// Package band resolves nominal sizes to ISO 286 size bands.
//
// Bands are half-open intervals (lower, upper], following the standard's
// "over ... up to and including" wording: a size that sits exactly on a
// boundary belongs to the band below it. Bands partition (0, max] with no
// gaps or overlaps.
package band
