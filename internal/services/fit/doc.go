// Package fit evaluates named fits.
//
// ComputeFit resolves a fit name through the catalog, computes hole and shaft
// limits for each axis of the requested shape, and derives the clearance range
// of every axis with Evaluate. A cylindrical fit has one axis (the diameter); a
// rectangular plug in a slot has two, width and height, each computed from its
// own nominal size and never combined.
//
// Sweep evaluates the whole catalog at one diameter, fanning the catalog out
// over a bounded worker group. Each computation only reads immutable tables,
// so no locking is involved.
package fit
