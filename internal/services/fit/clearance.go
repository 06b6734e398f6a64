package fit

import "fitpick/internal/domain"

// Evaluate derives the clearance range of a hole/shaft pair on one axis.
// Negative values mean interference.
func Evaluate(axis domain.Axis, hole, shaft domain.DimensionLimits) domain.FitResult {
	return domain.FitResult{
		Axis:           axis,
		Hole:           hole,
		Shaft:          shaft,
		MinClearanceMM: hole.MinMM - shaft.MaxMM,
		MaxClearanceMM: hole.MaxMM - shaft.MinMM,
	}
}
