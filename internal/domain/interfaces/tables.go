package interfaces

import domaintypes "fitpick/internal/domain/types"

// BandResolver maps a nominal size to its ISO size band.
type BandResolver interface {
	Resolve(nominalMM float64) (domaintypes.SizeBand, error)
	Bands() []domaintypes.SizeBand
}

// GradeCalculator computes the IT tolerance width of a grade in a band.
type GradeCalculator interface {
	Width(grade domaintypes.Grade, band domaintypes.SizeBand) (float64, error)
	Grades() []domaintypes.Grade
}

// DeviationTable resolves the deviations of a tolerance class in a band, given
// the class's IT width in micrometres.
type DeviationTable interface {
	Lookup(
		class domaintypes.ToleranceClass,
		band domaintypes.SizeBand,
		widthMicrons float64,
	) (domaintypes.DeviationEntry, error)
	Letters() []domaintypes.Letter
}
