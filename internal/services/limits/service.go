package limits

import (
	"fmt"

	"fitpick/internal/domain"
)

const micronsPerMM = 1000.0

// Service computes DimensionLimits from the band, grade and deviation tables.
type Service struct {
	bands      domain.BandResolver
	grades     domain.GradeCalculator
	deviations domain.DeviationTable
}

// New returns a limit calculator backed by the given tables.
func New(bands domain.BandResolver, grades domain.GradeCalculator, deviations domain.DeviationTable) *Service {
	return &Service{bands: bands, grades: grades, deviations: deviations}
}

// ComputeLimits returns the limits of class at nominalMM.
//
// Min = nominal + lower deviation and Max = nominal + upper deviation. For a
// hole letter this is min = nominal + EI, max = min + IT; for shaft letters
// the anchor policy of the deviation table decides which bound is fixed.
func (s *Service) ComputeLimits(class domain.ToleranceClass, nominalMM float64) (domain.DimensionLimits, error) {
	band, err := s.bands.Resolve(nominalMM)
	if err != nil {
		return domain.DimensionLimits{}, err
	}
	width, err := s.grades.Width(class.Grade, band)
	if err != nil {
		return domain.DimensionLimits{}, err
	}
	dev, err := s.deviations.Lookup(class, band, width)
	if err != nil {
		return domain.DimensionLimits{}, err
	}

	l := domain.DimensionLimits{
		Class:            class,
		Band:             band,
		NominalMM:        nominalMM,
		MinMM:            nominalMM + dev.LowerMicrons/micronsPerMM,
		MaxMM:            nominalMM + dev.UpperMicrons/micronsPerMM,
		ToleranceMicrons: width,
	}
	if !(l.MaxMM >= l.MinMM) {
		return domain.DimensionLimits{}, fmt.Errorf("%w: %s at %g mm gives max %g < min %g",
			domain.ErrImpossibleLimits, class, nominalMM, l.MaxMM, l.MinMM)
	}
	return l, nil
}

// Compile-time assertion that Service implements domain.LimitCalculator.
var _ domain.LimitCalculator = (*Service)(nil)
