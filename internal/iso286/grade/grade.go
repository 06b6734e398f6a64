package grade

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"fitpick/internal/domain"
)

// firstStepLowerMM replaces a zero lower bound in the geometric mean; ISO
// 286-1 computes the first step (up to 3 mm) from 1 mm and 3 mm.
const firstStepLowerMM = 1.0

// Calculator maps (grade, band) to a tolerance width in micrometres.
type Calculator struct {
	factors map[domain.Grade]float64
}

// New returns a Calculator with the given multiples of the tolerance unit.
func New(factors map[domain.Grade]float64) *Calculator {
	return &Calculator{factors: maps.Clone(factors)}
}

// Grades returns the supported grades in ascending order.
func (c *Calculator) Grades() []domain.Grade {
	return slices.Sorted(maps.Keys(c.factors))
}

// Width returns the tolerance width of grade in band, in micrometres.
func (c *Calculator) Width(grade domain.Grade, band domain.SizeBand) (float64, error) {
	factor, ok := c.factors[grade]
	if !ok {
		return 0, fmt.Errorf("%w: %s (supported: %v)", domain.ErrUnsupportedGrade, grade, c.Grades())
	}
	return math.Round(factor * ToleranceUnit(band)), nil
}

// ToleranceUnit returns i in micrometres for the band's main size step.
func ToleranceUnit(band domain.SizeBand) float64 {
	lower := band.StepLowerMM
	if lower <= 0 {
		lower = firstStepLowerMM
	}
	d := math.Sqrt(lower * band.StepUpperMM)
	return 0.45*math.Cbrt(d) + 0.001*d
}

// Compile-time assertion that Calculator implements domain.GradeCalculator.
var _ domain.GradeCalculator = (*Calculator)(nil)
