package types

import "fmt"

// SizeBand is an ISO 286 nominal size range (LowerMM, UpperMM], read "over
// LowerMM up to and including UpperMM". StepLowerMM and StepUpperMM bound the
// main size step the band belongs to; intermediate bands such as 10–14 and
// 14–18 share the 10–18 step.
type SizeBand struct {
	LowerMM     float64 `json:"lower_mm"`
	UpperMM     float64 `json:"upper_mm"`
	StepLowerMM float64 `json:"step_lower_mm"`
	StepUpperMM float64 `json:"step_upper_mm"`
}

// Contains reports whether nominalMM lies in (LowerMM, UpperMM].
func (b SizeBand) Contains(nominalMM float64) bool {
	return nominalMM > b.LowerMM && nominalMM <= b.UpperMM
}

// String renders the band as "24–30 mm".
func (b SizeBand) String() string {
	return fmt.Sprintf("%g–%g mm", b.LowerMM, b.UpperMM)
}
