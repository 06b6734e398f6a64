package types

import (
	"fmt"
	"strings"
)

// DeviationEntry holds the resolved upper and lower deviations of a letter in
// one size band, in micrometres. Positive values lie above nominal size.
type DeviationEntry struct {
	Letter       Letter   `json:"letter"`
	Band         SizeBand `json:"band"`
	UpperMicrons float64  `json:"upper_um"`
	LowerMicrons float64  `json:"lower_um"`
}

// DimensionLimits are the absolute limits of one toleranced feature.
// MaxMM is never below MinMM.
type DimensionLimits struct {
	Class            ToleranceClass `json:"class"`
	Band             SizeBand       `json:"band"`
	NominalMM        float64        `json:"nominal_mm"`
	MaxMM            float64        `json:"max_mm"`
	MinMM            float64        `json:"min_mm"`
	ToleranceMicrons float64        `json:"tolerance_um"`
}

// Condition is the fit actually realised by a pair of limits.
type Condition string

const (
	ConditionClearance    Condition = "clearance"
	ConditionTransition   Condition = "transition"
	ConditionInterference Condition = "interference"
)

// FitResult is the evaluation of one axis. Negative clearances are
// interference.
type FitResult struct {
	Axis           Axis            `json:"axis"`
	Hole           DimensionLimits `json:"hole"`
	Shaft          DimensionLimits `json:"shaft"`
	MinClearanceMM float64         `json:"min_clearance_mm"`
	MaxClearanceMM float64         `json:"max_clearance_mm"`
}

// Condition classifies the result: clearance when the tightest pairing still
// leaves a gap, interference when even the loosest pairing overlaps.
func (r FitResult) Condition() Condition {
	switch {
	case r.MinClearanceMM >= 0:
		return ConditionClearance
	case r.MaxClearanceMM < 0:
		return ConditionInterference
	default:
		return ConditionTransition
	}
}

// FitReport is the outcome of a fit computation: one axis for cylindrical
// shapes, width then height for rectangular ones.
type FitReport struct {
	Fit   FitDefinition `json:"fit"`
	Shape Shape         `json:"shape"`
	Axes  []FitResult   `json:"axes"`
}

// Callout renders the drawing callout, e.g. "⌀25.000 H7/h6".
func (r FitReport) Callout() string {
	callout := r.Fit.Callout()
	if r.Shape == Cylindrical && len(r.Axes) == 1 {
		return fmt.Sprintf("⌀%.3f %s", r.Axes[0].Hole.NominalMM, callout)
	}
	parts := make([]string, 0, len(r.Axes))
	for _, a := range r.Axes {
		parts = append(parts, fmt.Sprintf("%s %.3f %s", strings.ToUpper(string(a.Axis)[:1]), a.Hole.NominalMM, callout))
	}
	return strings.Join(parts, " × ")
}

// SweepEntry is one row of a catalog-wide evaluation at a single size.
type SweepEntry struct {
	Fit    FitDefinition `json:"fit"`
	Result FitResult     `json:"result"`
}

// ReferenceInfo describes the loaded reference tables.
type ReferenceInfo struct {
	Version   string     `json:"version"`
	Digest    string     `json:"digest"`
	MaxSizeMM float64    `json:"max_size_mm"`
	Bands     []SizeBand `json:"bands"`
	Grades    []Grade    `json:"grades"`
	Letters   []Letter   `json:"letters"`
	Fits      int        `json:"fits"`
}
