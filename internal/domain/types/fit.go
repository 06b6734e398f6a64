package types

import (
	"fmt"
	"strings"
)

// FitKind is the catalog's intended character of a fit.
type FitKind string

const (
	FitClearance    FitKind = "clearance"
	FitTransition   FitKind = "transition"
	FitInterference FitKind = "interference"
)

// Valid reports whether k is one of the known kinds.
func (k FitKind) Valid() bool {
	switch k {
	case FitClearance, FitTransition, FitInterference:
		return true
	}
	return false
}

// FitDefinition is one immutable catalog row: a descriptive name and the
// hole-basis class pair it stands for.
type FitDefinition struct {
	Name    string         `json:"name"`
	Aliases []string       `json:"aliases,omitempty"`
	Hole    ToleranceClass `json:"hole"`
	Shaft   ToleranceClass `json:"shaft"`
	Kind    FitKind        `json:"kind"`
	Intent  string         `json:"intent,omitempty"`
	Example string         `json:"example,omitempty"`
}

// Callout returns the class pair as written on a drawing, e.g. "H7/h6".
func (d FitDefinition) Callout() string {
	return d.Hole.String() + "/" + d.Shaft.String()
}

// Shape selects the cross-section of the mating parts.
type Shape string

const (
	// Cylindrical is a shaft in a hole; one diameter axis.
	Cylindrical Shape = "cylindrical"
	// Rectangular is a plug in a slot; width and height are toleranced
	// independently.
	Rectangular Shape = "rectangular"
)

// ParseShape accepts the canonical names and a few common spellings.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cylindrical", "cyl", "round", "":
		return Cylindrical, nil
	case "rectangular", "rect", "square":
		return Rectangular, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// Axis names the dimension a FitResult belongs to.
type Axis string

const (
	AxisDiameter Axis = "diameter"
	AxisWidth    Axis = "width"
	AxisHeight   Axis = "height"
)

// FitRequest is the input of a fit computation. HeightMM is only read for
// rectangular shapes.
type FitRequest struct {
	Name     string  `json:"name"`
	Shape    Shape   `json:"shape"`
	WidthMM  float64 `json:"width_mm"`
	HeightMM float64 `json:"height_mm,omitempty"`
}
