package domain

import (
	interfaces "fitpick/internal/domain/interfaces"
	types "fitpick/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Letter          = types.Letter
	Side            = types.Side
	Grade           = types.Grade
	ToleranceClass  = types.ToleranceClass
	SizeBand        = types.SizeBand
	DeviationEntry  = types.DeviationEntry
	FitKind         = types.FitKind
	FitDefinition   = types.FitDefinition
	Shape           = types.Shape
	Axis            = types.Axis
	FitRequest      = types.FitRequest
	DimensionLimits = types.DimensionLimits
	Condition       = types.Condition
	FitResult       = types.FitResult
	FitReport       = types.FitReport
	SweepEntry      = types.SweepEntry
	ReferenceInfo   = types.ReferenceInfo
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	BandResolver    = interfaces.BandResolver
	GradeCalculator = interfaces.GradeCalculator
	DeviationTable  = interfaces.DeviationTable
	FitCatalog      = interfaces.FitCatalog
	LimitCalculator = interfaces.LimitCalculator
	FitEvaluator    = interfaces.FitEvaluator
	Engine          = interfaces.Engine
)

const (
	SideHole  = types.SideHole
	SideShaft = types.SideShaft

	FitClearance    = types.FitClearance
	FitTransition   = types.FitTransition
	FitInterference = types.FitInterference

	Cylindrical = types.Cylindrical
	Rectangular = types.Rectangular

	AxisDiameter = types.AxisDiameter
	AxisWidth    = types.AxisWidth
	AxisHeight   = types.AxisHeight

	ConditionClearance    = types.ConditionClearance
	ConditionTransition   = types.ConditionTransition
	ConditionInterference = types.ConditionInterference

	CodeUnknownFitName          = types.CodeUnknownFitName
	CodeOutOfRange              = types.CodeOutOfRange
	CodeUnsupportedGrade        = types.CodeUnsupportedGrade
	CodeUnsupportedLetterOrBand = types.CodeUnsupportedLetterOrBand
	CodeImpossibleLimits        = types.CodeImpossibleLimits
	CodeMalformedClass          = types.CodeMalformedClass
	CodeUnknownShape            = types.CodeUnknownShape
	CodeBadRequest              = types.CodeBadRequest
	CodeInternal                = types.CodeInternal
)

// Error kinds; see types/errors.go.
var (
	ErrUnknownFitName          = types.ErrUnknownFitName
	ErrOutOfRange              = types.ErrOutOfRange
	ErrUnsupportedGrade        = types.ErrUnsupportedGrade
	ErrUnsupportedLetterOrBand = types.ErrUnsupportedLetterOrBand
	ErrImpossibleLimits        = types.ErrImpossibleLimits
	ErrMalformedClass          = types.ErrMalformedClass
	ErrUnknownShape            = types.ErrUnknownShape
)

// Helpers re-exported for callers that only import domain.
var (
	ParseClass   = types.ParseClass
	ParseShape   = types.ParseShape
	ErrorCode    = types.ErrorCode
	ErrorForCode = types.ErrorForCode
)
