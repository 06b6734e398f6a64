package interfaces

import (
	"context"

	domaintypes "fitpick/internal/domain/types"
)

// FitCatalog resolves descriptive fit names to class pairs.
type FitCatalog interface {
	Resolve(name string) (domaintypes.FitDefinition, error)
	List() []domaintypes.FitDefinition
}

// LimitCalculator computes the absolute limits of a class at a nominal size.
type LimitCalculator interface {
	ComputeLimits(
		class domaintypes.ToleranceClass,
		nominalMM float64,
	) (domaintypes.DimensionLimits, error)
}

// FitEvaluator computes fits by name and shape.
type FitEvaluator interface {
	ComputeFit(req domaintypes.FitRequest) (domaintypes.FitReport, error)
	Sweep(nominalMM float64) ([]domaintypes.SweepEntry, error)
}

// Engine is the surface presentation layers talk to. It is implemented
// in-process and by the HTTP client, so every method takes a context.
type Engine interface {
	ResolveFit(ctx context.Context, name string) (domaintypes.FitDefinition, error)
	ListFits(ctx context.Context) ([]domaintypes.FitDefinition, error)
	ComputeLimits(
		ctx context.Context,
		class domaintypes.ToleranceClass,
		nominalMM float64,
	) (domaintypes.DimensionLimits, error)
	ComputeFit(ctx context.Context, req domaintypes.FitRequest) (domaintypes.FitReport, error)
	Sweep(ctx context.Context, nominalMM float64) ([]domaintypes.SweepEntry, error)
	Reference(ctx context.Context) (domaintypes.ReferenceInfo, error)
}
