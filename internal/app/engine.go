package app

import (
	"context"

	"fitpick/internal/domain"
	"fitpick/internal/store"
)

// LocalEngine serves domain.Engine from in-process services. Computations are
// synchronous and never block, so contexts are accepted but not consulted.
type LocalEngine struct {
	ref     *store.Reference
	bands   domain.BandResolver
	grades  domain.GradeCalculator
	devs    domain.DeviationTable
	catalog domain.FitCatalog
	limits  domain.LimitCalculator
	fits    domain.FitEvaluator
}

func (e *LocalEngine) ResolveFit(_ context.Context, name string) (domain.FitDefinition, error) {
	return e.catalog.Resolve(name)
}

func (e *LocalEngine) ListFits(context.Context) ([]domain.FitDefinition, error) {
	return e.catalog.List(), nil
}

func (e *LocalEngine) ComputeLimits(_ context.Context, class domain.ToleranceClass, nominalMM float64) (domain.DimensionLimits, error) {
	return e.limits.ComputeLimits(class, nominalMM)
}

func (e *LocalEngine) ComputeFit(_ context.Context, req domain.FitRequest) (domain.FitReport, error) {
	return e.fits.ComputeFit(req)
}

func (e *LocalEngine) Sweep(_ context.Context, nominalMM float64) ([]domain.SweepEntry, error) {
	return e.fits.Sweep(nominalMM)
}

// Reference describes the loaded tables.
func (e *LocalEngine) Reference(context.Context) (domain.ReferenceInfo, error) {
	return domain.ReferenceInfo{
		Version:   e.ref.Version,
		Digest:    e.ref.Digest,
		MaxSizeMM: e.ref.MaxSizeMM,
		Bands:     e.bands.Bands(),
		Grades:    e.grades.Grades(),
		Letters:   e.devs.Letters(),
		Fits:      len(e.catalog.List()),
	}, nil
}

var _ domain.Engine = (*LocalEngine)(nil)
