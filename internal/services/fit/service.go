package fit

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"fitpick/internal/domain"
	"fitpick/internal/logger"
)

// Options tunes a Service.
type Options struct {
	// SweepLimit caps concurrent evaluations in Sweep; 0 or less means one
	// worker per catalog entry.
	SweepLimit int
}

// DefaultOptions returns Options with SweepLimit=4.
func DefaultOptions() Options {
	return Options{SweepLimit: 4}
}

// Service computes fits from a catalog and a limit calculator.
type Service struct {
	catalog domain.FitCatalog
	limits  domain.LimitCalculator
	log     *logger.Logger
	opts    Options
}

// New returns a fit service. A nil log discards output.
func New(catalog domain.FitCatalog, limits domain.LimitCalculator, log *logger.Logger, opts Options) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{catalog: catalog, limits: limits, log: log, opts: opts}
}

type axisSize struct {
	axis domain.Axis
	mm   float64
}

// ComputeFit evaluates the named fit for the requested shape. It returns
// either a complete report or an error, never a partial report.
func (s *Service) ComputeFit(req domain.FitRequest) (domain.FitReport, error) {
	def, err := s.catalog.Resolve(req.Name)
	if err != nil {
		return domain.FitReport{}, err
	}

	// An unset shape means a round part, as it does on the wire.
	if req.Shape == "" {
		req.Shape = domain.Cylindrical
	}

	var axes []axisSize
	switch req.Shape {
	case domain.Cylindrical:
		axes = []axisSize{{domain.AxisDiameter, req.WidthMM}}
	case domain.Rectangular:
		axes = []axisSize{{domain.AxisWidth, req.WidthMM}, {domain.AxisHeight, req.HeightMM}}
	default:
		return domain.FitReport{}, fmt.Errorf("%w: %q", domain.ErrUnknownShape, req.Shape)
	}

	results := make([]domain.FitResult, 0, len(axes))
	for _, a := range axes {
		r, err := s.evaluate(def, a.axis, a.mm)
		if err != nil {
			return domain.FitReport{}, fmt.Errorf("%s axis: %w", a.axis, err)
		}
		results = append(results, r)
	}

	s.log.Debug("fit computed",
		"fit", def.Name,
		"callout", def.Callout(),
		"shape", req.Shape,
		"axes", len(results),
	)
	return domain.FitReport{Fit: def, Shape: req.Shape, Axes: results}, nil
}

// Sweep evaluates every catalog fit at one diameter. Entries follow catalog
// order; the first failure aborts the sweep.
func (s *Service) Sweep(nominalMM float64) ([]domain.SweepEntry, error) {
	fits := s.catalog.List()
	out := make([]domain.SweepEntry, len(fits))

	var g errgroup.Group
	if s.opts.SweepLimit > 0 {
		g.SetLimit(s.opts.SweepLimit)
	}
	for i, def := range fits {
		g.Go(func() error {
			r, err := s.evaluate(def, domain.AxisDiameter, nominalMM)
			if err != nil {
				return fmt.Errorf("%s: %w", def.Name, err)
			}
			out[i] = domain.SweepEntry{Fit: def, Result: r}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Debug("sweep computed", "nominal_mm", nominalMM, "fits", len(out))
	return out, nil
}

func (s *Service) evaluate(def domain.FitDefinition, axis domain.Axis, nominalMM float64) (domain.FitResult, error) {
	hole, err := s.limits.ComputeLimits(def.Hole, nominalMM)
	if err != nil {
		return domain.FitResult{}, fmt.Errorf("hole %s: %w", def.Hole, err)
	}
	shaft, err := s.limits.ComputeLimits(def.Shaft, nominalMM)
	if err != nil {
		return domain.FitResult{}, fmt.Errorf("shaft %s: %w", def.Shaft, err)
	}
	return Evaluate(axis, hole, shaft), nil
}

// Compile-time assertion that Service implements domain.FitEvaluator.
var _ domain.FitEvaluator = (*Service)(nil)
