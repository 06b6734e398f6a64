package band

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"fitpick/internal/domain"
)

// Resolver finds the band containing a nominal size. It is immutable and safe
// for concurrent use.
type Resolver struct {
	bands []domain.SizeBand
}

// New returns a Resolver over bands, which must be ordered and contiguous
// from 0. It returns an error otherwise.
func New(bands []domain.SizeBand) (*Resolver, error) {
	if len(bands) == 0 {
		return nil, fmt.Errorf("band: no size bands")
	}
	prev := 0.0
	for _, b := range bands {
		if b.LowerMM != prev || b.UpperMM <= b.LowerMM {
			return nil, fmt.Errorf("band: %s does not continue from %g mm", b, prev)
		}
		prev = b.UpperMM
	}
	return &Resolver{bands: slices.Clone(bands)}, nil
}

// MaxSizeMM is the largest supported nominal size.
func (r *Resolver) MaxSizeMM() float64 { return r.bands[len(r.bands)-1].UpperMM }

// Bands returns a copy of the bands in ascending order.
func (r *Resolver) Bands() []domain.SizeBand { return slices.Clone(r.bands) }

// Resolve returns the unique band with lower < nominalMM <= upper.
func (r *Resolver) Resolve(nominalMM float64) (domain.SizeBand, error) {
	if math.IsNaN(nominalMM) || nominalMM <= 0 || nominalMM > r.MaxSizeMM() {
		return domain.SizeBand{}, fmt.Errorf("%w: %g mm (supported: over 0 up to %g mm)",
			domain.ErrOutOfRange, nominalMM, r.MaxSizeMM())
	}
	// First band whose upper bound reaches the size.
	i := sort.Search(len(r.bands), func(i int) bool { return r.bands[i].UpperMM >= nominalMM })
	return r.bands[i], nil
}

// Compile-time assertion that Resolver implements domain.BandResolver.
var _ domain.BandResolver = (*Resolver)(nil)
