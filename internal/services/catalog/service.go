package catalog

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"fitpick/internal/domain"
)

// Service is an immutable fit catalog.
type Service struct {
	fits  []domain.FitDefinition
	index map[string]int
}

// New returns a catalog over fits. Names and aliases must be unique after
// normalisation.
func New(fits []domain.FitDefinition) (*Service, error) {
	s := &Service{
		fits:  make([]domain.FitDefinition, 0, len(fits)),
		index: make(map[string]int, len(fits)),
	}
	for i, f := range fits {
		f.Aliases = slices.Clone(f.Aliases)
		for _, name := range append([]string{f.Name}, f.Aliases...) {
			key := Normalize(name)
			if key == "" {
				return nil, fmt.Errorf("catalog: fit %d has an empty name or alias", i)
			}
			if prev, dup := s.index[key]; dup {
				return nil, fmt.Errorf("catalog: %q of %q collides with %q", name, f.Name, s.fits[prev].Name)
			}
			s.index[key] = i
		}
		s.fits = append(s.fits, f)
	}
	return s, nil
}

// Resolve returns the fit whose name or alias matches name.
func (s *Service) Resolve(name string) (domain.FitDefinition, error) {
	i, ok := s.index[Normalize(name)]
	if !ok {
		return domain.FitDefinition{}, fmt.Errorf("%w: %q", domain.ErrUnknownFitName, strings.TrimSpace(name))
	}
	return clone(s.fits[i]), nil
}

// List returns every fit in catalog order.
func (s *Service) List() []domain.FitDefinition {
	out := make([]domain.FitDefinition, len(s.fits))
	for i, f := range s.fits {
		out[i] = clone(f)
	}
	return out
}

// Normalize returns the lookup key for a fit name.
func Normalize(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	return cases.Fold().String(norm.NFKC.String(name))
}

func clone(f domain.FitDefinition) domain.FitDefinition {
	f.Aliases = slices.Clone(f.Aliases)
	return f
}

// Compile-time assertion that Service implements domain.FitCatalog.
var _ domain.FitCatalog = (*Service)(nil)
