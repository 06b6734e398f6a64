package store

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"fitpick/internal/domain"
	"fitpick/internal/iso286/deviation"
	"fitpick/internal/services/catalog"
)

// EnvTables names the environment variable holding an override path for the
// reference tables.
const EnvTables = "FITPICK_TABLES"

//go:embed reference.yaml
var embeddedReference []byte

// ErrInvalidReference wraps every validation failure of a reference document.
var ErrInvalidReference = errors.New("invalid reference data")

// Reference is the validated reference data. It is built once and never
// mutated; calculators receive the parts they need.
type Reference struct {
	Version   string
	Digest    string
	MaxSizeMM float64
	Bands     []domain.SizeBand
	ITFactors map[domain.Grade]float64
	// ShaftDeviations holds tabulated ei values in micrometres per letter and band.
	ShaftDeviations map[domain.Letter]map[domain.SizeBand]float64
	Fits            []domain.FitDefinition
}

// document mirrors reference.yaml.
type document struct {
	Version         string          `yaml:"version"`
	MaxSizeMM       float64         `yaml:"max_size_mm"`
	StepsMM         []float64       `yaml:"steps_mm"`
	BandsMM         []float64       `yaml:"bands_mm"`
	ITFactors       map[int]float64 `yaml:"it_factors"`
	ShaftDeviations []deviationRow  `yaml:"shaft_deviations"`
	Fits            []fitRow        `yaml:"fits"`
}

type deviationRow struct {
	UpToMM  float64            `yaml:"upto"`
	Microns map[string]float64 `yaml:",inline"`
}

type fitRow struct {
	Name    string                `yaml:"name"`
	Aliases []string              `yaml:"aliases"`
	Hole    domain.ToleranceClass `yaml:"hole"`
	Shaft   domain.ToleranceClass `yaml:"shaft"`
	Kind    domain.FitKind        `yaml:"kind"`
	Intent  string                `yaml:"intent"`
	Example string                `yaml:"example"`
}

// Embedded returns the raw reference document compiled into the binary.
func Embedded() []byte { return bytes.Clone(embeddedReference) }

// Load parses the reference tables at path, or the embedded tables when path
// is empty.
func Load(path string) (*Reference, error) {
	raw := embeddedReference
	if path != "" {
		b, err := readFile(path)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	return Parse(raw)
}

// Export writes the embedded reference document to path so it can be edited
// and passed back through EnvTables or --tables.
func Export(path string) error {
	return writeFile(path, embeddedReference, 0o644)
}

// Parse decodes and validates a reference document.
func Parse(raw []byte) (*Reference, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}

	bands, err := buildBands(doc)
	if err != nil {
		return nil, err
	}
	factors, err := buildFactors(doc.ITFactors)
	if err != nil {
		return nil, err
	}
	deviations, err := buildDeviations(doc.ShaftDeviations, bands)
	if err != nil {
		return nil, err
	}
	fits, err := buildFits(doc.Fits)
	if err != nil {
		return nil, err
	}

	return &Reference{
		Version:         doc.Version,
		Digest:          Digest(raw),
		MaxSizeMM:       doc.MaxSizeMM,
		Bands:           bands,
		ITFactors:       factors,
		ShaftDeviations: deviations,
		Fits:            fits,
	}, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidReference, fmt.Sprintf(format, args...))
}

// checkBounds validates a list of upper bounds ending at maxMM.
func checkBounds(name string, bounds []float64, maxMM float64) error {
	if len(bounds) == 0 {
		return invalid("%s is empty", name)
	}
	prev := 0.0
	for _, b := range bounds {
		if math.IsNaN(b) || b <= prev {
			return invalid("%s must be strictly increasing and positive, got %g after %g", name, b, prev)
		}
		prev = b
	}
	if prev != maxMM {
		return invalid("%s ends at %g, want max_size_mm %g", name, prev, maxMM)
	}
	return nil
}

func buildBands(doc document) ([]domain.SizeBand, error) {
	if !(doc.MaxSizeMM > 0) || math.IsInf(doc.MaxSizeMM, 0) {
		return nil, invalid("max_size_mm must be positive, got %g", doc.MaxSizeMM)
	}
	if err := checkBounds("steps_mm", doc.StepsMM, doc.MaxSizeMM); err != nil {
		return nil, err
	}
	if err := checkBounds("bands_mm", doc.BandsMM, doc.MaxSizeMM); err != nil {
		return nil, err
	}
	for _, s := range doc.StepsMM {
		if !slices.Contains(doc.BandsMM, s) {
			return nil, invalid("step bound %g is not a band bound", s)
		}
	}

	bands := make([]domain.SizeBand, 0, len(doc.BandsMM))
	lower, step := 0.0, 0
	for _, upper := range doc.BandsMM {
		for doc.StepsMM[step] < upper {
			step++
		}
		stepLower := 0.0
		if step > 0 {
			stepLower = doc.StepsMM[step-1]
		}
		bands = append(bands, domain.SizeBand{
			LowerMM:     lower,
			UpperMM:     upper,
			StepLowerMM: stepLower,
			StepUpperMM: doc.StepsMM[step],
		})
		lower = upper
	}
	return bands, nil
}

func buildFactors(in map[int]float64) (map[domain.Grade]float64, error) {
	if len(in) == 0 {
		return nil, invalid("it_factors is empty")
	}
	grades := make([]int, 0, len(in))
	for g := range in {
		grades = append(grades, g)
	}
	slices.Sort(grades)

	out := make(map[domain.Grade]float64, len(in))
	prev := 0.0
	for _, g := range grades {
		f := in[g]
		if g <= 0 {
			return nil, invalid("IT grade %d is not positive", g)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) || f < prev {
			return nil, invalid("IT%d factor %g must be finite and not below the previous grade's %g", g, f, prev)
		}
		out[domain.Grade(g)] = f
		prev = f
	}
	return out, nil
}

func buildDeviations(rows []deviationRow, bands []domain.SizeBand) (map[domain.Letter]map[domain.SizeBand]float64, error) {
	byUpper := make(map[float64]domain.SizeBand, len(bands))
	for _, b := range bands {
		byUpper[b.UpperMM] = b
	}

	out := make(map[domain.Letter]map[domain.SizeBand]float64)
	seen := make(map[float64]bool, len(rows))
	for _, row := range rows {
		band, ok := byUpper[row.UpToMM]
		if !ok {
			return nil, invalid("deviation row upto %g does not match a band", row.UpToMM)
		}
		if seen[row.UpToMM] {
			return nil, invalid("duplicate deviation row upto %g", row.UpToMM)
		}
		seen[row.UpToMM] = true

		for sym, um := range row.Microns {
			if math.IsNaN(um) || math.IsInf(um, 0) {
				return nil, invalid("deviation %s at %s is not finite", sym, band)
			}
			letter := domain.Letter(sym)
			if !deviation.Tabulated(letter) {
				return nil, invalid("deviation column %q: only shaft letters k to u are tabulated", sym)
			}
			if out[letter] == nil {
				out[letter] = make(map[domain.SizeBand]float64, len(bands))
			}
			out[letter][band] = um
		}
	}
	return out, nil
}

func buildFits(rows []fitRow) ([]domain.FitDefinition, error) {
	if len(rows) == 0 {
		return nil, invalid("fits is empty")
	}
	fits := make([]domain.FitDefinition, 0, len(rows))
	owners := make(map[string]string, len(rows))
	for i, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			return nil, invalid("fit %d has no name", i)
		}
		if row.Hole.Side() != domain.SideHole {
			return nil, invalid("fit %q: hole class %s uses a shaft letter", name, row.Hole)
		}
		if row.Shaft.Side() != domain.SideShaft {
			return nil, invalid("fit %q: shaft class %s uses a hole letter", name, row.Shaft)
		}
		if !row.Kind.Valid() {
			return nil, invalid("fit %q: unknown kind %q", name, row.Kind)
		}
		for _, n := range append([]string{name}, row.Aliases...) {
			key := catalog.Normalize(n)
			if key == "" {
				return nil, invalid("fit %q has an empty alias", name)
			}
			if owner, dup := owners[key]; dup {
				return nil, invalid("fit %q: %q collides with %q", name, n, owner)
			}
			owners[key] = name
		}
		fits = append(fits, domain.FitDefinition{
			Name:    name,
			Aliases: slices.Clone(row.Aliases),
			Hole:    row.Hole,
			Shaft:   row.Shaft,
			Kind:    row.Kind,
			Intent:  strings.TrimSpace(row.Intent),
			Example: strings.TrimSpace(row.Example),
		})
	}
	return fits, nil
}
