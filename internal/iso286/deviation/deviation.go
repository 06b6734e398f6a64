package deviation

import (
	"fmt"
	"math"

	"fitpick/internal/domain"
)

// Anchor says which bound of a tolerance zone the fundamental deviation fixes.
type Anchor int

const (
	AnchorLower Anchor = iota
	AnchorUpper
	AnchorSymmetric
)

// String returns "lower", "upper" or "symmetric".
func (a Anchor) String() string {
	switch a {
	case AnchorLower:
		return "lower"
	case AnchorUpper:
		return "upper"
	default:
		return "symmetric"
	}
}

type policy struct {
	anchor Anchor
	// zero marks letters whose fundamental deviation is 0 by definition.
	zero bool
	// minGrade..maxGrade bounds the grades that use the tabulated value; the
	// deviation is 0 outside. Both zero means every grade.
	minGrade, maxGrade domain.Grade
}

// letterOrder lists the supported letters: holes first, then shafts.
var letterOrder = []domain.Letter{"H", "JS", "h", "js", "k", "m", "n", "p", "r", "s", "u"}

var policies = map[domain.Letter]policy{
	"H":  {anchor: AnchorLower, zero: true},
	"JS": {anchor: AnchorSymmetric, zero: true},
	"h":  {anchor: AnchorUpper, zero: true},
	"js": {anchor: AnchorSymmetric, zero: true},
	"k":  {anchor: AnchorLower, minGrade: 4, maxGrade: 7},
	"m":  {anchor: AnchorLower},
	"n":  {anchor: AnchorLower},
	"p":  {anchor: AnchorLower},
	"r":  {anchor: AnchorLower},
	"s":  {anchor: AnchorLower},
	"u":  {anchor: AnchorLower},
}

type letterTable struct {
	policy
	microns map[domain.SizeBand]float64
}

// Table resolves deviations for the supported letters. It is immutable and
// safe for concurrent use.
type Table struct {
	letters map[domain.Letter]letterTable
}

// New builds a Table from tabulated fundamental deviations (micrometres per
// letter and band). Data for a letter without a placement rule, or for a
// letter whose deviation is fixed by definition, is rejected.
func New(tabulated map[domain.Letter]map[domain.SizeBand]float64) (*Table, error) {
	for letter := range tabulated {
		if !Tabulated(letter) {
			return nil, fmt.Errorf("deviation: letter %q has no tabulated placement rule", letter)
		}
	}

	t := &Table{letters: make(map[domain.Letter]letterTable, len(policies))}
	for letter, p := range policies {
		lt := letterTable{policy: p}
		if !p.zero {
			lt.microns = make(map[domain.SizeBand]float64, len(tabulated[letter]))
			for band, um := range tabulated[letter] {
				lt.microns[band] = um
			}
		}
		t.letters[letter] = lt
	}
	return t, nil
}

// Tabulated reports whether letter takes its fundamental deviation from
// tabulated data. Letters fixed by definition and unknown letters do not.
func Tabulated(letter domain.Letter) bool {
	p, ok := policies[letter]
	return ok && !p.zero
}

// Letters returns the letters the table can place, holes first.
func (t *Table) Letters() []domain.Letter {
	out := make([]domain.Letter, 0, len(letterOrder))
	for _, l := range letterOrder {
		if lt, ok := t.letters[l]; ok && (lt.zero || len(lt.microns) > 0) {
			out = append(out, l)
		}
	}
	return out
}

// Fundamental returns the fundamental deviation of letter in band for the
// given grade, and the bound it anchors.
func (t *Table) Fundamental(letter domain.Letter, band domain.SizeBand, grade domain.Grade) (float64, Anchor, error) {
	lt, ok := t.letters[letter]
	if !ok {
		return 0, 0, fmt.Errorf("%w: letter %q is not supported", domain.ErrUnsupportedLetterOrBand, letter)
	}
	if lt.zero {
		return 0, lt.anchor, nil
	}
	um, ok := lt.microns[band]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s over %s", domain.ErrUnsupportedLetterOrBand, letter, band)
	}
	if lt.maxGrade > 0 && (grade < lt.minGrade || grade > lt.maxGrade) {
		return 0, lt.anchor, nil
	}
	return um, lt.anchor, nil
}

// Lookup resolves both deviations of class in band for a zone widthMicrons wide.
func (t *Table) Lookup(class domain.ToleranceClass, band domain.SizeBand, widthMicrons float64) (domain.DeviationEntry, error) {
	fd, anchor, err := t.Fundamental(class.Letter, band, class.Grade)
	if err != nil {
		return domain.DeviationEntry{}, err
	}
	e := domain.DeviationEntry{Letter: class.Letter, Band: band}
	switch anchor {
	case AnchorLower:
		e.LowerMicrons = fd
		e.UpperMicrons = fd + widthMicrons
	case AnchorUpper:
		e.UpperMicrons = fd
		e.LowerMicrons = fd - widthMicrons
	case AnchorSymmetric:
		half := symmetricHalf(class.Grade, widthMicrons)
		e.UpperMicrons = half
		e.LowerMicrons = -half
	}
	return e, nil
}

// symmetricHalf returns the JS/js deviation magnitude. For IT7 to IT11 an
// odd width is rounded down to the next even micrometre first, so the
// deviations stay whole.
func symmetricHalf(grade domain.Grade, widthMicrons float64) float64 {
	if grade >= 7 && grade <= 11 && math.Mod(widthMicrons, 2) == 1 {
		return (widthMicrons - 1) / 2
	}
	return widthMicrons / 2
}

// Compile-time assertion that Table implements domain.DeviationTable.
var _ domain.DeviationTable = (*Table)(nil)
