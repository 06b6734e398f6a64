package types

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Letter is an ISO 286 fundamental deviation symbol such as "H", "JS" or "k".
// Upper-case symbols designate holes, lower-case symbols designate shafts.
type Letter string

// String returns the string form of the letter.
func (l Letter) String() string { return string(l) }

// Side reports whether the letter applies to a hole or a shaft.
func (l Letter) Side() Side {
	for _, r := range string(l) {
		if unicode.IsUpper(r) {
			return SideHole
		}
		return SideShaft
	}
	return SideShaft
}

// Side distinguishes internal features (holes) from external features (shafts).
type Side int

const (
	SideHole Side = iota
	SideShaft
)

// String returns "hole" or "shaft".
func (s Side) String() string {
	if s == SideHole {
		return "hole"
	}
	return "shaft"
}

// Grade is an International Tolerance grade number (the 7 in IT7).
type Grade int

// String returns the IT designation, e.g. "IT7".
func (g Grade) String() string { return "IT" + strconv.Itoa(int(g)) }

// ToleranceClass pairs a deviation letter with an IT grade. It encodes as its
// drawing form ("H7") in JSON and YAML.
type ToleranceClass struct {
	Letter Letter
	Grade  Grade
}

// String renders the drawing form of the class, e.g. "H7" or "js6".
func (c ToleranceClass) String() string {
	return string(c.Letter) + strconv.Itoa(int(c.Grade))
}

// Side reports whether the class tolerances a hole or a shaft.
func (c ToleranceClass) Side() Side { return c.Letter.Side() }

// ParseClass parses a class written as letters followed by a grade, e.g. "H7",
// "JS7" or "js5". Surrounding whitespace is ignored; letter case is significant.
func ParseClass(s string) (ToleranceClass, error) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsDigit)
	if i <= 0 {
		return ToleranceClass{}, fmt.Errorf("%w: %q", ErrMalformedClass, s)
	}
	letter, digits := s[:i], s[i:]
	for _, r := range letter {
		if !unicode.IsLetter(r) {
			return ToleranceClass{}, fmt.Errorf("%w: %q", ErrMalformedClass, s)
		}
	}
	g, err := strconv.Atoi(digits)
	if err != nil || g <= 0 {
		return ToleranceClass{}, fmt.Errorf("%w: %q", ErrMalformedClass, s)
	}
	return ToleranceClass{Letter: Letter(letter), Grade: Grade(g)}, nil
}

// MarshalText encodes the class in its drawing form.
func (c ToleranceClass) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText mirrors MarshalText.
func (c *ToleranceClass) UnmarshalText(b []byte) error {
	parsed, err := ParseClass(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
