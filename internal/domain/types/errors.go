package types

import "errors"

var (
	// ErrUnknownFitName is returned when no catalog entry matches a fit name.
	ErrUnknownFitName = errors.New("unknown fit name")
	// ErrOutOfRange is returned for nominal sizes outside (0, max supported size].
	ErrOutOfRange = errors.New("nominal size out of range")
	// ErrUnsupportedGrade is returned for IT grades without a tolerance factor.
	ErrUnsupportedGrade = errors.New("unsupported IT grade")
	// ErrUnsupportedLetterOrBand is returned when no fundamental deviation is
	// published for a letter in a size band.
	ErrUnsupportedLetterOrBand = errors.New("no fundamental deviation for letter and size band")
	// ErrImpossibleLimits signals max < min after a computation, which can only
	// come from a defect in the tables or formulas.
	ErrImpossibleLimits = errors.New("computed limits are inconsistent")
	// ErrMalformedClass is returned when a tolerance class string cannot be parsed.
	ErrMalformedClass = errors.New("malformed tolerance class")
	// ErrUnknownShape is returned for shapes other than cylindrical and rectangular.
	ErrUnknownShape = errors.New("unknown shape")
)

// Wire codes for the error kinds, shared by the HTTP API and its client.
const (
	CodeUnknownFitName          = "unknown_fit_name"
	CodeOutOfRange              = "out_of_range"
	CodeUnsupportedGrade        = "unsupported_grade"
	CodeUnsupportedLetterOrBand = "unsupported_letter_or_band"
	CodeImpossibleLimits        = "impossible_limits"
	CodeMalformedClass          = "malformed_class"
	CodeUnknownShape            = "unknown_shape"
	CodeBadRequest              = "bad_request"
	CodeInternal                = "internal"
)

var codes = []struct {
	code string
	err  error
}{
	{CodeUnknownFitName, ErrUnknownFitName},
	{CodeOutOfRange, ErrOutOfRange},
	{CodeUnsupportedGrade, ErrUnsupportedGrade},
	{CodeUnsupportedLetterOrBand, ErrUnsupportedLetterOrBand},
	{CodeImpossibleLimits, ErrImpossibleLimits},
	{CodeMalformedClass, ErrMalformedClass},
	{CodeUnknownShape, ErrUnknownShape},
}

// ErrorCode returns the wire code of the error kind wrapped by err, or
// CodeInternal when err matches none of them.
func ErrorCode(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternal
}

// ErrorForCode maps a wire code back to its sentinel; unknown codes yield nil.
func ErrorForCode(code string) error {
	for _, c := range codes {
		if c.code == code {
			return c.err
		}
	}
	return nil
}
