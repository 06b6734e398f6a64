package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"fitpick/internal/domain"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// signedMM renders a clearance with an explicit sign, e.g. "+0.034".
func signedMM(v float64) string {
	if v == 0 {
		v = 0 // drop negative zero
	}
	return fmt.Sprintf("%+.3f", v)
}

func limitsRange(l domain.DimensionLimits) string {
	return fmt.Sprintf("%.3f – %.3f", l.MinMM, l.MaxMM)
}

// parseMM reads a size in millimetres. A single decimal comma ("25,4") is
// accepted as well as a point.
func parseMM(arg string) (float64, error) {
	s := strings.TrimSpace(arg)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a size in millimetres", arg)
	}
	return v, nil
}
