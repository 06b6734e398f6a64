package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"fitpick/internal/domain"
	"fitpick/internal/store"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(store.EnvTables, "")
	t.Setenv("FITPICK_SERVER", "")
	t.Setenv("FITPICK_LOG_MODE", "")

	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFit_Text(t *testing.T) {
	out, err := run(t, "fit", "locational", "clearance", "--diameter", "25")
	require.NoError(t, err)
	require.Contains(t, out, "Locational clearance (H7/h6, clearance)")
	require.Contains(t, out, "⌀25.000 H7/h6")
	require.Contains(t, out, "25.000 – 25.021")
	require.Contains(t, out, "+0.034")
}

func TestFit_RectangularJSON(t *testing.T) {
	out, err := run(t, "fit", "Force", "--shape", "rect", "--width", "25", "--height", "40", "-o", "json")
	require.NoError(t, err)

	var rep domain.FitReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Equal(t, domain.Rectangular, rep.Shape)
	require.Len(t, rep.Axes, 2)
	require.Less(t, rep.Axes[0].MaxClearanceMM, 0.0)
}

func TestFit_Errors(t *testing.T) {
	_, err := run(t, "fit", "wobbly", "--diameter", "25")
	require.ErrorIs(t, err, domain.ErrUnknownFitName)

	_, err = run(t, "fit", "Sliding", "--shape", "rectangular", "--width", "25")
	require.Error(t, err)

	_, err = run(t, "fit", "Sliding", "--shape", "oval", "--width", "25")
	require.ErrorIs(t, err, domain.ErrUnknownShape)

	_, err = run(t, "fit", "Sliding")
	require.Error(t, err)

	_, err = run(t, "fit", "Sliding", "--diameter", "25", "--height", "40")
	require.ErrorContains(t, err, "--height only applies to rectangular shapes")
}

func TestLimits(t *testing.T) {
	out, err := run(t, "limits", "s6", "25")
	require.NoError(t, err)
	require.Contains(t, out, "s6 at 25 mm (24–30 mm)")
	require.Contains(t, out, "max       25.048")
	require.Contains(t, out, "min       25.035")

	_, err = run(t, "limits", "6s", "25")
	require.ErrorIs(t, err, domain.ErrMalformedClass)

	_, err = run(t, "limits", "H7", "lots")
	require.Error(t, err)
}

func TestLimits_DecimalComma(t *testing.T) {
	out, err := run(t, "limits", "H7", "25,4")
	require.NoError(t, err)
	require.Contains(t, out, "H7 at 25.4 mm (24–30 mm)")
	require.Contains(t, out, "max       25.421")

	_, err = run(t, "limits", "H7", "1,025,4")
	require.Error(t, err)
	_, err = run(t, "limits", "H7", "1,025.4")
	require.Error(t, err)
}

func TestFitsAndSweep(t *testing.T) {
	out, err := run(t, "fits")
	require.NoError(t, err)
	require.Equal(t, 15, len(strings.Split(strings.TrimSpace(out), "\n")))
	require.Contains(t, out, "Force / shrink; Shrink")

	out, err = run(t, "sweep", "25", "--output", "json")
	require.NoError(t, err)
	var entries []domain.SweepEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 14)
}

func TestTables(t *testing.T) {
	out, err := run(t, "tables")
	require.NoError(t, err)
	require.Contains(t, out, "iso286-2010/r1")
	require.Contains(t, out, "IT5 IT6 IT7 IT8 IT9 IT10")
	require.Contains(t, out, "up to 500 mm in 25 bands")

	path := filepath.Join(t.TempDir(), "tables.yaml")
	_, err = run(t, "tables", "--export", path)
	require.NoError(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, store.Embedded(), b)

	out, err = run(t, "--tables", path, "tables", "-o", "json")
	require.NoError(t, err)
	var info domain.ReferenceInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	require.Equal(t, store.Digest(b), info.Digest)
}

func TestOutputFlagValidated(t *testing.T) {
	_, err := run(t, "fits", "--output", "yaml")
	require.Error(t, err)
}
