package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fitpick/internal/domain"
	"fitpick/internal/services/catalog"
	"fitpick/internal/store"
)

func newCatalog(t *testing.T) *catalog.Service {
	t.Helper()
	ref, err := store.Load("")
	require.NoError(t, err)
	c, err := catalog.New(ref.Fits)
	require.NoError(t, err)
	return c
}

func TestResolve_NamesAndAliases(t *testing.T) {
	c := newCatalog(t)
	cases := map[string]string{
		"Locational clearance":           "Locational clearance",
		"locational clearance":           "Locational clearance",
		"  LOCATIONAL\tclearance  ":      "Locational clearance",
		"Locational clearance (snug)":    "Locational clearance",
		"Force / shrink":                 "Force",
		"shrink":                         "Force",
		"Ｆｏｒｃｅ":                          "Force",
		"Interference (separable press)": "Separable press",
		"Transition (near interference)": "Near-interference transition",
		"medium drive":                   "Medium drive",
	}
	for in, want := range cases {
		def, err := c.Resolve(in)
		require.NoError(t, err, "%q", in)
		require.Equal(t, want, def.Name, "%q", in)
	}
}

func TestResolve_ClassPairs(t *testing.T) {
	c := newCatalog(t)
	cases := map[string]string{
		"Loose running":                "H9/h9",
		"Locational clearance":         "H7/h6",
		"Locational transition":        "JS7/js5",
		"Medium drive":                 "H7/s6",
		"Force":                        "H7/u6",
		"Precision sliding":            "H6/js5",
		"Very tight clearance":         "H6/h6",
		"Separable press":              "H7/p6",
		"Near-interference transition": "H7/n6",
	}
	for name, want := range cases {
		def, err := c.Resolve(name)
		require.NoError(t, err)
		require.Equal(t, want, def.Callout(), name)
	}
}

func TestResolve_Unknown(t *testing.T) {
	c := newCatalog(t)
	for _, name := range []string{"", "   ", "loose", "H7/h6", "Locational clearance snug"} {
		_, err := c.Resolve(name)
		require.ErrorIs(t, err, domain.ErrUnknownFitName, "%q", name)
	}
}

func TestList_OrderAndIsolation(t *testing.T) {
	c := newCatalog(t)
	fits := c.List()
	require.Len(t, fits, 14)
	require.Equal(t, "Loose running", fits[0].Name)
	require.Equal(t, "Force", fits[len(fits)-1].Name)

	fits[0].Name = "mutated"
	fits[len(fits)-1].Aliases[0] = "mutated"
	again := c.List()
	require.Equal(t, "Loose running", again[0].Name)
	require.Equal(t, "Force / shrink", again[len(again)-1].Aliases[0])
}

func TestNew_Collisions(t *testing.T) {
	h7 := domain.ToleranceClass{Letter: "H", Grade: 7}
	h6 := domain.ToleranceClass{Letter: "h", Grade: 6}

	_, err := catalog.New([]domain.FitDefinition{
		{Name: "Snug", Hole: h7, Shaft: h6, Kind: domain.FitClearance},
		{Name: "Other", Aliases: []string{"SNUG"}, Hole: h7, Shaft: h6, Kind: domain.FitClearance},
	})
	require.Error(t, err)

	_, err = catalog.New([]domain.FitDefinition{
		{Name: "Snug", Aliases: []string{" "}, Hole: h7, Shaft: h6, Kind: domain.FitClearance},
	})
	require.Error(t, err)
}

func TestNormalize(t *testing.T) {
	require.Equal(t, catalog.Normalize("Force / Shrink"), catalog.Normalize("  force   /  shrink "))
	require.Equal(t, "force", catalog.Normalize("ＦＯＲＣＥ"))
}
