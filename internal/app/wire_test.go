package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"fitpick/internal/app"
	"fitpick/internal/domain"
	"fitpick/internal/remote"
	"fitpick/internal/store"
)

func TestNewWire_Local(t *testing.T) {
	w, err := app.NewWire(app.Config{SweepLimit: 2}, nil)
	require.NoError(t, err)
	require.NotNil(t, w.Local)
	require.Same(t, w.Local, w.Engine)

	ctx := context.Background()
	info, err := w.Engine.Reference(ctx)
	require.NoError(t, err)
	require.Equal(t, "iso286-2010/r1", info.Version)
	require.Equal(t, store.Digest(store.Embedded()), info.Digest)
	require.Len(t, info.Bands, 25)
	require.Equal(t, []domain.Grade{5, 6, 7, 8, 9, 10}, info.Grades)
	require.Contains(t, info.Letters, domain.Letter("u"))
	require.Equal(t, 14, info.Fits)

	def, err := w.Engine.ResolveFit(ctx, "snug")
	require.ErrorIs(t, err, domain.ErrUnknownFitName)
	def, err = w.Engine.ResolveFit(ctx, "Locational clearance (snug)")
	require.NoError(t, err)
	require.Equal(t, "Locational clearance", def.Name)

	rep, err := w.Engine.ComputeFit(ctx, domain.FitRequest{Name: def.Name, Shape: domain.Cylindrical, WidthMM: 25})
	require.NoError(t, err)
	require.Len(t, rep.Axes, 1)

	entries, err := w.Engine.Sweep(ctx, 25)
	require.NoError(t, err)
	require.Len(t, entries, info.Fits)
}

func TestNewWire_Remote(t *testing.T) {
	w, err := app.NewWire(app.Config{ServerURL: "http://127.0.0.1:1", TablesPath: "/does/not/matter"}, nil)
	require.NoError(t, err)
	require.Nil(t, w.Local)
	require.IsType(t, &remote.Client{}, w.Engine)
}

func TestNewLocalEngine_TablesOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, store.Export(path))

	e, err := app.NewLocalEngine(app.Config{TablesPath: path}, nil)
	require.NoError(t, err)
	info, err := e.Reference(context.Background())
	require.NoError(t, err)
	require.Equal(t, store.Digest(store.Embedded()), info.Digest)

	_, err = app.NewLocalEngine(app.Config{TablesPath: filepath.Join(t.TempDir(), "missing.yaml")}, nil)
	require.Error(t, err)
}
