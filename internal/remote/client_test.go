package remote_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"fitpick/internal/app"
	"fitpick/internal/domain"
	fitHTTP "fitpick/internal/http"
	httpH "fitpick/internal/http/handlers"
	"fitpick/internal/remote"
)

func setup(t *testing.T) (*app.LocalEngine, *remote.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	local, err := app.NewLocalEngine(app.Config{SweepLimit: 4}, nil)
	require.NoError(t, err)
	srv := httptest.NewServer(fitHTTP.NewRouter(fitHTTP.RouterConfig{
		FitHandler:    httpH.NewFitHandler(local),
		HealthHandler: httpH.NewHealthHandler(),
	}))
	t.Cleanup(srv.Close)
	return local, remote.New(srv.URL, srv.Client())
}

func TestRoundTrip_Results(t *testing.T) {
	local, client := setup(t)
	ctx := context.Background()

	req := domain.FitRequest{Name: "Locational clearance", Shape: domain.Rectangular, WidthMM: 25, HeightMM: 40}
	want, err := local.ComputeFit(ctx, req)
	require.NoError(t, err)
	got, err := client.ComputeFit(ctx, req)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ComputeFit (-local +remote):\n%s", diff)
	}

	wantLim, err := local.ComputeLimits(ctx, domain.ToleranceClass{Letter: "js", Grade: 6}, 12.5)
	require.NoError(t, err)
	gotLim, err := client.ComputeLimits(ctx, domain.ToleranceClass{Letter: "js", Grade: 6}, 12.5)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(wantLim, gotLim))

	wantSweep, err := local.Sweep(ctx, 80)
	require.NoError(t, err)
	gotSweep, err := client.Sweep(ctx, 80)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(wantSweep, gotSweep))

	wantFits, err := local.ListFits(ctx)
	require.NoError(t, err)
	gotFits, err := client.ListFits(ctx)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(wantFits, gotFits))

	def, err := client.ResolveFit(ctx, "Force / shrink")
	require.NoError(t, err)
	require.Equal(t, "Force", def.Name)

	wantInfo, err := local.Reference(ctx)
	require.NoError(t, err)
	gotInfo, err := client.Reference(ctx)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(wantInfo, gotInfo))
}

func TestRoundTrip_EmptyShape(t *testing.T) {
	local, client := setup(t)
	ctx := context.Background()

	req := domain.FitRequest{Name: "Sliding", WidthMM: 25}
	want, err := local.ComputeFit(ctx, req)
	require.NoError(t, err)
	got, err := client.ComputeFit(ctx, req)
	require.NoError(t, err)
	require.Equal(t, domain.Cylindrical, got.Shape)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ComputeFit (-local +remote):\n%s", diff)
	}
}

func TestRoundTrip_ErrorKinds(t *testing.T) {
	_, client := setup(t)
	ctx := context.Background()

	_, err := client.ResolveFit(ctx, "wobbly")
	require.ErrorIs(t, err, domain.ErrUnknownFitName)

	_, err = client.ComputeFit(ctx, domain.FitRequest{Name: "Sliding", Shape: domain.Cylindrical, WidthMM: 0})
	require.ErrorIs(t, err, domain.ErrOutOfRange)

	_, err = client.ComputeLimits(ctx, domain.ToleranceClass{Letter: "H", Grade: 3}, 25)
	require.ErrorIs(t, err, domain.ErrUnsupportedGrade)

	_, err = client.ComputeLimits(ctx, domain.ToleranceClass{Letter: "e", Grade: 8}, 25)
	require.ErrorIs(t, err, domain.ErrUnsupportedLetterOrBand)

	_, err = client.Sweep(ctx, 1000)
	require.ErrorIs(t, err, domain.ErrOutOfRange)

	var rerr *remote.Error
	require.True(t, errors.As(err, &rerr))
	require.Equal(t, http.StatusBadRequest, rerr.Status)
	require.Equal(t, domain.CodeOutOfRange, rerr.Code)
}

func TestNonEnvelopeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := remote.New(srv.URL, nil).ListFits(context.Background())
	var rerr *remote.Error
	require.True(t, errors.As(err, &rerr))
	require.Equal(t, http.StatusBadGateway, rerr.Status)
	require.Equal(t, domain.CodeInternal, rerr.Code)
	require.Nil(t, errors.Unwrap(err))
}

func TestContextCancelled(t *testing.T) {
	_, client := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.ListFits(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
