package app

import (
	"fmt"
	"net/http"

	"fitpick/internal/domain"
	"fitpick/internal/iso286/band"
	"fitpick/internal/iso286/deviation"
	"fitpick/internal/iso286/grade"
	"fitpick/internal/logger"
	"fitpick/internal/remote"
	"fitpick/internal/services/catalog"
	"fitpick/internal/services/fit"
	"fitpick/internal/services/limits"
	"fitpick/internal/store"
)

// Wire bundles the engine and its collaborators for the CLI and the server.
type Wire struct {
	Engine domain.Engine
	// Local is nil when Engine talks to a remote server.
	Local *LocalEngine
	Log   *logger.Logger
	HTTP  *http.Client
}

// NewWire constructs the dependency graph from cfg. A nil log discards output.
// With cfg.ServerURL set no tables are loaded; every call goes to the server.
func NewWire(cfg Config, log *logger.Logger) (*Wire, error) {
	if log == nil {
		log = logger.NewNop()
	}
	httpClient := cfg.httpClient()

	if cfg.ServerURL != "" {
		log.Debug("using remote engine", "server", cfg.ServerURL)
		return &Wire{
			Engine: remote.New(cfg.ServerURL, httpClient),
			Log:    log,
			HTTP:   httpClient,
		}, nil
	}

	local, err := NewLocalEngine(cfg, log)
	if err != nil {
		return nil, err
	}
	return &Wire{Engine: local, Local: local, Log: log, HTTP: httpClient}, nil
}

// NewLocalEngine loads the reference tables named by cfg and builds the
// in-process engine.
func NewLocalEngine(cfg Config, log *logger.Logger) (*LocalEngine, error) {
	if log == nil {
		log = logger.NewNop()
	}
	ref, err := store.Load(cfg.TablesPath)
	if err != nil {
		return nil, fmt.Errorf("load reference tables: %w", err)
	}
	log.Debug("reference tables loaded",
		"version", ref.Version,
		"digest", ref.Digest,
		"path", cfg.TablesPath,
	)

	// Calculators over the immutable tables
	bands, err := band.New(ref.Bands)
	if err != nil {
		return nil, err
	}
	grades := grade.New(ref.ITFactors)
	devs, err := deviation.New(ref.ShaftDeviations)
	if err != nil {
		return nil, err
	}

	// Services
	cat, err := catalog.New(ref.Fits)
	if err != nil {
		return nil, err
	}
	lim := limits.New(bands, grades, devs)
	fits := fit.New(cat, lim, log, fit.Options{SweepLimit: cfg.SweepLimit})

	return &LocalEngine{
		ref:     ref,
		bands:   bands,
		grades:  grades,
		devs:    devs,
		catalog: cat,
		limits:  lim,
		fits:    fits,
	}, nil
}
