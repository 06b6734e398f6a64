package app

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"fitpick/internal/store"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogMode    = "FITPICK_LOG_MODE"
	EnvAddr       = "FITPICK_ADDR"
	EnvServer     = "FITPICK_SERVER"
	EnvSweepLimit = "FITPICK_SWEEP_LIMIT"

	EnvOTelEnabled  = "OTEL_ENABLED"
	EnvOTelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvOTelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
)

const (
	DefaultAddr       = ":8080"
	DefaultSweepLimit = 4
)

// Config holds runtime wiring options for building the app.
type Config struct {
	TablesPath string       // reference YAML override; empty uses the embedded tables
	LogMode    string       // prod, dev or cli
	Addr       string       // fitserver listen address
	ServerURL  string       // remote fitserver base URL; empty computes in-process
	SweepLimit int          // concurrent evaluations per sweep
	HTTP       *http.Client // optional; defaults to a client with a 10s timeout

	OTelEnabled  bool
	OTelEndpoint string
	OTelInsecure bool
}

// ConfigFromEnv reads Config from the process environment.
func ConfigFromEnv() Config {
	return configFrom(os.Getenv)
}

func configFrom(getenv func(string) string) Config {
	get := func(k string) string { return strings.TrimSpace(getenv(k)) }

	cfg := Config{
		TablesPath:   get(store.EnvTables),
		LogMode:      get(EnvLogMode),
		Addr:         get(EnvAddr),
		ServerURL:    strings.TrimRight(get(EnvServer), "/"),
		SweepLimit:   DefaultSweepLimit,
		OTelEnabled:  truthy(get(EnvOTelEnabled)),
		OTelEndpoint: get(EnvOTelEndpoint),
		OTelInsecure: truthy(get(EnvOTelInsecure)),
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if v := get(EnvSweepLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SweepLimit = n
		}
	}
	return cfg
}

func truthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func (c Config) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return &http.Client{Timeout: 10 * time.Second}
}
