package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigFrom_Defaults(t *testing.T) {
	cfg := configFrom(func(string) string { return "" })
	require.Equal(t, DefaultAddr, cfg.Addr)
	require.Equal(t, DefaultSweepLimit, cfg.SweepLimit)
	require.Empty(t, cfg.TablesPath)
	require.Empty(t, cfg.ServerURL)
	require.False(t, cfg.OTelEnabled)
	require.NotNil(t, cfg.httpClient())
}

func TestConfigFrom_Env(t *testing.T) {
	env := map[string]string{
		"FITPICK_TABLES": " /etc/fitpick/tables.yaml ",
		EnvLogMode:       "dev",
		EnvAddr:          "127.0.0.1:9000",
		EnvServer:        "http://fits.local:8080/",
		EnvSweepLimit:    "8",
		EnvOTelEnabled:   "TRUE",
		EnvOTelEndpoint:  "collector:4318",
		EnvOTelInsecure:  "1",
	}
	cfg := configFrom(func(k string) string { return env[k] })

	require.Equal(t, "/etc/fitpick/tables.yaml", cfg.TablesPath)
	require.Equal(t, "dev", cfg.LogMode)
	require.Equal(t, "127.0.0.1:9000", cfg.Addr)
	require.Equal(t, "http://fits.local:8080", cfg.ServerURL)
	require.Equal(t, 8, cfg.SweepLimit)
	require.True(t, cfg.OTelEnabled)
	require.Equal(t, "collector:4318", cfg.OTelEndpoint)
	require.True(t, cfg.OTelInsecure)
}

func TestConfigFrom_BadSweepLimitKeepsDefault(t *testing.T) {
	cfg := configFrom(func(k string) string {
		if k == EnvSweepLimit {
			return "many"
		}
		return ""
	})
	require.Equal(t, DefaultSweepLimit, cfg.SweepLimit)
}
