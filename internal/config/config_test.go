package config_test

import (
	"testing"
	"time"

	"github.com/abimaelfv/titulacion-cli/internal/config"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := config.New()
	require.Equal(t, "https://titulacion-back.abimaelfv.site", c.BaseURL)
	require.Equal(t, "udh.edu.pe", c.InstitutionalDomain)
	require.Equal(t, 5*time.Second, c.ToastTimeout)
	require.Equal(t, 500*time.Millisecond, c.AuthRedirectDelay)
	require.Equal(t, 1500*time.Millisecond, c.SubmitRedirectDelay)
	require.NotEmpty(t, c.StateDir)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TITULACION_BASEURL", "http://localhost:9000")
	t.Setenv("TITULACION_INSTITUTIONALDOMAIN", "test.edu.pe")
	t.Setenv("TITULACION_DEBUG", "true")

	c := config.New()
	require.Equal(t, "http://localhost:9000", c.BaseURL)
	require.Equal(t, "test.edu.pe", c.InstitutionalDomain)
	require.True(t, c.Debug)
}
