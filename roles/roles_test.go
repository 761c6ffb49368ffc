package roles_test

import (
	"testing"

	"github.com/abimaelfv/titulacion-cli/roles"
	"github.com/stretchr/testify/require"
)

func TestHomeIsTotal(t *testing.T) {
	for _, r := range roles.All {
		require.NotPanics(t, func() {
			require.NotEmpty(t, r.Home())
		}, "role %q must have a home route", r)
	}
}

func TestHomeRoutes(t *testing.T) {
	tests := []struct {
		role roles.Role
		home string
	}{
		{roles.Estudiante, "estudiante"},
		{roles.Asesor, "asesor"},
		{roles.Jurado, "jurado"},
		{roles.Paisi, "paisi"},
		{roles.Facultad, "facultad"},
		{roles.Vri, "vri-turnitin"},
		{roles.Turnitin, "vri-turnitin"},
		{roles.Admin, "admin"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.home, tt.role.Home())
	}
}

func TestHomePanicsOnUnknownRole(t *testing.T) {
	require.Panics(t, func() { _ = roles.Role("decano").Home() })
}

func TestParse(t *testing.T) {
	r, err := roles.Parse("  Estudiante ")
	require.NoError(t, err)
	require.Equal(t, roles.Estudiante, r)

	_, err = roles.Parse("decano")
	require.Error(t, err)
}
