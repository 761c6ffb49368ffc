package validate_test

import (
	"testing"

	"github.com/abimaelfv/titulacion-cli/internal/validate"
	"github.com/stretchr/testify/require"
)

func TestInstitutionalEmail(t *testing.T) {
	validate.Init("udh.edu.pe")

	require.NoError(t, validate.InstitutionalEmail("ana@udh.edu.pe"))
	require.Error(t, validate.InstitutionalEmail("a@gmail.com"))
	require.Error(t, validate.InstitutionalEmail("no-es-un-correo"))
	require.Error(t, validate.InstitutionalEmail(""))
}

func TestHostedDomain(t *testing.T) {
	validate.Init("udh.edu.pe")

	require.True(t, validate.HostedDomain("udh.edu.pe"))
	require.True(t, validate.HostedDomain(" UDH.edu.pe "))
	require.False(t, validate.HostedDomain("gmail.com"))
	require.False(t, validate.HostedDomain(""))
}
