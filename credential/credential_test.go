package credential_test

import (
	"testing"

	"github.com/abimaelfv/titulacion-cli/credential"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func rawCredential(t *testing.T, claims jwtlib.MapClaims) string {
	t.Helper()
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, claims)
	raw, err := token.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return raw
}

func TestDecode(t *testing.T) {
	raw := rawCredential(t, jwtlib.MapClaims{
		"email":   "ana@udh.edu.pe",
		"name":    "Ana Quispe",
		"picture": "https://lh3.example/photo.jpg",
		"hd":      "udh.edu.pe",
	})

	decoded, err := credential.Decode(raw)
	require.NoError(t, err)
	require.Equal(t, "ana@udh.edu.pe", decoded.Email)
	require.Equal(t, "Ana Quispe", decoded.Name)
	require.Equal(t, "https://lh3.example/photo.jpg", decoded.Picture)
	require.Equal(t, "udh.edu.pe", decoded.HostedDomain)
}

func TestDecodeRequiresEmail(t *testing.T) {
	raw := rawCredential(t, jwtlib.MapClaims{"name": "Ana"})
	_, err := credential.Decode(raw)
	require.Error(t, err)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := credential.Decode("not-a-jwt")
	require.Error(t, err)
}

func TestDerivePasswordIsDeterministic(t *testing.T) {
	a := credential.DerivePassword("ana@udh.edu.pe")
	b := credential.DerivePassword("ana@udh.edu.pe")
	require.Equal(t, a, b)
	require.NotEmpty(t, a)

	// Only the local part matters.
	require.Equal(t, a, credential.DerivePassword("ana@otro.example"))
	require.NotEqual(t, a, credential.DerivePassword("otra@udh.edu.pe"))
}
