package apiclient

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/abimaelfv/titulacion-cli/roles"
	"github.com/pkg/errors"
)

// Identity endpoint paths.
const (
	PathLogin          = "/api/login"
	PathLoginGoogle    = "/api/login/google"
	PathRegister       = "/api/register"
	PathRegisterGoogle = "/api/register/google"
)

// Credentials is what the identity endpoints hand back: the opaque bearer
// token plus the account fields the session caches.
type Credentials struct {
	Status   string
	Token    string
	ID       string
	Nombre   string
	Correo   string
	Rol      roles.Role
	EsJurado bool
}

// accountData is the data object inside the identity success envelope.
type accountData struct {
	ID       ident  `json:"id"`
	Nombre   string `json:"nombre"`
	Correo   string `json:"correo"`
	Rol      string `json:"rol"`
	EsJurado bool   `json:"es_jurado"`
}

// ident tolerates the backend sending numeric or string identifiers.
type ident string

func (i *ident) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		*i = ident(s)
		return nil
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		*i = ident(strconv.FormatInt(n, 10))
		return nil
	}
	return errors.Errorf("identifier is neither string nor number: %s", raw)
}

// Login exchanges email and password for credentials.
func (c *Client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	return c.identityCall(ctx, PathLogin, map[string]string{
		"email":    email,
		"password": password,
	})
}

// LoginGoogle exchanges a Google-verified email for credentials.
func (c *Client) LoginGoogle(ctx context.Context, email string) (*Credentials, error) {
	return c.identityCall(ctx, PathLoginGoogle, map[string]string{
		"email": email,
	})
}

// Register creates an account; the backend always assigns the student role.
func (c *Client) Register(ctx context.Context, email, password string) (*Credentials, error) {
	return c.identityCall(ctx, PathRegister, map[string]string{
		"email":    email,
		"password": password,
	})
}

// RegisterGoogle creates an account from a Google-verified email and a
// deterministically derived password.
func (c *Client) RegisterGoogle(ctx context.Context, email, password string) (*Credentials, error) {
	return c.identityCall(ctx, PathRegisterGoogle, map[string]string{
		"email":    email,
		"password": password,
	})
}

func (c *Client) identityCall(ctx context.Context, path string, payload map[string]string) (*Credentials, error) {
	ok, err := c.Do(ctx, "POST", path, payload, "")
	if err != nil {
		return nil, err
	}
	if ok.Token == "" || len(ok.Data) == 0 {
		return nil, errors.Wrap(ErrUnexpectedShape, "identity response missing token or data")
	}

	var data accountData
	if err := json.Unmarshal(ok.Data, &data); err != nil {
		return nil, errors.Wrapf(ErrUnexpectedShape, "decoding identity data: %v", err)
	}
	role, err := roles.Parse(data.Rol)
	if err != nil {
		return nil, errors.Wrapf(ErrUnexpectedShape, "identity response: %v", err)
	}

	return &Credentials{
		Status:   ok.Status,
		Token:    ok.Token,
		ID:       string(data.ID),
		Nombre:   data.Nombre,
		Correo:   data.Correo,
		Rol:      role,
		EsJurado: data.EsJurado,
	}, nil
}
