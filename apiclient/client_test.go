package apiclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abimaelfv/titulacion-cli/apiclient"
	"github.com/abimaelfv/titulacion-cli/roles"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestJoinMessages(t *testing.T) {
	require.Equal(t, " A B", apiclient.JoinMessages([]string{"A", "B"}))
	require.Equal(t, "", apiclient.JoinMessages(nil))
}

func TestDoStampsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"status":"ok","message":"hecho"}`))
	}))
	defer srv.Close()

	c := apiclient.New(srv.URL)
	ok, err := c.Do(context.Background(), "post", "/api/tramite", map[string]string{"x": "1"}, "tok-123")
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)
	require.Equal(t, "ok", ok.Status)
	require.Equal(t, "hecho", ok.Message)
}

func TestDoDecodesFailureEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":["A","B"]}`))
	}))
	defer srv.Close()

	_, err := apiclient.New(srv.URL).Do(context.Background(), "POST", "/x", nil, "")
	remote, ok := apiclient.AsRemote(err)
	require.True(t, ok)
	require.Equal(t, []string{"A", "B"}, remote.Messages)
	require.Equal(t, http.StatusUnprocessableEntity, remote.StatusCode)
}

func TestDoRejectsMalformedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>gateway exploded</html>`))
	}))
	defer srv.Close()

	_, err := apiclient.New(srv.URL).Do(context.Background(), "POST", "/x", nil, "")
	require.True(t, errors.Is(err, apiclient.ErrUnexpectedShape))
}

func TestLoginDecodesCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, apiclient.PathLogin, r.URL.Path)
		w.Write([]byte(`{
			"status": "ok",
			"token": "tok-1",
			"data": {"id": 7, "nombre": "Ana Quispe", "correo": "ana@udh.edu.pe", "rol": "estudiante", "es_jurado": false}
		}`))
	}))
	defer srv.Close()

	creds, err := apiclient.New(srv.URL).Login(context.Background(), "ana@udh.edu.pe", "secreta1A")
	require.NoError(t, err)
	require.Equal(t, "tok-1", creds.Token)
	require.Equal(t, "7", creds.ID)
	require.Equal(t, "Ana Quispe", creds.Nombre)
	require.Equal(t, roles.Estudiante, creds.Rol)
	require.False(t, creds.EsJurado)
}

func TestLoginRejectsMissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok","data":{"id":1,"rol":"estudiante"}}`))
	}))
	defer srv.Close()

	_, err := apiclient.New(srv.URL).Login(context.Background(), "a@udh.edu.pe", "pw")
	require.True(t, errors.Is(err, apiclient.ErrUnexpectedShape))
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok","token":"t","data":{"id":"1","rol":"decano"}}`))
	}))
	defer srv.Close()

	_, err := apiclient.New(srv.URL).Login(context.Background(), "a@udh.edu.pe", "pw")
	require.True(t, errors.Is(err, apiclient.ErrUnexpectedShape))
}
