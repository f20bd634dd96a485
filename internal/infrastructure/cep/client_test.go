package cep

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LukeSky25/Material-Share-App/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(zap.NewNop(), config.CEP{BaseURL: srv.URL}), srv
}

func TestClient_Resolve_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/20040030/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cep": "20040-030",
			"logradouro": "Rua México",
			"bairro": "Centro",
			"localidade": "Rio de Janeiro",
			"uf": "RJ"
		}`))
	})

	addr, err := client.Resolve(context.Background(), "20040030")
	require.NoError(t, err)
	assert.Equal(t, "Rua México", addr.Street)
	assert.Equal(t, "RJ", addr.State)
}

func TestClient_Resolve_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"erro": true}`))
	})

	_, err := client.Resolve(context.Background(), "99999999")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestClient_Resolve_Unavailable(t *testing.T) {
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := client.Resolve(context.Background(), "20040030")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestClient_Resolve_ServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Resolve(context.Background(), "20040030")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Resolve_MalformedCode(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := client.Resolve(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}
