package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClient_Get_Success verifies JSON decoding and header handling.
func TestClient_Get_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Polera"}`))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)

	var out struct {
		Name string `json:"name"`
	}
	err := client.Get(context.Background(), "/products", "tok-1", &out)

	require.NoError(t, err)
	assert.Equal(t, "Polera", out.Name)
}

// TestClient_Get_NoToken verifies no Authorization header is sent for
// anonymous requests.
func TestClient_Get_NoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	require.NoError(t, client.Get(context.Background(), "/products", "", nil))
}

// TestClient_Post_SendsJSONBody verifies the request body encoding.
func TestClient_Post_SendsJSONBody(t *testing.T) {
	var received string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf, _ := io.ReadAll(r.Body)
		received = string(buf)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	err := client.Post(context.Background(), "/orders", "", map[string]string{"paymentMethod": "webpay"}, nil)

	require.NoError(t, err)
	assert.JSONEq(t, `{"paymentMethod":"webpay"}`, received)
}

// TestClient_UpstreamMessagePreferred verifies the backend's own message
// wins for client errors.
func TestClient_UpstreamMessagePreferred(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"El RUT ingresado no es válido"}`))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	err := client.Get(context.Background(), "/customers/me", "", nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "El RUT ingresado no es válido", apiErr.Message)
}

// TestClient_StatusFallbacks verifies the contextual wording when the
// backend sends no message.
func TestClient_StatusFallbacks(t *testing.T) {
	cases := []struct {
		status  int
		message string
	}{
		{http.StatusConflict, "Este email ya está registrado. Por favor, inicia sesión o usa otro email."},
		{http.StatusUnauthorized, "Credenciales inválidas. Verifica tu email y contraseña."},
		{http.StatusBadRequest, "Datos inválidos. Por favor, verifica la información ingresada."},
		{http.StatusNotFound, "Recurso no encontrado."},
		{http.StatusTeapot, "Error HTTP: 418 I'm a teapot"},
	}

	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))

		client := New(server.URL, 5*time.Second)
		err := client.Get(context.Background(), "/x", "", nil)
		server.Close()

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, tc.status, apiErr.Status)
		assert.Equal(t, tc.message, apiErr.Message)
	}
}

// TestClient_ServerErrorsNeverLeak verifies 5xx responses always show the
// generic message, even when the backend sent its own.
func TestClient_ServerErrorsNeverLeak(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"pq: connection refused at 10.0.0.3"}`))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	err := client.Get(context.Background(), "/orders", "", nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "Error del servidor. Por favor, intenta más tarde.", apiErr.Message)
}

// TestClient_NetworkError verifies transport failures are wrapped, not
// turned into APIErrors.
func TestClient_NetworkError(t *testing.T) {
	client := New("http://127.0.0.1:1", 500*time.Millisecond)

	err := client.Get(context.Background(), "/products", "", nil)

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "error de red")
}
