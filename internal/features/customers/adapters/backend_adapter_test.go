package adapters

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"uniform-storefront/internal/core/backend"
	"uniform-storefront/internal/features/customers/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackendTestAdapter(t *testing.T, handler http.HandlerFunc) *BackendAdapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewBackendAdapter(backend.New(server.URL, 5*time.Second))
}

// TestBackendAdapter_Register verifies the confirmation password never
// reaches the wire and the session envelope decodes.
func TestBackendAdapter_Register(t *testing.T) {
	adapter := newBackendTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/register", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"password":"secreta"`)
		assert.NotContains(t, string(body), "confirmPassword")

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"customer": domain.Customer{ID: "cust-1", FullName: "María Pérez"},
			"token":    "tok-1",
		})
	})

	session, err := adapter.Register(context.Background(), domain.Registration{
		FullName:        "María Pérez",
		Email:           "maria@example.com",
		Phone:           "+56912345678",
		Password:        "secreta",
		ConfirmPassword: "secreta",
	})

	require.NoError(t, err)
	assert.Equal(t, "tok-1", session.Token)
	assert.Equal(t, "cust-1", session.Customer.ID)
}

// TestBackendAdapter_Login verifies the credentials body and envelope.
func TestBackendAdapter_Login(t *testing.T) {
	adapter := newBackendTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/login", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"email":"maria@example.com","password":"secreta"}`, string(body))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"customer": domain.Customer{ID: "cust-1"},
			"token":    "tok-1",
		})
	})

	session, err := adapter.Login(context.Background(), "maria@example.com", "secreta")

	require.NoError(t, err)
	assert.Equal(t, "tok-1", session.Token)
}

// TestBackendAdapter_Profile verifies the bearer token is forwarded.
func TestBackendAdapter_Profile(t *testing.T) {
	adapter := newBackendTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/me", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(domain.Customer{ID: "cust-1", Email: "maria@example.com"})
	})

	customer, err := adapter.Profile(context.Background(), "tok-1")

	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", customer.Email)
}

// TestBackendAdapter_Register_Conflict verifies the duplicate-email error
// surfaces with its status-mapped message.
func TestBackendAdapter_Register_Conflict(t *testing.T) {
	adapter := newBackendTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	_, err := adapter.Register(context.Background(), domain.Registration{})

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Contains(t, apiErr.Message, "Este email ya está registrado")
}
