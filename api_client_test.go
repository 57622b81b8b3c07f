package console_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goliatone/go-console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clientFixture struct {
	store  *console.Store
	slot   *console.MemoryCredentialStore
	bridge *console.Bridge
	api    *console.APIClient
}

func newClientFixture(t *testing.T, serverURL, token string) *clientFixture {
	t.Helper()

	store := console.NewStore()
	slot := console.NewMemoryCredentialStore()
	bridge := console.NewBridge(store, slot)

	if token != "" {
		store.Set(&console.Session{ID: "D42", Role: console.RoleDoctor, Token: token})
		require.NoError(t, slot.Write(context.Background(), token))
	}

	return &clientFixture{
		store:  store,
		slot:   slot,
		bridge: bridge,
		api:    console.NewAPIClient(console.DefaultConfig(serverURL), bridge),
	}
}

func TestAPIClient(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches the bearer credential and a request id", func(t *testing.T) {
		token := mintToken(t, "D42", "doctor")

		var gotAuth, gotRequestID string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotRequestID = r.Header.Get("X-Request-ID")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"display_name":"Dr. Vega"}`))
		}))
		defer server.Close()

		fixture := newClientFixture(t, server.URL, token)

		var out struct {
			DisplayName string `json:"display_name"`
		}
		require.NoError(t, fixture.api.Get(ctx, "/portfolio", &out))

		assert.Equal(t, "Bearer "+token, gotAuth)
		assert.NotEmpty(t, gotRequestID)
		assert.Equal(t, "Dr. Vega", out.DisplayName)
	})

	t.Run("401 forces logout and surfaces SessionExpired", func(t *testing.T) {
		token := mintToken(t, "D42", "doctor")
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		fixture := newClientFixture(t, server.URL, token)

		err := fixture.api.Get(ctx, "/appointments", nil)

		require.Error(t, err)
		assert.True(t, console.IsSessionExpiredError(err))
		assert.Nil(t, fixture.store.Session())

		stored, readErr := fixture.slot.Read(ctx)
		require.NoError(t, readErr)
		assert.Empty(t, stored)
	})

	t.Run("non-401 failures keep the session", func(t *testing.T) {
		token := mintToken(t, "D42", "doctor")
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		fixture := newClientFixture(t, server.URL, token)

		err := fixture.api.Get(ctx, "/appointments", nil)

		require.Error(t, err)
		assert.True(t, console.IsRequestFailedError(err))
		assert.False(t, console.IsSessionExpiredError(err))
		assert.NotNil(t, fixture.store.Session())
	})

	t.Run("network failure is a RequestFailed error", func(t *testing.T) {
		token := mintToken(t, "D42", "doctor")
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		fixture := newClientFixture(t, server.URL, token)

		err := fixture.api.Get(ctx, "/appointments", nil)

		require.Error(t, err)
		assert.True(t, console.IsRequestFailedError(err))
		assert.NotNil(t, fixture.store.Session())
	})

	t.Run("no session means no request", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer server.Close()

		fixture := newClientFixture(t, server.URL, "")

		err := fixture.api.Get(ctx, "/appointments", nil)

		require.ErrorIs(t, err, console.ErrNoSession)
		assert.Equal(t, 0, calls)
	})

	t.Run("posts a JSON body", func(t *testing.T) {
		token := mintToken(t, "D42", "doctor")

		var gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			buf := make([]byte, r.ContentLength)
			r.Body.Read(buf)
			gotBody = string(buf)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		fixture := newClientFixture(t, server.URL, token)

		require.NoError(t, fixture.api.Post(ctx, "/notes", map[string]string{"text": "follow up"}, nil))
		assert.JSONEq(t, `{"text":"follow up"}`, gotBody)
	})
}
