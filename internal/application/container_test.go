package application

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/propertypro/ppai/internal/adapters/api"
	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T, handler http.Handler) *Container {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	session := NewSessionStore(mocks.NewMockSessionRepository(t), mocks.NewMockSecretStore(t), fixedClock{now: testNow}, nullLogger())
	client := api.NewClient(server.URL, api.WithHTTPClient(server.Client()), api.WithSession(session), api.WithLogger(nullLogger()))

	return NewContainer(Dependencies{
		API:      client,
		Session:  session,
		Clock:    fixedClock{now: testNow},
		Log:      nullLogger(),
		Provider: domain.AIProviderOpenAI,
	})
}

func TestContainerRefreshAllFetchesEveryCollection(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/properties", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"Palm Villa"}]`))
	})
	mux.HandleFunc("GET /api/v1/clients", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Omar"},{"id":2,"name":"Lina"}]`))
	})
	mux.HandleFunc("GET /api/v1/transactions", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	container := newTestContainer(t, mux)
	require.NoError(t, container.RefreshAll(context.Background()))

	assert.Len(t, container.Properties.State().Items, 1)
	assert.Len(t, container.Clients.State().Items, 2)
	assert.Empty(t, container.Transactions.State().Items)
	assert.Equal(t, domain.RequestSuccess, container.Transactions.State().Fetch.Status)
}

func TestContainerRefreshAllRecordsEachFailure(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/properties", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1}]`))
	})
	mux.HandleFunc("GET /api/v1/clients", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "clients service down", http.StatusBadGateway)
	})
	mux.HandleFunc("GET /api/v1/transactions", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"database unavailable"}`))
	})

	container := newTestContainer(t, mux)
	require.Error(t, container.RefreshAll(context.Background()))

	assert.Equal(t, domain.RequestSuccess, container.Properties.State().Fetch.Status)

	clients := container.Clients.State().Fetch
	assert.Equal(t, domain.RequestError, clients.Status)
	assert.Equal(t, "API GET /api/v1/clients failed: clients service down", clients.Error)

	transactions := container.Transactions.State().Fetch
	assert.Equal(t, domain.RequestError, transactions.Status)
	assert.Equal(t, "API GET /api/v1/transactions failed: database unavailable", transactions.Error)
}
