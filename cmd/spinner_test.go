package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/propertypro/ppai/internal/application"
	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
	"github.com/propertypro/ppai/internal/ports/mocks"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFetchProgressModelRendersSliceTransitions(t *testing.T) {
	sources := []fetchSource{{name: "properties"}, {name: "clients"}}
	var model tea.Model = newFetchProgressModel("Refreshing dashboard...", sources, nil)

	view := model.View()
	assert.Contains(t, view, "Refreshing dashboard...")
	assert.Contains(t, view, "· properties")
	assert.Contains(t, view, "· clients")

	model, _ = model.Update(sliceChangedMsg{source: "properties", slice: domain.SuccessSlice(time.Now())})
	model, _ = model.Update(sliceChangedMsg{source: "clients", slice: domain.ErrorSlice(errors.New("HTTP 500"))})
	model, _ = model.Update(sliceChangedMsg{source: "unknown", slice: domain.LoadingSlice()})

	view = model.View()
	assert.Contains(t, view, "✓ properties")
	assert.Contains(t, view, "✗ clients: HTTP 500")
	assert.NotContains(t, view, "unknown")

	model, cmd := model.Update(fetchDoneMsg{err: errors.New("fetch clients: HTTP 500")})
	require.NotNil(t, cmd)
	assert.Empty(t, model.View())
	assert.EqualError(t, model.(fetchProgressModel).err, "fetch clients: HTTP 500")
}

func TestPropertiesSourceFollowsStoreFetchSlice(t *testing.T) {
	api := mocks.NewMockAPIClient(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)).Maybe()
	log, _ := logtest.NewNullLogger()
	store := application.NewPropertyStore(api, clock, log)

	api.EXPECT().Get(mock.Anything, "/api/v1/properties").Return(ports.Response{}, errors.New("connection refused")).Twice()

	var seen []domain.AsyncSlice
	unsubscribe := propertiesSource(store).watch(func(slice domain.AsyncSlice) {
		seen = append(seen, slice)
	})

	require.Error(t, store.Fetch(context.Background()))
	unsubscribe()
	require.Error(t, store.Fetch(context.Background()))

	require.Len(t, seen, 2)
	assert.Equal(t, domain.RequestLoading, seen[0].Status)
	assert.Equal(t, domain.RequestError, seen[1].Status)
	assert.Equal(t, "connection refused", seen[1].Error)
}

func TestRunFetchProgressWatchesSourcesOnlyWhileFetching(t *testing.T) {
	var (
		notify       func(domain.AsyncSlice)
		subscribed   int
		unsubscribed int
	)
	source := fetchSource{name: "transactions", watch: func(fn func(domain.AsyncSlice)) func() {
		subscribed++
		notify = fn
		return func() { unsubscribed++ }
	}}

	var output bytes.Buffer
	err := runFetchProgress(context.Background(), &output, "Fetching transactions...", []fetchSource{source}, func(context.Context) error {
		assert.Equal(t, 1, subscribed)
		assert.Zero(t, unsubscribed)
		notify(domain.LoadingSlice())
		notify(domain.ErrorSlice(errors.New("HTTP 502")))
		return errors.New("fetch transactions: HTTP 502")
	})

	require.EqualError(t, err, "fetch transactions: HTTP 502")
	assert.Equal(t, 1, subscribed)
	assert.Equal(t, 1, unsubscribed)
}
