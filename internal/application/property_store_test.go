package application

import (
	"context"
	"errors"
	"testing"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
	"github.com/propertypro/ppai/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPropertyStore(t *testing.T) (*PropertyStore, *mocks.MockAPIClient) {
	t.Helper()

	api := mocks.NewMockAPIClient(t)
	return NewPropertyStore(api, fixedClock{now: testNow}, nullLogger()), api
}

func seedProperties(t *testing.T, store *PropertyStore, api *mocks.MockAPIClient, body string) {
	t.Helper()

	api.EXPECT().Get(mockAnyContext(), propertiesPath).Return(jsonResponse(body), nil).Once()
	require.NoError(t, store.Fetch(context.Background()))
}

func TestPropertyStoreFetchMapsAndSelectsFirst(t *testing.T) {
	t.Parallel()

	store, api := newTestPropertyStore(t)
	seedProperties(t, store, api, `[
		{"id": 11, "title": "Palm Villa", "price_aed": "4500000", "bedrooms": 5, "location": "Palm Jumeirah"},
		{"property_id": "p-12", "name": "Downtown Loft", "price": 1200000, "listing_status": "active"}
	]`)

	state := store.State()
	require.Len(t, state.Items, 2)
	assert.Equal(t, domain.PropertyID("11"), state.Items[0].ID)
	assert.InDelta(t, 4500000, state.Items[0].Price, 0.001)
	assert.Equal(t, "Palm Jumeirah", state.Items[0].Address)
	assert.Equal(t, domain.PropertyID("p-12"), state.Items[1].ID)
	assert.Equal(t, domain.PropertyStatusActive, state.Items[1].Status)
	assert.Equal(t, domain.PropertyID("11"), state.SelectedID)
	assert.Equal(t, domain.SuccessSlice(testNow), state.Fetch)
}

func TestPropertyStoreFetchSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		selected domain.PropertyID
		body     string
		want     domain.PropertyID
	}{
		{name: "keeps present selection", selected: "2", body: `[{"id":1},{"id":2}]`, want: "2"},
		{name: "falls back to first", selected: "9", body: `[{"id":1},{"id":2}]`, want: "1"},
		{name: "clears on empty list", selected: "1", body: `[]`, want: ""},
		{name: "non array payload empties collection", selected: "1", body: `{"detail":"nope"}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store, api := newTestPropertyStore(t)
			store.SetSelected(tt.selected)
			seedProperties(t, store, api, tt.body)

			assert.Equal(t, tt.want, store.State().SelectedID)
		})
	}
}

func TestPropertyStoreAddBackfillsAndPrepends(t *testing.T) {
	t.Parallel()

	store, api := newTestPropertyStore(t)
	seedProperties(t, store, api, `[{"id":1,"title":"Existing"}]`)

	api.EXPECT().Post(mockAnyContext(), propertiesPath, map[string]any{
		"title":         "Creek Harbour 2BR",
		"description":   "Creek Harbour 2BR marketing description",
		"location":      "Dubai",
		"property_type": "apartment",
		"price":         float64(0),
		"bedrooms":      float64(0),
		"bathrooms":     float64(0),
	}).Return(jsonResponse(`{"id":2,"title":"Creek Harbour 2BR","status":"draft"}`), nil)

	created, err := store.Add(context.Background(), domain.PropertyDraft{Title: "Creek Harbour 2BR"})
	require.NoError(t, err)
	assert.Equal(t, domain.PropertyID("2"), created.ID)

	state := store.State()
	require.Len(t, state.Items, 2)
	assert.Equal(t, domain.PropertyID("2"), state.Items[0].ID)
	assert.Equal(t, domain.SuccessSlice(testNow), state.Mutate)
}

func TestPropertyStoreAddValidatesBeforeRequest(t *testing.T) {
	t.Parallel()

	store, _ := newTestPropertyStore(t)

	_, err := store.Add(context.Background(), domain.PropertyDraft{})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "title", validation.Field)
	assert.Equal(t, domain.IdleSlice(), store.State().Mutate)
}

func TestPropertyStoreAddFailureRecordsMutateError(t *testing.T) {
	t.Parallel()

	store, api := newTestPropertyStore(t)
	httpErr := &domain.HTTPError{Method: "POST", Path: propertiesPath, StatusCode: 422}
	api.EXPECT().Post(mockAnyContext(), propertiesPath, mockAnyContext()).Return(ports.Response{}, httpErr)

	_, err := store.Add(context.Background(), domain.PropertyDraft{Title: "Broken"})
	require.ErrorAs(t, err, &httpErr)

	state := store.State()
	assert.Empty(t, state.Items)
	assert.Equal(t, domain.RequestError, state.Mutate.Status)
	assert.Equal(t, "API POST /api/v1/properties failed", state.Mutate.Error)
}

func TestPropertyStoreUpdateReplacesOnlyMatchingItem(t *testing.T) {
	t.Parallel()

	store, api := newTestPropertyStore(t)
	seedProperties(t, store, api, `[{"id":1,"title":"One"},{"id":2,"title":"Two"}]`)

	title := "Two Renovated"
	api.EXPECT().Put(mockAnyContext(), "/api/v1/properties/2", map[string]any{"title": title}).
		Return(jsonResponse(`{"id":2,"title":"Two Renovated"}`), nil)

	_, err := store.Update(context.Background(), "2", domain.PropertyPatch{Title: &title})
	require.NoError(t, err)

	state := store.State()
	assert.Equal(t, "One", state.Items[0].Title)
	assert.Equal(t, "Two Renovated", state.Items[1].Title)
}

func TestPropertyStoreDeleteLeavesDanglingSelection(t *testing.T) {
	t.Parallel()

	store, api := newTestPropertyStore(t)
	seedProperties(t, store, api, `[{"id":1},{"id":2}]`)
	store.SetSelected("2")

	api.EXPECT().Delete(mockAnyContext(), "/api/v1/properties/2").Return(ports.Response{StatusCode: 204}, nil)
	require.NoError(t, store.Delete(context.Background(), "2"))

	state := store.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, domain.PropertyID("2"), state.SelectedID)

	_, err := store.Selected()
	require.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestPropertyStoreDeleteFailureKeepsItem(t *testing.T) {
	t.Parallel()

	store, api := newTestPropertyStore(t)
	seedProperties(t, store, api, `[{"id":1}]`)

	api.EXPECT().Delete(mockAnyContext(), "/api/v1/properties/1").Return(ports.Response{}, errors.New("boom"))

	err := store.Delete(context.Background(), "1")
	require.Error(t, err)
	assert.Len(t, store.State().Items, 1)
	assert.Equal(t, domain.RequestError, store.State().Mutate.Status)
}

func TestPropertyStoreStateIsACopy(t *testing.T) {
	t.Parallel()

	store, api := newTestPropertyStore(t)
	seedProperties(t, store, api, `[{"id":1,"title":"Original"}]`)

	state := store.State()
	state.Items[0].Title = "Mutated"

	found, err := store.Find("1")
	require.NoError(t, err)
	assert.Equal(t, "Original", found.Title)
}

func TestPropertyStoreFetchIsIdempotent(t *testing.T) {
	t.Parallel()

	store, api := newTestPropertyStore(t)
	body := `[{"id":11,"title":"Palm Villa","price":"4500000"},{"id":12,"name":"Downtown Loft","status":"draft"}]`

	api.EXPECT().Get(mockAnyContext(), propertiesPath).Return(jsonResponse(body), nil).Twice()

	require.NoError(t, store.Fetch(context.Background()))
	first := store.State()
	require.NoError(t, store.Fetch(context.Background()))
	second := store.State()

	assert.Equal(t, first.Items, second.Items)
	assert.Equal(t, first.SelectedID, second.SelectedID)
}
