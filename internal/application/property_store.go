package application

import (
	"context"
	"fmt"
	"net/url"
	"slices"

	"github.com/propertypro/ppai/internal/adapters/payload"
	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
	"github.com/sirupsen/logrus"
)

const propertiesPath = "/api/v1/properties"

type PropertyState struct {
	Items      []domain.Property
	SelectedID domain.PropertyID
	Fetch      domain.AsyncSlice
	Mutate     domain.AsyncSlice
}

func clonePropertyState(state PropertyState) PropertyState {
	state.Items = slices.Clone(state.Items)
	return state
}

var propertySlices = asyncSlices[PropertyState]{
	fetch:  func(s *PropertyState) *domain.AsyncSlice { return &s.Fetch },
	mutate: func(s *PropertyState) *domain.AsyncSlice { return &s.Mutate },
}

type PropertyStore struct {
	api   ports.APIClient
	state *stateStore[PropertyState]
}

func NewPropertyStore(api ports.APIClient, clock ports.Clock, log logrus.FieldLogger) *PropertyStore {
	initial := PropertyState{Fetch: domain.IdleSlice(), Mutate: domain.IdleSlice()}
	return &PropertyStore{
		api:   api,
		state: newStateStore(initial, clonePropertyState, clock, log),
	}
}

func (s *PropertyStore) State() PropertyState {
	return s.state.snapshot()
}

func (s *PropertyStore) Subscribe(fn func(PropertyState)) (unsubscribe func()) {
	return s.state.subscribe(fn)
}

// Fetch replaces the collection. The selection survives when the selected id is still present,
// otherwise it moves to the first item.
func (s *PropertyStore) Fetch(ctx context.Context) error {
	err := runFetch(ctx, s.state, propertySlices, func(ctx context.Context) (func(*PropertyState), error) {
		response, err := s.api.Get(ctx, propertiesPath)
		if err != nil {
			return nil, err
		}
		items := payload.Properties(response.Body)
		return func(state *PropertyState) {
			state.Items = items
			state.SelectedID = nextSelection(state.SelectedID, items)
		}, nil
	})
	if err != nil {
		return fmt.Errorf("fetch properties: %w", err)
	}
	return nil
}

func nextSelection(current domain.PropertyID, items []domain.Property) domain.PropertyID {
	if current != "" && slices.ContainsFunc(items, func(p domain.Property) bool { return p.ID == current }) {
		return current
	}
	if len(items) > 0 {
		return items[0].ID
	}
	return ""
}

func (s *PropertyStore) Add(ctx context.Context, draft domain.PropertyDraft) (domain.Property, error) {
	if err := draft.Validate(); err != nil {
		return domain.Property{}, err
	}

	created, err := runMutation(s.state, propertySlices, func() (domain.Property, error) {
		response, err := s.api.Post(ctx, propertiesPath, payload.PropertyCreateBody(draft))
		if err != nil {
			return domain.Property{}, err
		}
		return payload.PropertyFromJSON(response.Body), nil
	}, func(state *PropertyState, created domain.Property) {
		state.Items = append([]domain.Property{created}, state.Items...)
	})
	if err != nil {
		return domain.Property{}, fmt.Errorf("add property: %w", err)
	}
	return created, nil
}

func (s *PropertyStore) Update(ctx context.Context, id domain.PropertyID, patch domain.PropertyPatch) (domain.Property, error) {
	updated, err := runMutation(s.state, propertySlices, func() (domain.Property, error) {
		response, err := s.api.Put(ctx, propertyPath(id), payload.PropertyPatchBody(patch))
		if err != nil {
			return domain.Property{}, err
		}
		return payload.PropertyFromJSON(response.Body), nil
	}, func(state *PropertyState, updated domain.Property) {
		for i := range state.Items {
			if state.Items[i].ID == id {
				state.Items[i] = updated
			}
		}
	})
	if err != nil {
		return domain.Property{}, fmt.Errorf("update property %s: %w", id, err)
	}
	return updated, nil
}

// Delete removes the property. A selection pointing at it is left as is; Selected reports it missing.
func (s *PropertyStore) Delete(ctx context.Context, id domain.PropertyID) error {
	_, err := runMutation(s.state, propertySlices, func() (struct{}, error) {
		_, err := s.api.Delete(ctx, propertyPath(id))
		return struct{}{}, err
	}, func(state *PropertyState, _ struct{}) {
		state.Items = slices.DeleteFunc(state.Items, func(p domain.Property) bool { return p.ID == id })
	})
	if err != nil {
		return fmt.Errorf("delete property %s: %w", id, err)
	}
	return nil
}

func (s *PropertyStore) SetSelected(id domain.PropertyID) {
	s.state.update(func(state *PropertyState) { state.SelectedID = id })
}

func (s *PropertyStore) Selected() (domain.Property, error) {
	state := s.State()
	if state.SelectedID == "" {
		return domain.Property{}, domain.ErrPropertyNotFound
	}
	return findProperty(state.Items, state.SelectedID)
}

func (s *PropertyStore) Find(id domain.PropertyID) (domain.Property, error) {
	return findProperty(s.State().Items, id)
}

func findProperty(items []domain.Property, id domain.PropertyID) (domain.Property, error) {
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.Property{}, fmt.Errorf("property %s: %w", id, domain.ErrPropertyNotFound)
}

func propertyPath(id domain.PropertyID) string {
	return propertiesPath + "/" + url.PathEscape(string(id))
}
