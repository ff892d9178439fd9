package application

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/propertypro/ppai/internal/adapters/payload"
	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
	"github.com/sirupsen/logrus"
)

const (
	clientsPath            = "/api/v1/clients"
	communicationScoreBump = 2
)

type ClientState struct {
	Items  []domain.Client
	Logs   []domain.CommunicationLog
	Fetch  domain.AsyncSlice
	Mutate domain.AsyncSlice
}

func cloneClientState(state ClientState) ClientState {
	state.Items = slices.Clone(state.Items)
	state.Logs = slices.Clone(state.Logs)
	return state
}

var clientSlices = asyncSlices[ClientState]{
	fetch:  func(s *ClientState) *domain.AsyncSlice { return &s.Fetch },
	mutate: func(s *ClientState) *domain.AsyncSlice { return &s.Mutate },
}

type ClientStore struct {
	api   ports.APIClient
	log   logrus.FieldLogger
	state *stateStore[ClientState]
}

func NewClientStore(api ports.APIClient, clock ports.Clock, log logrus.FieldLogger) *ClientStore {
	if log == nil {
		log = logrus.StandardLogger()
	}
	initial := ClientState{Fetch: domain.IdleSlice(), Mutate: domain.IdleSlice()}
	return &ClientStore{
		api:   api,
		log:   log,
		state: newStateStore(initial, cloneClientState, clock, log),
	}
}

func (s *ClientStore) State() ClientState {
	return s.state.snapshot()
}

func (s *ClientStore) Subscribe(fn func(ClientState)) (unsubscribe func()) {
	return s.state.subscribe(fn)
}

func (s *ClientStore) Fetch(ctx context.Context) error {
	err := runFetch(ctx, s.state, clientSlices, func(ctx context.Context) (func(*ClientState), error) {
		response, err := s.api.Get(ctx, clientsPath)
		if err != nil {
			return nil, err
		}
		items := payload.Clients(response.Body)
		return func(state *ClientState) { state.Items = items }, nil
	})
	if err != nil {
		return fmt.Errorf("fetch clients: %w", err)
	}
	return nil
}

func (s *ClientStore) Add(ctx context.Context, draft domain.ClientDraft) (domain.Client, error) {
	if err := draft.Validate(); err != nil {
		return domain.Client{}, err
	}

	created, err := runMutation(s.state, clientSlices, func() (domain.Client, error) {
		response, err := s.api.Post(ctx, clientsPath, payload.ClientCreateBody(draft))
		if err != nil {
			return domain.Client{}, err
		}
		return payload.ClientFromJSON(response.Body), nil
	}, func(state *ClientState, created domain.Client) {
		state.Items = append([]domain.Client{created}, state.Items...)
	})
	if err != nil {
		return domain.Client{}, fmt.Errorf("add client: %w", err)
	}
	return created, nil
}

func (s *ClientStore) Update(ctx context.Context, id domain.ClientID, patch domain.ClientPatch) (domain.Client, error) {
	var existing *domain.Client
	if client, err := s.Find(id); err == nil {
		existing = &client
	}

	updated, err := runMutation(s.state, clientSlices, func() (domain.Client, error) {
		response, err := s.api.Put(ctx, clientPath(id), payload.ClientUpdateBody(patch, existing))
		if err != nil {
			return domain.Client{}, err
		}
		return payload.ClientFromJSON(response.Body), nil
	}, func(state *ClientState, updated domain.Client) {
		for i := range state.Items {
			if state.Items[i].ID == id {
				state.Items[i] = updated
			}
		}
	})
	if err != nil {
		return domain.Client{}, fmt.Errorf("update client %s: %w", id, err)
	}
	return updated, nil
}

func (s *ClientStore) Delete(ctx context.Context, id domain.ClientID) error {
	_, err := runMutation(s.state, clientSlices, func() (struct{}, error) {
		_, err := s.api.Delete(ctx, clientPath(id))
		return struct{}{}, err
	}, func(state *ClientState, _ struct{}) {
		state.Items = slices.DeleteFunc(state.Items, func(c domain.Client) bool { return c.ID == id })
	})
	if err != nil {
		return fmt.Errorf("delete client %s: %w", id, err)
	}
	return nil
}

func (s *ClientStore) SetLeadStatus(ctx context.Context, id domain.ClientID, status domain.LeadStatus) (domain.Client, error) {
	parsed, ok := domain.ParseLeadStatus(string(status))
	if !ok {
		return domain.Client{}, &domain.ValidationError{Field: "status", Message: "unsupported lead status " + string(status)}
	}
	return s.Update(ctx, id, domain.ClientPatch{Status: &parsed})
}

// LogCommunication records the interaction in memory first, then touches the client on the backend.
// A failed client update is logged and does not fail the call.
func (s *ClientStore) LogCommunication(ctx context.Context, draft domain.CommunicationDraft) (domain.CommunicationLog, error) {
	kind, ok := domain.ParseCommunicationType(string(draft.Type))
	if !ok {
		return domain.CommunicationLog{}, &domain.ValidationError{Field: "type", Message: "unsupported communication type " + string(draft.Type)}
	}

	now := s.state.clock.Now()
	timestamp := draft.Timestamp
	if timestamp.IsZero() {
		timestamp = now
	}
	entry := domain.CommunicationLog{
		ID:        fmt.Sprintf("%s-%d", draft.ClientID, now.UnixMilli()),
		ClientID:  draft.ClientID,
		Type:      kind,
		Content:   draft.Content,
		Timestamp: timestamp,
		CreatedAt: now,
	}
	s.state.update(func(state *ClientState) {
		state.Logs = append([]domain.CommunicationLog{entry}, state.Logs...)
	})

	current := float64(domain.DefaultLeadScore)
	if client, err := s.Find(draft.ClientID); err == nil {
		current = client.LeadScore
	}

	notes := fmt.Sprintf("%s @ %s: %s", strings.ToUpper(string(kind)), timestamp.UTC().Format(time.RFC3339), draft.Content)
	score := min(current+communicationScoreBump, domain.MaxLeadScore)
	if _, err := s.Update(ctx, draft.ClientID, domain.ClientPatch{
		Notes:           &notes,
		LastContactedAt: &timestamp,
		LeadScore:       &score,
	}); err != nil {
		s.log.WithError(err).WithField("client_id", draft.ClientID).Warn("update client after communication")
	}
	return entry, nil
}

// Logs returns the in-memory communication history of one client, newest first.
func (s *ClientStore) Logs(id domain.ClientID) []domain.CommunicationLog {
	var logs []domain.CommunicationLog
	s.state.read(func(state ClientState) {
		for _, entry := range state.Logs {
			if entry.ClientID == id {
				logs = append(logs, entry)
			}
		}
	})
	return logs
}

func (s *ClientStore) Find(id domain.ClientID) (domain.Client, error) {
	var (
		found domain.Client
		ok    bool
	)
	s.state.read(func(state ClientState) {
		for _, client := range state.Items {
			if client.ID == id {
				found, ok = client, true
				return
			}
		}
	})
	if !ok {
		return domain.Client{}, fmt.Errorf("client %s: %w", id, domain.ErrClientNotFound)
	}
	return found, nil
}

func clientPath(id domain.ClientID) string {
	return clientsPath + "/" + url.PathEscape(string(id))
}
