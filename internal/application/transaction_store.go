package application

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"time"

	"github.com/propertypro/ppai/internal/adapters/payload"
	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
	"github.com/sirupsen/logrus"
)

const transactionsPath = "/api/v1/transactions"

type TransactionState struct {
	Items  []domain.Transaction
	Fetch  domain.AsyncSlice
	Mutate domain.AsyncSlice
}

func cloneTransactionState(state TransactionState) TransactionState {
	items := make([]domain.Transaction, len(state.Items))
	for i, item := range state.Items {
		item.Milestones = slices.Clone(item.Milestones)
		item.Documents = slices.Clone(item.Documents)
		items[i] = item
	}
	state.Items = items
	return state
}

var transactionSlices = asyncSlices[TransactionState]{
	fetch:  func(s *TransactionState) *domain.AsyncSlice { return &s.Fetch },
	mutate: func(s *TransactionState) *domain.AsyncSlice { return &s.Mutate },
}

type TransactionStore struct {
	api   ports.APIClient
	state *stateStore[TransactionState]
}

func NewTransactionStore(api ports.APIClient, clock ports.Clock, log logrus.FieldLogger) *TransactionStore {
	initial := TransactionState{Fetch: domain.IdleSlice(), Mutate: domain.IdleSlice()}
	return &TransactionStore{
		api:   api,
		state: newStateStore(initial, cloneTransactionState, clock, log),
	}
}

func (s *TransactionStore) State() TransactionState {
	return s.state.snapshot()
}

func (s *TransactionStore) Subscribe(fn func(TransactionState)) (unsubscribe func()) {
	return s.state.subscribe(fn)
}

func (s *TransactionStore) Fetch(ctx context.Context) error {
	err := runFetch(ctx, s.state, transactionSlices, func(ctx context.Context) (func(*TransactionState), error) {
		response, err := s.api.Get(ctx, transactionsPath)
		if err != nil {
			return nil, err
		}
		items := payload.Transactions(response.Body)
		return func(state *TransactionState) { state.Items = items }, nil
	})
	if err != nil {
		return fmt.Errorf("fetch transactions: %w", err)
	}
	return nil
}

func (s *TransactionStore) Create(ctx context.Context, draft domain.TransactionDraft) (domain.Transaction, error) {
	if err := draft.Validate(); err != nil {
		return domain.Transaction{}, err
	}

	created, err := runMutation(s.state, transactionSlices, func() (domain.Transaction, error) {
		response, err := s.api.Post(ctx, transactionsPath, payload.TransactionCreateBody(draft))
		if err != nil {
			return domain.Transaction{}, err
		}
		return payload.TransactionFromJSON(response.Body), nil
	}, func(state *TransactionState, created domain.Transaction) {
		state.Items = append([]domain.Transaction{created}, state.Items...)
	})
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	return created, nil
}

func (s *TransactionStore) UpdateStatus(ctx context.Context, id domain.TransactionID, status domain.TransactionStatus) (domain.Transaction, error) {
	if !status.Valid() {
		return domain.Transaction{}, &domain.ValidationError{Field: "transaction_status", Message: "unsupported transaction status " + string(status)}
	}

	updated, err := runMutation(s.state, transactionSlices, func() (domain.Transaction, error) {
		path := transactionsPath + "/" + url.PathEscape(string(id))
		response, err := s.api.Put(ctx, path, payload.TransactionStatusBody(status))
		if err != nil {
			return domain.Transaction{}, err
		}
		return payload.TransactionFromJSON(response.Body), nil
	}, func(state *TransactionState, updated domain.Transaction) {
		for i := range state.Items {
			if state.Items[i].ID == id {
				state.Items[i] = updated
			}
		}
	})
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("update transaction %s status: %w", id, err)
	}
	return updated, nil
}

func (s *TransactionStore) Find(id domain.TransactionID) (domain.Transaction, error) {
	for _, item := range s.State().Items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.Transaction{}, fmt.Errorf("transaction %s: %w", id, domain.ErrTransactionNotFound)
}

// UpcomingDeadlines lists open milestones due within days of now, overdue ones included.
// Undated milestones never qualify.
func (s *TransactionStore) UpcomingDeadlines(days int, now time.Time) []domain.Deadline {
	cutoff := now.Add(time.Duration(days) * 24 * time.Hour)

	deadlines := []domain.Deadline{}
	s.state.read(func(state TransactionState) {
		for _, transaction := range state.Items {
			for _, milestone := range transaction.Milestones {
				if milestone.DueDate.IsZero() || milestone.Completed || milestone.Status == domain.MilestoneCompleted {
					continue
				}
				if milestone.DueDate.After(cutoff) {
					continue
				}
				deadlines = append(deadlines, domain.Deadline{TransactionID: transaction.ID, Milestone: milestone})
			}
		}
	})

	slices.SortStableFunc(deadlines, func(a, b domain.Deadline) int {
		return a.Milestone.DueDate.Compare(b.Milestone.DueDate)
	})
	return deadlines
}
