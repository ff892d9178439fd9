package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/propertypro/ppai/internal/adapters/render/dashboard"
	"github.com/propertypro/ppai/internal/domain"
)

// presenter writes command results. One implementation is picked per run from the --json flag.
type presenter interface {
	Properties(items []domain.Property, selected domain.PropertyID) error
	Property(item domain.Property) error
	Clients(items []domain.Client) error
	Transactions(items []domain.Transaction) error
	Deadlines(deadlines []domain.Deadline, now time.Time) error
	Dashboard(snapshot dashboard.Snapshot, opts dashboard.RenderOptions) error
	// Result writes value as JSON, or summary for terminals.
	Result(value any, summary string) error
}

func newPresenter(out io.Writer, asJSON bool) presenter {
	if asJSON {
		return jsonPresenter{out: out}
	}
	return terminalPresenter{out: out, render: dashboard.Render}
}

type terminalPresenter struct {
	out    io.Writer
	render func(dashboard.Snapshot, dashboard.RenderOptions) (string, error)
}

func (p terminalPresenter) Properties(items []domain.Property, selected domain.PropertyID) error {
	return p.line(dashboard.PropertyList(items, selected))
}

func (p terminalPresenter) Property(item domain.Property) error {
	return p.line(dashboard.PropertyDetail(item))
}

func (p terminalPresenter) Clients(items []domain.Client) error {
	return p.line(dashboard.ClientList(items))
}

func (p terminalPresenter) Transactions(items []domain.Transaction) error {
	return p.line(dashboard.TransactionList(items))
}

func (p terminalPresenter) Deadlines(deadlines []domain.Deadline, now time.Time) error {
	return p.line(dashboard.DeadlineList(deadlines, now))
}

func (p terminalPresenter) Dashboard(snapshot dashboard.Snapshot, opts dashboard.RenderOptions) error {
	rendered, err := p.render(snapshot, opts)
	if err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return p.line(rendered)
}

func (p terminalPresenter) Result(_ any, summary string) error {
	return p.line(summary)
}

func (p terminalPresenter) line(text string) error {
	_, err := fmt.Fprintln(p.out, text)
	return err
}

type jsonPresenter struct {
	out io.Writer
}

func (p jsonPresenter) Properties(items []domain.Property, selected domain.PropertyID) error {
	return p.encode(struct {
		Items      []domain.Property
		SelectedID domain.PropertyID
	}{Items: items, SelectedID: selected})
}

func (p jsonPresenter) Property(item domain.Property) error {
	return p.encode(item)
}

func (p jsonPresenter) Clients(items []domain.Client) error {
	return p.encode(items)
}

func (p jsonPresenter) Transactions(items []domain.Transaction) error {
	return p.encode(items)
}

func (p jsonPresenter) Deadlines(deadlines []domain.Deadline, _ time.Time) error {
	return p.encode(deadlines)
}

func (p jsonPresenter) Dashboard(snapshot dashboard.Snapshot, _ dashboard.RenderOptions) error {
	return p.encode(struct {
		Session      sessionView
		Properties   []domain.Property
		Clients      []domain.Client
		Transactions []domain.Transaction
		Deadlines    []domain.Deadline
	}{
		Session:      newSessionView(snapshot.Session),
		Properties:   snapshot.Properties.Items,
		Clients:      snapshot.Clients.Items,
		Transactions: snapshot.Transactions.Items,
		Deadlines:    snapshot.Deadlines,
	})
}

func (p jsonPresenter) Result(value any, _ string) error {
	return p.encode(value)
}

func (p jsonPresenter) encode(value any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

// sessionView is the printable part of a session. Tokens never leave the secret store.
type sessionView struct {
	Authenticated bool
	User          *domain.UserProfile
	ExpiresAt     *time.Time `json:",omitempty"`
	Preferences   domain.Preferences
}

func newSessionView(session domain.Session) sessionView {
	view := sessionView{
		Authenticated: session.Authenticated(),
		User:          session.User,
		Preferences:   session.Preferences,
	}
	if !session.ExpiresAt.IsZero() {
		expiresAt := session.ExpiresAt
		view.ExpiresAt = &expiresAt
	}
	return view
}
