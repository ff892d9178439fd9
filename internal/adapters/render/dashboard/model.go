package dashboard

import (
	"errors"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type snapshotReadyMsg struct{}

type model struct {
	snapshot Snapshot
	opts     RenderOptions
	styles   styles
	output   string
}

func newModel(snapshot Snapshot, opts RenderOptions) model {
	return model{
		snapshot: snapshot,
		opts:     opts,
		styles:   newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return snapshotReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case snapshotReadyMsg:
		m.output = renderView(m.snapshot, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render draws the snapshot once through a headless bubbletea program.
func Render(snapshot Snapshot, opts RenderOptions) (string, error) {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	if opts.DeadlineDays <= 0 {
		opts.DeadlineDays = defaultDeadlineDays
	}
	if opts.TopClients <= 0 {
		opts.TopClients = defaultTopClients
	}

	p := tea.NewProgram(
		newModel(snapshot, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
