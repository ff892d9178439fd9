package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/propertypro/ppai/internal/application"
	"github.com/propertypro/ppai/internal/domain"
)

// fetchSource is a store whose fetch slice the progress view follows while a call runs.
type fetchSource struct {
	name  string
	watch func(func(domain.AsyncSlice)) (unsubscribe func())
}

func propertiesSource(store *application.PropertyStore) fetchSource {
	return fetchSource{name: "properties", watch: func(fn func(domain.AsyncSlice)) func() {
		return store.Subscribe(func(state application.PropertyState) { fn(state.Fetch) })
	}}
}

func clientsSource(store *application.ClientStore) fetchSource {
	return fetchSource{name: "clients", watch: func(fn func(domain.AsyncSlice)) func() {
		return store.Subscribe(func(state application.ClientState) { fn(state.Fetch) })
	}}
}

func transactionsSource(store *application.TransactionStore) fetchSource {
	return fetchSource{name: "transactions", watch: func(fn func(domain.AsyncSlice)) func() {
		return store.Subscribe(func(state application.TransactionState) { fn(state.Fetch) })
	}}
}

type sliceChangedMsg struct {
	source string
	slice  domain.AsyncSlice
}

type fetchDoneMsg struct {
	err error
}

type progressStyles struct {
	spinner lipgloss.Style
	pending lipgloss.Style
	ok      lipgloss.Style
	failed  lipgloss.Style
}

type fetchProgressModel struct {
	spinner spinner.Model
	styles  progressStyles
	label   string
	order   []string
	slices  map[string]domain.AsyncSlice
	fetch   tea.Cmd
	err     error
	done    bool
}

func newFetchProgressModel(label string, sources []fetchSource, fetch tea.Cmd) fetchProgressModel {
	styles := progressStyles{
		spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		pending: lipgloss.NewStyle().Faint(true),
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		failed:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}

	m := fetchProgressModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(styles.spinner)),
		styles:  styles,
		label:   label,
		slices:  make(map[string]domain.AsyncSlice, len(sources)),
		fetch:   fetch,
	}
	for _, source := range sources {
		m.order = append(m.order, source.name)
		m.slices[source.name] = domain.IdleSlice()
	}
	return m
}

func (m fetchProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m fetchProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case sliceChangedMsg:
		if _, tracked := m.slices[msg.source]; tracked {
			m.slices[msg.source] = msg.slice
		}
		return m, nil
	case fetchDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m fetchProgressModel) View() string {
	if m.done {
		return ""
	}

	lines := []string{fmt.Sprintf("%s %s", m.spinner.View(), m.label)}
	for _, name := range m.order {
		lines = append(lines, "  "+m.sliceLine(name, m.slices[name]))
	}
	return strings.Join(lines, "\n")
}

func (m fetchProgressModel) sliceLine(name string, slice domain.AsyncSlice) string {
	switch slice.Status {
	case domain.RequestLoading:
		return fmt.Sprintf("%s %s", m.spinner.View(), name)
	case domain.RequestSuccess:
		return m.styles.ok.Render("✓ " + name)
	case domain.RequestError:
		return m.styles.failed.Render(fmt.Sprintf("✗ %s: %s", name, slice.Error))
	default:
		return m.styles.pending.Render("· " + name)
	}
}

// runFetchProgress runs fetch behind a spinner. Each source's fetch slice is forwarded to the
// view for as long as fetch runs.
func runFetchProgress(ctx context.Context, output io.Writer, label string, sources []fetchSource, fetch func(context.Context) error) error {
	var program *tea.Program

	fetchCmd := func() tea.Msg {
		for _, source := range sources {
			name := source.name
			unsubscribe := source.watch(func(slice domain.AsyncSlice) {
				program.Send(sliceChangedMsg{source: name, slice: slice})
			})
			defer unsubscribe()
		}
		return fetchDoneMsg{err: fetch(ctx)}
	}

	program = tea.NewProgram(
		newFetchProgressModel(label, sources, fetchCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(fetchProgressModel)
	if !ok {
		return fmt.Errorf("unexpected final progress model type %T", finalModel)
	}
	return result.err
}
