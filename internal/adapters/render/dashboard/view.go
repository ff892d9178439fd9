package dashboard

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/propertypro/ppai/internal/application"
	"github.com/propertypro/ppai/internal/domain"
)

const (
	defaultDeadlineDays = 14
	defaultTopClients   = 5
	scoreBarWidth       = 20
)

type Snapshot struct {
	Session      domain.Session
	Properties   application.PropertyState
	Clients      application.ClientState
	Transactions application.TransactionState
	Deadlines    []domain.Deadline
}

type RenderOptions struct {
	Now          time.Time
	DeadlineDays int
	TopClients   int
}

func renderView(snapshot Snapshot, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("PropertyPro Dashboard"),
		s.header.Render(sessionLine(snapshot.Session, opts.Now)),
	}

	lines = append(lines,
		s.section.Render(propertySection(snapshot.Properties, s)),
		s.section.Render(clientSection(snapshot.Clients, opts, s)),
		s.section.Render(transactionSection(snapshot.Transactions, snapshot.Deadlines, opts, s)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func sessionLine(session domain.Session, now time.Time) string {
	if !session.Authenticated() || session.User == nil {
		return "not signed in"
	}

	line := fmt.Sprintf("signed in as %s (%s)", session.User.Name, session.User.Role)
	switch {
	case session.ExpiresAt.IsZero():
	case session.Expired(now):
		line += ", session expired"
	default:
		line += ", session " + relativeDuration(session.ExpiresAt.Sub(now), "expires in")
	}
	return line
}

func propertySection(state application.PropertyState, s styles) string {
	parts := []string{s.heading.Render(fmt.Sprintf("Properties: %d", len(state.Items)))}
	if line := sliceWarning(state.Fetch, s); line != "" {
		parts = append(parts, line)
	}
	if len(state.Items) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(parts, s.empty.Render("No properties loaded."))...)
	}

	counts := map[domain.PropertyStatus]int{}
	for _, item := range state.Items {
		counts[item.Status]++
	}
	breakdown := []string{}
	for _, status := range []domain.PropertyStatus{domain.PropertyStatusActive, domain.PropertyStatusPending, domain.PropertyStatusDraft, domain.PropertyStatusSold} {
		if counts[status] > 0 {
			breakdown = append(breakdown, fmt.Sprintf("%s %d", status, counts[status]))
		}
	}
	parts = append(parts, s.detail.Render(strings.Join(breakdown, "  ")))

	if state.SelectedID != "" {
		selected := s.meta.Render(fmt.Sprintf("selected: %s (missing)", state.SelectedID))
		for _, item := range state.Items {
			if item.ID == state.SelectedID {
				selected = s.key.Render("selected: ") + s.detail.Render(fmt.Sprintf("%s, %s", item.Title, formatPrice(item.Price)))
				break
			}
		}
		parts = append(parts, selected)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func clientSection(state application.ClientState, opts RenderOptions, s styles) string {
	parts := []string{s.heading.Render(fmt.Sprintf("Clients: %d", len(state.Items)))}
	if line := sliceWarning(state.Fetch, s); line != "" {
		parts = append(parts, line)
	}
	if len(state.Items) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(parts, s.empty.Render("No clients loaded."))...)
	}

	ranked := slices.Clone(state.Items)
	slices.SortStableFunc(ranked, func(a, b domain.Client) int {
		return cmp.Compare(b.LeadScore, a.LeadScore)
	})
	if len(ranked) > opts.TopClients {
		ranked = ranked[:opts.TopClients]
	}

	width := 0
	for _, client := range ranked {
		width = max(width, lipgloss.Width(client.Name))
	}
	for _, client := range ranked {
		parts = append(parts, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.key.Render(padRight(client.Name, width)),
			" ",
			renderScoreBar(client.LeadScore, scoreBarWidth, s),
			" ",
			s.detail.Render(fmt.Sprintf("%3.0f", client.LeadScore)),
			" ",
			s.meta.Render(string(client.Status)),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func transactionSection(state application.TransactionState, deadlines []domain.Deadline, opts RenderOptions, s styles) string {
	parts := []string{s.heading.Render(fmt.Sprintf("Transactions: %d", len(state.Items)))}
	if line := sliceWarning(state.Fetch, s); line != "" {
		parts = append(parts, line)
	}

	open := 0
	for _, item := range state.Items {
		if item.Status == domain.TransactionStatusPending || item.Status == domain.TransactionStatusInProgress {
			open++
		}
	}
	if len(state.Items) > 0 {
		parts = append(parts, s.detail.Render(fmt.Sprintf("open: %d", open)))
	}

	if len(deadlines) == 0 {
		parts = append(parts, s.empty.Render(fmt.Sprintf("No deadlines in the next %d days.", opts.DeadlineDays)))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	parts = append(parts, s.key.Render("upcoming deadlines:"))
	for _, deadline := range deadlines {
		line := fmt.Sprintf("  #%s %s %s", deadline.TransactionID, deadline.Milestone.Name, formatDue(deadline.Milestone.DueDate, opts.Now))
		if deadline.Milestone.DueDate.Before(opts.Now) {
			parts = append(parts, s.warning.Render(line))
			continue
		}
		parts = append(parts, s.detail.Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func sliceWarning(slice domain.AsyncSlice, s styles) string {
	if slice.Status != domain.RequestError {
		return ""
	}
	return s.warning.Render("[fetch failed] " + slice.Error)
}

func renderScoreBar(score float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampScore(score) / 100))
	filled = min(max(filled, 0), width)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatDue(due, now time.Time) string {
	if due.Before(now) {
		return fmt.Sprintf("(overdue %s, %s)", strings.TrimPrefix(relativeDuration(now.Sub(due), ""), " "), due.Format("02 Jan"))
	}
	return fmt.Sprintf("(%s, %s)", relativeDuration(due.Sub(now), "due in"), due.Format("02 Jan"))
}

// relativeDuration renders d as whole hours below a day and whole days above, rounding up.
func relativeDuration(d time.Duration, prefix string) string {
	if d < 24*time.Hour {
		hours := max(int(math.Ceil(d.Hours())), 1)
		return fmt.Sprintf("%s %d %s", prefix, hours, plural(hours, "hour"))
	}
	days := max(int(math.Ceil(d.Hours()/24)), 1)
	return fmt.Sprintf("%s %d %s", prefix, days, plural(days, "day"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

func formatPrice(price float64) string {
	whole := fmt.Sprintf("%.0f", price)
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return "AED " + b.String()
}

func padRight(value string, width int) string {
	if gap := width - lipgloss.Width(value); gap > 0 {
		return value + strings.Repeat(" ", gap)
	}
	return value
}
