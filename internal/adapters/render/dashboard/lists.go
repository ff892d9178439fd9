package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/propertypro/ppai/internal/domain"
)

// table renders rows as left-aligned columns under a dim header.
func table(s styles, header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, cell := range header {
		widths[i] = lipgloss.Width(cell)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	format := func(cells []string) string {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			padded[i] = padRight(cell, widths[i])
		}
		return strings.TrimRight(strings.Join(padded, "  "), " ")
	}

	lines := []string{s.header.Render(format(header))}
	for _, row := range rows {
		lines = append(lines, s.detail.Render(format(row)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func PropertyList(items []domain.Property, selected domain.PropertyID) string {
	s := newStyles()
	if len(items) == 0 {
		return s.empty.Render("No properties.")
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		marker := " "
		if item.ID == selected {
			marker = "*"
		}
		rows = append(rows, []string{
			marker + string(item.ID),
			item.Title,
			string(item.Status),
			formatPrice(item.Price),
			fmt.Sprintf("%gbd/%gba", item.Beds, item.Baths),
			item.Location,
		})
	}
	return table(s, []string{" ID", "TITLE", "STATUS", "PRICE", "ROOMS", "LOCATION"}, rows)
}

func PropertyDetail(item domain.Property) string {
	s := newStyles()
	lines := []string{
		s.heading.Render(fmt.Sprintf("%s (%s)", item.Title, item.ID)),
		field(s, "status", string(item.Status)),
		field(s, "price", formatPrice(item.Price)),
		field(s, "type", item.PropertyType),
		field(s, "rooms", fmt.Sprintf("%g bedrooms, %g bathrooms", item.Beds, item.Baths)),
	}
	if item.Sqft != nil {
		lines = append(lines, field(s, "area", fmt.Sprintf("%g sqft", *item.Sqft)))
	}
	if item.Location != "" {
		lines = append(lines, field(s, "location", item.Location))
	}
	if item.Description != "" {
		lines = append(lines, field(s, "description", item.Description))
	}
	if item.ImageURL != "" {
		lines = append(lines, field(s, "image", item.ImageURL))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func ClientList(items []domain.Client) string {
	s := newStyles()
	if len(items) == 0 {
		return s.empty.Render("No clients.")
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			string(item.ID),
			item.Name,
			string(item.Status),
			fmt.Sprintf("%.0f", item.LeadScore),
			formatDate(item.LastContactedAt),
			item.Email,
		})
	}
	return table(s, []string{"ID", "NAME", "STATUS", "SCORE", "LAST CONTACT", "EMAIL"}, rows)
}

func TransactionList(items []domain.Transaction) string {
	s := newStyles()
	if len(items) == 0 {
		return s.empty.Render("No transactions.")
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		offer := "-"
		if item.OfferPrice != nil {
			offer = formatPrice(*item.OfferPrice)
		}
		rows = append(rows, []string{
			string(item.ID),
			string(item.PropertyID),
			item.TransactionType,
			string(item.Status),
			offer,
			fmt.Sprintf("%d", len(item.Milestones)),
		})
	}
	return table(s, []string{"ID", "PROPERTY", "TYPE", "STATUS", "OFFER", "MILESTONES"}, rows)
}

func DeadlineList(deadlines []domain.Deadline, now time.Time) string {
	s := newStyles()
	if len(deadlines) == 0 {
		return s.empty.Render("No upcoming deadlines.")
	}

	rows := make([][]string, 0, len(deadlines))
	for _, deadline := range deadlines {
		rows = append(rows, []string{
			string(deadline.TransactionID),
			deadline.Milestone.Name,
			string(deadline.Milestone.Status),
			formatDue(deadline.Milestone.DueDate, now),
		})
	}
	return table(s, []string{"TRANSACTION", "MILESTONE", "STATUS", "DUE"}, rows)
}

func field(s styles, key, value string) string {
	return s.key.Render(key+": ") + s.detail.Render(value)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format("2006-01-02")
}
