package payload

import (
	"strings"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/tidwall/gjson"
)

func Client(doc gjson.Result) domain.Client {
	rawStatus := stringField(doc.Get("client_status"))
	if rawStatus == "" {
		rawStatus = "active"
	}
	status, ok := domain.ParseLeadStatus(strings.ToLower(rawStatus))
	if !ok {
		status = domain.LeadStatusContacted
	}

	return domain.Client{
		ID:              domain.ClientID(text(doc.Get("id"))),
		Name:            text(doc.Get("name")),
		Email:           text(doc.Get("email")),
		Phone:           text(doc.Get("phone")),
		LeadScore:       leadScore(first(doc, "preferences.lead_score", "preferences.score", "lead_score")),
		Status:          status,
		LastContactedAt: timestamp(first(doc, "preferences.last_contacted_at", "updated_at")),
		Notes:           text(first(doc, "notes", "requirements")),
		CreatedAt:       timestamp(doc.Get("created_at")),
		UpdatedAt:       timestamp(doc.Get("updated_at")),
	}
}

func leadScore(value gjson.Result) float64 {
	score, ok := number(value)
	if !ok {
		return domain.DefaultLeadScore
	}
	return clampScore(score)
}

func clampScore(score float64) float64 {
	switch {
	case score < 0:
		return 0
	case score > domain.MaxLeadScore:
		return domain.MaxLeadScore
	default:
		return score
	}
}

func ClientFromJSON(body []byte) domain.Client {
	return Client(document(body))
}

func Clients(body []byte) []domain.Client {
	items := records(body)
	clients := make([]domain.Client, 0, len(items))
	for _, item := range items {
		clients = append(clients, Client(item))
	}
	return clients
}

func ClientCreateBody(draft domain.ClientDraft) map[string]any {
	status := draft.Status
	if status == "" {
		status = domain.LeadStatusNew
	}

	preferences := map[string]any{
		"lead_score":        valueOr(draft.LeadScore, domain.DefaultLeadScore),
		"last_contacted_at": nil,
	}
	if !draft.LastContactedAt.IsZero() {
		preferences["last_contacted_at"] = formatTime(draft.LastContactedAt)
	}

	body := map[string]any{
		"name":          draft.Name,
		"client_status": string(status),
		"preferences":   preferences,
	}
	if draft.Email != "" {
		body["email"] = draft.Email
	}
	if draft.Phone != "" {
		body["phone"] = draft.Phone
	}
	if draft.Notes != "" {
		body["notes"] = draft.Notes
	}
	return body
}

// ClientUpdateBody carries the patched fields. preferences is sent whenever the score or the
// contact time changes; the score falls back to existing, then to the default.
func ClientUpdateBody(patch domain.ClientPatch, existing *domain.Client) map[string]any {
	body := map[string]any{}
	if patch.Name != nil {
		body["name"] = *patch.Name
	}
	if patch.Email != nil {
		body["email"] = *patch.Email
	}
	if patch.Phone != nil {
		body["phone"] = *patch.Phone
	}
	if patch.Notes != nil {
		body["notes"] = *patch.Notes
	}
	if patch.Status != nil {
		body["client_status"] = string(*patch.Status)
	}

	if patch.LeadScore != nil || patch.LastContactedAt != nil {
		score := float64(domain.DefaultLeadScore)
		switch {
		case patch.LeadScore != nil:
			score = *patch.LeadScore
		case existing != nil:
			score = existing.LeadScore
		}
		preferences := map[string]any{"lead_score": score}
		if patch.LastContactedAt != nil && !patch.LastContactedAt.IsZero() {
			preferences["last_contacted_at"] = formatTime(*patch.LastContactedAt)
		}
		body["preferences"] = preferences
	}
	return body
}
