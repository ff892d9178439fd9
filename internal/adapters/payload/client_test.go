package payload

import (
	"testing"
	"time"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientStatusNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want domain.LeadStatus
	}{
		{name: "known", body: `{"client_status":"qualified"}`, want: domain.LeadStatusQualified},
		{name: "upper case", body: `{"client_status":"NURTURING"}`, want: domain.LeadStatusNurturing},
		{name: "absent defaults through active", body: `{}`, want: domain.LeadStatusContacted},
		{name: "empty", body: `{"client_status":""}`, want: domain.LeadStatusContacted},
		{name: "unknown", body: `{"client_status":"hot"}`, want: domain.LeadStatusContacted},
		{name: "non string", body: `{"client_status":3}`, want: domain.LeadStatusContacted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ClientFromJSON([]byte(tt.body)).Status)
		})
	}
}

func TestClientLeadScorePrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want float64
	}{
		{name: "preferences lead_score", body: `{"preferences":{"lead_score":80,"score":10},"lead_score":5}`, want: 80},
		{name: "preferences score", body: `{"preferences":{"score":65},"lead_score":5}`, want: 65},
		{name: "top level", body: `{"lead_score":42}`, want: 42},
		{name: "null skipped", body: `{"preferences":{"lead_score":null},"lead_score":33}`, want: 33},
		{name: "numeric string", body: `{"lead_score":"71"}`, want: 71},
		{name: "garbage", body: `{"lead_score":"hot"}`, want: domain.DefaultLeadScore},
		{name: "missing", body: `{}`, want: domain.DefaultLeadScore},
		{name: "clamped high", body: `{"lead_score":250}`, want: domain.MaxLeadScore},
		{name: "clamped low", body: `{"lead_score":-4}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ClientFromJSON([]byte(tt.body)).LeadScore)
		})
	}
}

func TestClientMapsContactFields(t *testing.T) {
	t.Parallel()

	client := ClientFromJSON([]byte(`{
		"id": 9,
		"name": "Aisha Khan",
		"email": "aisha@example.com",
		"phone": null,
		"requirements": "3BR in JVC",
		"preferences": {"last_contacted_at": "2024-05-01T09:00:00Z"},
		"created_at": "2024-04-01T00:00:00Z",
		"updated_at": "2024-05-02T00:00:00Z"
	}`))

	assert.Equal(t, domain.ClientID("9"), client.ID)
	assert.Equal(t, "Aisha Khan", client.Name)
	assert.Equal(t, "aisha@example.com", client.Email)
	assert.Empty(t, client.Phone)
	assert.Equal(t, "3BR in JVC", client.Notes)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), client.LastContactedAt)
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), client.UpdatedAt)

	withoutContact := ClientFromJSON([]byte(`{"id":1,"updated_at":"2024-05-02T00:00:00Z"}`))
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), withoutContact.LastContactedAt)
}

func TestClientsRequiresArray(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Clients([]byte(`{"detail":"nope"}`)))
	clients := Clients([]byte(`[{"id":1,"name":"A"}]`))
	require.Len(t, clients, 1)
	assert.Equal(t, "A", clients[0].Name)
}

func TestClientCreateBodyDefaults(t *testing.T) {
	t.Parallel()

	body := ClientCreateBody(domain.ClientDraft{Name: "Omar"})
	assert.JSONEq(t, `{
		"name": "Omar",
		"client_status": "new",
		"preferences": {"lead_score": 50, "last_contacted_at": null}
	}`, toJSON(t, body))

	contacted := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	body = ClientCreateBody(domain.ClientDraft{
		Name:            "Omar",
		Email:           "omar@example.com",
		Status:          domain.LeadStatusQualified,
		LeadScore:       ptr(70.0),
		LastContactedAt: contacted,
		Notes:           "Investor",
	})
	assert.JSONEq(t, `{
		"name": "Omar",
		"email": "omar@example.com",
		"client_status": "qualified",
		"notes": "Investor",
		"preferences": {"lead_score": 70, "last_contacted_at": "2024-06-01T08:00:00Z"}
	}`, toJSON(t, body))
}

func TestClientUpdateBody(t *testing.T) {
	t.Parallel()

	existing := &domain.Client{ID: "4", LeadScore: 62}
	contacted := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	status := domain.LeadStatusConverted

	tests := []struct {
		name     string
		patch    domain.ClientPatch
		existing *domain.Client
		want     string
	}{
		{
			name:  "plain fields only",
			patch: domain.ClientPatch{Name: ptr("New Name"), Status: &status},
			want:  `{"name":"New Name","client_status":"converted"}`,
		},
		{
			name:     "contact time keeps existing score",
			patch:    domain.ClientPatch{LastContactedAt: &contacted},
			existing: existing,
			want:     `{"preferences":{"lead_score":62,"last_contacted_at":"2024-06-01T08:00:00Z"}}`,
		},
		{
			name:  "contact time without existing uses default",
			patch: domain.ClientPatch{LastContactedAt: &contacted},
			want:  `{"preferences":{"lead_score":50,"last_contacted_at":"2024-06-01T08:00:00Z"}}`,
		},
		{
			name:     "explicit score wins",
			patch:    domain.ClientPatch{LeadScore: ptr(90.0)},
			existing: existing,
			want:     `{"preferences":{"lead_score":90}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.JSONEq(t, tt.want, toJSON(t, ClientUpdateBody(tt.patch, tt.existing)))
		})
	}
}
