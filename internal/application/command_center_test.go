package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandCenterSubmitText(t *testing.T) {
	t.Parallel()

	coordinator, api := newTestCoordinator(t)
	ui := newTestUIStore()
	center := NewCommandCenter(ui, coordinator)

	var statuses []domain.CommandStatus
	ui.Subscribe(func(state domain.UIState) { statuses = append(statuses, state.CommandStatus) })

	api.EXPECT().Post(mockAnyContext(), requestsPath, domain.AIRequest{Prompt: "List villas under 5M"}).
		Return(jsonResponse(`{"text":"Found 3 villas"}`), nil)

	response, err := center.Submit(context.Background(), domain.CommandRequest{Text: "  List villas under 5M "})
	require.NoError(t, err)
	assert.Equal(t, "Found 3 villas", response.Text)

	assert.Contains(t, statuses, domain.CommandProcessing)
	state := ui.State()
	assert.Equal(t, domain.CommandIdle, state.CommandStatus)
	assert.False(t, state.CommandCenterOpen)
	assert.Empty(t, state.CommandText)
}

func TestCommandCenterSubmitQuickAction(t *testing.T) {
	t.Parallel()

	coordinator, api := newTestCoordinator(t)
	center := NewCommandCenter(newTestUIStore(), coordinator)

	api.EXPECT().Post(mockAnyContext(), requestsPath, domain.AIRequest{Prompt: "Draft follow-up email"}).
		Return(jsonResponse(`{"text":"Dear Omar"}`), nil)

	_, err := center.Submit(context.Background(), domain.CommandRequest{QuickAction: "Draft follow-up email"})
	require.NoError(t, err)
}

func TestCommandCenterBlankTextFailsWithoutRequest(t *testing.T) {
	t.Parallel()

	coordinator, _ := newTestCoordinator(t)
	ui := newTestUIStore()
	center := NewCommandCenter(ui, coordinator)

	_, err := center.Submit(context.Background(), domain.CommandRequest{Text: "   "})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, domain.CommandIdle, ui.State().CommandStatus)
}

func TestCommandCenterFailureMovesToReviewing(t *testing.T) {
	t.Parallel()

	coordinator, api := newTestCoordinator(t)
	ui := newTestUIStore()
	center := NewCommandCenter(ui, coordinator)

	api.EXPECT().Post(mockAnyContext(), requestsPath, mockAnyContext()).
		Return(ports.Response{}, &domain.NetworkError{Err: errors.New("connection refused")})

	_, err := center.Submit(context.Background(), domain.CommandRequest{Text: "hello"})
	require.Error(t, err)

	state := ui.State()
	assert.True(t, state.CommandCenterOpen)
	assert.Equal(t, domain.CommandReviewing, state.CommandStatus)
	assert.Equal(t, "hello", state.CommandText)
	assert.Contains(t, state.CommandError, "Network error contacting API")
}

func TestCommandCenterSubmitAudio(t *testing.T) {
	t.Parallel()

	coordinator, api := newTestCoordinator(t)
	ui := newTestUIStore()
	center := NewCommandCenter(ui, coordinator)

	api.EXPECT().Post(mockAnyContext(), requestsPath, mockAnyContext()).
		RunAndReturn(func(_ context.Context, _ string, body interface{}) (ports.Response, error) {
			form, ok := body.(*ports.FormData)
			require.True(t, ok)
			assert.Equal(t, "call Omar", form.Fields["transcript"])
			assert.Equal(t, domain.CommandProcessing, ui.State().CommandStatus)
			return jsonResponse(`{"text":"Calling"}`), nil
		})

	response, err := center.Submit(context.Background(), domain.CommandRequest{
		Audio: &domain.AudioCommand{Transcript: "call Omar", MimeType: "audio/ogg", Audio: strings.NewReader("OggS")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Calling", response.Text)
	assert.Equal(t, domain.CommandIdle, ui.State().CommandStatus)
}
