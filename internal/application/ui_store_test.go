package application

import (
	"testing"

	"github.com/google/uuid"
	"github.com/propertypro/ppai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUIStore() *UIStore {
	return NewUIStore(fixedClock{now: testNow}, nullLogger())
}

func TestUIStoreDefaults(t *testing.T) {
	t.Parallel()

	state := newTestUIStore().State()
	assert.Equal(t, domain.CommandModeAudio, state.CommandMode)
	assert.Equal(t, domain.CommandIdle, state.CommandStatus)
	assert.False(t, state.CommandCenterOpen)
	assert.Empty(t, state.Snackbars)
}

func TestUIStoreModalAndLoading(t *testing.T) {
	t.Parallel()

	store := newTestUIStore()
	store.OpenModal("add-property")
	store.StartLoading()
	assert.Equal(t, "add-property", store.State().ModalID)
	assert.True(t, store.State().GlobalLoading)

	store.CloseModal()
	store.StopLoading()
	assert.Empty(t, store.State().ModalID)
	assert.False(t, store.State().GlobalLoading)
}

func TestUIStoreSnackbars(t *testing.T) {
	t.Parallel()

	store := newTestUIStore()
	generated := store.PushSnackbar(domain.Snackbar{Message: "Saved"})
	store.PushSnackbar(domain.Snackbar{ID: "fixed", Message: "Failed", Type: domain.SnackbarError})

	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	state := store.State()
	require.Len(t, state.Snackbars, 2)
	assert.Equal(t, domain.SnackbarInfo, state.Snackbars[0].Type)
	assert.Equal(t, "fixed", state.Snackbars[1].ID)

	store.RemoveSnackbar(generated)
	assert.Equal(t, []domain.Snackbar{{ID: "fixed", Message: "Failed", Type: domain.SnackbarError}}, store.State().Snackbars)
}

func TestUIStoreCommandModeAndText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		act    func(*UIStore)
		status domain.CommandStatus
		mode   domain.CommandMode
	}{
		{
			name:   "text mode with blank text is idle",
			act:    func(s *UIStore) { s.SetCommandMode(domain.CommandModeText) },
			status: domain.CommandIdle,
			mode:   domain.CommandModeText,
		},
		{
			name: "typing in text mode",
			act: func(s *UIStore) {
				s.SetCommandMode(domain.CommandModeText)
				s.SetCommandText("list villas")
			},
			status: domain.CommandTyping,
			mode:   domain.CommandModeText,
		},
		{
			name: "switching to text with pending text types",
			act: func(s *UIStore) {
				s.SetCommandText("draft")
				s.SetCommandMode(domain.CommandModeText)
			},
			status: domain.CommandTyping,
			mode:   domain.CommandModeText,
		},
		{
			name: "text in audio mode keeps status",
			act: func(s *UIStore) {
				s.SetCommandStatus(domain.CommandRecording)
				s.SetCommandText("ignored for status")
			},
			status: domain.CommandRecording,
			mode:   domain.CommandModeAudio,
		},
		{
			name: "audio mode always idles",
			act: func(s *UIStore) {
				s.SetCommandMode(domain.CommandModeText)
				s.SetCommandText("x")
				s.SetCommandMode(domain.CommandModeAudio)
			},
			status: domain.CommandIdle,
			mode:   domain.CommandModeAudio,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newTestUIStore()
			tt.act(store)

			state := store.State()
			assert.Equal(t, tt.status, state.CommandStatus)
			assert.Equal(t, tt.mode, state.CommandMode)
		})
	}
}

func TestUIStoreOpenCommandCenterKeepsModeWhenEmpty(t *testing.T) {
	t.Parallel()

	store := newTestUIStore()
	store.SetCommandMode(domain.CommandModeText)
	store.SetCommandError("old failure")

	store.OpenCommandCenter("")

	state := store.State()
	assert.True(t, state.CommandCenterOpen)
	assert.Equal(t, domain.CommandModeText, state.CommandMode)
	assert.Equal(t, domain.CommandIdle, state.CommandStatus)
	assert.Empty(t, state.CommandError)
}

func TestUIStoreCloseCommandCenterResetsCommand(t *testing.T) {
	t.Parallel()

	store := newTestUIStore()
	store.OpenCommandCenter(domain.CommandModeText)
	store.SetCommandText("half typed")
	store.SetCommandTranscript("transcript")
	store.SetCommandError("boom")

	store.CloseCommandCenter()

	state := store.State()
	assert.False(t, state.CommandCenterOpen)
	assert.Equal(t, domain.CommandModeAudio, state.CommandMode)
	assert.Equal(t, domain.CommandIdle, state.CommandStatus)
	assert.Empty(t, state.CommandText)
	assert.Empty(t, state.CommandTranscript)
	assert.Empty(t, state.CommandError)
}

func TestUIStoreRecordingLifecycle(t *testing.T) {
	t.Parallel()

	store := newTestUIStore()
	store.OpenCommandCenter(domain.CommandModeAudio)

	require.NoError(t, store.StartRecording())
	assert.Equal(t, domain.CommandRecording, store.State().CommandStatus)

	require.ErrorIs(t, store.BeginProcessing(), domain.ErrInvalidTransition)

	require.NoError(t, store.StopRecording("show me leads"))
	assert.Equal(t, domain.CommandReviewing, store.State().CommandStatus)
	assert.Equal(t, "show me leads", store.State().CommandTranscript)

	require.NoError(t, store.BeginProcessing())
	store.FailCommand("backend down")
	assert.Equal(t, domain.CommandReviewing, store.State().CommandStatus)
	assert.Equal(t, "backend down", store.State().CommandError)

	require.NoError(t, store.BeginProcessing())
	assert.Empty(t, store.State().CommandError)
	store.CompleteCommand()
	assert.Equal(t, domain.CommandIdle, store.State().CommandStatus)
	assert.False(t, store.State().CommandCenterOpen)
}

func TestUIStoreInvalidTransitions(t *testing.T) {
	t.Parallel()

	store := newTestUIStore()
	require.ErrorIs(t, store.StopRecording("x"), domain.ErrInvalidTransition)

	store.SetCommandMode(domain.CommandModeText)
	require.ErrorIs(t, store.StartRecording(), domain.ErrInvalidTransition)
	assert.Equal(t, domain.CommandIdle, store.State().CommandStatus)
}
