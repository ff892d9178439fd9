package application

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
	"github.com/sirupsen/logrus"
)

func defaultUIState() domain.UIState {
	state := domain.UIState{Snackbars: []domain.Snackbar{}}
	resetCommand(&state)
	return state
}

func resetCommand(state *domain.UIState) {
	state.CommandCenterOpen = false
	state.CommandMode = domain.CommandModeAudio
	state.CommandStatus = domain.CommandIdle
	state.CommandText = ""
	state.CommandTranscript = ""
	state.CommandError = ""
}

func cloneUIState(state domain.UIState) domain.UIState {
	state.Snackbars = slices.Clone(state.Snackbars)
	return state
}

// typingStatus is the status text mode settles on for the given input.
func typingStatus(text string) domain.CommandStatus {
	if strings.TrimSpace(text) != "" {
		return domain.CommandTyping
	}
	return domain.CommandIdle
}

// UIStore holds transient interface state: modal, global spinner, snackbars and the command center.
type UIStore struct {
	state *stateStore[domain.UIState]
}

func NewUIStore(clock ports.Clock, log logrus.FieldLogger) *UIStore {
	return &UIStore{state: newStateStore(defaultUIState(), cloneUIState, clock, log)}
}

func (s *UIStore) State() domain.UIState {
	return s.state.snapshot()
}

func (s *UIStore) Subscribe(fn func(domain.UIState)) (unsubscribe func()) {
	return s.state.subscribe(fn)
}

func (s *UIStore) OpenModal(id string) {
	s.state.update(func(state *domain.UIState) { state.ModalID = id })
}

func (s *UIStore) CloseModal() {
	s.state.update(func(state *domain.UIState) { state.ModalID = "" })
}

func (s *UIStore) StartLoading() {
	s.state.update(func(state *domain.UIState) { state.GlobalLoading = true })
}

func (s *UIStore) StopLoading() {
	s.state.update(func(state *domain.UIState) { state.GlobalLoading = false })
}

// PushSnackbar appends the snackbar and returns its id, generating one when empty.
func (s *UIStore) PushSnackbar(snackbar domain.Snackbar) string {
	if snackbar.ID == "" {
		snackbar.ID = uuid.NewString()
	}
	if snackbar.Type == "" {
		snackbar.Type = domain.SnackbarInfo
	}
	s.state.update(func(state *domain.UIState) {
		state.Snackbars = append(state.Snackbars, snackbar)
	})
	return snackbar.ID
}

func (s *UIStore) RemoveSnackbar(id string) {
	s.state.update(func(state *domain.UIState) {
		state.Snackbars = slices.DeleteFunc(state.Snackbars, func(item domain.Snackbar) bool { return item.ID == id })
	})
}

// OpenCommandCenter opens in mode, or in the current mode when mode is empty.
func (s *UIStore) OpenCommandCenter(mode domain.CommandMode) {
	s.state.update(func(state *domain.UIState) {
		state.CommandCenterOpen = true
		if mode != "" {
			state.CommandMode = mode
		}
		state.CommandStatus = domain.CommandIdle
		state.CommandError = ""
	})
}

// CloseCommandCenter closes the panel and drops any half-entered command.
func (s *UIStore) CloseCommandCenter() {
	s.state.update(resetCommand)
}

func (s *UIStore) SetCommandMode(mode domain.CommandMode) {
	s.state.update(func(state *domain.UIState) {
		state.CommandMode = mode
		state.CommandStatus = domain.CommandIdle
		if mode == domain.CommandModeText {
			state.CommandStatus = typingStatus(state.CommandText)
		}
		state.CommandError = ""
	})
}

func (s *UIStore) SetCommandStatus(status domain.CommandStatus) {
	s.state.update(func(state *domain.UIState) { state.CommandStatus = status })
}

func (s *UIStore) SetCommandText(text string) {
	s.state.update(func(state *domain.UIState) {
		state.CommandText = text
		if state.CommandMode == domain.CommandModeText {
			state.CommandStatus = typingStatus(text)
		}
	})
}

func (s *UIStore) SetCommandTranscript(transcript string) {
	s.state.update(func(state *domain.UIState) { state.CommandTranscript = transcript })
}

func (s *UIStore) SetCommandError(message string) {
	s.state.update(func(state *domain.UIState) { state.CommandError = message })
}

func (s *UIStore) ResetCommandState() {
	s.state.update(resetCommand)
}

// transition applies fn only when the current status is one of from.
func (s *UIStore) transition(name string, from []domain.CommandStatus, fn func(*domain.UIState) error) error {
	var err error
	s.state.update(func(state *domain.UIState) {
		if !slices.Contains(from, state.CommandStatus) {
			err = fmt.Errorf("%s from %s: %w", name, state.CommandStatus, domain.ErrInvalidTransition)
			return
		}
		err = fn(state)
	})
	return err
}

func (s *UIStore) StartRecording() error {
	return s.transition("start recording", []domain.CommandStatus{domain.CommandIdle, domain.CommandReviewing}, func(state *domain.UIState) error {
		if state.CommandMode != domain.CommandModeAudio {
			return fmt.Errorf("start recording in %s mode: %w", state.CommandMode, domain.ErrInvalidTransition)
		}
		state.CommandStatus = domain.CommandRecording
		state.CommandTranscript = ""
		state.CommandError = ""
		return nil
	})
}

func (s *UIStore) StopRecording(transcript string) error {
	return s.transition("stop recording", []domain.CommandStatus{domain.CommandRecording}, func(state *domain.UIState) error {
		state.CommandStatus = domain.CommandReviewing
		state.CommandTranscript = transcript
		return nil
	})
}

func (s *UIStore) BeginProcessing() error {
	from := []domain.CommandStatus{domain.CommandIdle, domain.CommandTyping, domain.CommandReviewing}
	return s.transition("begin processing", from, func(state *domain.UIState) error {
		state.CommandStatus = domain.CommandProcessing
		state.CommandError = ""
		return nil
	})
}

func (s *UIStore) CompleteCommand() {
	s.state.update(resetCommand)
}

// FailCommand keeps the input and moves to reviewing so the user can retry.
func (s *UIStore) FailCommand(message string) {
	s.state.update(func(state *domain.UIState) {
		state.CommandStatus = domain.CommandReviewing
		state.CommandError = message
	})
}
