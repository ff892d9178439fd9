package domain

type SnackbarType string

const (
	SnackbarInfo    SnackbarType = "info"
	SnackbarSuccess SnackbarType = "success"
	SnackbarWarning SnackbarType = "warning"
	SnackbarError   SnackbarType = "error"
)

type Snackbar struct {
	ID      string
	Message string
	Type    SnackbarType
}

type CommandMode string

const (
	CommandModeAudio CommandMode = "audio"
	CommandModeText  CommandMode = "text"
)

type CommandStatus string

const (
	CommandIdle       CommandStatus = "idle"
	CommandRecording  CommandStatus = "recording"
	CommandReviewing  CommandStatus = "reviewing"
	CommandTyping     CommandStatus = "typing"
	CommandProcessing CommandStatus = "processing"
)

type UIState struct {
	ModalID           string
	GlobalLoading     bool
	Snackbars         []Snackbar
	CommandCenterOpen bool
	CommandMode       CommandMode
	CommandStatus     CommandStatus
	CommandText       string
	CommandTranscript string
	CommandError      string
}
