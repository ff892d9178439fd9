package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/propertypro/ppai/internal/domain"
)

// CommandCenter drives one submission through the UI state machine.
type CommandCenter struct {
	ui          *UIStore
	coordinator *Coordinator
}

func NewCommandCenter(ui *UIStore, coordinator *Coordinator) *CommandCenter {
	return &CommandCenter{ui: ui, coordinator: coordinator}
}

func (c *CommandCenter) Submit(ctx context.Context, request domain.CommandRequest) (domain.AIResponse, error) {
	if request.Audio != nil {
		return c.submitAudio(ctx, request)
	}

	prompt := strings.TrimSpace(request.Text)
	if prompt == "" {
		prompt = strings.TrimSpace(request.QuickAction)
	}
	if prompt == "" {
		return domain.AIResponse{}, &domain.ValidationError{Field: "text", Message: "command text is required"}
	}

	if !c.ui.State().CommandCenterOpen {
		c.ui.OpenCommandCenter(domain.CommandModeText)
	}
	c.ui.SetCommandMode(domain.CommandModeText)
	c.ui.SetCommandText(prompt)

	return c.process(func() (domain.AIResponse, error) {
		return c.coordinator.SendMessage(ctx, domain.AIRequest{Prompt: prompt, Context: request.Context})
	})
}

func (c *CommandCenter) submitAudio(ctx context.Context, request domain.CommandRequest) (domain.AIResponse, error) {
	if !c.ui.State().CommandCenterOpen {
		c.ui.OpenCommandCenter(domain.CommandModeAudio)
	}
	c.ui.SetCommandMode(domain.CommandModeAudio)
	c.ui.SetCommandTranscript(request.Audio.Transcript)

	return c.process(func() (domain.AIResponse, error) {
		return c.coordinator.SendAudio(ctx, *request.Audio, request.Context)
	})
}

func (c *CommandCenter) process(send func() (domain.AIResponse, error)) (domain.AIResponse, error) {
	if err := c.ui.BeginProcessing(); err != nil {
		return domain.AIResponse{}, fmt.Errorf("submit command: %w", err)
	}

	response, err := send()
	if err != nil {
		c.ui.FailCommand(err.Error())
		return domain.AIResponse{}, err
	}

	c.ui.CompleteCommand()
	return response, nil
}
