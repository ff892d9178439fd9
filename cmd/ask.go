package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/spf13/cobra"
)

func newAskCmd(app *app) *cobra.Command {
	var module string
	var entityID string
	var quickAction string
	var audioPath string
	var transcript string
	var mimeType string
	var duration time.Duration
	var showMetrics bool

	cmd := &cobra.Command{
		Use:   "ask [prompt...]",
		Short: "Send a prompt or a recorded command to the AI command center",
		Annotations: map[string]string{
			sessionRequiredAnnotation: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			request := domain.CommandRequest{
				Text:        strings.Join(args, " "),
				QuickAction: quickAction,
			}
			if module != "" || entityID != "" {
				request.Context = &domain.AIContext{Module: domain.AIModule(module), EntityID: entityID}
			}

			if audioPath != "" {
				file, err := os.Open(audioPath)
				if err != nil {
					return fmt.Errorf("open audio: %w", err)
				}
				defer file.Close()

				request.Audio = &domain.AudioCommand{
					Transcript: transcript,
					MimeType:   mimeType,
					Duration:   duration,
					Audio:      file,
				}
			}

			response, err := app.container.CommandCenter.Submit(cmd.Context(), request)
			if showMetrics {
				if metricsErr := app.recorder.WriteText(cmd.ErrOrStderr()); metricsErr != nil {
					app.log.WithError(metricsErr).Warn("write ai metrics")
				}
			}
			if err != nil {
				return err
			}
			return app.presenter.Result(response, responseSummary(response))
		},
	}

	cmd.Flags().StringVar(&module, "module", "", "Context module: property, crm, marketing, social, strategy, packages, analytics")
	cmd.Flags().StringVar(&entityID, "entity", "", "ID of the record the prompt is about")
	cmd.Flags().StringVar(&quickAction, "quick", "", "Quick action prompt used when no text is given")
	cmd.Flags().StringVar(&audioPath, "audio", "", "Recorded audio file to send instead of text")
	cmd.Flags().StringVar(&transcript, "transcript", "", "Transcript of the recording")
	cmd.Flags().StringVar(&mimeType, "mime", "", "Audio MIME type (default audio/webm)")
	cmd.Flags().DurationVar(&duration, "duration", 0, "Length of the recording")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print AI request metrics to stderr")

	return cmd
}

func responseSummary(response domain.AIResponse) string {
	lines := []string{response.Text}
	if len(response.Suggestions) > 0 {
		lines = append(lines, "", "Suggestions:")
		for _, suggestion := range response.Suggestions {
			lines = append(lines, "  - "+suggestion)
		}
	}
	for _, action := range response.Actions {
		lines = append(lines, fmt.Sprintf("  > %s: %s", action.Label, action.Prompt))
	}
	return strings.Join(lines, "\n")
}
