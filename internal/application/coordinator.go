package application

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/propertypro/ppai/internal/adapters/payload"
	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
	"github.com/sirupsen/logrus"
)

const (
	requestsPath        = "/api/requests"
	generateContentPath = "/ai/generate-content"
	analyzePropertyPath = "/ai/analyze-property"
	defaultAudioMime    = "audio/webm"
)

// Coordinator is the single entry point for AI requests. Every SendMessage and SendAudio call emits
// a request event followed by a response or error event carrying the latency.
type Coordinator struct {
	api       ports.APIClient
	clock     ports.Clock
	provider  domain.AIProvider
	observers observers[domain.MetricsEvent]
}

func NewCoordinator(api ports.APIClient, provider domain.AIProvider, clock ports.Clock, log logrus.FieldLogger) *Coordinator {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	if !provider.Valid() {
		provider = domain.AIProviderOpenAI
	}
	return &Coordinator{
		api:       api,
		clock:     clock,
		provider:  provider,
		observers: observers[domain.MetricsEvent]{log: log},
	}
}

func (c *Coordinator) Provider() domain.AIProvider {
	return c.provider
}

func (c *Coordinator) SubscribeMetrics(fn func(domain.MetricsEvent)) (unsubscribe func()) {
	return c.observers.subscribe(fn)
}

func (c *Coordinator) SendMessage(ctx context.Context, request domain.AIRequest) (domain.AIResponse, error) {
	if request.Prompt == "" {
		return domain.AIResponse{}, &domain.ValidationError{Field: "prompt", Message: "prompt is required"}
	}
	response, err := c.track(moduleOf(request.Context), func() (ports.Response, error) {
		return c.api.Post(ctx, requestsPath, request)
	})
	if err != nil {
		return domain.AIResponse{}, fmt.Errorf("send ai request: %w", err)
	}
	return payload.AIResponse(response.Body), nil
}

func (c *Coordinator) SendAudio(ctx context.Context, command domain.AudioCommand, aiContext *domain.AIContext) (domain.AIResponse, error) {
	if command.Audio == nil {
		return domain.AIResponse{}, &domain.ValidationError{Field: "audio", Message: "audio is required"}
	}
	mimeType := command.MimeType
	if mimeType == "" {
		mimeType = defaultAudioMime
	}

	form := &ports.FormData{
		Fields: map[string]string{
			"transcript": command.Transcript,
			"mime_type":  mimeType,
			"duration":   strconv.FormatFloat(command.Duration.Seconds(), 'f', -1, 64),
		},
		Files: []ports.FormFile{{
			Field:       "audio",
			FileName:    "command" + audioExtension(mimeType),
			ContentType: mimeType,
			Content:     command.Audio,
		}},
	}
	if aiContext != nil {
		if aiContext.Module != "" {
			form.Fields["module"] = string(aiContext.Module)
		}
		if aiContext.EntityID != "" {
			form.Fields["entity_id"] = aiContext.EntityID
		}
	}

	response, err := c.track(moduleOf(aiContext), func() (ports.Response, error) {
		return c.api.Post(ctx, requestsPath, form)
	})
	if err != nil {
		return domain.AIResponse{}, fmt.Errorf("send audio command: %w", err)
	}
	return payload.AIResponse(response.Body), nil
}

func (c *Coordinator) GenerateContent(ctx context.Context, request domain.ContentRequest, provider domain.AIProvider) (domain.ContentResponse, error) {
	response, err := c.api.Post(ctx, c.providerPath(generateContentPath, provider), request)
	if err != nil {
		return domain.ContentResponse{}, fmt.Errorf("generate content: %w", err)
	}
	var content domain.ContentResponse
	if err := response.Decode(&content); err != nil {
		return domain.ContentResponse{}, fmt.Errorf("generate content: %w", err)
	}
	return content, nil
}

func (c *Coordinator) AnalyzeProperty(ctx context.Context, request domain.PropertyAnalysisRequest, provider domain.AIProvider) (map[string]any, error) {
	response, err := c.api.Post(ctx, c.providerPath(analyzePropertyPath, provider), request)
	if err != nil {
		return nil, fmt.Errorf("analyze property: %w", err)
	}
	analysis := map[string]any{}
	if err := response.Decode(&analysis); err != nil {
		return nil, fmt.Errorf("analyze property: %w", err)
	}
	return analysis, nil
}

func (c *Coordinator) providerPath(path string, provider domain.AIProvider) string {
	if provider == "" {
		provider = c.provider
	}
	return path + "?provider=" + url.QueryEscape(string(provider))
}

func (c *Coordinator) track(module domain.AIModule, call func() (ports.Response, error)) (ports.Response, error) {
	start := c.clock.Now()
	c.observers.notify(domain.MetricsEvent{Type: domain.MetricsRequest, Timestamp: start, Module: module})

	response, err := call()

	end := c.clock.Now()
	event := domain.MetricsEvent{Type: domain.MetricsResponse, Timestamp: end, Latency: end.Sub(start), Module: module}
	if err != nil {
		event.Type = domain.MetricsError
	}
	c.observers.notify(event)
	return response, err
}

func moduleOf(aiContext *domain.AIContext) domain.AIModule {
	if aiContext == nil {
		return ""
	}
	return aiContext.Module
}

func audioExtension(mimeType string) string {
	switch mimeType {
	case "audio/webm":
		return ".webm"
	case "audio/ogg":
		return ".ogg"
	case "audio/mpeg":
		return ".mp3"
	case "audio/wav", "audio/x-wav":
		return ".wav"
	default:
		return ""
	}
}
