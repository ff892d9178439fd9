package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
	"github.com/propertypro/ppai/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock advances by step on every read.
type stepClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now
	c.now = c.now.Add(c.step)
	return now
}

func newTestCoordinator(t *testing.T) (*Coordinator, *mocks.MockAPIClient) {
	t.Helper()

	api := mocks.NewMockAPIClient(t)
	clock := &stepClock{now: testNow, step: 250 * time.Millisecond}
	return NewCoordinator(api, domain.AIProviderGemini, clock, nullLogger()), api
}

func TestCoordinatorSendMessageEmitsRequestAndResponse(t *testing.T) {
	t.Parallel()

	coordinator, api := newTestCoordinator(t)
	request := domain.AIRequest{Prompt: "Summarise my pipeline", Context: &domain.AIContext{Module: domain.AIModuleCRM}}
	api.EXPECT().Post(mockAnyContext(), requestsPath, request).
		Return(jsonResponse(`{"text":"You have 4 hot leads","suggestions":["Call Omar"]}`), nil)

	var events []domain.MetricsEvent
	coordinator.SubscribeMetrics(func(event domain.MetricsEvent) { events = append(events, event) })

	response, err := coordinator.SendMessage(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, "You have 4 hot leads", response.Text)
	assert.Equal(t, []string{"Call Omar"}, response.Suggestions)

	require.Len(t, events, 2)
	assert.Equal(t, domain.MetricsEvent{Type: domain.MetricsRequest, Timestamp: testNow, Module: domain.AIModuleCRM}, events[0])
	assert.Equal(t, domain.MetricsResponse, events[1].Type)
	assert.Equal(t, 250*time.Millisecond, events[1].Latency)
	assert.Equal(t, domain.AIModuleCRM, events[1].Module)
}

func TestCoordinatorSendMessageEmitsErrorEvent(t *testing.T) {
	t.Parallel()

	coordinator, api := newTestCoordinator(t)
	api.EXPECT().Post(mockAnyContext(), requestsPath, mockAnyContext()).Return(ports.Response{}, errors.New("timeout"))

	var types []domain.MetricsEventType
	coordinator.SubscribeMetrics(func(event domain.MetricsEvent) { types = append(types, event.Type) })
	coordinator.SubscribeMetrics(func(domain.MetricsEvent) { panic("bad subscriber") })

	_, err := coordinator.SendMessage(context.Background(), domain.AIRequest{Prompt: "hi"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "send ai request")
	assert.Equal(t, []domain.MetricsEventType{domain.MetricsRequest, domain.MetricsError}, types)
}

func TestCoordinatorUnsubscribeStopsEvents(t *testing.T) {
	t.Parallel()

	coordinator, api := newTestCoordinator(t)
	api.EXPECT().Post(mockAnyContext(), requestsPath, mockAnyContext()).Return(jsonResponse(`"ok"`), nil)

	calls := 0
	unsubscribe := coordinator.SubscribeMetrics(func(domain.MetricsEvent) { calls++ })
	unsubscribe()

	response, err := coordinator.SendMessage(context.Background(), domain.AIRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "ok", response.Text)
	assert.Zero(t, calls)
}

func TestCoordinatorSendAudioBuildsMultipartForm(t *testing.T) {
	t.Parallel()

	coordinator, api := newTestCoordinator(t)
	api.EXPECT().Post(mockAnyContext(), requestsPath, mockAnyContext()).
		RunAndReturn(func(_ context.Context, _ string, body interface{}) (ports.Response, error) {
			form, ok := body.(*ports.FormData)
			require.True(t, ok)
			assert.Equal(t, map[string]string{
				"transcript": "book a viewing",
				"mime_type":  "audio/webm",
				"duration":   "2.5",
				"module":     "property",
			}, form.Fields)
			require.Len(t, form.Files, 1)
			assert.Equal(t, "audio", form.Files[0].Field)
			assert.Equal(t, "command.webm", form.Files[0].FileName)
			audio, err := io.ReadAll(form.Files[0].Content)
			require.NoError(t, err)
			assert.Equal(t, "RIFF", string(audio))
			return jsonResponse(`{"message":"Viewing booked"}`), nil
		})

	response, err := coordinator.SendAudio(context.Background(), domain.AudioCommand{
		Transcript: "book a viewing",
		Duration:   2500 * time.Millisecond,
		Audio:      strings.NewReader("RIFF"),
	}, &domain.AIContext{Module: domain.AIModuleProperty})
	require.NoError(t, err)
	assert.Equal(t, "Viewing booked", response.Text)
}

func TestCoordinatorProviderEndpoints(t *testing.T) {
	t.Parallel()

	coordinator, api := newTestCoordinator(t)
	api.EXPECT().Post(mockAnyContext(), "/ai/generate-content?provider=gemini", domain.ContentRequest{Prompt: "Listing copy", Tone: "luxury"}).
		Return(jsonResponse(`{"content":"Stunning villa","contentType":"listing","wordCount":2}`), nil)
	api.EXPECT().Post(mockAnyContext(), "/ai/analyze-property?provider=openai", mockAnyContext()).
		Return(jsonResponse(`{"score":8.5,"highlights":["sea view"]}`), nil)

	content, err := coordinator.GenerateContent(context.Background(), domain.ContentRequest{Prompt: "Listing copy", Tone: "luxury"}, "")
	require.NoError(t, err)
	assert.Equal(t, "Stunning villa", content.Content)
	assert.Equal(t, 2, content.WordCount)

	analysis, err := coordinator.AnalyzeProperty(context.Background(), domain.PropertyAnalysisRequest{Description: "4BR villa"}, domain.AIProviderOpenAI)
	require.NoError(t, err)
	assert.InDelta(t, 8.5, analysis["score"], 0.001)
}

func TestNewCoordinatorDefaultsInvalidProvider(t *testing.T) {
	t.Parallel()

	coordinator := NewCoordinator(mocks.NewMockAPIClient(t), "claude", nil, nil)
	assert.Equal(t, domain.AIProviderOpenAI, coordinator.Provider())
}

func TestCoordinatorRejectsBlankPrompt(t *testing.T) {
	t.Parallel()

	coordinator, _ := newTestCoordinator(t)
	_, err := coordinator.SendMessage(context.Background(), domain.AIRequest{})

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
}
