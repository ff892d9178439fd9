package domain

import (
	"io"
	"time"
)

type AIModule string

const (
	AIModuleProperty  AIModule = "property"
	AIModuleCRM       AIModule = "crm"
	AIModuleMarketing AIModule = "marketing"
	AIModuleSocial    AIModule = "social"
	AIModuleStrategy  AIModule = "strategy"
	AIModulePackages  AIModule = "packages"
	AIModuleAnalytics AIModule = "analytics"
)

type AIContext struct {
	Module   AIModule `json:"module,omitempty"`
	EntityID string   `json:"entityId,omitempty"`
}

type AIRequest struct {
	Prompt  string     `json:"prompt"`
	Context *AIContext `json:"context,omitempty"`
}

type AIAction struct {
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

type AIResponse struct {
	Text        string     `json:"text"`
	Suggestions []string   `json:"suggestions,omitempty"`
	Format      string     `json:"format,omitempty"`
	Actions     []AIAction `json:"actions,omitempty"`
}

type AudioCommand struct {
	Transcript string
	MimeType   string
	Duration   time.Duration
	Audio      io.Reader
}

// CommandRequest is one Command Center submission. Exactly one of Text or Audio is set.
type CommandRequest struct {
	Text        string
	QuickAction string
	Audio       *AudioCommand
	Context     *AIContext
}

type MetricsEventType string

const (
	MetricsRequest  MetricsEventType = "request"
	MetricsResponse MetricsEventType = "response"
	MetricsError    MetricsEventType = "error"
)

type MetricsEvent struct {
	Type      MetricsEventType
	Timestamp time.Time
	Latency   time.Duration
	Module    AIModule
}

type AIProvider string

const (
	AIProviderOpenAI AIProvider = "openai"
	AIProviderGemini AIProvider = "gemini"
)

func (p AIProvider) Valid() bool {
	return p == AIProviderOpenAI || p == AIProviderGemini
}

type ContentRequest struct {
	Prompt      string `json:"prompt"`
	ContentType string `json:"contentType,omitempty"`
	Tone        string `json:"tone,omitempty"`
}

type ContentResponse struct {
	Content     string   `json:"content"`
	ContentType string   `json:"contentType"`
	Tone        string   `json:"tone,omitempty"`
	WordCount   int      `json:"wordCount,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type PropertyAnalysisRequest struct {
	Description string         `json:"description"`
	Details     map[string]any `json:"details,omitempty"`
}
