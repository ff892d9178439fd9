package payload

import (
	"strings"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/tidwall/gjson"
)

// AIResponse accepts the chat-message shape and a few common alternatives. A non-JSON body is
// taken as the reply text.
func AIResponse(body []byte) domain.AIResponse {
	if !gjson.ValidBytes(body) {
		return domain.AIResponse{Text: strings.TrimSpace(string(body))}
	}
	doc := gjson.ParseBytes(body)
	if doc.Type == gjson.String {
		return domain.AIResponse{Text: doc.Str}
	}

	response := domain.AIResponse{
		Text:   text(first(doc, "text", "content", "message", "response", "result")),
		Format: stringField(doc.Get("format")),
	}
	doc.Get("suggestions").ForEach(func(_, value gjson.Result) bool {
		if value.Type == gjson.String {
			response.Suggestions = append(response.Suggestions, value.Str)
		}
		return true
	})
	doc.Get("actions").ForEach(func(_, value gjson.Result) bool {
		response.Actions = append(response.Actions, domain.AIAction{
			Label:  text(value.Get("label")),
			Prompt: text(value.Get("prompt")),
		})
		return true
	})
	return response
}
