// Package payload maps backend snake_case JSON to domain view models and back.
package payload

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// first returns the first value in paths that is present and not null.
func first(doc gjson.Result, paths ...string) gjson.Result {
	for _, path := range paths {
		if value := doc.Get(path); value.Exists() && value.Type != gjson.Null {
			return value
		}
	}
	return gjson.Result{}
}

func present(value gjson.Result) bool {
	return value.Exists() && value.Type != gjson.Null
}

// truthy follows loose truthiness: absent, null, false, 0, NaN and "" are false.
func truthy(value gjson.Result) bool {
	switch value.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return value.Num != 0 && !math.IsNaN(value.Num)
	case gjson.String:
		return value.Str != ""
	case gjson.True, gjson.JSON:
		return true
	default:
		return false
	}
}

// number coerces a JSON value the way a loose numeric cast does: numbers, numeric strings and
// booleans convert, an empty string is zero. ok is false when the value is absent or does not
// yield a finite number.
func number(value gjson.Result) (float64, bool) {
	var n float64
	switch value.Type {
	case gjson.Number:
		n = value.Num
	case gjson.True:
		n = 1
	case gjson.False:
		n = 0
	case gjson.String:
		raw := strings.TrimSpace(value.Str)
		if raw == "" {
			return 0, true
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func numberOr(value gjson.Result, fallback float64) float64 {
	if n, ok := number(value); ok {
		return n
	}
	return fallback
}

func numberPtr(value gjson.Result) *float64 {
	n, ok := number(value)
	if !ok {
		return nil
	}
	return &n
}

func text(value gjson.Result) string {
	if !present(value) {
		return ""
	}
	if value.Type == gjson.JSON {
		return value.Raw
	}
	return value.String()
}

func textOr(value gjson.Result, fallback string) string {
	if !present(value) {
		return fallback
	}
	return text(value)
}

func stringField(value gjson.Result) string {
	if value.Type != gjson.String {
		return ""
	}
	return value.Str
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func timestamp(value gjson.Result) time.Time {
	switch value.Type {
	case gjson.String:
		raw := strings.TrimSpace(value.Str)
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, raw); err == nil {
				return parsed
			}
		}
	case gjson.Number:
		return time.UnixMilli(int64(value.Num)).UTC()
	}
	return time.Time{}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func records(body []byte) []gjson.Result {
	if !gjson.ValidBytes(body) {
		return nil
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsArray() {
		return nil
	}
	return doc.Array()
}

func document(body []byte) gjson.Result {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}
	}
	return gjson.ParseBytes(body)
}
