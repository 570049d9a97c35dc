package provider

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidJSON = errors.New("provider: invalid JSON from model")

type columnReply struct {
	Column *float64 `json:"column"`
}

// ParseColumn extracts the integer "column" field from a model reply. It
// tolerates markdown code fences and surrounding prose but not a missing or
// fractional column. Range and legality are the caller's business.
func ParseColumn(text string) (int, error) {
	raw := extractJSONObject(text)
	if raw == "" {
		return -1, fmt.Errorf("%w: no JSON object in %q", ErrInvalidJSON, truncate(text, 80))
	}

	var reply columnReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return -1, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if reply.Column == nil {
		return -1, fmt.Errorf("%w: missing column field", ErrInvalidJSON)
	}

	v := *reply.Column
	if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
		return -1, fmt.Errorf("%w: column %v is not an integer", ErrInvalidJSON, v)
	}

	return int(v), nil
}

func extractJSONObject(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return ""
	}
	return text[start : end+1]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
