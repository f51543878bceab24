package tools

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/wxtools/weather-mcp-server/internal/protocol"
)

// currentDatetimeTool reports the current date and time.
type currentDatetimeTool struct {
	now func() time.Time
}

// CurrentDatetime constructs the get_current_datetime tool.
func CurrentDatetime() *currentDatetimeTool {
	return &currentDatetimeTool{now: time.Now}
}

func (t *currentDatetimeTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_current_datetime",
		Description: "Get the current date and time",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"timezone": {
					Type:        "string",
					Description: "Timezone (e.g., 'UTC', 'local')",
				},
			},
		},
	}
}

type currentDatetimeArgs struct {
	Timezone string `json:"timezone"`
}

type currentDatetimeResult struct {
	Datetime  string  `json:"datetime"`
	Formatted string  `json:"formatted"`
	Timezone  string  `json:"timezone"`
	Timestamp float64 `json:"timestamp"`
}

func (t *currentDatetimeTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args currentDatetimeArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
		}
	}

	now := t.now()
	tzName := "Local"
	if strings.EqualFold(strings.TrimSpace(args.Timezone), "utc") {
		now = now.UTC()
		tzName = "UTC"
	}

	return textResult(currentDatetimeResult{
		Datetime:  now.Format(time.RFC3339),
		Formatted: now.Format("2006-01-02 15:04:05"),
		Timezone:  tzName,
		Timestamp: float64(now.UnixNano()) / float64(time.Second),
	})
}
