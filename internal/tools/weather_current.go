package tools

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/wxtools/weather-mcp-server/internal/protocol"
	"github.com/wxtools/weather-mcp-server/internal/weather"
)

// currentWeatherTool serves current conditions for a location.
type currentWeatherTool struct {
	now func() time.Time
}

// CurrentWeather constructs the get_current_weather tool.
func CurrentWeather() *currentWeatherTool {
	return &currentWeatherTool{now: time.Now}
}

func (t *currentWeatherTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_current_weather",
		Description: "Get the current weather for a specific location",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"location": {
					Type:        "string",
					Description: "The city and state, e.g. San Francisco, CA",
				},
			},
			Required: []string{"location"},
		},
	}
}

type currentWeatherArgs struct {
	Location string `json:"location"`
}

func (t *currentWeatherTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args currentWeatherArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
		}
	}
	if strings.TrimSpace(args.Location) == "" {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "location is required"}
	}

	return textResult(weather.Current(args.Location, t.now()))
}
