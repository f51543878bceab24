package tools

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/wxtools/weather-mcp-server/internal/protocol"
	"github.com/wxtools/weather-mcp-server/internal/weather"
)

// weatherForecastTool serves a multi-day forecast for a location.
type weatherForecastTool struct {
	now func() time.Time
}

// WeatherForecast constructs the get_weather_forecast tool.
func WeatherForecast() *weatherForecastTool {
	return &weatherForecastTool{now: time.Now}
}

func (t *weatherForecastTool) Descriptor() protocol.ToolDescriptor {
	minDays, maxDays := 1, 7
	return protocol.ToolDescriptor{
		Name:        "get_weather_forecast",
		Description: "Get the weather forecast for a specific location",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"location": {
					Type:        "string",
					Description: "The city and state, e.g. San Francisco, CA",
				},
				"days": {
					Type:        "integer",
					Description: "Number of days to forecast (1-7)",
					Minimum:     &minDays,
					Maximum:     &maxDays,
				},
			},
			Required: []string{"location"},
		},
	}
}

type weatherForecastArgs struct {
	Location string `json:"location"`
	Days     *int   `json:"days"`
}

type weatherForecastResult struct {
	Location string        `json:"location"`
	Forecast []weather.Day `json:"forecast"`
	Unit     string        `json:"unit"`
}

func (t *weatherForecastTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args weatherForecastArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
		}
	}
	if strings.TrimSpace(args.Location) == "" {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "location is required"}
	}

	// Absent days means 3; out-of-range values are clamped by the generator.
	days := 3
	if args.Days != nil {
		days = *args.Days
	}

	return textResult(weatherForecastResult{
		Location: args.Location,
		Forecast: weather.Forecast(args.Location, days, t.now()),
		Unit:     "Fahrenheit",
	})
}
