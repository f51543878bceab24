// Package prompts defines the conversational prompt templates served via
// prompts/list and prompts/get.
package prompts

import (
	"fmt"

	"github.com/wxtools/weather-mcp-server/internal/protocol"
)

// locationFallback substitutes for a missing location argument. Required
// arguments are not validated here; strict validation is the client's job.
const locationFallback = "the requested location"

// currentConditionsPrompt asks the model to summarize current weather.
type currentConditionsPrompt struct{}

// CurrentConditions constructs the current_conditions prompt.
func CurrentConditions() *currentConditionsPrompt {
	return &currentConditionsPrompt{}
}

func (p *currentConditionsPrompt) Descriptor() protocol.PromptDescriptor {
	return protocol.PromptDescriptor{
		Name:        "current_conditions",
		Description: "Summarize the current weather for a location.",
		Arguments: []protocol.PromptArgument{
			{Name: "location", Description: "The city and state, e.g. San Francisco, CA", Required: true},
		},
	}
}

func (p *currentConditionsPrompt) Render(args map[string]string) []protocol.PromptMessage {
	location := argOr(args, "location", locationFallback)
	text := fmt.Sprintf(
		"Look up the current weather for %s with the get_current_weather tool and summarize it in one or two sentences. Mention the temperature, the sky condition, and whether the wind is notable.",
		location,
	)
	return []protocol.PromptMessage{userMessage(text)}
}

// forecastBriefingPrompt asks the model for a day-by-day forecast briefing.
type forecastBriefingPrompt struct{}

// ForecastBriefing constructs the forecast_briefing prompt.
func ForecastBriefing() *forecastBriefingPrompt {
	return &forecastBriefingPrompt{}
}

func (p *forecastBriefingPrompt) Descriptor() protocol.PromptDescriptor {
	return protocol.PromptDescriptor{
		Name:        "forecast_briefing",
		Description: "Brief the user on the upcoming forecast for a location.",
		Arguments: []protocol.PromptArgument{
			{Name: "location", Description: "The city and state, e.g. San Francisco, CA", Required: true},
			{Name: "days", Description: "Number of days to cover (1-7), defaults to 3", Required: false},
		},
	}
}

func (p *forecastBriefingPrompt) Render(args map[string]string) []protocol.PromptMessage {
	location := argOr(args, "location", locationFallback)
	days := argOr(args, "days", "3")
	text := fmt.Sprintf(
		"Fetch a %s-day forecast for %s with the get_weather_forecast tool. Present it as a short briefing with one line per day covering the date, the expected high and low, and the dominant condition. Call out any snowy or thunderstorm days.",
		days, location,
	)
	return []protocol.PromptMessage{userMessage(text)}
}

func argOr(args map[string]string, key, fallback string) string {
	if v, ok := args[key]; ok && v != "" {
		return v
	}
	return fallback
}

func userMessage(text string) protocol.PromptMessage {
	return protocol.PromptMessage{
		Role:    "user",
		Content: protocol.ContentPart{Type: "text", Text: text},
	}
}
