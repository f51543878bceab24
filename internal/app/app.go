package app

import (
	"context"
	"os"

	"github.com/wxtools/weather-mcp-server/internal/config"
	"github.com/wxtools/weather-mcp-server/internal/logging"
	"github.com/wxtools/weather-mcp-server/internal/mcp"
	"github.com/wxtools/weather-mcp-server/internal/prompts"
	"github.com/wxtools/weather-mcp-server/internal/tools"
)

// NewToolbox builds the shared weather toolbox.
func NewToolbox() *mcp.Toolbox {
	return mcp.NewToolbox(
		tools.CurrentWeather(),
		tools.WeatherForecast(),
		tools.CurrentDatetime(),
	)
}

// NewPromptbook builds the shared prompt catalog.
func NewPromptbook() *mcp.Promptbook {
	return mcp.NewPromptbook(
		prompts.CurrentConditions(),
		prompts.ForecastBriefing(),
	)
}

// NewServer constructs an MCP server with the shared registries.
func NewServer(info mcp.ServerInfo) *mcp.Server {
	return mcp.NewServer(NewToolbox(), NewPromptbook(), info)
}

func serverInfo(cfg config.Config) mcp.ServerInfo {
	return mcp.ServerInfo{Name: cfg.Server.Name, Version: cfg.Server.Version}
}

// RunStdio serves MCP requests over stdin/stdout until stdin closes.
func RunStdio(cfg config.Config) error {
	logger := logging.New("mcp-server", cfg.Logging.Level)
	logger.Infof("weather MCP server starting (tools: get_current_weather, get_weather_forecast, get_current_datetime)")
	return mcp.ServeStdio(context.Background(), NewServer(serverInfo(cfg)), os.Stdin, os.Stdout, logger)
}

// RunHTTP serves MCP requests over HTTP on the configured address.
func RunHTTP(cfg config.Config) error {
	logger := logging.New("mcp-http", cfg.Logging.Level)
	return mcp.RunHTTP(NewServer(serverInfo(cfg)), cfg.HTTP.Addr, logger)
}
