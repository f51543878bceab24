package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/wxtools/weather-mcp-server/internal/app"
	"github.com/wxtools/weather-mcp-server/internal/config"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "Path to optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Serves newline-delimited JSON-RPC on stdin/stdout until stdin closes.
	if err := app.RunStdio(cfg); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
