package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/wxtools/weather-mcp-server/internal/app"
	"github.com/wxtools/weather-mcp-server/internal/config"
	"github.com/wxtools/weather-mcp-server/internal/version"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "Path to optional YAML config file")
	httpAddr := flag.String("http", "", "MCP HTTP listen address (overrides config, e.g. :3333)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *httpAddr != "" {
		cfg.HTTP.Addr = *httpAddr
	}

	log.Printf("weather-mcp-server %s listening on %s", version.Get(), cfg.HTTP.Addr)
	if err := app.RunHTTP(cfg); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
