// Package main runs the voicelog MCP server over stdio (for local Cursor use).
// The same MCP server is also mounted on the main backend at /mcp over HTTP,
// so you can use either: stdio (this cmd) or the backend URL (no extra deploy).
package main

import (
	"context"
	"flag"
	"log"

	"github.com/fitcircle/backend/internal/config"
	"github.com/fitcircle/backend/internal/telemetry/metrics"
	"github.com/fitcircle/backend/internal/voicelog"
	voicelogmcp "github.com/fitcircle/backend/internal/voicelog/mcp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	service := voicelog.NewService(voicelog.NewServiceParams{
		CacheSizeMegabytes: cfg.ParseCacheSizeMegabytes,
		CacheExpireSeconds: cfg.ParseCacheExpireSeconds,
		MetricsManager:     metrics.NewManager("backend", "mcp", prometheus.NewRegistry()),
	})
	server := voicelogmcp.NewServer(service)

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
