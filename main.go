package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/michelgermain/tally-mcp/internal/tally"
	"github.com/michelgermain/tally-mcp/tools"
)

func main() {
	// Optional; the environment wins over .env values.
	_ = godotenv.Load()

	cfg, err := tally.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the MCP transport, so logs go to stderr.
	logrus.SetOutput(os.Stderr)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	client := tally.NewClient(cfg)
	svc := tally.NewService(client)

	logrus.WithFields(logrus.Fields{
		"url":     cfg.URL,
		"timeout": cfg.Timeout(),
	}).Info("starting tally mcp server")

	s := server.NewMCPServer(
		"tally",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	tools.RegisterTools(s, svc)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
