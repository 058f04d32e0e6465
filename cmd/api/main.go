package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/yt-optimizer/internal/ai"
	"github.com/yt-optimizer/internal/api"
	"github.com/yt-optimizer/internal/config"
	"github.com/yt-optimizer/internal/metadata"
	"github.com/yt-optimizer/internal/scraper"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg.LogDir)

	// Initialize the Gemini client
	ctx := context.Background()
	client, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logrus.Fatalf("Failed to create Gemini client: %v", err)
	}
	defer client.Close()

	service := metadata.NewService(client)
	tagScraper := scraper.New(nil)

	server := api.NewServer(service, tagScraper, cfg.RequestTimeout)

	// Start server
	logrus.Infof("Server starting on port %s", cfg.Port)
	if err := server.Start(cfg.Port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

// setupLogging sends logs to stdout and, when logDir is set, to a rotating
// file as well.
func setupLogging(logDir string) {
	if logDir == "" {
		return
	}

	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		logrus.Warnf("Failed to create log directory: %v", err)
		return
	}

	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "app.log"),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	logrus.SetOutput(io.MultiWriter(os.Stdout, logFile))
}
