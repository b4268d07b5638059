package main

import (
	"log/slog"
	"os"

	"github.com/lite-lake/zonevault/internal/infrastructure/logger"
	"github.com/lite-lake/zonevault/internal/interfaces/cli"
)

func main() {
	logLevel := slog.LevelInfo
	if os.Getenv("ZONEVAULT_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}

	logger.Init(&logger.Config{
		Level:     logLevel,
		Format:    os.Getenv("ZONEVAULT_LOG_FORMAT"),
		AddSource: os.Getenv("ZONEVAULT_DEBUG") != "",
	})

	cli.Execute()
}
