package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"conversation-intent-toolkit/config"
	_ "conversation-intent-toolkit/docs" // Swagger docs
	calendarUC "conversation-intent-toolkit/internal/calendar/usecase"
	chatHTTP "conversation-intent-toolkit/internal/chat/delivery/http"
	chatUC "conversation-intent-toolkit/internal/chat/usecase"
	"conversation-intent-toolkit/internal/httpserver"
	"conversation-intent-toolkit/internal/session"
	travelUC "conversation-intent-toolkit/internal/travel/usecase"
	"conversation-intent-toolkit/pkg/gcalendar"
	"conversation-intent-toolkit/pkg/log"
	"conversation-intent-toolkit/pkg/runner"
)

// @title       Conversation Intent Toolkit API
// @description Detects calendar events and travel intent in chat messages and forwards enriched queries to an agent runner.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Conversation Intent Toolkit...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Runner URL: %s", cfg.Runner.URL)

	// 3. Google Calendar mirror (optional)
	var calendarClient *gcalendar.Client
	if cfg.Calendar.GoogleCredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.Calendar.GoogleCredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar mirror initialized")
		}
	}

	// 4. Extractors
	calUC, err := calendarUC.New(logger, calendarUC.Config{
		OutputDir:  cfg.Calendar.OutputDir,
		Timezone:   cfg.Calendar.Timezone,
		Calendar:   calendarClient,
		CalendarID: cfg.Calendar.GoogleCalendarID,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize calendar extractor: %v", err)
		return
	}
	trvUC := travelUC.New(logger)

	// 5. Chat orchestration
	sessions := session.NewStore(cfg.Session.MaxEntries, cfg.Session.TTL)
	runnerClient := runner.NewClient(cfg.Runner.URL, cfg.Runner.Model, cfg.Runner.Timeout)
	chatUseCase := chatUC.New(logger, calUC, trvUC, sessions, runnerClient)
	chatHandler := chatHTTP.New(logger, chatUseCase)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		ChatHandler:     chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
