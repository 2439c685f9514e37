package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"voicetask/config"
	_ "voicetask/docs" // Swagger docs
	"voicetask/internal/category"
	"voicetask/internal/httpserver"
	"voicetask/internal/middleware"
	memoryRepo "voicetask/internal/task/repository/memory"
	tgDelivery "voicetask/internal/voice/delivery/telegram"
	"voicetask/internal/voice/usecase"
	"voicetask/pkg/gcalendar"
	"voicetask/pkg/log"
	"voicetask/pkg/telegram"
	"voicetask/pkg/voiceparse"
)

// @title       VoiceTask API
// @description Natural-language voice task capture with confirmation flow, Telegram bot, and Google Calendar reminders.
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

	logger.Info(ctx, "Starting VoiceTask...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Parser
	loc, err := time.LoadLocation(cfg.Parser.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Parser.Timezone, err)
		loc = time.UTC
	}

	catalog := category.NewCatalog(cfg.Parser.Categories)
	parserOpts := []voiceparse.Option{
		voiceparse.WithTables(catalog.Tables()),
		voiceparse.WithWeekEndDay(parseWeekday(cfg.Parser.WeekEndDay)),
	}
	if cfg.Parser.FuzzyMatching {
		parserOpts = append(parserOpts, voiceparse.WithFuzzyMatching(cfg.Parser.FuzzyThreshold))
	}
	parser := voiceparse.New(parserOpts...)
	logger.Infof(ctx, "Parser initialized with categories: %s", strings.Join(catalog.Names(), ", "))

	// 4. Task repository
	taskRepo := memoryRepo.New(logger)

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			calendarClient = nil
		} else {
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 6. Voice UseCase
	voiceUC := usecase.New(
		logger,
		parser,
		taskRepo,
		calendarClient,
		time.Duration(cfg.Voice.ConfirmTTLSeconds)*time.Second,
		cfg.Voice.MinConfidence,
		cfg.Voice.DefaultCategory,
		cfg.GoogleCalendar.CalendarID,
		int64(cfg.Voice.ReminderPopupMinutes),
		loc,
	)

	// 7. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, voiceUC, telegramBot)

		// Register webhook: auto-detect ngrok or fall back to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}
		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram bot skipped: telegram.bot_token is missing")
	}

	// 8. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		VoiceUC:         voiceUC,
		Middleware:      mw,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// parseWeekday maps a config weekday name to time.Weekday, defaulting to
// Sunday on unknown input.
func parseWeekday(name string) time.Weekday {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "monday":
		return time.Monday
	case "tuesday":
		return time.Tuesday
	case "wednesday":
		return time.Wednesday
	case "thursday":
		return time.Thursday
	case "friday":
		return time.Friday
	case "saturday":
		return time.Saturday
	default:
		return time.Sunday
	}
}
