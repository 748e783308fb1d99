package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os/signal"
	"runtime/debug"
	"syscall"

	sloggger "github.com/isleen/lilybot/cmd/lilybot/log"
	"github.com/isleen/lilybot/internal/config"
	"github.com/isleen/lilybot/internal/event"
	"github.com/isleen/lilybot/internal/remote/discord"
	"github.com/isleen/lilybot/internal/remote/telegram"
	"github.com/isleen/lilybot/internal/server"
	"github.com/isleen/lilybot/internal/sim"
	"golang.org/x/sync/errgroup"
)

var (
	buildID   string
	buildTime string
)

// wrapWithRecover wraps a function with panic recovery logic
func wrapWithRecover(logger *slog.Logger, f func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				stackTrace := debug.Stack()
				errMsg := fmt.Sprintf("panic recovered: %v\nStacktrace: %s", r, stackTrace)
				logger.Error(errMsg)
				sloggger.FlushLog()
			}
		}()
		return f()
	}
}

func main() {

	_ = buildID
	_ = buildTime

	err := config.Load("config")
	if err != nil {
		log.Fatalf("Error loading configuration: %s", err.Error())
		return
	}

	logger, err := sloggger.NewLogger(config.Lilybot.Debug.Log, config.Lilybot.LogSaveDirectory, "")
	if err != nil {
		log.Fatalf("Error starting logger: %s", err.Error())
	}
	defer sloggger.FlushAndClose()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	eventListener := event.NewListener(logger)
	manager := sim.NewManager(logger, eventListener)
	srv := server.New(logger, manager)

	// Discord Bot initialization
	if config.Lilybot.Discord.Enabled {
		discordBot, err := discord.NewBot(config.Lilybot.Discord.Token, config.Lilybot.Discord.ChannelID, manager)
		if err != nil {
			logger.Error("Discord could not been initialized", slog.Any("error", err))
			return
		}

		eventListener.Register(discordBot.Handle)
		g.Go(wrapWithRecover(logger, func() error {
			return discordBot.Start(ctx)
		}))
	}

	// Telegram Bot initialization
	if config.Lilybot.Telegram.Enabled {
		telegramBot, err := telegram.NewBot(config.Lilybot.Telegram.Token, config.Lilybot.Telegram.ChatID, logger, manager)
		if err != nil {
			logger.Error("Telegram could not been initialized", slog.Any("error", err))
			return
		}

		eventListener.Register(telegramBot.Handle)
		g.Go(wrapWithRecover(logger, func() error {
			return telegramBot.Start(ctx)
		}))
	}

	g.Go(wrapWithRecover(logger, func() error {
		defer cancel()
		return srv.Listen(config.Lilybot.Server.Port)
	}))

	g.Go(wrapWithRecover(logger, func() error {
		defer cancel()
		return eventListener.Listen(ctx)
	}))

	g.Go(wrapWithRecover(logger, func() error {
		<-ctx.Done()
		logger.Info("Lilybot shutting down...")
		cancel()
		manager.StopAll()
		err = srv.Stop()
		if err != nil {
			logger.Error("error stopping local server", slog.Any("error", err))
		}

		return err
	}))

	err = g.Wait()
	if err != nil {
		cancel()
		logger.Error("Error running Lilybot", slog.Any("error", err))
		return
	}

	sloggger.FlushAndClose()
}
