// Package main boots the wellness companion agent behind the ADK launcher.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	internalagent "github.com/easeaico/wellness-companion/internal/agent"
	"github.com/easeaico/wellness-companion/internal/chat"
	"github.com/easeaico/wellness-companion/internal/config"
	"github.com/easeaico/wellness-companion/internal/emotion"
	"github.com/easeaico/wellness-companion/internal/repository"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/cmd/launcher"
	"google.golang.org/adk/cmd/launcher/full"
	"google.golang.org/adk/session"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	slog.Info("configuration loaded", "app", cfg.AppName, "stats", cfg.StatsEnabled(), "reply_delay", cfg.ReplyDelay.String())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var stats chat.StatsRecorder
	if cfg.StatsEnabled() {
		store, err := repository.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer store.Close()
		stats = store.Stats
	}

	engine := emotion.NewEngine()
	handler := chat.NewHandler(engine, stats, cfg.ReplyDelay, cfg.AnalysisDelay)

	companion, err := internalagent.NewCompanionAgent(handler, engine)
	if err != nil {
		log.Fatalf("Failed to initialize agent: %v", err)
	}

	// Conversations are not persisted.
	launcherConfig := &launcher.Config{
		SessionService: session.InMemoryService(),
		AgentLoader:    agent.NewSingleLoader(companion),
	}

	l := full.NewLauncher()
	errCh := make(chan error, 1)
	go func() {
		slog.Info("launcher starting")
		errCh <- l.Execute(ctx, launcherConfig, os.Args[1:])
	}()

	var execErr error
	select {
	case execErr = <-errCh:
	case <-ctx.Done():
		fmt.Println("\nShutting down...")
	}

	if execErr != nil {
		if execErr != context.Canceled && execErr != context.DeadlineExceeded {
			log.Fatalf("Failed to run agent: %v\n\n%s", execErr, l.CommandLineSyntax())
		}
	}

	fmt.Println("Agent shutdown complete")
}
