package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"im-core/contract"
	"im-core/domain/event"
	"im-core/internal"
	"im-core/projection"
	"im-core/protocol"
	"im-core/runtime"
	"im-core/runtime/workers"
	"im-core/services"
	"im-core/sink"
	"im-core/storage"
)

// Exit codes to provide meaningful status to the operating system or
// service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper; its only responsibility is
	// calling run() and handling the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hub terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages their lifecycle and centralizes
// error reporting, so every defer (database close included) executes before
// the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config validation: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	roomCache := storage.NewRoomCache(db, logger)
	messageRepository := storage.NewMessageRepository(db, logger, config.TranscriptLimit)

	// 3. Router, sinks and supervision
	registry := runtime.NewRegistry()
	sup := workers.NewSupervisor(logger, config.RestartInterval)

	router := runtime.NewRouter(logger, registry, roomCache,
		logRelay{log: logger}, acceptAllPrompter{log: logger}, config.BufferSize)
	timeline := projection.NewTimeline()
	router.AddSink(timeline,
		sink.NewConsoleSink(os.Stdout),
		sink.NewDiskSink(messageRepository, logger))
	router.SetHistory(messageRepository)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sup.Add(router)
	go sup.Run(ctx)

	// 5. Demo account over the loopback backend
	accounts := services.NewAccountService(logger, router, sup, config.SessionBufferSize)
	instance, err := accounts.AddAccount(ctx, protocol.NewLoopback("loopback", "me", "Me"))
	if err != nil {
		return exitRuntime, err
	}
	accounts.LoginAll()

	router.Post(event.New(event.JoinRoom).
		WithInstance(instance).
		WithString("chat_id", "lobby"))
	router.Post(event.New(event.SendMessage).
		WithInstance(instance).
		WithString("chat_id", "lobby").
		WithString("body", "hello from the hub"))

	logger.Info("Hub running", "instance", instance, "at", time.Now().UTC())

	// 6. Wait for stop, then shut down gracefully
	<-ctx.Done()
	logger.Info("Shutdown signal received")

	accounts.RemoveAccount(instance)
	sup.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}

// logRelay surfaces protocol progress and notifications through the logger;
// a desktop shell would raise real notifications instead.
type logRelay struct {
	log *slog.Logger
}

func (r logRelay) Progress(protocol, title, message string, progress float64) {
	r.log.Info("Protocol progress", "protocol", protocol,
		"title", title, "message", message, "progress", progress)
}

func (r logRelay) Notify(protocol string, kind int32, title, message string) {
	r.log.Info("Protocol notification", "protocol", protocol,
		"kind", kind, "title", title, "message", message)
}

// acceptAllPrompter accepts every room invitation, which is the sensible
// headless default.
type acceptAllPrompter struct {
	log *slog.Logger
}

func (p acceptAllPrompter) PromptInvite(title, body string,
	accept, _ *event.Event, reply contract.ReplyFunc) {
	p.log.Info("Accepting invitation", "title", title, "body", body)
	reply(accept)
}
