package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"kbchat/internal/config"
	"kbchat/internal/domain/assistant"
	"kbchat/internal/domain/document"
	"kbchat/internal/domain/thread"
	"kbchat/internal/infrastructure/logger"
	"kbchat/internal/infrastructure/observability"
	"kbchat/internal/infrastructure/platform"
	"kbchat/internal/infrastructure/store"
	"kbchat/internal/interfaces/httpserver"
	"kbchat/internal/interfaces/httpserver/handlers"
)

// Application holds the main application components.
type Application struct {
	httpServer *httpserver.HTTPServer
	log        zerolog.Logger
}

// NewApplication creates a new application instance.
func NewApplication(httpServer *httpserver.HTTPServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

// Start runs the application until the context is cancelled.
func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Setup observability
	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown telemetry")
		}
	}()

	// Load the knowledge-base document registry
	registry, err := document.LoadManifest(cfg.DocumentManifest)
	if err != nil {
		log.Fatal().Err(err).Str("manifest", cfg.DocumentManifest).Msg("failed to load document manifest")
	}
	log.Info().Int("documents", registry.Len()).Msg("document registry loaded")

	// Initialize thread store and service
	threadStore := store.NewMemoryStore(log)
	threadService := thread.NewService(threadStore, log)

	// Initialize external platform clients
	searcher := platform.NewSearchClient(cfg.PlatformBaseURL, cfg.PlatformAPIKey, cfg.PlatformTimeout)
	completer := platform.NewCompletionClient(cfg.PlatformBaseURL, cfg.PlatformAPIKey)
	files := platform.NewFilesClient(cfg.PlatformBaseURL, cfg.PlatformAPIKey)

	// Initialize the response engine
	engine := assistant.NewEngine(searcher, completer, registry, assistant.SearchConfig{
		VectorStoreID: cfg.VectorStoreID,
		MaxResults:    cfg.MaxSearchResults,
		Instructions:  cfg.Instructions(),
		Temperature:   cfg.AssistantTemperature,
		Model:         cfg.AssistantModel,
	}, log)

	// Initialize HTTP server
	handlerProvider := handlers.NewProvider(threadService, engine, registry, files)
	httpServer := httpserver.New(cfg, log, handlerProvider)

	app := NewApplication(httpServer, log)

	log.Info().
		Str("service", cfg.ServiceName).
		Int("port", cfg.HTTPPort).
		Str("environment", cfg.Environment).
		Str("model", cfg.AssistantModel).
		Msg("starting application")

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env", "../../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
