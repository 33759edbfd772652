package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"contentmaker/internal/http/handlers"
	"contentmaker/internal/http/httpapi"
	"contentmaker/internal/infra"
	"contentmaker/internal/jobstore"
	"contentmaker/internal/pipeline"
	"contentmaker/internal/providers/genai"
	"contentmaker/internal/providers/image"
	"contentmaker/internal/providers/music"
	"contentmaker/internal/providers/script"
	"contentmaker/internal/providers/videomux"
	"contentmaker/internal/providers/voice"
	"contentmaker/internal/publish"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		logger.Fatal().Err(err).Msg("failed to create output dir")
	}

	publisher, err := publish.New(cfg.StaticDir, cfg.StaticBaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare static dirs")
	}

	gemini := genai.NewClient(genai.Options{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
		Logger:  &logger,
	})
	if !gemini.Configured() {
		logger.Warn().Msg("GEMINI_API_KEY not set; using local synthetic generators")
	}

	store := jobstore.New()
	runner := pipeline.NewRunner(pipeline.RunnerOptions{
		Store:     store,
		Script:    script.NewGemini(gemini, script.NewStatic()),
		Images:    image.NewGemini(gemini),
		Voice:     voice.NewLocal(),
		Music:     music.NewLocal(),
		Mux:       videomux.NewLocal(),
		Publisher: publisher,
		Logger:    logger,
	})

	app := handlers.NewApp(cfg, logger, store, runner, publisher)
	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on %s", server.Addr())
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
