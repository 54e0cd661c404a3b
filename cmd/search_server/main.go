package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/gcbaptista/go-tfidf-search/api"
	"github.com/gcbaptista/go-tfidf-search/config"
	"github.com/gcbaptista/go-tfidf-search/internal/analytics"
	"github.com/gcbaptista/go-tfidf-search/internal/engine"
	"github.com/gcbaptista/go-tfidf-search/internal/logger"
)

func main() {
	// Define command-line flags
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		configPath = flag.String("config", "", "Path to a YAML config file")
		port       = flag.Int("port", 0, "Port to run the server on (overrides config)")
		demo       = flag.Bool("demo", false, "Run the sample scenarios and exit")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Go TF-IDF Search - An in-memory ranked full-text search server\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                          # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000              # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --config server.yaml     # Load settings from a YAML file\n", os.Args[0])
		fmt.Printf("  %s --demo                   # Run the sample scenarios\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Go TF-IDF Search v1.0.0\n")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if *demo {
		if err := runDemo(os.Stdout); err != nil {
			slog.Error("demo failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.ServerConfig) error {
	var metrics *analytics.Metrics
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = analytics.NewMetrics(registry)
	}

	server, err := engine.NewSearchServer(cfg.Index, engine.WithMetrics(metrics))
	if err != nil {
		return fmt.Errorf("creating search server: %w", err)
	}
	history, err := analytics.NewRequestHistory(server, analytics.WithHistoryMetrics(metrics))
	if err != nil {
		return fmt.Errorf("creating request history: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, api.NewAPI(server, history, metrics), api.RouterOptions{
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		RateLimit:    cfg.RateLimit,
	})

	httpServer := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", httpServer.Addr, "metrics", cfg.Metrics.Enabled)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
