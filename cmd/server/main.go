package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rpattn/hrapi/internal/config"
	"github.com/rpattn/hrapi/internal/db"
	"github.com/rpattn/hrapi/internal/logging"
	"github.com/rpattn/hrapi/internal/middleware"
	"github.com/rpattn/hrapi/internal/repository"
	"github.com/rpattn/hrapi/internal/rest"
)

var (
	configPath  string
	skipMigrate bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "hrapi",
	Short:         "HR REST API over PostgreSQL",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format)
		if err != nil {
			return err
		}
		if cfg.File != "" {
			logger.Info("Loaded config", zap.String("file", cfg.File))
		} else {
			logger.Info("No config.yaml found, using defaults and env vars")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or revert the database schema",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(db.Up), string(db.Down)},
	RunE:      runMigrate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".", "Directory containing config.yaml")
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not apply migrations on startup")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runMigrate(cmd *cobra.Command, args []string) error {
	direction := db.Up
	if len(args) == 1 {
		direction = db.Direction(args[0])
	}

	conn, err := db.NewConnection(cmd.Context(), cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	version, err := db.RunMigrations(conn.Pool, direction)
	if err != nil {
		return err
	}
	logger.Info("Migrations complete", zap.String("direction", string(direction)), zap.Uint("version", version))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Setup database connection
	conn, err := db.NewConnection(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	if !skipMigrate {
		version, err := db.RunMigrations(conn.Pool, db.Up)
		if err != nil {
			return err
		}
		logger.Info("Schema is current", zap.Uint("version", version))
	}

	// Create repositories
	jobs := repository.NewJobRepository(conn.Pool)
	router := rest.NewRouter(rest.Stores{
		Regions:      repository.NewRegionRepository(conn.Pool),
		Countries:    repository.NewCountryRepository(conn.Pool),
		Locations:    repository.NewLocationRepository(conn.Pool),
		Departments:  repository.NewDepartmentRepository(conn.Pool),
		Tasks:        repository.NewTaskRepository(conn.Pool),
		Employees:    repository.NewEmployeeRepository(conn.Pool),
		Jobs:         jobs,
		JobHistories: repository.NewJobHistoryRepository(conn.Pool),
		Ping:         conn.Pool.Ping,
	}, logger)

	// Setup CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders: []string{
			"Authorization", "Link", "X-Total-Count", "Location",
			"X-hrapiApp-alert", "X-hrapiApp-error", "X-hrapiApp-params", middleware.RequestIDHeader,
		},
	})

	handler := corsHandler.Handler(
		middleware.LoggingMiddleware(logger)(
			middleware.DataLoaderMiddleware(jobs)(router),
		),
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting HTTP server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("Server exited")
	return nil
}
