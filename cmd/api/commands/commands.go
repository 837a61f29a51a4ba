package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyloop/core/internal/adapters/repository"
	"github.com/studyloop/core/internal/application/services"
	"github.com/studyloop/core/internal/infrastructure/config"
	"github.com/studyloop/core/internal/infrastructure/logger"
	"github.com/studyloop/core/internal/infrastructure/scheduler"
	"github.com/studyloop/core/internal/infrastructure/server"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the StudyLoop server",
		Long:  "Start the StudyLoop HTTP server with the web UI, REST API and daily analysis push",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the progress report as an xlsx workbook",
		Run: func(cmd *cobra.Command, args []string) {
			out, _ := cmd.Flags().GetString("out")
			runExport(out)
		},
	}

	exportCmd.Flags().String("out", "studyloop-progress.xlsx", "Output file path")
	return exportCmd
}

// NewTokenCommand creates the token command
func NewTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Mint an owner API token",
		Long:  "Mint a bearer token for API access when auth is enabled (requires AUTH_SECRET)",
		Run: func(cmd *cobra.Command, args []string) {
			runToken()
		},
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print StudyLoop version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("StudyLoop v1.0.0")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	entryRepo, err := repository.NewEntryRepository(cfg.Storage.DataFile)
	if err != nil {
		appLogger.Fatal("Failed to open data file", "error", err)
	}

	srv, err := server.New(cfg, entryRepo, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize server", "error", err)
	}

	sched := scheduler.New(srv.AnalysisService(), cfg.Analysis.PushHour, appLogger)
	if err := sched.Start(); err != nil {
		appLogger.Fatal("Failed to start scheduler", "error", err)
	}
	defer sched.Stop()

	appLogger.Info("Starting StudyLoop server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
		"data_file", cfg.Storage.DataFile,
	)

	go func() {
		if err := srv.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
			appLogger.Info("Server stopped", "reason", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Graceful shutdown failed", "error", err)
	}
}

func runExport(out string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	entryRepo, err := repository.NewEntryRepository(cfg.Storage.DataFile)
	if err != nil {
		appLogger.Fatal("Failed to open data file", "error", err)
	}

	progressService := services.NewProgressService(entryRepo, appLogger)
	exportService := services.NewExportService(progressService, appLogger)

	f, err := os.Create(out)
	if err != nil {
		appLogger.Fatal("Failed to create output file", "error", err, "path", out)
	}
	defer f.Close()

	if err := exportService.WriteXLSX(context.Background(), f); err != nil {
		appLogger.Fatal("Export failed", "error", err)
	}

	fmt.Printf("Progress report written to %s\n", out)
}

func runToken() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	authService := services.NewAuthService(cfg.Auth)
	token, err := authService.GenerateToken()
	if err != nil {
		log.Fatalf("Failed to mint token: %v", err)
	}

	fmt.Println(token)
}
