package cmd

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/tastyrecipes/tastyrecipes/internal/config"
	"github.com/tastyrecipes/tastyrecipes/internal/database"
	"github.com/tastyrecipes/tastyrecipes/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the TastyRecipes server",
	Long:  `Start the TastyRecipes web server and serve the recipe sharing site.`,
	Example: `tastyrecipes serve --config config.yml
tastyrecipes serve -c /path/to/config.yml --log-level debug
`,
	Run: startServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func startServer(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			log.Fatalf("failed to create database directory: %v", err)
		}
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	srv, err := server.New(cfg, db)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	// Start the web server in a goroutine
	go func() {
		log.Info("starting server", "listen", cfg.Listen)
		if err := srv.Run(); err != nil {
			log.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	log.Info("tastyrecipes started successfully")
	<-c
	log.Info("shutting down gracefully...")

	// Give time for graceful shutdown
	time.Sleep(2 * time.Second)
}
