package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/motion/internal/config"
	"github.com/vango-dev/motion/pkg/preview"
)

func previewCmd() *cobra.Command {
	var (
		port        int
		host        string
		openBrowser bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Start the live preview server",
		Long: `Start the preview server with the interactive demo scene.

The server streams animation commands to connected browsers over a
binary WebSocket protocol; the embedded client interpolates them
locally. Preset packs listed in motion.json are hot reloaded on
change, and every session is recorded as a timeline.

Examples:
  motion preview
  motion preview --port=8080
  motion preview --open`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(port, host, openBrowser, verbose)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from motion.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from motion.json)")
	cmd.Flags().BoolVarP(&openBrowser, "open", "o", false, "Open browser on start")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	return cmd
}

func runPreview(port int, host string, openBrowser, verbose bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if port > 0 {
		cfg.Preview.Port = port
	}
	if host != "" {
		cfg.Preview.Host = host
	}
	if openBrowser {
		cfg.Preview.OpenBrowser = true
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	server, err := preview.New(cfg, logger)
	if err != nil {
		return err
	}

	printBanner()
	info("preview")
	info("")
	info("Listening on %s", cfg.PreviewURL())
	info("Recordings in %s", cfg.RecordPath())
	if len(cfg.Packs) > 0 {
		info("Preset packs: %v", cfg.Packs)
	}
	info("")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		info("Shutting down...")
		cancel()
	}()

	if cfg.Preview.OpenBrowser {
		go openURL(cfg.PreviewURL())
	}

	return server.Run(ctx)
}

// loadConfig finds the nearest motion.json, falling back to defaults
// when the project has none.
func loadConfig() (*config.Config, error) {
	root, err := config.FindProjectRoot(".")
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			warn("No motion.json found, using defaults")
			return config.New(), nil
		}
		return nil, err
	}
	return config.Load(root)
}

// openURL opens a URL in the default browser.
func openURL(url string) {
	var cmd *exec.Cmd

	switch {
	case commandExists("xdg-open"):
		cmd = exec.Command("xdg-open", url)
	case commandExists("open"):
		cmd = exec.Command("open", url)
	case commandExists("start"):
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return
	}

	cmd.Start()
}

// commandExists checks if a command exists in PATH.
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
