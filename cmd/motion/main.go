package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔╦╗┌─┐┌┬┐┬┌─┐┌┐┌
  ║║║│ │ │ ││ ││││
  ╩ ╩└─┘ ┴ ┴└─┘┘└┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "motion",
		Short: "Animation preset tooling and live preview",
		Long: `Motion is a declarative animation library for Go hosts.

Triggers build spring and timing command trees; a renderer of your
choice interpolates them. This CLI hosts the development tooling:

  • Live preview server with an interactive demo scene
  • Preset inspection, including YAML preset packs
  • Sampled envelope curves in the terminal
  • Recorded session timelines`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		initCmd(),
		previewCmd(),
		presetsCmd(),
		curveCmd(),
		recordingsCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the Motion ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
