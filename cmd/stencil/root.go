package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Version is the CLI version.
const Version = "0.1.0"

var (
	verbose bool
	quiet   bool
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// rootCmd is the root command.
var rootCmd = &cobra.Command{
	Use:   "stencil",
	Short: "Generate project skeletons from archetype descriptors",
	Long: `stencil interprets declarative archetype descriptions and renders
project skeletons from them.

An archetype descriptor (YAML or JSON) declares inputs, presets, and
output directives as a tree. Guard expressions over already-resolved
values decide which branches participate, so one archetype can cover
many project variants.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

// configureLogging sets the default slog level from the global flags.
func configureLogging() {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "log errors only")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
