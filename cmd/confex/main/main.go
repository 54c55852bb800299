package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/confex/cmd/confex"
	"github.com/arthur-debert/confex/pkg/errors"
)

var (
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"})
	hintStyle = lipgloss.NewStyle().
			Faint(true)
)

func main() {
	rootCmd := confex.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := lipgloss.NewRenderer(os.Stderr)

		// Print the error in red
		fmt.Fprintln(os.Stderr, errorStyle.Renderer(renderer).Render(fmt.Sprintf("Error: %v", err)))

		// Point at the valid choices when the error carries them
		if available, ok := errors.GetErrorDetails(err)["available"].([]string); ok {
			fmt.Fprintln(os.Stderr, hintStyle.Renderer(renderer).Render(fmt.Sprintf("Available: %v", available)))
		}

		os.Exit(1)
	}
}
