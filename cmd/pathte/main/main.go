package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/pathte/cmd/pathte"
	"github.com/arthur-debert/pathte/pkg/errors"
	"github.com/charmbracelet/lipgloss"
)

var errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF6E6E"})

func main() {
	rootCmd := pathte.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		if code := errors.GetErrorCode(err); code == errors.ErrNotAPath || code == errors.ErrNoSelection {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
