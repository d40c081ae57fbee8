// Command demo flips between pages whose views and services are wired by vmwire.
//
// Run `go generate` at the module root after adding a view-model under
// internal/demo to refresh internal/wiring.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	s, err := newShell(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
	if _, err := tea.NewProgram(s, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
}
