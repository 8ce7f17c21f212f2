package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hmuraoka/shinkoku-navi/internal/buildinfo"
	"github.com/hmuraoka/shinkoku-navi/internal/config"
	"github.com/hmuraoka/shinkoku-navi/internal/logging"
	"github.com/hmuraoka/shinkoku-navi/internal/tui"
)

// runTUI is the RunE handler for the bare root command. It loads the
// configuration and decision table, builds the advice fetcher, and hands
// the terminal to the Bubble Tea program.
func runTUI(cmd *cobra.Command, _ []string) error {
	logger := logging.New("tui")

	cfg, meta, err := loadConfig()
	if err != nil {
		return err
	}
	for _, issue := range config.Validate(cfg, meta).Warnings() {
		logger.Warn("config warning", "field", issue.Field, "message", issue.Message)
	}

	tbl, _, err := loadTable(cfg)
	if err != nil {
		return err
	}

	// The fetch itself runs inside the TUI; the signal context only guards
	// client construction and lets Ctrl+C during startup behave.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	fetcher := buildFetcher(ctx, cfg)

	app := tui.NewApp(tui.AppConfig{
		Version: buildinfo.Version,
		Table:   tbl,
		Fetcher: fetcher,
	})

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
