package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/hmuraoka/shinkoku-navi/internal/advice"
	"github.com/hmuraoka/shinkoku-navi/internal/config"
	"github.com/hmuraoka/shinkoku-navi/internal/logging"
	"github.com/hmuraoka/shinkoku-navi/internal/table"
)

// loadConfig resolves the configuration from --config or a walk-up search.
// The TOML metadata is nil when defaults were used.
func loadConfig() (*config.Config, *toml.MetaData, error) {
	cfg, path, meta, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	if path != "" {
		logging.New("config").Debug("config loaded", "path", path)
	}
	return cfg, meta, nil
}

// loadTable loads the decision table honoring, in order, the --table flag,
// the config file's table.file, and the embedded default.
func loadTable(cfg *config.Config) (*table.Table, *table.ValidationResult, error) {
	path := flagTable
	if path == "" && cfg != nil {
		path = cfg.Table.File
	}
	if path != "" {
		return table.LoadFile(path)
	}
	return table.LoadDefault()
}

// buildFetcher constructs the advice fetcher:
//   - the offline fetcher when --no-advice, advice.disabled, or no API key
//   - the Gemini fetcher otherwise
//
// Fetcher construction failure downgrades to offline with a warning; a
// broken advice setup must never block the questionnaire.
func buildFetcher(ctx context.Context, cfg *config.Config) advice.Fetcher {
	logger := logging.New("advice")

	if flagNoAdvice || cfg.Advice.Disabled {
		logger.Debug("advice fetch disabled")
		return advice.NewOfflineFetcher()
	}

	apiKey := os.Getenv(cfg.Advice.APIKeyEnv)
	if apiKey == "" {
		logger.Debug("no API key; advice runs offline", "env", cfg.Advice.APIKeyEnv)
		return advice.NewOfflineFetcher()
	}

	fetcher, err := advice.NewGeminiFetcher(ctx, apiKey, cfg.Advice.Model)
	if err != nil {
		logger.Warn("gemini client unavailable; advice runs offline", "error", err)
		return advice.NewOfflineFetcher()
	}
	return fetcher
}

// printTableIssues writes validation findings to the command's stderr in a
// stable line format shared by `table lint` and the loaders.
func printTableIssues(cmd *cobra.Command, vr *table.ValidationResult) {
	for _, issue := range vr.Issues {
		cmd.PrintErrln(fmt.Sprintf("%s: %s: %s", issue.Severity, issue.Field, issue.Message))
	}
}
