package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/hmuraoka/shinkoku-navi/internal/config"
)

// configCmd is the parent "config" namespace command.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management commands",
	Long:  "Inspect and validate shinkoku configuration.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// configShowCmd implements "shinkoku config show".
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration as TOML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
	},
}

// configValidateCmd implements "shinkoku config validate".
var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and report issues",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, meta, err := loadConfig()
		if err != nil {
			return err
		}
		result := config.Validate(cfg, meta)
		for _, issue := range result.Issues {
			cmd.PrintErrln(fmt.Sprintf("%s: %s: %s", issue.Severity, issue.Field, issue.Message))
		}
		if result.HasErrors() {
			return fmt.Errorf("configuration has %d error(s)", len(result.Errors()))
		}
		cmd.Println("configuration OK")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}
