package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hmuraoka/shinkoku-navi/internal/logging"
)

// Global flag values accessible to all subcommands.
var (
	flagVerbose  bool
	flagQuiet    bool
	flagConfig   string
	flagTable    string
	flagNoColor  bool
	flagNoAdvice bool
)

// rootCmd is the base command. With no subcommand it launches the TUI.
var rootCmd = &cobra.Command{
	Use:   "shinkoku",
	Short: "確定申告の準備を案内する対話型チェックリスト",
	Long: `shinkoku guides you through a short yes/no questionnaire about your
income and deductions, then builds a personalized checklist of the tax
filing tasks that apply to you. The checklist can be enriched with
search-grounded advice from the Gemini API when an API key is configured.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	// When invoked with no subcommand, launch the interactive TUI.
	// Help is still available via `shinkoku --help` / `shinkoku -h`.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, args)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Check env vars for flags not explicitly set on the command line.
		if !cmd.Flags().Changed("verbose") && os.Getenv("SHINKOKU_VERBOSE") != "" {
			flagVerbose = true
		}
		if !cmd.Flags().Changed("quiet") && os.Getenv("SHINKOKU_QUIET") != "" {
			flagQuiet = true
		}
		if !cmd.Flags().Changed("no-color") && (os.Getenv("NO_COLOR") != "" || os.Getenv("SHINKOKU_NO_COLOR") != "") {
			flagNoColor = true
		}

		jsonFormat := os.Getenv("SHINKOKU_LOG_FORMAT") == "json"
		logging.Setup(flagVerbose, flagQuiet, jsonFormat)

		if flagNoColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose (debug) output (env: SHINKOKU_VERBOSE)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress all output except errors (env: SHINKOKU_QUIET)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to shinkoku.toml config file")
	rootCmd.PersistentFlags().StringVar(&flagTable, "table", "", "Path to an alternative decision table (TOML)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output (env: SHINKOKU_NO_COLOR, NO_COLOR)")
	rootCmd.PersistentFlags().BoolVar(&flagNoAdvice, "no-advice", false, "Skip the Gemini advice fetch")
}

// Execute runs the root command and returns the exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// NewRootCmd returns a fresh instance of the root command for external
// tooling such as the completion and man page generators. It registers the
// same persistent flags and subcommands as the global rootCmd.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               rootCmd.Use,
		Short:             rootCmd.Short,
		Long:              rootCmd.Long,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: rootCmd.PersistentPreRunE,
	}

	// Local flag targets so the generated docs never mutate package state.
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose (debug) output (env: SHINKOKU_VERBOSE)")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output except errors (env: SHINKOKU_QUIET)")
	cmd.PersistentFlags().String("config", "", "Path to shinkoku.toml config file")
	cmd.PersistentFlags().String("table", "", "Path to an alternative decision table (TOML)")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output (env: SHINKOKU_NO_COLOR, NO_COLOR)")
	cmd.PersistentFlags().Bool("no-advice", false, "Skip the Gemini advice fetch")

	for _, child := range rootCmd.Commands() {
		cmd.AddCommand(mirrorCommand(child))
	}
	return cmd
}

// mirrorCommand returns a detached copy of src for the mirror tree.
// AddCommand reparents whatever it is given, so adding the live subcommands
// would detach them from rootCmd and break output routing there.
func mirrorCommand(src *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:     src.Use,
		Aliases: src.Aliases,
		Short:   src.Short,
		Long:    src.Long,
		Example: src.Example,
		Args:    src.Args,
		RunE:    src.RunE,
	}
	src.Flags().VisitAll(func(f *pflag.Flag) {
		cmd.Flags().AddFlag(f)
	})
	for _, child := range src.Commands() {
		cmd.AddCommand(mirrorCommand(child))
	}
	return cmd
}
