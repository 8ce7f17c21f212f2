package cli

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hmuraoka/shinkoku-navi/internal/table"
	"github.com/hmuraoka/shinkoku-navi/internal/wizard"
)

// tableCmd is the parent "table" namespace command. It has no action of its
// own -- it groups the lint and paths subcommands.
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Decision table authoring tools",
	Long:  "Inspect and validate the decision table driving the questionnaire.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// tableLintCmd implements "shinkoku table lint".
var tableLintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate the decision table and report issues",
	Long: `Check the decision table (embedded or --table) for integrity defects:
dangling question references, duplicate ids, unreachable questions, cycles,
and add_tasks entries pointing at tasks that do not exist.`,
	Args: cobra.NoArgs,
	RunE: runTableLint,
}

// tablePathsCmd implements "shinkoku table paths".
var tablePathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Enumerate every path through the questionnaire",
	Long: `Walk the decision table and list every start-to-terminal path. With
--resolve-all, additionally resolve each path's answer map to its task set
and report the distinct checklists the table can produce.`,
	Args: cobra.NoArgs,
	RunE: runTablePaths,
}

var pathsResolveAll bool

func init() {
	tablePathsCmd.Flags().BoolVar(&pathsResolveAll, "resolve-all", false, "Resolve every path to its task set")
	tableCmd.AddCommand(tableLintCmd)
	tableCmd.AddCommand(tablePathsCmd)
	rootCmd.AddCommand(tableCmd)
}

// runTableLint loads the table and prints every validation finding. Load
// failures caused by integrity errors still print their findings before
// returning the error.
func runTableLint(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	tbl, vr, err := loadTable(cfg)
	if vr != nil {
		printTableIssues(cmd, vr)
	}
	if err != nil {
		if errors.Is(err, table.ErrIntegrity) {
			return fmt.Errorf("table has %d error(s)", len(vr.Errors()))
		}
		return err
	}

	cmd.Printf("table OK: %d questions, %d tasks, %d glossary terms", tbl.Len(), len(tbl.Tasks), len(tbl.Glossary))
	cmd.Println()
	if vr.HasWarnings() {
		cmd.Printf("%d warning(s)\n", len(vr.Warnings()))
	}
	return nil
}

// runTablePaths enumerates all start-to-terminal paths. Resolution of the
// individual paths is independent, so --resolve-all fans the work out over
// an errgroup and then aggregates the distinct task sets.
func runTablePaths(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	tbl, _, err := loadTable(cfg)
	if err != nil {
		return err
	}

	paths, err := tbl.Paths()
	if err != nil {
		return fmt.Errorf("enumerating paths: %w", err)
	}
	cmd.Printf("%d path(s) through %d questions\n", len(paths), tbl.Len())

	if !pathsResolveAll {
		return nil
	}

	resolver := wizard.NewResolver(tbl)
	results := make([]string, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			answers := wizard.Answers{}
			for _, choice := range path {
				answers[choice.QuestionID] = choice.OptionID
			}
			tasks := resolver.Resolve(answers)
			ids := make([]string, len(tasks))
			for j, t := range tasks {
				ids[j] = t.ID
			}
			results[i] = strings.Join(ids, ",")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	distinct := countDistinct(results)
	cmd.Printf("%d distinct checklist(s)\n", len(distinct))
	for _, line := range distinct {
		cmd.Println("  " + line)
	}
	return nil
}

// countDistinct returns the sorted unique values of in, each prefixed with
// its occurrence count.
func countDistinct(in []string) []string {
	counts := make(map[string]int, len(in))
	for _, s := range in {
		counts[s]++
	}
	out := make([]string, 0, len(counts))
	for s, n := range counts {
		out = append(out, fmt.Sprintf("%dx [%s]", n, s))
	}
	sort.Strings(out)
	return out
}
