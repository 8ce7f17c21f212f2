package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hmuraoka/shinkoku-navi/internal/advice"
	"github.com/hmuraoka/shinkoku-navi/internal/table"
	"github.com/hmuraoka/shinkoku-navi/internal/wizard"
)

// ErrPlanCancelled is returned when the user aborts the questionnaire
// (Ctrl+C inside a form).
var ErrPlanCancelled = errors.New("questionnaire cancelled by user")

// backChoice is the sentinel option value for "go back one question".
const backChoice = "\x00back"

// planWidth is the fixed form width; 80 columns covers plain terminals.
const planWidth = 80

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Run the questionnaire as simple forms and print the checklist",
	Long: `Run the questionnaire one question at a time using plain forms instead
of the full-screen TUI, then print the resulting checklist to stdout.
Suitable for terminals where the TUI is unavailable and for piping the
checklist into other tools.`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

// runPlan drives a wizard.Session with one huh form per question, then
// resolves, prints, and (unless disabled) fetches advice.
func runPlan(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	tbl, _, err := loadTable(cfg)
	if err != nil {
		return err
	}

	session := wizard.New(tbl)
	for !session.Done() {
		q, ok := session.Current()
		if !ok {
			return fmt.Errorf("session stranded outside the table")
		}

		choice, err := runQuestionForm(tbl, q, session.CanGoBack())
		if err != nil {
			return err
		}

		if choice == backChoice {
			if session, err = session.Back(); err != nil {
				return err
			}
			continue
		}
		if session, err = session.Select(choice); err != nil {
			return err
		}
	}

	answers := session.Answers()
	tasks := wizard.NewResolver(tbl).Resolve(answers)
	printChecklist(cmd, tbl, tasks)

	fetcher := buildFetcher(cmd.Context(), cfg)
	printAdvice(cmd, fetcher.Fetch(cmd.Context(), wizard.BuildProfile(tbl, answers)))
	return nil
}

// runQuestionForm shows one question as a select form. The guide text and
// glossary definitions go into the form description so the information the
// TUI shows on demand is visible here too.
func runQuestionForm(tbl *table.Table, q table.Question, canGoBack bool) (string, error) {
	options := make([]huh.Option[string], 0, len(q.Options)+1)
	for _, opt := range q.Options {
		options = append(options, huh.NewOption(opt.Label, opt.ID))
	}
	if canGoBack {
		options = append(options, huh.NewOption("← 前の質問に戻る", backChoice))
	}

	choice := q.Options[0].ID
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("質問 %d/%d: %s", tbl.QuestionIndex(q.ID)+1, tbl.Len(), q.Text)).
				Description(questionDescription(tbl, q)).
				Options(options...).
				Value(&choice),
		),
	).
		WithTheme(huh.ThemeCharm()).
		WithWidth(planWidth).
		Run()
	if err != nil {
		return "", mapPlanErr(err)
	}
	return choice, nil
}

// questionDescription assembles the guide text plus glossary definitions
// for terms used by the question.
func questionDescription(tbl *table.Table, q table.Question) string {
	var sb strings.Builder
	if q.Guide != "" {
		sb.WriteString(q.Guide)
	}
	for _, hit := range tbl.Terms(q.Text + "\n" + q.Guide) {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s: %s", hit.Term, hit.Definition)
	}
	return sb.String()
}

// printChecklist writes the grouped checklist to stdout.
func printChecklist(cmd *cobra.Command, tbl *table.Table, tasks []table.Task) {
	heading := lipgloss.NewStyle().Bold(true)
	muted := lipgloss.NewStyle().Faint(true)

	cmd.Println(heading.Render("あなたの確定申告ToDoリスト"))
	cmd.Println(muted.Render(fmt.Sprintf("%d件のタスク", len(tasks))))

	for _, group := range wizard.Grouped(tasks) {
		cmd.Println()
		cmd.Println(heading.Render("■ " + group.Category.Label()))
		for _, t := range group.Tasks {
			cmd.Printf("  [ ] %s\n", t.Title)
			if t.Description != "" {
				cmd.Println(muted.Render("      " + t.Description))
			}
			if t.ReferenceURL != "" {
				label := t.ReferenceLabel
				if label == "" {
					label = "参考"
				}
				cmd.Println(muted.Render(fmt.Sprintf("      %s %s", label, t.ReferenceURL)))
			}
		}
	}
}

// printAdvice writes the advice text (markdown-rendered when possible) and
// its citations to stdout.
func printAdvice(cmd *cobra.Command, adv advice.Advice) {
	heading := lipgloss.NewStyle().Bold(true)
	muted := lipgloss.NewStyle().Faint(true)

	cmd.Println()
	cmd.Println(heading.Render("■ 最新情報とアドバイス"))
	cmd.Println(renderMarkdown(adv.Text))
	if len(adv.Sources) > 0 {
		cmd.Println(muted.Render("出典:"))
		for _, src := range adv.Sources {
			cmd.Println(muted.Render(fmt.Sprintf("  %s %s", src.Title, src.URL)))
		}
	}
}

// renderMarkdown renders markdown through glamour, falling back to the raw
// text when the renderer cannot be built.
func renderMarkdown(text string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(planWidth),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

// mapPlanErr converts huh-specific errors into ErrPlanCancelled so callers
// do not need to import the huh package.
func mapPlanErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrPlanCancelled
	}
	return fmt.Errorf("questionnaire form: %w", err)
}
