package tui

import (
	"fmt"
	"strings"

	"github.com/hmuraoka/shinkoku-navi/internal/table"
)

// viewWizard renders the current question, its options, the progress bar,
// and the optional guide box.
func (a App) viewWizard() string {
	q, ok := a.session.Current()
	if !ok {
		return a.titleBar()
	}

	var b strings.Builder
	b.WriteString(a.titleBar())
	b.WriteString("\n\n")
	b.WriteString(a.progress.ViewAs(a.session.Progress()))
	b.WriteString("\n\n")

	var panel strings.Builder
	idx := a.cfg.Table.QuestionIndex(q.ID)
	panel.WriteString(a.theme.Badge.Render(fmt.Sprintf("質問 %d / %d", idx+1, a.cfg.Table.Len())))
	panel.WriteString("\n\n")
	panel.WriteString(a.theme.Question.Render(a.annotateTerms(q.Text)))
	panel.WriteString("\n\n")

	for i, opt := range q.Options {
		line := fmt.Sprintf("%d. %s", i+1, opt.Label)
		if i == a.cursor {
			panel.WriteString(a.theme.OptionSel.Render("> " + line))
		} else {
			panel.WriteString(a.theme.Option.Render("  " + line))
		}
		panel.WriteString("\n")
	}

	if a.showGuide {
		panel.WriteString("\n")
		panel.WriteString(a.renderGuide(q))
	} else if q.Guide != "" || len(a.cfg.Table.Terms(q.Text)) > 0 {
		panel.WriteString("\n")
		panel.WriteString(a.theme.Muted.Render("g: この質問の対象かわからない場合"))
	}

	b.WriteString(a.theme.Panel.Width(a.panelWidth()).Render(panel.String()))
	b.WriteString("\n")

	if a.session.CanGoBack() {
		b.WriteString(a.theme.Muted.Render("b: 前の質問に戻る"))
		b.WriteString("\n")
	}
	b.WriteString(a.help.View(a.keys))

	return b.String()
}

// renderGuide renders the checkpoint guide, the reference link, and the
// definitions of any glossary terms appearing in the question or guide.
func (a App) renderGuide(q table.Question) string {
	var g strings.Builder

	if q.Guide != "" {
		g.WriteString("💡 チェックポイント\n")
		g.WriteString(a.annotateTerms(q.Guide))
		g.WriteString("\n")
	}

	hits := a.cfg.Table.Terms(q.Text + "\n" + q.Guide)
	for _, hit := range hits {
		g.WriteString("\n")
		g.WriteString(a.theme.Term.Render(hit.Term) + "とは？\n")
		g.WriteString(a.theme.Muted.Render(hit.Definition))
		g.WriteString("\n")
	}

	if q.ReferenceURL != "" {
		label := q.ReferenceLabel
		if label == "" {
			label = "公式情報を確認する（国税庁など）"
		}
		g.WriteString("\n")
		g.WriteString(a.theme.Reference.Render(label))
		g.WriteString("\n")
		g.WriteString(a.theme.Muted.Render(q.ReferenceURL))
	}

	return a.theme.Guide.Render(g.String())
}

// annotateTerms underlines every glossary term occurring in text so the
// user knows a definition is available in the guide box.
func (a App) annotateTerms(text string) string {
	hits := a.cfg.Table.Terms(text)
	for _, hit := range hits {
		text = strings.ReplaceAll(text, hit.Term, a.theme.Term.Render(hit.Term))
	}
	return text
}
