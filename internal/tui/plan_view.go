package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// categoryIcons decorate the checklist group headers.
var categoryIcons = map[string]string{
	"preparation": "🏁",
	"input":       "✍️",
	"submission":  "📮",
}

// viewPlan renders the category-grouped checklist, the completion meter,
// and the advice panel.
func (a App) viewPlan() string {
	var b strings.Builder
	b.WriteString(a.titleBar())
	b.WriteString("\n\n")
	b.WriteString(a.theme.Question.Render("あなたの確定申告ToDoリスト"))
	b.WriteString("\n")
	b.WriteString(a.theme.Subtitle.Render("以下のステップに沿って進めれば、確定申告は完了します。"))
	b.WriteString("\n\n")

	done := 0
	for _, t := range a.tasks {
		if a.completed[t.ID] {
			done++
		}
	}
	frac := 0.0
	if len(a.tasks) > 0 {
		frac = float64(done) / float64(len(a.tasks))
	}
	b.WriteString(fmt.Sprintf("進捗状況 %d%% (%d/%d)\n", int(frac*100+0.5), done, len(a.tasks)))
	b.WriteString(a.progress.ViewAs(frac))
	b.WriteString("\n\n")

	b.WriteString(a.renderChecklist())
	b.WriteString("\n")
	b.WriteString(a.renderAdvice())
	b.WriteString("\n")
	b.WriteString(a.theme.Disclaimer.Render(disclaimer))
	b.WriteString("\n")
	b.WriteString(a.theme.Muted.Render("r: 最初からやり直す"))
	b.WriteString("\n")
	b.WriteString(a.help.View(a.keys))

	return b.String()
}

// renderChecklist renders the grouped tasks with checkboxes. The cursor
// walks the flattened task order, which matches the grouped display order
// because Resolve already sorts category-major.
func (a App) renderChecklist() string {
	var b strings.Builder
	idx := 0
	for gi, group := range a.groups {
		if gi > 0 {
			b.WriteString("\n")
		}
		icon := categoryIcons[string(group.Category)]
		b.WriteString(a.theme.Category.Render(fmt.Sprintf("%s %s", icon, group.Category.Label())))
		b.WriteString("\n")

		for _, t := range group.Tasks {
			check := "[ ]"
			titleStyle := a.theme.TaskTitle
			if a.completed[t.ID] {
				check = "[x]"
				titleStyle = a.theme.TaskDone
			}
			cursor := "  "
			if idx == a.cursor {
				cursor = a.theme.Badge.Render("> ")
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, check, titleStyle.Render(t.Title)))
			if t.Description != "" {
				b.WriteString("       " + a.theme.TaskDetail.Render(t.Description) + "\n")
			}
			if idx == a.cursor && t.ReferenceURL != "" {
				label := t.ReferenceLabel
				if label == "" {
					label = "公式情報を確認する（外部リンク）"
				}
				b.WriteString("       " + a.theme.Reference.Render(label) + " " + a.theme.Muted.Render(t.ReferenceURL) + "\n")
			}
			idx++
		}
	}
	return a.theme.Panel.Width(a.panelWidth()).Render(b.String())
}

// renderAdvice renders the advice panel: a spinner while the fetch is in
// flight, then the text (markdown-rendered when possible) with citations.
func (a App) renderAdvice() string {
	var b strings.Builder
	b.WriteString(a.theme.Category.Render("📢 最新情報とアドバイス"))
	b.WriteString("\n")

	switch {
	case a.fetching:
		b.WriteString(a.spin.View())
		b.WriteString(a.theme.Muted.Render(" 最新の税務情報を取得しています..."))
	case a.adv != nil:
		b.WriteString(a.renderMarkdown(a.adv.Text))
		if len(a.adv.Sources) > 0 {
			b.WriteString("\n" + a.theme.Muted.Render("出典:"))
			for _, src := range a.adv.Sources {
				b.WriteString("\n  " + a.theme.Reference.Render(src.Title) + " " + a.theme.Muted.Render(src.URL))
			}
		}
	default:
		b.WriteString(a.theme.Muted.Render("アドバイスはありません。"))
	}

	return a.theme.Panel.Width(a.panelWidth()).Render(b.String())
}

// renderMarkdown renders the advice text through glamour, falling back to
// the raw text when the renderer cannot be built.
func (a App) renderMarkdown(text string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(a.panelWidth()-4),
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
