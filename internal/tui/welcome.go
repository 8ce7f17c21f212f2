package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// welcomeHeading mirrors the product's landing copy.
const welcomeHeading = "あなたの確定申告、何から始めればいい？"

// welcomeBody explains what the questionnaire produces.
const welcomeBody = "いくつかの質問に答えるだけで、あなたに必要な作業リストを自動作成。\n最新の税務情報もチェックして、申告漏れを防ぎましょう。"

// disclaimer is shown on every screen footer. The advice and the checklist
// are informational only.
const disclaimer = "※本アプリは一般的な情報提供を目的としています。個別の税務判断については税務署または税理士にご相談ください。"

// viewWelcome renders the landing screen.
func (a App) viewWelcome() string {
	var b strings.Builder

	b.WriteString(a.titleBar())
	b.WriteString("\n\n")

	panel := lipgloss.JoinVertical(lipgloss.Left,
		a.theme.Question.Render(welcomeHeading),
		"",
		welcomeBody,
		"",
		a.theme.Badge.Render("enter でプラン作成を開始"),
	)
	b.WriteString(a.theme.Panel.Width(a.panelWidth()).Render(panel))
	b.WriteString("\n\n")
	b.WriteString(a.theme.Disclaimer.Render(disclaimer))
	b.WriteString("\n")
	b.WriteString(a.help.View(a.keys))

	return b.String()
}

// titleBar renders the application title with the version.
func (a App) titleBar() string {
	title := a.theme.Title.Render("確定申告ナビ")
	if a.cfg.Version == "" {
		return title
	}
	return title + " " + a.theme.Muted.Render("v"+a.cfg.Version)
}

// panelWidth returns the content width for the main panel, bounded so
// narrow terminals still get a usable layout.
func (a App) panelWidth() int {
	return clampInt(a.width-4, 40, 100)
}
