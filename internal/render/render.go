// Package render is the terminal presentation layer for query results.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gcbaptista/go-faq-matcher/model"
)

const (
	exactHeading   = "🎯 找到精准匹配："
	officialAnswer = "官方权威回答："
	listHeading    = "💡 您可能想找："
	noResults      = "😕 抱歉，没有找到相关结果，请尝试简化您的关键词。"
	noData         = "⚠️ 暂无可用的问答数据。"
)

var (
	exactTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2ecc71"))
	exactCardStyle  = lipgloss.NewStyle().Border(lipgloss.ThickBorder(), false, false, false, true).BorderForeground(lipgloss.Color("#2ecc71")).PaddingLeft(1)
	cardStyle       = lipgloss.NewStyle().Border(lipgloss.ThickBorder(), false, false, false, true).BorderForeground(lipgloss.Color("#4D96FF")).PaddingLeft(1).MarginBottom(1)
	badgeStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4D96FF"))
	questionStyle   = lipgloss.NewStyle().Bold(true)
	scoreStyle      = lipgloss.NewStyle().Faint(true)
	headingStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1E2E5D"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
)

// Options controls how much of each match is shown.
type Options struct {
	ShowAnswers bool // Print each recommendation's answer under it
}

// FormatScore renders a score in [0, 1] as a percentage with one decimal.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.1f%%", score*100)
}

// Result renders a query result as the exact-match block followed by the
// numbered recommendation list.
func Result(result model.QueryResult, opts Options) string {
	if !result.HasMatches() {
		return errorStyle.Render(noResults) + "\n"
	}

	var b strings.Builder
	if result.ExactMatch != nil {
		b.WriteString(exactTitleStyle.Render(exactHeading + result.ExactMatch.Question))
		b.WriteString("\n")
		b.WriteString(exactCardStyle.Render(officialAnswer + "\n" + result.ExactMatch.Answer))
		b.WriteString("\n\n")
	}

	b.WriteString(headingStyle.Render(listHeading))
	b.WriteString("\n")
	for i, m := range result.Matches {
		lines := []string{
			badgeStyle.Render(fmt.Sprintf("推荐 %d", i+1)),
			questionStyle.Render(m.Question),
			scoreStyle.Render("匹配程度: " + FormatScore(m.Score)),
		}
		if opts.ShowAnswers {
			lines = append(lines, m.Answer)
		}
		b.WriteString(cardStyle.Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}
	return b.String()
}

// NoData renders the message shown when no FAQ table is loaded.
func NoData() string {
	return errorStyle.Render(noData) + "\n"
}

// Entries renders the loaded table as a numbered list.
func Entries(entries []model.QAEntry) string {
	var b strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&b, "%s %s\n", badgeStyle.Render(fmt.Sprintf("%d.", i+1)), questionStyle.Render(e.Question))
	}
	return b.String()
}
