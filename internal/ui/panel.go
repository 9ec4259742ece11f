package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/model"
)

// Panel frames lines in the current theme's border.
func Panel(lines []string) string {
	t := Current()
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// ListLines renders one numbered row per item plus a header.
func ListLines(l model.List) []string {
	t := Current()
	lines := []string{fmt.Sprintf("%s   %s %d", t.Title.Render("To-Do List"), t.Accent.Render("Total"), len(l))}
	if len(l) == 0 {
		return append(lines, t.Muted.Render("nothing to do"))
	}
	width := len(fmt.Sprint(len(l)))
	for i, it := range l {
		lines = append(lines, fmt.Sprintf("%*d. %s  %s", width, i+1, it.Content, t.Muted.Render(it.ID)))
	}
	return lines
}

// Plain renders one "id<TAB>content" line per item, for scripts.
func Plain(l model.List) string {
	var b strings.Builder
	for _, it := range l {
		b.WriteString(it.ID)
		b.WriteByte('\t')
		b.WriteString(it.Content)
		b.WriteByte('\n')
	}
	return b.String()
}
