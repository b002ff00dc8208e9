package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/wordfreq/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderSummary(r domain.Report, mode sortMode, topOnly bool) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("File: %s\n", r.Input.Path))
	b.WriteString(fmt.Sprintf("%d words • %d distinct", r.Table.Total(), r.Table.Len()))

	if len(r.Max) > 0 {
		words := make([]string, 0, len(r.Max))
		for _, e := range r.Max {
			words = append(words, e.Word)
		}
		b.WriteString(fmt.Sprintf(" • max %d: %s", r.Max[0].Count, clampString(strings.Join(words, ", "), 60)))
	}

	b.WriteString("\nSort: ")
	if mode == sortByCount {
		b.WriteString("count")
	} else {
		b.WriteString("word")
	}
	if topOnly {
		b.WriteString(" • most frequent only")
	}
	return b.String()
}

// renderSources lists where settings and logs come from, or "" when neither
// a config file nor a log file is in use.
func renderSources(deps Deps) string {
	var parts []string
	if deps.ConfigPath != "" {
		parts = append(parts, "Config: "+deps.ConfigPath)
	}
	if deps.LogPath != "" {
		parts = append(parts, "Log: "+deps.LogPath)
	}
	return strings.Join(parts, " • ")
}
