package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

func cmdCount(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Counter == nil {
			return reportLoadedMsg{err: errors.New("Counter is nil")}
		}
		r, err := deps.Counter.Execute(context.Background(), deps.Args)
		return reportLoadedMsg{report: r, err: err}
	}
}
