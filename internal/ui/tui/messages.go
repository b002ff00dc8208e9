package tui

import "github.com/aalvaropc/wordfreq/internal/domain"

type reportLoadedMsg struct {
	report domain.Report
	err    error
}
