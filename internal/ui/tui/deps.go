package tui

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/wordfreq/internal/domain"
)

// Counter produces the report shown by the browser.
type Counter interface {
	Execute(ctx context.Context, args []string) (domain.Report, error)
}

type Deps struct {
	Counter Counter

	// Args are the positional arguments; a single one names the input.
	Args []string

	// ConfigPath and LogPath are shown in the summary when set.
	ConfigPath string
	LogPath    string

	Logger *slog.Logger
}
