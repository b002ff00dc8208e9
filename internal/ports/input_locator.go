package ports

import "github.com/aalvaropc/wordfreq/internal/domain"

// InputLocator resolves the file a run should read from an optional
// user-supplied argument, falling back to a default path. given tells an
// empty argument apart from no argument at all.
//
// The returned InputFile carries the rejected argument even when an error is
// returned, so callers can report both failures.
type InputLocator interface {
	Locate(arg string, given bool) (domain.InputFile, error)
}
