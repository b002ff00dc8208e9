package fsinput

import (
	"os"

	"github.com/aalvaropc/wordfreq/internal/domain"
	"github.com/aalvaropc/wordfreq/internal/ports"
)

// Locator resolves the input file on the local filesystem. A user-supplied
// path is used when it names an existing file; otherwise DefaultPath is used.
// An empty argument never names a file.
type Locator struct {
	DefaultPath string
}

func NewLocator(defaultPath string) *Locator {
	if defaultPath == "" {
		defaultPath = domain.DefaultInputPath
	}
	return &Locator{DefaultPath: defaultPath}
}

var _ ports.InputLocator = (*Locator)(nil)

func (l *Locator) Locate(arg string, given bool) (domain.InputFile, error) {
	if given && isFile(arg) {
		return domain.InputFile{Path: arg}, nil
	}

	in := domain.InputFile{
		Path:     l.DefaultPath,
		Default:  true,
		Fallback: given,
	}
	if given {
		in.Rejected = arg
	}
	if !isFile(l.DefaultPath) {
		return in, &domain.OpError{
			Op:   "fsinput.locate",
			Kind: domain.KindNotFound,
			Path: l.DefaultPath,
			Err:  domain.ErrNotFound,
		}
	}
	return in, nil
}

// isFile reports whether path exists and is not a directory.
func isFile(path string) bool {
	if path == "" {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
