package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/wordfreq/internal/domain"
)

// FileName is the configuration file searched for by Finder.
const FileName = "wordfreq.yaml"

// Finder locates a wordfreq.yaml by searching upward from a directory.
type Finder struct {
	ConfigFile string // defaults to "wordfreq.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: FileName}
}

func (f *Finder) Find(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "config.find",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "config.find",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		p := filepath.Join(cur, f.ConfigFile)
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "config.find",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
