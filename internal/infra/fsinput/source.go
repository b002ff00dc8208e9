package fsinput

import (
	"io"
	"os"

	"github.com/aalvaropc/wordfreq/internal/domain"
	"github.com/aalvaropc/wordfreq/internal/infra/progress"
	"github.com/aalvaropc/wordfreq/internal/ports"
)

// Source opens input files for reading.
type Source struct {
	progressOut io.Writer
}

type Option func(*Source)

// WithProgress renders a progress bar to w while a file is read.
func WithProgress(w io.Writer) Option {
	return func(s *Source) { s.progressOut = w }
}

func NewSource(opts ...Option) *Source {
	s := &Source{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.TextSource = (*Source)(nil)

func (s *Source) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "fsinput.open",
			Kind: domain.KindRead,
			Path: path,
			Err:  err,
		}
	}

	if s.progressOut == nil {
		return f, nil
	}

	fi, err := f.Stat()
	if err != nil {
		return f, nil
	}
	return progress.Reader(f, fi.Size(), s.progressOut), nil
}
