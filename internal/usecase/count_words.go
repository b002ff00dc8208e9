package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/aalvaropc/wordfreq/internal/domain"
	"github.com/aalvaropc/wordfreq/internal/ports"
)

const defaultChunkSize = 1024

type CountWords struct {
	locator ports.InputLocator
	source  ports.TextSource
	log     *slog.Logger
	chunk   int
}

type CountOption func(*CountWords)

func WithLogger(l *slog.Logger) CountOption {
	return func(uc *CountWords) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithChunkSize sets how many bytes are read from the source per step.
func WithChunkSize(n int) CountOption {
	return func(uc *CountWords) {
		if n > 0 {
			uc.chunk = n
		}
	}
}

func NewCountWords(il ports.InputLocator, ts ports.TextSource, opts ...CountOption) *CountWords {
	uc := &CountWords{
		locator: il,
		source:  ts,
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
		chunk:   defaultChunkSize,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute locates the input named by the positional args, tokenizes it and
// aggregates the words. Only a single argument names the input; none or
// several select the default.
//
// An error is returned only when no input file could be located. Failures
// while opening or reading a located file end up in Report.ReadErr and the
// report covers the words read up to that point.
func (uc *CountWords) Execute(ctx context.Context, args []string) (domain.Report, error) {
	arg, given := uc.inputArg(args)
	in, err := uc.locator.Locate(arg, given)
	if err != nil {
		return domain.Report{Input: in, Max: []domain.Entry{}}, err
	}
	if in.Fallback {
		uc.log.Warn("input.fallback", "rejected", in.Rejected, "path", in.Path)
	}
	uc.log.Debug("count.start", "path", in.Path, "default", in.Default)

	rc, err := uc.source.Open(in.Path)
	if err != nil {
		readErr := asReadError(in.Path, err)
		uc.log.Error("count.open_failed", "path", in.Path, "err", readErr)
		return domain.NewReport(in, nil, readErr), nil
	}
	defer func() { _ = rc.Close() }()

	tk := domain.NewTokenizer()
	readErr := feed(ctx, tk, rc, uc.chunk)
	_ = tk.Close()

	if readErr != nil {
		readErr = asReadError(in.Path, readErr)
		uc.log.Error("count.read_failed", "path", in.Path, "err", readErr)
	}

	report := domain.NewReport(in, tk.Words(), readErr)
	uc.log.Info("count.done",
		"path", in.Path,
		"words", report.Table.Total(),
		"distinct", report.Table.Len(),
		"max_entries", len(report.Max),
	)
	return report, nil
}

func (uc *CountWords) inputArg(args []string) (string, bool) {
	switch len(args) {
	case 0:
		return "", false
	case 1:
		return args[0], true
	default:
		uc.log.Debug("input.extra_args", "count", len(args))
		return "", false
	}
}

// feed copies src into tk chunk by chunk, checking ctx between reads.
func feed(ctx context.Context, tk *domain.Tokenizer, src io.Reader, size int) error {
	buf := make([]byte, size)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := tk.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func asReadError(path string, err error) error {
	var oe *domain.OpError
	if errors.As(err, &oe) {
		return err
	}
	return &domain.OpError{
		Op:   "usecase.count_words",
		Kind: domain.KindRead,
		Path: path,
		Err:  err,
	}
}
