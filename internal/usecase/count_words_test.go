package usecase

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/aalvaropc/wordfreq/internal/domain"
	"github.com/aalvaropc/wordfreq/internal/ports"
)

type fakeLocator struct {
	in  domain.InputFile
	err error
}

func (f fakeLocator) Locate(_ string, _ bool) (domain.InputFile, error) {
	return f.in, f.err
}

type fakeSource struct {
	open   func() io.Reader
	err    error
	closed *bool
}

func (f fakeSource) Open(_ string) (io.ReadCloser, error) {
	if f.err != nil {
		return nil, f.err
	}
	return closer{Reader: f.open(), closed: f.closed}, nil
}

type closer struct {
	io.Reader
	closed *bool
}

func (c closer) Close() error {
	if c.closed != nil {
		*c.closed = true
	}
	return nil
}

func textSource(s string) fakeSource {
	return fakeSource{open: func() io.Reader { return strings.NewReader(s) }}
}

type recordingLocator struct {
	arg   string
	given bool
}

func (l *recordingLocator) Locate(arg string, given bool) (domain.InputFile, error) {
	l.arg, l.given = arg, given
	return domain.InputFile{Path: "x"}, nil
}

var (
	_ ports.InputLocator = fakeLocator{}
	_ ports.InputLocator = (*recordingLocator)(nil)
	_ ports.TextSource   = fakeSource{}
)

func TestCountWords_Sentence(t *testing.T) {
	in := domain.InputFile{Path: "in.txt"}
	uc := NewCountWords(fakeLocator{in: in}, textSource("the cat sat on the mat."))

	r, err := uc.Execute(context.Background(), []string{"in.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Input != in {
		t.Fatalf("unexpected input %+v", r.Input)
	}
	want := []domain.Entry{{Word: "cat", Count: 1}, {Word: "mat", Count: 1}, {Word: "on", Count: 1}, {Word: "sat", Count: 1}, {Word: "the", Count: 2}}
	if got := r.Table.Entries(); !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if !slices.Equal(r.Max, []domain.Entry{{Word: "the", Count: 2}}) {
		t.Fatalf("unexpected max %v", r.Max)
	}
	if r.ReadErr != nil {
		t.Fatalf("unexpected read error %v", r.ReadErr)
	}
}

func TestCountWords_PassesSingleArgToLocator(t *testing.T) {
	cases := []struct {
		name      string
		args      []string
		wantArg   string
		wantGiven bool
	}{
		{"no args", nil, "", false},
		{"one arg", []string{"a.txt"}, "a.txt", true},
		{"empty arg", []string{""}, "", true},
		{"extra args", []string{"a.txt", "b.txt"}, "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			loc := &recordingLocator{}
			uc := NewCountWords(loc, textSource("x"))
			if _, err := uc.Execute(context.Background(), c.args); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if loc.arg != c.wantArg || loc.given != c.wantGiven {
				t.Fatalf("Locate(%q, %v), want Locate(%q, %v)", loc.arg, loc.given, c.wantArg, c.wantGiven)
			}
		})
	}
}

func TestCountWords_OnlyDelimiters(t *testing.T) {
	uc := NewCountWords(fakeLocator{in: domain.InputFile{Path: "x"}}, textSource(",,,  ;; ."))
	r, err := uc.Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Table.Len() != 0 || len(r.Max) != 0 {
		t.Fatalf("expected empty report, got %v / %v", r.Table.Entries(), r.Max)
	}
}

func TestCountWords_ChunkBoundaries(t *testing.T) {
	text := "alpha beta, gamma; naïve alpha"
	for _, size := range []int{1, 2, 3, 7, 1024} {
		uc := NewCountWords(fakeLocator{in: domain.InputFile{Path: "x"}}, textSource(text), WithChunkSize(size))
		r, err := uc.Execute(context.Background(), nil)
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		if c, _ := r.Table.Count("naïve"); c != 1 {
			t.Fatalf("size %d: naïve split across chunks: %v", size, r.Table.Entries())
		}
		if c, _ := r.Table.Count("alpha"); c != 2 {
			t.Fatalf("size %d: expected alpha=2, got %v", size, r.Table.Entries())
		}
		if r.Table.Total() != 5 {
			t.Fatalf("size %d: expected 5 words, got %d", size, r.Table.Total())
		}
	}
}

func TestCountWords_OneByteReads(t *testing.T) {
	src := fakeSource{open: func() io.Reader { return iotest.OneByteReader(strings.NewReader("a a a b b c")) }}
	uc := NewCountWords(fakeLocator{in: domain.InputFile{Path: "x"}}, src)

	r, err := uc.Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []domain.Entry{{Word: "a", Count: 3}, {Word: "b", Count: 2}, {Word: "c", Count: 1}}
	if got := r.Table.Entries(); !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if !slices.Equal(r.Max, []domain.Entry{{Word: "a", Count: 3}}) {
		t.Fatalf("unexpected max %v", r.Max)
	}
}

func TestCountWords_LocateErrorIsReturned(t *testing.T) {
	locErr := &domain.OpError{Op: "fsinput.locate", Kind: domain.KindNotFound, Path: "data/input.txt", Err: domain.ErrNotFound}
	in := domain.InputFile{Path: "data/input.txt", Default: true, Fallback: true, Rejected: "nope.txt"}
	uc := NewCountWords(fakeLocator{in: in, err: locErr}, textSource("unused"))

	r, err := uc.Execute(context.Background(), []string{"nope.txt"})
	if !errors.Is(err, locErr) {
		t.Fatalf("expected locate error, got %v", err)
	}
	if r.Input.Rejected != "nope.txt" {
		t.Fatalf("expected rejected arg to be kept, got %+v", r.Input)
	}
	if r.Table.Len() != 0 {
		t.Fatal("expected no statistics")
	}
}

func TestCountWords_ReadFailureKeepsPartialWords(t *testing.T) {
	boom := errors.New("disk on fire")
	closed := false
	src := fakeSource{
		open: func() io.Reader {
			return io.MultiReader(strings.NewReader("a b a partial"), iotest.ErrReader(boom))
		},
		closed: &closed,
	}
	uc := NewCountWords(fakeLocator{in: domain.InputFile{Path: "in.txt"}}, src)

	r, err := uc.Execute(context.Background(), []string{"in.txt"})
	if err != nil {
		t.Fatalf("read failures must not be returned, got %v", err)
	}
	if !errors.Is(r.ReadErr, boom) {
		t.Fatalf("expected ReadErr to wrap cause, got %v", r.ReadErr)
	}
	if !domain.IsKind(r.ReadErr, domain.KindRead) {
		t.Fatalf("expected KindRead, got %v", r.ReadErr)
	}
	want := []domain.Entry{{Word: "a", Count: 2}, {Word: "b", Count: 1}, {Word: "partial", Count: 1}}
	if got := r.Table.Entries(); !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if !closed {
		t.Fatal("expected source to be closed")
	}
}

func TestCountWords_OpenFailureYieldsEmptyReport(t *testing.T) {
	openErr := &domain.OpError{Op: "fsinput.open", Kind: domain.KindRead, Path: "in.txt", Err: errors.New("permission denied")}
	uc := NewCountWords(fakeLocator{in: domain.InputFile{Path: "in.txt"}}, fakeSource{err: openErr})

	r, err := uc.Execute(context.Background(), []string{"in.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errors.Is(r.ReadErr, openErr) {
		t.Fatalf("expected open error in report, got %v", r.ReadErr)
	}
	if r.Table.Len() != 0 || len(r.Max) != 0 {
		t.Fatal("expected empty statistics")
	}
}

func TestCountWords_ContextCancelled(t *testing.T) {
	uc := NewCountWords(fakeLocator{in: domain.InputFile{Path: "in.txt"}}, textSource("a b c"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := uc.Execute(ctx, []string{"in.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errors.Is(r.ReadErr, context.Canceled) {
		t.Fatalf("expected context.Canceled in ReadErr, got %v", r.ReadErr)
	}
	if r.Table.Len() != 0 {
		t.Fatalf("expected nothing read, got %v", r.Table.Entries())
	}
}

func TestWithChunkSize_IgnoresNonPositive(t *testing.T) {
	uc := NewCountWords(nil, nil, WithChunkSize(0), WithChunkSize(-3))
	if uc.chunk != defaultChunkSize {
		t.Fatalf("expected default chunk size, got %d", uc.chunk)
	}
	uc = NewCountWords(nil, nil, WithLogger(nil))
	if uc.log == nil {
		t.Fatal("nil logger must be ignored")
	}
}
