package domain

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{Op: "fsinput.open", Kind: KindRead, Path: "data/input.txt", Err: root}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindRead {
		t.Fatalf("expected kind %s, got %s", KindRead, got.Kind)
	}
}

func TestOpErrorMessage(t *testing.T) {
	err := &OpError{Op: "fsinput.locate", Kind: KindNotFound, Path: "x.txt", Err: fs.ErrNotExist}
	msg := err.Error()
	for _, want := range []string{"fsinput.locate", "not_found", "path=x.txt", "file does not exist"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}

func TestOpErrorNil(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("expected <nil>, got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "config.load", Kind: KindInvalidConfig}
	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("unexpected match for other kind")
	}
	if IsKind(errors.New("plain"), KindInvalidConfig) {
		t.Fatalf("plain errors have no kind")
	}
	wrapped := errors.Join(errors.New("ctx"), err)
	if !IsKind(wrapped, KindInvalidConfig) {
		t.Fatalf("expected IsKind to see through wrapping")
	}
}
