package domain

import (
	"errors"
	"io"
	"unicode"
	"unicode/utf8"
)

// ErrTokenizerClosed is returned by Write after Close.
var ErrTokenizerClosed = errors.New("tokenizer closed")

// IsDelimiter reports whether r separates words: any whitespace rune, the
// information separators U+001C to U+001F, and '.', ',', ':' and ';'.
func IsDelimiter(r rune) bool {
	switch r {
	case '.', ',', ':', ';':
		return true
	case '\x1c', '\x1d', '\x1e', '\x1f':
		return true
	}
	return unicode.IsSpace(r)
}

// Tokenizer splits a stream of UTF-8 text into words.
//
// It is an io.Writer: text may be written one byte at a time, in chunks of
// any size, or all at once, and the resulting words are the same. A word or
// a multi-byte rune that spans two writes is kept whole. Bytes that are not
// valid UTF-8 are treated as word characters.
//
// Close must be called at end of input to emit a trailing word.
type Tokenizer struct {
	word   []byte
	carry  []byte
	words  []string
	closed bool
}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

var _ io.WriteCloser = (*Tokenizer)(nil)

func (t *Tokenizer) Write(p []byte) (int, error) {
	if t.closed {
		return 0, ErrTokenizerClosed
	}
	n := len(p)

	if len(t.carry) > 0 {
		p = append(t.carry, p...)
		t.carry = nil
	}

	for len(p) > 0 {
		if !utf8.FullRune(p) {
			// Incomplete rune at the end of this chunk; finish it on the next write.
			t.carry = append([]byte(nil), p...)
			break
		}

		r, size := utf8.DecodeRune(p)
		if IsDelimiter(r) {
			t.emit()
		} else {
			t.word = append(t.word, p[:size]...)
		}
		p = p[size:]
	}

	return n, nil
}

// Close flushes the pending word. It is safe to call more than once.
func (t *Tokenizer) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	// A dangling partial rune can never become a delimiter now.
	t.word = append(t.word, t.carry...)
	t.carry = nil
	t.emit()
	return nil
}

// Words returns a copy of the words emitted so far, in input order.
func (t *Tokenizer) Words() []string {
	return append([]string(nil), t.words...)
}

func (t *Tokenizer) emit() {
	if len(t.word) == 0 {
		return
	}
	t.words = append(t.words, string(t.word))
	t.word = t.word[:0]
}

// Tokenize splits s into words.
func Tokenize(s string) []string {
	t := NewTokenizer()
	_, _ = t.Write([]byte(s))
	_ = t.Close()
	return t.Words()
}
