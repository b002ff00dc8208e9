package ports

import "io"

// TextSource opens the character stream for a located input (e.g., a file).
type TextSource interface {
	Open(path string) (io.ReadCloser, error)
}
