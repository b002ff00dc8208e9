// Package progress renders a byte progress bar for input that is being read.
package progress

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// Reader wraps rc so that reading from it advances a progress bar of size
// bytes rendered to w. Closing the returned reader finishes the bar and
// closes rc.
func Reader(rc io.ReadCloser, size int64, w io.Writer) io.ReadCloser {
	bar := pb.New64(size)
	bar.SetTemplate(pb.Full)
	bar.Set(pb.Bytes, true)
	bar.SetWriter(w)
	bar.Start()

	return bar.NewProxyReader(rc)
}
