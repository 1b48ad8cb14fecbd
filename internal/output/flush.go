package output

import "io"

// flushIfPossible drains w if it buffers, as the bufio writers behind the
// ndjson sinks do. Unbuffered writers pass through untouched.
func flushIfPossible(w io.Writer) error {
	if f, ok := w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
