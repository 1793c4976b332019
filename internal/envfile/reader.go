package envfile

import (
	"bufio"
	"errors"
	"io"
)

// LineReader yields one line at a time from an underlying reader.
type LineReader struct {
	r      *bufio.Reader
	line   string
	length int
	eof    bool
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Next returns the next line including its trailing newline, which is absent
// only for a final line that lacks one, and the line's length in bytes.
// At end of input it returns io.EOF, and keeps returning it on later calls.
func (lr *LineReader) Next() (string, int, error) {
	if lr.eof {
		return "", 0, io.EOF
	}

	line, err := lr.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", 0, err
	}
	if err != nil {
		lr.eof = true
		if line == "" {
			lr.line, lr.length = "", 0
			return "", 0, io.EOF
		}
	}

	lr.line = line
	lr.length = len(line)
	return line, lr.length, nil
}

// Last returns the most recently read line and its length.
func (lr *LineReader) Last() (string, int) {
	return lr.line, lr.length
}

// EOF reports whether the end of input has been reached.
func (lr *LineReader) EOF() bool {
	return lr.eof
}
