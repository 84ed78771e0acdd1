package source

import (
	"bufio"
	"io"

	"github.com/reoring/goflat/internal/charset"
)

// lines yields non-empty lines with their 1-based numbers.
type lines struct {
	sc   *bufio.Scanner
	line int
}

func newLines(r io.Reader, c *config) *lines {
	sc := bufio.NewScanner(charset.NewReader(r, c.enc))
	sc.Buffer(make([]byte, 0, 64*1024), c.maxLine)
	return &lines{sc: sc}
}

// next returns the next non-empty line, or io.EOF.
func (l *lines) next() (string, int, error) {
	for l.sc.Scan() {
		l.line++
		// ScanLines already drops a "\r" before "\n"
		text := l.sc.Text()
		if len(text) == 0 {
			continue
		}
		return text, l.line, nil
	}
	if err := l.sc.Err(); err != nil {
		return "", l.line, err
	}
	return "", l.line, io.EOF
}
