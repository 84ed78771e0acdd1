// Package sink writes goflat records as fixed-width lines.
package sink

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/text/encoding"

	goflat "github.com/reoring/goflat"
	"github.com/reoring/goflat/internal/charset"
)

// Option configures a Writer.
type Option func(*Writer) error

// WithEncoding encodes output into the named charset.
func WithEncoding(name string) Option {
	return func(w *Writer) error {
		enc, err := charset.Lookup(name)
		if err != nil {
			return err
		}
		w.enc = enc
		return nil
	}
}

// WithLineEnding replaces the default "\n" terminator.
func WithLineEnding(eol string) Option {
	return func(w *Writer) error {
		w.eol = eol
		return nil
	}
}

// Writer serializes records with one codec and writes one line per record.
// Call Flush when done.
type Writer struct {
	codec *goflat.Codec
	out   *bufio.Writer
	enc   encoding.Encoding
	eol   string
	n     int
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer, c *goflat.Codec, opts ...Option) (*Writer, error) {
	sw := &Writer{codec: c, eol: "\n"}
	for _, o := range opts {
		if err := o(sw); err != nil {
			return nil, err
		}
	}
	sw.out = bufio.NewWriter(charset.NewWriter(w, sw.enc))
	return sw, nil
}

// Write serializes rec and writes it as a line.
func (w *Writer) Write(rec *goflat.Record) error {
	line, err := w.codec.Serialize(rec)
	if err != nil {
		return err
	}
	return w.writeLine(line)
}

// WriteLine writes an already serialized line after checking its width.
// Filters are not run.
func (w *Writer) WriteLine(line string) error {
	width := w.codec.Schema().Width()
	if n := utf8.RuneCountInString(line); n != width {
		return &goflat.RecordLengthError{Expected: width, Actual: n, Line: goflat.NoLine}
	}
	return w.writeLine(line)
}

func (w *Writer) writeLine(line string) error {
	if _, err := w.out.WriteString(line); err != nil {
		return err
	}
	if _, err := w.out.WriteString(w.eol); err != nil {
		return err
	}
	w.n++
	return nil
}

// Flush writes buffered lines to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.out.Flush(); err != nil {
		return err
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("goflat/sink: flushed %d lines", w.n))
	}
	return nil
}

// Count is the number of lines written.
func (w *Writer) Count() int { return w.n }
