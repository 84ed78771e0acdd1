// Package source reads fixed-width files line by line into goflat records.
//
// Line terminators ("\n" or "\r\n") are stripped and zero-length lines are
// skipped without reaching the codec. Records carry their 1-based line
// number.
package source

import (
	"golang.org/x/text/encoding"

	"github.com/reoring/goflat/internal/charset"
)

// DefaultMaxLineBytes bounds the length of a single line.
const DefaultMaxLineBytes = 1 << 20

// Option configures a Reader or LayoutReader.
type Option func(*config) error

type config struct {
	enc      encoding.Encoding
	skip     bool
	maxLine  int
	selector Selector
}

func newConfig(opts []Option) (*config, error) {
	c := &config{maxLine: DefaultMaxLineBytes}
	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// WithEncoding decodes the input from the named charset (IANA name, or
// latin1/cp1252/cp437).
func WithEncoding(name string) Option {
	return func(c *config) error {
		enc, err := charset.Lookup(name)
		if err != nil {
			return err
		}
		c.enc = enc
		return nil
	}
}

// SkipInvalid makes the reader collect lines that fail to parse as Issues
// and continue, instead of stopping at the first error.
func SkipInvalid() Option {
	return func(c *config) error {
		c.skip = true
		return nil
	}
}

// WithMaxLineBytes raises the maximum accepted line length.
func WithMaxLineBytes(n int) Option {
	return func(c *config) error {
		if n > 0 {
			c.maxLine = n
		}
		return nil
	}
}

// WithSelector makes a LayoutReader pick the layout of each line with sel
// instead of walking layouts by their row counts.
func WithSelector(sel Selector) Option {
	return func(c *config) error {
		c.selector = sel
		return nil
	}
}
