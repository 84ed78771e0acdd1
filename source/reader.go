package source

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/untillpro/goutils/logger"

	goflat "github.com/reoring/goflat"
)

// Reader parses every line of a stream with one codec.
type Reader struct {
	codec  *goflat.Codec
	lines  *lines
	skip   bool
	issues goflat.Issues
}

// NewReader returns a Reader over r. It fails only on invalid options.
func NewReader(r io.Reader, c *goflat.Codec, opts ...Option) (*Reader, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Reader{codec: c, lines: newLines(r, cfg), skip: cfg.skip}, nil
}

// Next returns the next record, or io.EOF at the end of input. With
// SkipInvalid, lines that fail to parse are recorded in Issues and skipped.
func (r *Reader) Next() (*goflat.Record, error) {
	for {
		text, n, err := r.lines.next()
		if err != nil {
			return nil, err
		}
		rec, err := r.codec.ParseAt(text, n)
		if err == nil {
			return rec, nil
		}
		if !r.skip {
			return nil, err
		}
		r.collect(err, n)
	}
}

func (r *Reader) collect(err error, line int) {
	r.issues = goflat.AppendIssues(r.issues, goflat.IssueOf(err, line))
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("goflat/source: skipped line %d: %v", line, err))
	}
}

// Each calls fn for every record until the input ends, fn fails or ctx is
// done. With SkipInvalid, collected issues are returned as goflat.Issues
// once the input is exhausted.
func (r *Reader) Each(ctx context.Context, fn func(*goflat.Record) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			if len(r.issues) > 0 {
				return r.issues
			}
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

// All reads the remaining records.
func (r *Reader) All(ctx context.Context) ([]*goflat.Record, error) {
	var out []*goflat.Record
	err := r.Each(ctx, func(rec *goflat.Record) error {
		out = append(out, rec)
		return nil
	})
	return out, err
}

// Issues returns the lines skipped so far under SkipInvalid.
func (r *Reader) Issues() goflat.Issues { return r.issues }

// Line is the number of the last line read, empty lines included.
func (r *Reader) Line() int { return r.lines.line }
