package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/untillpro/goutils/logger"

	goflat "github.com/reoring/goflat"
)

// ErrNoLayout is returned when a line cannot be matched to a layout.
var ErrNoLayout = errors.New("source: no layout for line")

// Selector names the layout a line belongs to.
type Selector func(line string, lineNumber int) (string, error)

// ByPrefix selects layouts by the leading record-type code of a line. The
// longest matching prefix wins.
func ByPrefix(prefixes map[string]string) Selector {
	keys := make([]string, 0, len(prefixes))
	for k := range prefixes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	return func(line string, n int) (string, error) {
		for _, k := range keys {
			if strings.HasPrefix(line, k) {
				return prefixes[k], nil
			}
		}
		return "", fmt.Errorf("%w at line %d", ErrNoLayout, n)
	}
}

// LayoutReader reads files made of several record shapes. By default the
// schema's layouts are walked in declaration order, each consuming Rows()
// lines; a layout with Rows() == 0 takes every remaining line. WithSelector
// picks the layout per line instead.
type LayoutReader struct {
	schema  *goflat.Schema
	lines   *lines
	skip    bool
	sel     Selector
	current int
	used    int
	issues  goflat.Issues
}

// NewLayoutReader returns a LayoutReader over r for the layouts of s.
func NewLayoutReader(r io.Reader, s *goflat.Schema, opts ...Option) (*LayoutReader, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if !s.HasLayouts() {
		return nil, &goflat.ConstructionError{Layout: s.Name(), Reason: "schema declares no layouts"}
	}
	s.Seal()
	return &LayoutReader{schema: s, lines: newLines(r, cfg), skip: cfg.skip, sel: cfg.selector}, nil
}

// Next returns the next record and the name of its layout, or io.EOF.
func (lr *LayoutReader) Next() (*goflat.Record, string, error) {
	for {
		text, n, err := lr.lines.next()
		if err != nil {
			return nil, "", err
		}
		l, err := lr.layoutFor(text, n)
		if err != nil {
			return nil, "", err
		}
		rec, err := l.Codec().ParseAt(text, n)
		if err == nil {
			return rec, l.Name(), nil
		}
		if !lr.skip {
			return nil, l.Name(), err
		}
		lr.issues = goflat.AppendIssues(lr.issues, goflat.IssueOf(err, n))
		if logger.IsVerbose() {
			logger.Verbose(fmt.Sprintf("goflat/source: skipped %s line %d: %v", l.Name(), n, err))
		}
	}
}

func (lr *LayoutReader) layoutFor(text string, n int) (*goflat.Layout, error) {
	if lr.sel != nil {
		name, err := lr.sel(text, n)
		if err != nil {
			return nil, err
		}
		l, ok := lr.schema.Layout(name)
		if !ok {
			return nil, fmt.Errorf("%w at line %d: %q", ErrNoLayout, n, name)
		}
		return l, nil
	}
	layouts := lr.schema.Layouts()
	for lr.current < len(layouts) {
		l := layouts[lr.current]
		if l.Rows() == 0 || lr.used < l.Rows() {
			lr.used++
			return l, nil
		}
		lr.current++
		lr.used = 0
	}
	return nil, fmt.Errorf("%w at line %d: all layouts consumed", ErrNoLayout, n)
}

// Each calls fn for every record with its layout name.
func (lr *LayoutReader) Each(ctx context.Context, fn func(layout string, rec *goflat.Record) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, name, err := lr.Next()
		if errors.Is(err, io.EOF) {
			if len(lr.issues) > 0 {
				return lr.issues
			}
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(name, rec); err != nil {
			return err
		}
	}
}

func (lr *LayoutReader) Issues() goflat.Issues { return lr.issues }
