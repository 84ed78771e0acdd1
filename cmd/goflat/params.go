package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	goflat "github.com/reoring/goflat"
	"github.com/reoring/goflat/schemafile"
	"github.com/reoring/goflat/source"
)

// schemaParams are the flags shared by every command that reads a schema.
type schemaParams struct {
	schemaPath string
	encoding   string
	prefixes   []string
	trace      bool
}

func (p *schemaParams) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.schemaPath, "schema", "s", "", "Path to the schema file (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&p.encoding, "encoding", "", "Charset of the data file, e.g. ISO-8859-1 or Shift_JIS")
	cmd.Flags().StringSliceVar(&p.prefixes, "prefix", nil, "Select layouts by line prefix, e.g. H=header,D=detail")
	cmd.Flags().BoolVar(&p.trace, "trace", false, "Trace every parsed and serialized record")
	_ = cmd.MarkFlagRequired("schema")
}

func (p *schemaParams) loadSchema() (*goflat.Schema, error) {
	if p.trace {
		logger.SetLogLevel(logger.LogLevelTrace)
	}
	f, err := schemafile.LoadFile(p.schemaPath)
	if err != nil {
		return nil, err
	}
	s, err := f.Build(nil)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", p.schemaPath, err)
	}
	if missing := f.Unresolved(s.Registry()); len(missing) > 0 {
		logger.Warning(fmt.Sprintf("schema %s uses unknown transforms: %s", p.schemaPath, strings.Join(missing, ", ")))
	}
	return s, nil
}

func (p *schemaParams) selector() (source.Selector, error) {
	if len(p.prefixes) == 0 {
		return nil, nil
	}
	m := make(map[string]string, len(p.prefixes))
	for _, kv := range p.prefixes {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" || v == "" {
			return nil, fmt.Errorf("invalid --prefix %q, want PREFIX=LAYOUT", kv)
		}
		m[k] = v
	}
	return source.ByPrefix(m), nil
}

// eachRecord reads path with s, dispatching to layouts when s declares any.
// The layout name is empty for single-shape schemas.
func (p *schemaParams) eachRecord(ctx context.Context, path string, s *goflat.Schema, skip bool,
	fn func(layout string, rec *goflat.Record) error) error {
	in, closeIn, err := openInput(path)
	if err != nil {
		return err
	}
	defer closeIn()

	opts := []source.Option{source.WithEncoding(p.encoding)}
	if skip {
		opts = append(opts, source.SkipInvalid())
	}
	if s.HasLayouts() {
		sel, err := p.selector()
		if err != nil {
			return err
		}
		if sel != nil {
			opts = append(opts, source.WithSelector(sel))
		}
		lr, err := source.NewLayoutReader(in, s, opts...)
		if err != nil {
			return err
		}
		return lr.Each(ctx, fn)
	}
	r, err := source.NewReader(in, s.Codec(), opts...)
	if err != nil {
		return err
	}
	return r.Each(ctx, func(rec *goflat.Record) error { return fn("", rec) })
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
