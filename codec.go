package goflat

import (
	"errors"
	"fmt"

	"github.com/untillpro/goutils/logger"
	"github.com/valyala/bytebufferpool"

	"github.com/reoring/goflat/internal/engine"
)

// errNilRecord is returned when Serialize is called without a record.
var errNilRecord = errors.New("goflat: nil record")

// Codec converts lines to Records and back for one sealed Schema. It holds no
// mutable state and is safe for concurrent use.
type Codec struct {
	schema *Schema
	widths []int
}

func newCodec(s *Schema) *Codec {
	widths := make([]int, len(s.fields))
	for i, f := range s.fields {
		widths[i] = f.width
	}
	return &Codec{schema: s, widths: widths}
}

// NewCodec seals s and returns its codec.
func NewCodec(s *Schema) *Codec { return s.Codec() }

func (c *Codec) Schema() *Schema { return c.schema }

// Parse converts a line that is not associated with a source line number.
func (c *Codec) Parse(line string) (*Record, error) { return c.ParseAt(line, NoLine) }

// ParseAt converts line into a Record. The line must be exactly
// Schema.Width() characters without its terminator. Padding segments are
// discarded; every other segment runs through its field's filter chain.
func (c *Codec) ParseAt(line string, lineNumber int) (*Record, error) {
	s := c.schema
	if n := engine.RuneLen(line); n != s.width {
		return nil, &RecordLengthError{Expected: s.width, Actual: n, Line: lineNumber}
	}
	segs := engine.Split(line, c.widths)
	values := make(map[string]any, len(s.fields))
	for i, f := range s.fields {
		if f.padding {
			continue
		}
		seg := segs[i]
		if !s.raw {
			seg = engine.TrimRight(seg)
		}
		v, err := s.registry.apply(f.filters, seg)
		if err != nil {
			return nil, &FieldError{Field: f.name, Phase: PhaseFilter, Line: lineNumber, Err: err}
		}
		values[f.name] = v
	}
	if logger.IsTrace() {
		logger.Trace(fmt.Sprintf("goflat: parsed schema=%q line=%d fields=%d", s.name, lineNumber, len(values)))
	}
	return &Record{schema: s, values: values, line: lineNumber}, nil
}

// Serialize converts rec into a line of exactly Schema.Width() characters.
// Padding fields are written blank without consulting rec; every other value
// runs through its formatter chain and is left-justified into its width.
func (c *Codec) Serialize(rec *Record) (string, error) {
	if rec == nil {
		return "", errNilRecord
	}
	s := c.schema
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, f := range s.fields {
		if f.padding {
			buf.B = engine.AppendBlank(buf.B, f.width)
			continue
		}
		v, ok := rec.values[f.name]
		if !ok {
			return "", &UnknownFieldError{Name: f.name}
		}
		out, err := s.registry.apply(f.formatters, v)
		if err != nil {
			return "", &FieldError{Field: f.name, Phase: PhaseFormat, Line: rec.line, Err: err}
		}
		buf.B = engine.AppendFit(buf.B, render(out), f.width)
	}
	if logger.IsTrace() {
		logger.Trace(fmt.Sprintf("goflat: serialized schema=%q line=%d width=%d", s.name, rec.line, s.width))
	}
	return buf.String(), nil
}

// render turns a formatted value into the text written to the line.
func render(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
