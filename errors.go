package goflat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/goflat/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRecordLength    = "record_length"
	CodeDuplicateField  = "duplicate_field"
	CodeDuplicateLayout = "duplicate_layout"
	CodeUnknownField    = "unknown_field"
	CodeUnknownFilter   = "unknown_filter"
	CodeConstruction    = "construction"
	CodeSealed          = "sealed"
	CodeFilterFailed    = "filter_failed"
	CodeFormatFailed    = "format_failed"
	CodeTargetType      = "target_type"
	CodeUnknown         = "unknown"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrRecordLength    = errors.New("goflat: record length mismatch")
	ErrDuplicateField  = errors.New("goflat: duplicate field")
	ErrDuplicateLayout = errors.New("goflat: duplicate layout")
	ErrUnknownField    = errors.New("goflat: unknown field")
	ErrUnknownFilter   = errors.New("goflat: unknown transform")
	ErrConstruction    = errors.New("goflat: invalid declaration")
	ErrTargetType      = errors.New("goflat: target type mismatch")
	// ErrSealed is returned when a sealed schema is modified.
	ErrSealed = errors.New("goflat: schema is sealed")
)

// RecordLengthError reports a line whose length differs from the schema width.
// Short and long lines share this kind; Actual tells them apart.
type RecordLengthError struct {
	Expected int
	Actual   int
	Line     int // 1-based source line, -1 when unknown.
}

func (e *RecordLengthError) Error() string {
	msg := i18n.T(CodeRecordLength, map[string]string{
		"expected": strconv.Itoa(e.Expected),
		"actual":   strconv.Itoa(e.Actual),
	})
	if e.Line > 0 {
		return fmt.Sprintf("goflat: line %d: %s", e.Line, msg)
	}
	return "goflat: " + msg
}
func (e *RecordLengthError) Is(target error) bool { return target == ErrRecordLength }
func (e *RecordLengthError) Code() string         { return CodeRecordLength }

// DuplicateFieldError is returned when a field name is declared twice.
type DuplicateFieldError struct{ Name string }

func (e *DuplicateFieldError) Error() string {
	return "goflat: " + i18n.T(CodeDuplicateField, map[string]string{"name": e.Name})
}
func (e *DuplicateFieldError) Is(target error) bool { return target == ErrDuplicateField }
func (e *DuplicateFieldError) Code() string         { return CodeDuplicateField }

// DuplicateLayoutError is returned when a layout name is declared twice.
type DuplicateLayoutError struct{ Name string }

func (e *DuplicateLayoutError) Error() string {
	return "goflat: " + i18n.T(CodeDuplicateLayout, map[string]string{"name": e.Name})
}
func (e *DuplicateLayoutError) Is(target error) bool { return target == ErrDuplicateLayout }
func (e *DuplicateLayoutError) Code() string         { return CodeDuplicateLayout }

// UnknownFieldError is returned when a Record is accessed with a name outside
// its schema's non-padding fields.
type UnknownFieldError struct{ Name string }

func (e *UnknownFieldError) Error() string {
	return "goflat: " + i18n.T(CodeUnknownField, map[string]string{"name": e.Name})
}
func (e *UnknownFieldError) Is(target error) bool { return target == ErrUnknownField }
func (e *UnknownFieldError) Code() string         { return CodeUnknownField }

// UnknownFilterError is returned when a Ref cannot be resolved in the
// schema's Registry.
type UnknownFilterError struct{ Reference string }

func (e *UnknownFilterError) Error() string {
	return "goflat: " + i18n.T(CodeUnknownFilter, map[string]string{"reference": e.Reference})
}
func (e *UnknownFilterError) Is(target error) bool { return target == ErrUnknownFilter }
func (e *UnknownFilterError) Code() string         { return CodeUnknownFilter }

// ConstructionError reports an invalid schema or layout declaration.
type ConstructionError struct {
	Layout string // empty for top-level declarations
	Reason string
}

func (e *ConstructionError) Error() string {
	msg := i18n.T(CodeConstruction, map[string]string{"reason": e.Reason})
	if e.Layout != "" {
		return fmt.Sprintf("goflat: layout %s: %s", e.Layout, msg)
	}
	return "goflat: " + msg
}
func (e *ConstructionError) Is(target error) bool { return target == ErrConstruction }
func (e *ConstructionError) Code() string         { return CodeConstruction }

// Phase names the pipeline stage a FieldError occurred in.
type Phase int

const (
	PhaseFilter Phase = iota
	PhaseFormat
)

func (p Phase) String() string {
	if p == PhaseFormat {
		return "format"
	}
	return "filter"
}

// FieldError wraps a failure raised by a field's filter or formatter chain.
type FieldError struct {
	Field string
	Phase Phase
	Line  int
	Err   error
}

func (e *FieldError) Error() string {
	code := CodeFilterFailed
	if e.Phase == PhaseFormat {
		code = CodeFormatFailed
	}
	msg := i18n.T(code, map[string]string{"name": e.Field})
	if e.Line > 0 {
		return fmt.Sprintf("goflat: line %d: %s: %v", e.Line, msg, e.Err)
	}
	return fmt.Sprintf("goflat: %s: %v", msg, e.Err)
}
func (e *FieldError) Unwrap() error { return e.Err }
func (e *FieldError) Code() string {
	if e.Phase == PhaseFormat {
		return CodeFormatFailed
	}
	return CodeFilterFailed
}

// TargetTypeError is returned by merge when a record value cannot be
// assigned to the target's field.
type TargetTypeError struct {
	Field string
	Want  string
	Got   string
}

func (e *TargetTypeError) Error() string {
	return "goflat: " + i18n.T(CodeTargetType, map[string]string{"name": e.Field, "want": e.Want, "got": e.Got})
}
func (e *TargetTypeError) Is(target error) bool { return target == ErrTargetType }
func (e *TargetTypeError) Code() string         { return CodeTargetType }

// Issue represents a single failure collected while processing many lines.
type Issue struct {
	Line    int    // 1-based source line, -1 when unknown.
	Field   string // Optional: field the issue relates to.
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. record_length at line 4
		fmt.Fprintf(b, "%s at line %d", it.Code, it.Line)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssueOf converts any error into an Issue, keeping typed details where the
// error carries them. line is used when the error has no line of its own.
func IssueOf(err error, line int) Issue {
	it := Issue{Line: line, Code: CodeUnknown, Cause: err}
	if err == nil {
		return it
	}
	it.Message = err.Error()

	var coded interface{ Code() string }
	if errors.As(err, &coded) {
		it.Code = coded.Code()
	}
	// an unresolved reference wins over the generic filter/format code
	var ufe *UnknownFilterError
	if errors.As(err, &ufe) {
		it.Code = CodeUnknownFilter
	}
	var rl *RecordLengthError
	var fe *FieldError
	var uf *UnknownFieldError
	switch {
	case errors.As(err, &rl):
		if rl.Line > 0 {
			it.Line = rl.Line
		}
	case errors.As(err, &fe):
		it.Field = fe.Field
		if fe.Line > 0 {
			it.Line = fe.Line
		}
	case errors.As(err, &uf):
		it.Field = uf.Name
	}
	return it
}
