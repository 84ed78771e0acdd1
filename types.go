package goflat

// NoLine marks a Record that is not associated with a source line.
const NoLine = -1

// DefaultWidth is the width of a field declared without Width.
const DefaultWidth = 10

// AutoName requests a generated name from AddPad.
const AutoName = ""

// MergePolicy is the effective overwrite directive of a field.
type MergePolicy int

const (
	OverwriteIfUnset MergePolicy = iota // Set only when the target value is empty.
	AlwaysOverwrite                     // Set unconditionally (aggressive field).
	CustomMerge                         // Delegate to the field's MergeFunc.
)

func (p MergePolicy) String() string {
	switch p {
	case AlwaysOverwrite:
		return "always"
	case CustomMerge:
		return "custom"
	default:
		return "if_unset"
	}
}

// MergeFunc merges one field of rec into target. It bears full responsibility
// for reading and writing target.
type MergeFunc func(target any, rec *Record) error

// FieldOption configures a field at declaration time.
type FieldOption func(*FieldSpec)

// Width sets the field width in characters.
func Width(n int) FieldOption { return func(f *FieldSpec) { f.width = n } }

// Filter appends filters applied on parse, left to right.
func Filter(ts ...Transform) FieldOption {
	return func(f *FieldSpec) { f.filters = append(f.filters, ts...) }
}

// Formatter appends formatters applied on serialize, left to right.
func Formatter(ts ...Transform) FieldOption {
	return func(f *FieldSpec) { f.formatters = append(f.formatters, ts...) }
}

// Padding marks the field as padding.
func Padding() FieldOption { return func(f *FieldSpec) { f.padding = true } }

// Aggressive makes merge overwrite the target unconditionally.
func Aggressive() FieldOption { return func(f *FieldSpec) { f.aggressive = true } }

// WithMerge sets a custom merge function; it takes precedence over Aggressive.
func WithMerge(fn MergeFunc) FieldOption { return func(f *FieldSpec) { f.merge = fn } }

// SchemaOption configures a Schema at construction time.
type SchemaOption func(*Schema)

// Named sets a diagnostic name for the schema.
func Named(name string) SchemaOption { return func(s *Schema) { s.name = name } }

// WithRegistry makes the schema resolve Refs against r.
func WithRegistry(r *Registry) SchemaOption {
	return func(s *Schema) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithPadNamer injects the source of generated padding names.
func WithPadNamer(n PadNamer) SchemaOption {
	return func(s *Schema) {
		if n != nil {
			s.padNamer = n
		}
	}
}

// RawSegments keeps raw segments verbatim. By default trailing spaces and
// NUL bytes are stripped before the filter chain runs.
func RawSegments() SchemaOption { return func(s *Schema) { s.raw = true } }

// LayoutOption configures a Layout.
type LayoutOption func(*Layout)

// Rows records how many physical lines the layout occupies (0 = unbounded).
func Rows(n int) LayoutOption { return func(l *Layout) { l.rows = n } }
