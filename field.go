package goflat

// FieldSpec holds the static metadata of one field. It is created by
// Schema.AddField / AddPad and may be further configured until the owning
// schema is sealed.
type FieldSpec struct {
	name       string
	width      int
	padding    bool
	aggressive bool
	merge      MergeFunc
	filters    []Transform
	formatters []Transform
	owner      *Schema
}

func (f *FieldSpec) Name() string    { return f.name }
func (f *FieldSpec) Width() int      { return f.width }
func (f *FieldSpec) IsPadding() bool { return f.padding }

// IsAggressive reports whether the field was declared with Aggressive.
func (f *FieldSpec) IsAggressive() bool { return f.aggressive }

// Filters returns a copy of the filter chain.
func (f *FieldSpec) Filters() []Transform { return append([]Transform(nil), f.filters...) }

// Formatters returns a copy of the formatter chain.
func (f *FieldSpec) Formatters() []Transform { return append([]Transform(nil), f.formatters...) }

// MergeFunc returns the custom merge function, if any.
func (f *FieldSpec) MergeFunc() MergeFunc { return f.merge }

// Policy resolves the effective merge directive:
// CustomMerge > AlwaysOverwrite > OverwriteIfUnset.
func (f *FieldSpec) Policy() MergePolicy {
	switch {
	case f.merge != nil:
		return CustomMerge
	case f.aggressive:
		return AlwaysOverwrite
	default:
		return OverwriteIfUnset
	}
}

// AddFilter appends filters to the chain.
func (f *FieldSpec) AddFilter(ts ...Transform) error {
	if f.owner != nil && f.owner.Sealed() {
		return ErrSealed
	}
	f.filters = append(f.filters, ts...)
	return nil
}

// AddFormatter appends formatters to the chain.
func (f *FieldSpec) AddFormatter(ts ...Transform) error {
	if f.owner != nil && f.owner.Sealed() {
		return ErrSealed
	}
	f.formatters = append(f.formatters, ts...)
	return nil
}

// SetMerge installs a custom merge function.
func (f *FieldSpec) SetMerge(fn MergeFunc) error {
	if f.owner != nil && f.owner.Sealed() {
		return ErrSealed
	}
	f.merge = fn
	return nil
}
