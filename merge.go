package goflat

import (
	"fmt"

	"github.com/untillpro/goutils/logger"
)

// Merge applies rec onto target field by field in declaration order.
// Padding fields and fields the target cannot set are skipped. For the rest
// the field's policy decides:
//   - CustomMerge calls the field's MergeFunc with target and rec
//   - AlwaysOverwrite assigns the record value
//   - OverwriteIfUnset assigns only when the target's current value is empty
//
// Merge stops at the first error; fields processed before it stay applied.
func Merge(rec *Record, target any) error {
	if rec == nil {
		return errNilRecord
	}
	acc, err := AccessorFor(target)
	if err != nil {
		return err
	}
	applied := 0
	for _, f := range rec.schema.fields {
		if f.padding || !acc.Settable(f.name) {
			continue
		}
		switch f.Policy() {
		case CustomMerge:
			if err := f.merge(target, rec); err != nil {
				return fmt.Errorf("goflat: merge %s: %w", f.name, err)
			}
		case AlwaysOverwrite:
			if err := acc.Assign(f.name, rec.values[f.name]); err != nil {
				return err
			}
		default:
			if !unset(acc, f.name) {
				continue
			}
			if err := acc.Assign(f.name, rec.values[f.name]); err != nil {
				return err
			}
		}
		applied++
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("goflat: merged line=%d fields=%d into %T", rec.line, applied, target))
	}
	return nil
}

// unset reports whether name holds no value yet. Struct pointer fields are
// inspected as stored so that a pointer to zero counts as set.
func unset(acc Accessor, name string) bool {
	var cur any
	var ok bool
	if sa, isStruct := acc.(*structAccessor); isStruct {
		cur, ok = sa.current(name)
	} else {
		cur, ok = acc.Lookup(name)
	}
	return !ok || isEmpty(cur)
}
