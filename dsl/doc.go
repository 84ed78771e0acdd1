// Package dsl provides a fluent builder for goflat schemas.
//
// Overview
//   - Builder API: declare fields in line order with Record()/Field()/Pad()/Layout() then Build()/MustBuild().
//   - Field steps: chain Filter/Format/Aggressive/Merge on the field just declared.
//   - Typed helpers: Decode[T]/Encode[T] move a line in and out of a struct through merge.
//
// The builder collects the first declaration error and reports it from
// Build, so a chain never needs intermediate error checks.
//
//	s := dsl.Record("person").
//		Field("f_name", 10).
//		Field("l_name", 10).Aggressive().
//		Field("age", 4).Filter(codec.Int()).Format(codec.Fixed(1)).
//		Pad(3).
//		MustBuild()
package dsl
