// Package goflat provides a schema-driven codec for fixed-width ("flat")
// text records:
//
// - Declare a Schema of ordered, fixed-width fields (with padding regions,
// ingest filters and egress formatters)
// - Parse a line into a Record and Encode a Record back into a line of
// exactly Schema.Width() characters
// - Declare several record shapes (Layouts) for multi-shape files
// - Merge a Record into an externally owned model under per-field
// overwrite policies
//
// Design policy:
// - Keep the public core in the root package; reusable transforms live in
// codec/, the fluent builder in dsl/, declarative schema files in
// schemafile/, line I/O in source/ and sink/, the CLI in cmd/goflat.
// - Every failure is a distinct typed error with a stable code.
// - A sealed Schema is read-only and may be shared across goroutines.
//
// Typical usage:
//
//	s := goflat.NewSchema()
//	s.AddField("first_name", goflat.Width(10), goflat.Filter(codec.Trim()))
//	s.AddField("last_name", goflat.Width(10), goflat.Aggressive())
//	s.AddPad(goflat.AutoName, goflat.Width(2))
//
//	rec, err := s.Codec().Parse(line)
//	out, err := rec.Encode()
//	err = rec.MergeInto(&person)
package goflat
