package dsl

import (
	goflat "github.com/reoring/goflat"
)

// Decode parses line with c and merges the record into a fresh T. T must be
// a struct type; fields are matched by flat tag or name.
func Decode[T any](c *goflat.Codec, line string) (T, error) {
	var out T
	rec, err := c.Parse(line)
	if err != nil {
		return out, err
	}
	if err := goflat.Merge(rec, &out); err != nil {
		return out, err
	}
	return out, nil
}

// DecodeInto parses line with c and merges it into target, honoring each
// field's merge policy against the values target already holds.
func DecodeInto(c *goflat.Codec, line string, target any) error {
	rec, err := c.Parse(line)
	if err != nil {
		return err
	}
	return goflat.Merge(rec, target)
}

// Encode serializes v with c, seeding the record from v's fields.
func Encode[T any](c *goflat.Codec, v T) (string, error) {
	rec, err := goflat.NewRecord(c.Schema(), v)
	if err != nil {
		return "", err
	}
	return c.Serialize(rec)
}
