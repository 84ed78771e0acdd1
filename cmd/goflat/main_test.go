package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `name: person
fields:
  - {name: f_name}
  - {name: l_name, aggressive: true}
  - {name: phone}
  - {name: age, width: 4, filters: [int], formatters: [one_decimal]}
  - {pad: true, width: 3}
  - {name: ignore, pad: true, width: 3}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "person.yaml", personSchema)
	good := writeFile(t, dir, "good.txt",
		"Captain   Stubing             4      xxx\n\nHas       Phone     11111111116      xxx\n")
	bad := writeFile(t, dir, "bad.txt",
		"Captain   Stubing   4      xxx\nJulie     McCoy               x      xxx\n")

	out, err := run(t, newCheckCmd(), "-s", schema, good)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	out, err = run(t, newCheckCmd(), "-s", schema, bad)
	require.True(t, errors.Is(err, errInvalidLines), "got %v", err)
	assert.Contains(t, out, "bad.txt:1: record_length")
	assert.Contains(t, out, "bad.txt:2: filter_failed")
}

func TestNormalize(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "person.yaml", personSchema)
	data := writeFile(t, dir, "in.txt", "Captain   Stubing             4      xxx\n")
	outPath := filepath.Join(dir, "out.txt")

	_, err := run(t, newNormalizeCmd(), "-s", schema, "-o", outPath, data)
	require.NoError(t, err)

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "Captain   Stubing             4.0       \n", string(got))
}

func TestNormalize_Layouts(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "batch.yaml", `
fields: []
layouts:
  - name: header
    fields: [{name: kind, width: 1}, {name: batch, width: 4, formatters: [upper]}]
  - name: detail
    fields: [{name: kind, width: 1}, {name: qty, width: 3, filters: [int]}]
`)
	data := writeFile(t, dir, "in.txt", "Habcd\nD 12\nD003\n")

	out, err := run(t, newNormalizeCmd(), "-s", schema, "--prefix", "H=header,D=detail", data)
	require.NoError(t, err)
	assert.Equal(t, "HABCD\nD12 \nD3  \n", out)
}

func TestDescribe(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "person.yaml", personSchema)

	out, err := run(t, newDescribeCmd(), "-s", schema)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, []string{"age", "31", "34", "4", "if_unset,2"}, strings.Fields(lines[4])[:5])
	assert.Contains(t, lines[2], "always")

	out, err = run(t, newDescribeCmd(), "-s", schema, "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"one_decimal"`)

	_, err = run(t, newDescribeCmd(), "-s", schema, "-f", "xml")
	assert.Error(t, err)
}

func TestMissingSchemaFlag(t *testing.T) {
	_, err := run(t, newDescribeCmd())
	assert.Error(t, err)
}
