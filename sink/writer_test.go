package sink_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goflat "github.com/reoring/goflat"
	"github.com/reoring/goflat/codec"
	"github.com/reoring/goflat/dsl"
	"github.com/reoring/goflat/sink"
	"github.com/reoring/goflat/source"
)

func itemCodec() *goflat.Codec {
	return dsl.Record("item").
		Field("sku", 4).
		Field("qty", 3).Filter(codec.Int()).Format(codec.ZeroPad(3)).
		MustBuild().Codec()
}

func TestWriter_Write(t *testing.T) {
	c := itemCodec()
	var buf bytes.Buffer
	w, err := sink.NewWriter(&buf, c)
	require.NoError(t, err)

	rec, err := goflat.NewRecord(c.Schema(), map[string]any{"sku": "A1", "qty": 7})
	require.NoError(t, err)
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.WriteLine("B2  010"))
	require.NoError(t, w.Flush())

	assert.Equal(t, "A1  007\nB2  010\n", buf.String())
	assert.Equal(t, 2, w.Count())
}

func TestWriter_WriteLineChecksWidth(t *testing.T) {
	w, err := sink.NewWriter(&bytes.Buffer{}, itemCodec())
	require.NoError(t, err)
	err = w.WriteLine("toolongline")
	var rle *goflat.RecordLengthError
	require.ErrorAs(t, err, &rle)
	assert.Equal(t, 7, rle.Expected)
	assert.Equal(t, 11, rle.Actual)
	assert.Equal(t, 0, w.Count())
}

func TestWriter_WriteLineSkipsFilters(t *testing.T) {
	var buf bytes.Buffer
	w, err := sink.NewWriter(&buf, itemCodec())
	require.NoError(t, err)
	// qty is not numeric, but the width is right
	require.NoError(t, w.WriteLine("C3  abc"))
	require.NoError(t, w.Flush())
	assert.Equal(t, "C3  abc\n", buf.String())
}

func TestWriter_EncodingAndLineEnding(t *testing.T) {
	c := itemCodec()
	var buf bytes.Buffer
	w, err := sink.NewWriter(&buf, c, sink.WithEncoding("latin1"), sink.WithLineEnding("\r\n"))
	require.NoError(t, err)
	require.NoError(t, w.WriteLine("Öl  001"))
	require.NoError(t, w.Flush())
	assert.Equal(t, []byte{0xD6, 'l', ' ', ' ', '0', '0', '1', '\r', '\n'}, buf.Bytes())

	// reading it back with the same charset restores the record
	r, err := source.NewReader(&buf, c, source.WithEncoding("latin1"))
	require.NoError(t, err)
	recs, err := r.All(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Öl", recs[0].Values()["sku"])
	assert.Equal(t, 1, recs[0].Values()["qty"])
}

func TestWriter_RoundTripThroughReader(t *testing.T) {
	c := itemCodec()
	in := "A1  007\nB2  010\n"
	r, err := source.NewReader(strings.NewReader(in), c)
	require.NoError(t, err)

	var buf bytes.Buffer
	w, err := sink.NewWriter(&buf, c)
	require.NoError(t, err)
	require.NoError(t, r.Each(context.Background(), w.Write))
	require.NoError(t, w.Flush())
	assert.Equal(t, in, buf.String())
}
