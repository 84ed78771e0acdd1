// Package charset resolves character encodings of legacy fixed-width files
// by IANA or common name.
package charset

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// ErrUnknown is returned for names no encoding is registered under.
var ErrUnknown = errors.New("charset: unknown encoding")

// Lookup returns the encoding for name. UTF-8 and the empty name yield nil,
// meaning no transcoding.
func Lookup(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "latin1", "latin-1":
		return charmap.ISO8859_1, nil
	case "cp1252":
		return charmap.Windows1252, nil
	case "cp437":
		return charmap.CodePage437, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	return enc, nil
}

// NewReader decodes r from enc into UTF-8. A nil enc returns r.
func NewReader(r io.Reader, enc encoding.Encoding) io.Reader {
	if enc == nil {
		return r
	}
	return transform.NewReader(r, enc.NewDecoder())
}

// NewWriter encodes UTF-8 written to the result into enc on w. A nil enc
// returns w. Characters enc cannot represent fail the write.
func NewWriter(w io.Writer, enc encoding.Encoding) io.Writer {
	if enc == nil {
		return w
	}
	return transform.NewWriter(w, enc.NewEncoder())
}
