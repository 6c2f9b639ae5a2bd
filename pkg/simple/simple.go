// Package simple implements the human-readable "Simple Expression" codec:
// loads/load parse source text into a top-level Tuple, and dumps/dump
// render a Value tree back to text (spec §4.1-§4.3, §6).
package simple

import (
	"io"
	"strings"

	"github.com/haiku-lang/go-haiku/internal/encutil"
	"github.com/haiku-lang/go-haiku/internal/parser"
	"github.com/haiku-lang/go-haiku/pkg/value"
)

// Option configures a single load/dump call. The zero Option is the
// default: utf-8.
type Option struct {
	Encoding encutil.Name
}

// Loads parses text into a single top-level Tuple whose positional
// entries are the expressions found in it, in order (spec §4.2
// "Top-level"). Empty or all-whitespace input yields the empty Tuple.
func Loads(text string) (value.Value, error) {
	parsed, err := parser.Parse(text)
	if err != nil {
		return value.Value{}, err
	}
	return reifyChildren(parsed), nil
}

// Load reads r to EOF, decodes it per opt.Encoding (default utf-8), and
// parses the result (spec §6).
func Load(r io.Reader, opt Option) (value.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return value.Value{}, err
	}
	text, err := encutil.Decode(data, opt.Encoding)
	if err != nil {
		return value.Value{}, err
	}
	return Loads(text)
}

// Dumps serializes zero or more values independently, joined by single
// spaces; zero arguments yields the empty string (spec §4.3
// "Multi-argument dumps").
func Dumps(vs ...value.Value) (string, error) {
	var sb strings.Builder
	for i, v := range vs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if err := serialize(&sb, v); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// Dump serializes vs and writes the encoded bytes to w per opt.Encoding
// (default utf-8).
func Dump(w io.Writer, opt Option, vs ...value.Value) error {
	text, err := Dumps(vs...)
	if err != nil {
		return err
	}
	data, err := encutil.Encode(text, opt.Encoding)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
