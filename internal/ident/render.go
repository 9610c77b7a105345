package ident

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/zeebo/buildassert/internal/mon"
)

var (
	executeThunk mon.Thunk // timing for Execute
	renderThunk  mon.Thunk // timing for Render
)

// Execute runs the template source with the identifier and returns the
// raw output. Templates see the fields of T, {{.Name}} being the
// resolved identifier.
func Execute(tmplSrc []byte, id T) ([]byte, error) {
	defer executeThunk.Start().Stop()

	t, err := template.New("envident").Parse(string(tmplSrc))
	if err != nil {
		return nil, Error.Wrap(err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, id); err != nil {
		return nil, Error.Wrap(err)
	}
	return buf.Bytes(), nil
}

// Render is Execute for Go output: the result carries the standard
// generated-code header echoing the directive that produced it and
// comes back gofmt formatted. A template that does not render valid Go
// is an error, so a bad generate run cannot write a file the compiler
// rejects later.
func Render(tmplSrc []byte, directive string, id T) ([]byte, error) {
	defer renderThunk.Start().Stop()

	body, err := Execute(tmplSrc, id)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by \"envident %s\"; DO NOT EDIT.\n\n", directive)
	buf.Write(body)

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, Error.New("rendered output is not valid Go: %v", err)
	}
	return out, nil
}
