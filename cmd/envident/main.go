// Command envident turns an environment variable into a Go identifier
// at generate time.
//
// The identifier alone goes to standard output:
//
//	envident -env BUILDASSERT_TRAP_SYMBOL -default __build_error_impl
//
// With -template the identifier is rendered through a text/template
// (the file sees {{.Name}}, {{.Env}}, {{.Raw}} and {{.UsedDefault}}),
// and output destined for a .go file gains the generated-code header
// and gofmt formatting:
//
//	//go:generate go run github.com/zeebo/buildassert/cmd/envident -env BUILDASSERT_TRAP_SYMBOL -default __build_error_impl -template trap_noasm.go.tmpl -out trap_noasm.go
//
// An unset variable without -default is an error, so generate runs
// cannot silently invent names. Values that are not identifiers are
// errors unless -mangle coerces them. -verify regenerates in memory
// and fails when -out is stale, which makes a cheap CI guard.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zeebo/errs"

	"github.com/zeebo/buildassert/internal/ident"
)

// Error wraps errors originating in the command itself rather than in
// resolution or rendering.
var Error = errs.Class("envident")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("envident", flag.ContinueOnError)
	var (
		env      = fs.String("env", "", "environment variable to read")
		fallback = fs.String("default", "", "identifier to use when the variable is unset")
		mangle   = fs.Bool("mangle", false, "coerce invalid values into identifiers instead of failing")
		tmplPath = fs.String("template", "", "render this template file with the identifier")
		outPath  = fs.String("out", "", "write to this file instead of stdout")
		verify   = fs.Bool("verify", false, "check that -out is current instead of writing it")
	)
	if err := fs.Parse(args); err != nil {
		return Error.Wrap(err)
	}
	if *env == "" {
		return Error.New("-env is required")
	}
	if *verify && *outPath == "" {
		return Error.New("-verify requires -out")
	}

	id, err := ident.Resolve(*env, *fallback, *mangle)
	if err != nil {
		return err
	}

	output := []byte(id.Name + "\n")
	if *tmplPath != "" {
		tmpl, err := os.ReadFile(*tmplPath)
		if err != nil {
			return Error.Wrap(err)
		}
		if strings.HasSuffix(*outPath, ".go") {
			output, err = ident.Render(tmpl, directive(*env, *fallback, *mangle, *tmplPath, *outPath), id)
		} else {
			output, err = ident.Execute(tmpl, id)
		}
		if err != nil {
			return err
		}
	}

	switch {
	case *verify:
		existing, err := os.ReadFile(*outPath)
		if err != nil {
			return Error.Wrap(err)
		}
		if !bytes.Equal(existing, output) {
			return Error.New("%s is stale; rerun go generate", *outPath)
		}
		return nil

	case *outPath != "":
		return Error.Wrap(os.WriteFile(*outPath, output, 0644))

	default:
		_, err := stdout.Write(output)
		return Error.Wrap(err)
	}
}

// directive reconstructs the invocation echoed into generated headers.
// It is rebuilt from flag values rather than taken from argv so that
// -verify runs compare against the same header the original run wrote.
func directive(env, fallback string, mangle bool, tmplPath, outPath string) string {
	parts := []string{"-env", env}
	if fallback != "" {
		parts = append(parts, "-default", fallback)
	}
	if mangle {
		parts = append(parts, "-mangle")
	}
	parts = append(parts, "-template", tmplPath, "-out", outPath)
	return strings.Join(parts, " ")
}
