// Package ident resolves environment variables into Go identifiers for
// generated code.
package ident

import (
	"fmt"
	"go/token"
	"os"
	"unicode"

	"github.com/cespare/xxhash"
	"github.com/zeebo/errs"
)

// Error wraps all errors returned from this package.
var Error = errs.Class("ident")

// T is a resolved identifier and where it came from. It is also the
// value templates are executed with.
type T struct {
	Name        string // the identifier
	Env         string // environment variable consulted
	Raw         string // raw value of the variable, empty when unset
	UsedDefault bool   // whether the fallback was taken
}

// Resolve reads the environment variable env and produces the
// identifier it names. An unset variable falls back to fallback,
// used verbatim; with no fallback an unset variable is an error, so a
// generate run cannot silently invent a name. Values that are not
// valid identifiers are an error unless mangle is set, in which case
// they are coerced with Mangle.
func Resolve(env, fallback string, mangle bool) (T, error) {
	raw, ok := os.LookupEnv(env)
	if !ok {
		if fallback == "" {
			return T{}, Error.New("%s is unset and no default was given", env)
		}
		if !Valid(fallback) {
			return T{}, Error.New("default %q is not a valid identifier", fallback)
		}
		return T{Name: fallback, Env: env, UsedDefault: true}, nil
	}

	name := raw
	switch {
	case Valid(name):
	case mangle:
		name = Mangle(raw)
	default:
		return T{}, Error.New("%s=%q is not a valid identifier", env, raw)
	}
	return T{Name: name, Env: env, Raw: raw}, nil
}

// Valid reports whether s is usable as an identifier. Keywords are
// not.
func Valid(s string) bool {
	return token.IsIdentifier(s)
}

// Mangle deterministically coerces s into a valid identifier. Runes an
// identifier cannot contain become underscores and a leading digit
// gains an underscore prefix. Any lossy rewrite, and any collision
// with a keyword, appends a hash of the original value so distinct
// inputs stay distinct.
func Mangle(s string) string {
	out := make([]rune, 0, len(s)+1)
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			out = append(out, r)
		} else {
			out = append(out, '_')
		}
	}
	if len(out) == 0 || unicode.IsDigit(out[0]) {
		out = append([]rune{'_'}, out...)
	}

	name := string(out)
	if name == s && Valid(name) {
		return name
	}
	return fmt.Sprintf("%s_%08x", name, uint32(xxhash.Sum64String(s)))
}
