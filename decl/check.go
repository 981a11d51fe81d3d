// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package decl

import (
	"errors"
	"strconv"

	"github.com/wdamron/reify"
	"github.com/wdamron/reify/types"
)

// Result is the outcome of a single check.
type Result struct {
	// Index of the check within the file
	Index int
	// Printed form of the check, such as `subtype Dog <: Animal`
	Check string
	Want  string
	Got   string
	// Err is set when the check failed with an unexpected error.
	Err error
}

func (r Result) Pass() bool { return r.Err == nil && r.Got == r.Want }

var errorNames = []struct {
	name string
	err  error
}{
	{"arity", types.ErrArity},
	{"constraint", types.ErrTypeConstraint},
	{"abstract", types.ErrAbstractParameterization},
	{"kind", types.ErrKind},
}

// Name the taxonomy of an error, or return false for errors outside the taxonomy.
func errorName(err error) (string, bool) {
	for _, e := range errorNames {
		if errors.Is(err, e.err) {
			return e.name, true
		}
	}
	return "", false
}

// Run the file's checks within env. The file's declarations must already be declared.
func (f *File) Run(env *reify.TypeEnv) []Result {
	results := make([]Result, len(f.Checks))
	for i := range f.Checks {
		results[i] = f.Checks[i].run(env)
		results[i].Index = i
	}
	return results
}

func (c *Check) run(env *reify.TypeEnv) Result {
	var (
		r   Result
		got string
		err error
	)
	switch {
	case c.Subtype != nil:
		r = Result{Check: "subtype " + pairString(c.Subtype, " <: "), Want: orDefault(c.Want, "true")}
		got, err = c.subtype(env)
	case c.Instance != nil:
		r = Result{Check: "instance " + pairString(c.Instance, " of "), Want: orDefault(c.Want, "true")}
		got, err = c.instance(env)
	case c.Same != nil:
		r = Result{Check: "same " + pairString(c.Same, " is "), Want: orDefault(c.Want, "true")}
		got, err = c.same(env)
	case c.Ancestor != nil:
		r = Result{Check: "ancestor " + c.Ancestor.Type + " of " + c.Ancestor.Of, Want: c.Want}
		got, err = c.ancestor(env)
	default:
		r = Result{Check: "new " + c.New, Want: orDefault(c.Want, "ok")}
		got, err = c.construct(env)
	}
	if err != nil {
		name, ok := errorName(err)
		if !ok {
			r.Err = err
			return r
		}
		got = name
		if got != r.Want {
			r.Err = err
		}
	}
	r.Got = got
	return r
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func pairString(pair []string, sep string) string {
	if len(pair) != 2 {
		return "(malformed)"
	}
	return pair[0] + sep + pair[1]
}

func parsePair(env *reify.TypeEnv, pair []string) (types.Type, types.Type, error) {
	if len(pair) != 2 {
		return nil, nil, errors.New("expected two type expressions, got " + strconv.Itoa(len(pair)))
	}
	a, err := ParseType(env, pair[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := ParseType(env, pair[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func (c *Check) subtype(env *reify.TypeEnv) (string, error) {
	sub, super, err := parsePair(env, c.Subtype)
	if err != nil {
		return "", err
	}
	ok, err := env.Engine().IsSubtype(sub, super)
	return strconv.FormatBool(ok), err
}

func (c *Check) instance(env *reify.TypeEnv) (string, error) {
	typ, target, err := parsePair(env, c.Instance)
	if err != nil {
		return "", err
	}
	o, err := env.Engine().New(typ)
	if err != nil {
		return "", err
	}
	ok, err := env.Engine().IsInstance(o, target)
	return strconv.FormatBool(ok), err
}

func (c *Check) same(env *reify.TypeEnv) (string, error) {
	a, b, err := parsePair(env, c.Same)
	if err != nil {
		return "", err
	}
	if a, err = env.Engine().Canonical(a); err != nil {
		return "", err
	}
	if b, err = env.Engine().Canonical(b); err != nil {
		return "", err
	}
	return strconv.FormatBool(a == b), nil
}

func (c *Check) ancestor(env *reify.TypeEnv) (string, error) {
	sub, err := ParseType(env, c.Ancestor.Type)
	if err != nil {
		return "", err
	}
	of := env.LookupClass(c.Ancestor.Of)
	if of == nil {
		return "", errors.New("undeclared class " + c.Ancestor.Of)
	}
	b, found, err := env.Engine().AncestorBinding(sub, of)
	if err != nil {
		return "", err
	}
	if !found {
		return "none", nil
	}
	return b.String(), nil
}

func (c *Check) construct(env *reify.TypeEnv) (string, error) {
	t, err := ParseType(env, c.New)
	if err != nil {
		return "", err
	}
	if _, err = env.Engine().New(t); err != nil {
		return "", err
	}
	return "ok", nil
}
