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

// decl loads declaration files: YAML documents which declare type-variables and classes, and list
// checks to run against them.
//
//	vars:
//	  - {name: T, variance: covariant}
//	classes:
//	  - {name: Animal}
//	  - {name: Dog, bases: [Animal]}
//	  - {name: Box, params: [T]}
//	checks:
//	  - subtype: ["Box[Dog]", "Box[Animal]"]
//	  - new: "Box[T]"
//	    want: abstract
package decl

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wdamron/reify"
	"github.com/wdamron/reify/types"
)

// File is a parsed declaration file.
type File struct {
	Path    string      `yaml:"-"`
	Vars    []VarDecl   `yaml:"vars"`
	Classes []ClassDecl `yaml:"classes"`
	Checks  []Check     `yaml:"checks"`
}

// VarDecl declares a type-variable. Bound, constraints and default are type expressions.
type VarDecl struct {
	Name string `yaml:"name"`
	// invariant (default), covariant or contravariant
	Variance    string   `yaml:"variance"`
	Bound       string   `yaml:"bound"`
	Constraints []string `yaml:"constraints"`
	Default     string   `yaml:"default"`
}

// ClassDecl declares a class. If params is omitted, the class inherits the type-variables of its bases.
type ClassDecl struct {
	Name   string   `yaml:"name"`
	Params []string `yaml:"params"`
	Bases  []string `yaml:"bases"`
}

// Check is a single assertion. Exactly one of the check fields must be set.
//
// Want is the expected outcome: true or false for subtype, instance and same checks (true if omitted);
// the printed binding or none for ancestor checks; ok for new checks (if omitted). Any check may instead
// expect an error: arity, constraint, abstract or kind.
type Check struct {
	Subtype  []string       `yaml:"subtype"`
	Instance []string       `yaml:"instance"`
	Same     []string       `yaml:"same"`
	Ancestor *AncestorCheck `yaml:"ancestor"`
	New      string         `yaml:"new"`
	Want     string         `yaml:"want"`
}

// AncestorCheck resolves the binding which Type assigns to the signature of the template Of.
type AncestorCheck struct {
	Type string `yaml:"type"`
	Of   string `yaml:"of"`
}

// Load reads and parses a declaration file.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decl: open %s: %w", path, err)
	}
	defer f.Close()
	file, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("decl: parse %s: %w", path, err)
	}
	file.Path = path
	return file, nil
}

// Parse decodes a declaration file. Unknown fields are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	for i, c := range file.Checks {
		if c.kinds() != 1 {
			return nil, fmt.Errorf("checks[%d]: exactly one of subtype, instance, same, ancestor or new must be set", i)
		}
	}
	return &file, nil
}

func (c *Check) kinds() int {
	n := 0
	for _, set := range []bool{c.Subtype != nil, c.Instance != nil, c.Same != nil, c.Ancestor != nil, c.New != ""} {
		if set {
			n++
		}
	}
	return n
}

var variances = map[string]types.Variance{
	"":              types.Invariant,
	"invariant":     types.Invariant,
	"covariant":     types.Covariant,
	"contravariant": types.Contravariant,
}

// Declare the file's type-variables and classes within env, in order of appearance.
func (f *File) Declare(env *reify.TypeEnv) error {
	for _, v := range f.Vars {
		spec, err := f.varSpec(env, v)
		if err != nil {
			return err
		}
		if _, err = env.DeclareVar(spec); err != nil {
			return fmt.Errorf("var %s: %w", v.Name, err)
		}
	}
	for _, c := range f.Classes {
		var params []*types.Var
		if c.Params != nil {
			params = make([]*types.Var, len(c.Params))
			for i, name := range c.Params {
				if params[i] = env.LookupVar(name); params[i] == nil {
					return fmt.Errorf("class %s: undeclared type-variable %s", c.Name, name)
				}
			}
		}
		bases := make([]types.Type, len(c.Bases))
		for i, src := range c.Bases {
			t, err := ParseType(env, src)
			if err != nil {
				return fmt.Errorf("class %s: %w", c.Name, err)
			}
			bases[i] = t
		}
		if _, err := env.Derive(c.Name, params, bases...); err != nil {
			return fmt.Errorf("class %s: %w", c.Name, err)
		}
	}
	return nil
}

func (f *File) varSpec(env *reify.TypeEnv, v VarDecl) (types.VarSpec, error) {
	variance, ok := variances[v.Variance]
	if !ok {
		return types.VarSpec{}, fmt.Errorf("var %s: unknown variance %q", v.Name, v.Variance)
	}
	spec := types.VarSpec{Name: v.Name, Variance: variance}
	resolved := func(src string) (types.Type, error) {
		t, err := ParseType(env, src)
		if err != nil {
			return nil, fmt.Errorf("var %s: %w", v.Name, err)
		}
		return env.Engine().Canonical(t)
	}
	var err error
	if v.Bound != "" {
		if spec.Bound, err = resolved(v.Bound); err != nil {
			return spec, err
		}
	}
	for _, src := range v.Constraints {
		t, err := resolved(src)
		if err != nil {
			return spec, err
		}
		spec.Constraints = append(spec.Constraints, t)
	}
	if v.Default != "" {
		if spec.Default, err = resolved(v.Default); err != nil {
			return spec, err
		}
	}
	return spec, nil
}
