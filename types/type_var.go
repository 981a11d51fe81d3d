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

package types

import (
	"errors"
	"strconv"
	"sync"
)

// Variance governs how a bound position of a template is compared in subtype tests.
type Variance int

const (
	// Invariant positions match identical types only.
	Invariant Variance = iota
	// Covariant positions match when the candidate is a subtype of the target.
	Covariant
	// Contravariant positions match when the target is a subtype of the candidate.
	Contravariant
)

func (v Variance) String() string {
	switch v {
	case Covariant:
		return "covariant"
	case Contravariant:
		return "contravariant"
	}
	return "invariant"
}

// Type-variable
//
// Type-variables are compared by identity. Two type-variables with the same name are distinct
// unless they are the same object.
type Var struct {
	name        string
	id          int
	variance    Variance
	bound       Type
	constraints []Type
	def         Type

	mu           sync.Mutex
	placeholders []*Var
}

// VarSpec describes a type-variable to be declared.
type VarSpec struct {
	Name     string
	Variance Variance
	// Upper bound for resolved arguments. Mutually exclusive with Constraints.
	Bound Type
	// Finite set of allowed arguments. Mutually exclusive with Bound.
	Constraints []Type
	// Default is not interpreted by the engine; it is consulted by the defaulting policy.
	Default Type
}

// Create a new unbounded type-variable.
func NewVar(name string, variance Variance) *Var {
	return &Var{name: name, id: freshId(), variance: variance}
}

// Declare a type-variable with an optional bound, constraints, or default.
func DeclareVar(spec VarSpec) (*Var, error) {
	if spec.Name == "" {
		return nil, errors.New("Type-variable must be named")
	}
	if spec.Bound != nil && len(spec.Constraints) > 0 {
		return nil, errors.New("Type-variable " + spec.Name + " cannot have both a bound and constraints")
	}
	if len(spec.Constraints) == 1 {
		return nil, errors.New("Type-variable " + spec.Name + " must have at least two constraints")
	}
	if spec.Bound != nil && spec.Bound.IsGeneric() {
		return nil, errors.New("Bound of type-variable " + spec.Name + " must not contain type-variables")
	}
	for _, c := range spec.Constraints {
		if c == nil || c.IsGeneric() {
			return nil, errors.New("Constraints of type-variable " + spec.Name + " must be resolved types")
		}
	}
	if spec.Default != nil && spec.Default.IsGeneric() {
		return nil, errors.New("Default of type-variable " + spec.Name + " must not contain type-variables")
	}
	tv := &Var{name: spec.Name, id: freshId(), variance: spec.Variance, bound: spec.Bound, def: spec.Default}
	if len(spec.Constraints) > 0 {
		tv.constraints = append([]Type(nil), spec.Constraints...)
	}
	return tv, nil
}

// Id returns the unique identifier of the type-variable.
func (tv *Var) Id() int { return tv.id }

func (tv *Var) Name() string       { return tv.name }
func (tv *Var) Variance() Variance { return tv.variance }

// Bound returns the upper bound of the type-variable, or nil.
func (tv *Var) Bound() Type { return tv.bound }

// Constraints returns a copy of the type-variable's constraint set.
func (tv *Var) Constraints() []Type {
	if len(tv.constraints) == 0 {
		return nil
	}
	return append([]Type(nil), tv.constraints...)
}

func (tv *Var) HasConstraints() bool { return len(tv.constraints) > 0 }

// Default returns the declared default of the type-variable, or nil.
func (tv *Var) Default() Type { return tv.def }

func (tv *Var) String() string { return TypeString(tv) }

// Placeholder returns the n-th placeholder for an unresolved position whose signature type-variable is tv.
// The first placeholder is tv itself. Later placeholders are created once, numbered after tv's name, and
// share its variance, bound, constraints and default.
func (tv *Var) Placeholder(n int) *Var {
	if n <= 0 {
		return tv
	}
	tv.mu.Lock()
	for len(tv.placeholders) < n {
		k := len(tv.placeholders) + 2
		tv.placeholders = append(tv.placeholders, &Var{
			name:        tv.name + strconv.Itoa(k),
			id:          freshId(),
			variance:    tv.variance,
			bound:       tv.bound,
			constraints: tv.constraints,
			def:         tv.def,
		})
	}
	p := tv.placeholders[n-1]
	tv.mu.Unlock()
	return p
}
