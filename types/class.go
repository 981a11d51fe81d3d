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
	"github.com/wdamron/reify/internal/util"
)

// Class is a declared runtime type. A class with a non-empty signature is a generic template.
//
// The signature and bases of a class are fixed at declaration.
type Class struct {
	name   string
	id     int
	params []*Var
	bases  []Base
}

// Base is a declared base of a class.
type Base struct {
	// Origin is the class (or template) which the base is declared from.
	Origin *Class
	// Type is the canonical base: Origin itself or a reified parameterization of Origin.
	Type Type
	// Args is the symbolic binding of Origin's signature captured at derivation.
	Args Binding
}

// Edge is a single derivation step from a class to one of its bases.
type Edge struct {
	Derived *Class
	Base    Base
}

// Create a new class. Bases are not validated; declarations should be made through the engine,
// which captures canonical bases and snapshot bindings.
func NewClass(name string, params []*Var, bases ...Base) *Class {
	c := &Class{name: name, id: freshId()}
	if len(params) > 0 {
		c.params = append([]*Var(nil), params...)
	}
	if len(bases) > 0 {
		c.bases = append([]Base(nil), bases...)
	}
	return c
}

// Id returns the unique identifier of the class.
func (c *Class) Id() int      { return c.id }
func (c *Class) Name() string { return c.name }

// IsTemplate reports whether the class declares a signature.
func (c *Class) IsTemplate() bool { return len(c.params) > 0 }

// NumParams returns the length of the class's signature.
func (c *Class) NumParams() int { return len(c.params) }

// Param returns the type-variable at position i of the signature.
func (c *Class) Param(i int) *Var { return c.params[i] }

// Params returns a copy of the signature.
func (c *Class) Params() []*Var { return append([]*Var(nil), c.params...) }

// Bases returns a copy of the declared bases.
func (c *Class) Bases() []Base { return append([]Base(nil), c.bases...) }

func (c *Class) String() string { return c.name }

// IsSubclassOf reports whether c is super or (transitively) derives from super. Parameterization is ignored.
func (c *Class) IsSubclassOf(super *Class) bool {
	if c == super {
		return true
	}
	seen := util.NewIntDedupeMap()
	found := c.isSubclassOf(seen, super)
	seen.Release()
	return found
}

func (c *Class) isSubclassOf(seen util.IntDedupeMap, super *Class) bool {
	seen[c.id] = true
	for _, b := range c.bases {
		switch {
		case b.Origin == super:
			return true
		case seen[b.Origin.id]:
			continue
		case b.Origin.isSubclassOf(seen, super):
			return true
		}
	}
	return false
}

// PathTo finds a derivation chain from c to ancestor. The returned edges are ordered from c towards
// ancestor; the path is empty when c is ancestor.
//
// The bases of each visited class are first checked against ancestor in declaration order. Bases which
// do not match are then searched last-declared first, and each class is searched at most once, so the
// chain through the last-declared base wins when more than one base derives from ancestor.
func (c *Class) PathTo(ancestor *Class) ([]Edge, bool) {
	if c == ancestor {
		return nil, true
	}
	type frame struct {
		class *Class
		path  []Edge
	}
	deadEnds := util.NewIntDedupeMap()
	stack := []frame{{class: c}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, b := range top.class.bases {
			path := make([]Edge, len(top.path)+1)
			copy(path, top.path)
			path[len(top.path)] = Edge{Derived: top.class, Base: b}
			if b.Origin == ancestor {
				deadEnds.Release()
				return path, true
			}
			if deadEnds[b.Origin.id] {
				continue
			}
			deadEnds[b.Origin.id] = true
			stack = append(stack, frame{class: b.Origin, path: path})
		}
	}
	deadEnds.Release()
	return nil, false
}

// Visit c and each of its (transitive) ancestors once, depth-first in declaration order.
// If f returns false, iteration will be stopped.
func (c *Class) WalkAncestors(f func(*Class) bool) {
	seen := util.NewIntDedupeMap()
	c.walkAncestors(seen, f)
	seen.Release()
}

func (c *Class) walkAncestors(seen util.IntDedupeMap, f func(*Class) bool) bool {
	if seen[c.id] {
		return true
	}
	seen[c.id] = true
	if !f(c) {
		return false
	}
	for _, b := range c.bases {
		if !b.Origin.walkAncestors(seen, f) {
			return false
		}
	}
	return true
}
