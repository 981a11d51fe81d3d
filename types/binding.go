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
	"strings"

	"github.com/benbjohnson/immutable"
)

var emptyList = immutable.NewList()

var EmptyBinding = Binding{emptyList}

// Binding is an immutable, positional assignment of types to the signature of a template.
//
// Each entry is either a resolved type or an unresolved type-variable (possibly nested within an
// application or union).
type Binding struct {
	l *immutable.List
}

func NewBinding(ts ...Type) Binding {
	if len(ts) == 0 {
		return EmptyBinding
	}
	b := immutable.NewListBuilder(emptyList)
	for _, t := range ts {
		b.Append(t)
	}
	return Binding{b.List()}
}

// Bind each type-variable to itself.
func IdentityBinding(params []*Var) Binding {
	b := NewBindingBuilder()
	for _, p := range params {
		b.Append(p)
	}
	return b.Build()
}

func (b Binding) Len() int {
	if b.l == nil {
		return 0
	}
	return b.l.Len()
}

func (b Binding) Get(i int) Type { return b.l.Get(i).(Type) }

// Set returns a copy of the binding with the entry at index i replaced.
func (b Binding) Set(i int, t Type) Binding { return Binding{b.l.Set(i, t)} }

// If f returns false, iteration will be stopped.
func (b Binding) Range(f func(int, Type) bool) {
	if b.l == nil {
		return
	}
	iter := b.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(Type)) {
			return
		}
	}
}

// Types returns the entries of the binding as a new slice.
func (b Binding) Types() []Type {
	ts := make([]Type, 0, b.Len())
	b.Range(func(_ int, t Type) bool {
		ts = append(ts, t)
		return true
	})
	return ts
}

// IsGeneric reports whether any entry is unresolved.
func (b Binding) IsGeneric() bool {
	generic := false
	b.Range(func(_ int, t Type) bool {
		generic = t.IsGeneric()
		return !generic
	})
	return generic
}

// IsResolved reports whether every entry is resolved.
func (b Binding) IsResolved() bool { return !b.IsGeneric() }

// Unresolved returns the indexes of entries which contain type-variables.
func (b Binding) Unresolved() []int {
	var idx []int
	b.Range(func(i int, t Type) bool {
		if t.IsGeneric() {
			idx = append(idx, i)
		}
		return true
	})
	return idx
}

// Equal reports whether two bindings are canonically equal: resolved entries must be identical and
// unresolved entries must be unresolved at the same positions, regardless of which type-variables occupy them.
func (a Binding) Equal(b Binding) bool {
	if a.Len() != b.Len() {
		return false
	}
	eq := true
	a.Range(func(i int, t Type) bool {
		eq = Key(t) == Key(b.Get(i))
		return eq
	})
	return eq
}

func (b Binding) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	b.Range(func(i int, t Type) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(TypeString(t))
		return true
	})
	sb.WriteByte(')')
	return sb.String()
}

// BindingBuilder appends entries of a binding in place before finalization.
type BindingBuilder struct {
	b *immutable.ListBuilder
}

func NewBindingBuilder() BindingBuilder {
	return BindingBuilder{immutable.NewListBuilder(emptyList)}
}

func (b BindingBuilder) Len() int      { return b.b.Len() }
func (b BindingBuilder) Append(t Type) { b.b.Append(t) }
func (b BindingBuilder) Build() Binding { return Binding{b.b.List()} }
