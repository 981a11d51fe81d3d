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

package typeutil

import (
	"github.com/wdamron/reify/types"
)

// Subst replaces type-variables in t by identity, according to m.
//
// Partial reified types are expanded into symbolic applications so their placeholders can be
// substituted; the result is not canonical. Resolved types are returned unchanged.
func Subst(t types.Type, m types.VarMap) types.Type {
	if m.Len() == 0 || !t.IsGeneric() {
		return t
	}
	switch t := t.(type) {
	case *types.Var:
		if sub, ok := m.Get(t); ok {
			return sub
		}
		return t
	case *types.Reified:
		return types.ApplyBinding(t.Template(), SubstBinding(t.Binding(), m))
	case *types.App:
		return types.ApplyBinding(t.Func, SubstBinding(t.Args, m))
	case *types.Union:
		members := t.Members()
		for i, member := range members {
			members[i] = Subst(member, m)
		}
		return types.NewUnion(members...)
	}
	return t
}

// SubstBinding replaces type-variables in each entry of b by identity, according to m.
func SubstBinding(b types.Binding, m types.VarMap) types.Binding {
	if m.Len() == 0 || !b.IsGeneric() {
		return b
	}
	builder := types.NewBindingBuilder()
	b.Range(func(_ int, t types.Type) bool {
		builder.Append(Subst(t, m))
		return true
	})
	return builder.Build()
}

// Slots counts the unresolved occurrences within t which re-parameterization would fill.
// Each occurrence of a type-variable is a separate slot.
func Slots(t types.Type) int {
	if !t.IsGeneric() {
		return 0
	}
	switch t := t.(type) {
	case *types.Var:
		return 1
	case *types.Reified:
		return BindingSlots(t.Binding())
	case *types.App:
		return BindingSlots(t.Args)
	case *types.Union:
		n := 0
		for _, m := range t.Members() {
			n += Slots(m)
		}
		return n
	}
	return 0
}

// BindingSlots counts the unresolved occurrences within each entry of b.
func BindingSlots(b types.Binding) int {
	n := 0
	b.Range(func(_ int, t types.Type) bool {
		n += Slots(t)
		return true
	})
	return n
}
