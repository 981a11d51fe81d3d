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
	"github.com/benbjohnson/immutable"
)

// Type-variables are hashed by id and compared by identity.
type varHasher struct{}

func (varHasher) Hash(key interface{}) uint32 {
	id := uint32(key.(*Var).id)
	// Fibonacci hashing spreads sequential ids across the trie.
	return id * 2654435769
}

func (varHasher) Equal(a, b interface{}) bool { return a.(*Var) == b.(*Var) }

var emptyVarMap = immutable.NewMap(varHasher{})

var EmptyVarMap = VarMap{emptyVarMap}

// VarMap contains immutable mappings from type-variables to types.
type VarMap struct {
	m *immutable.Map
}

func NewVarMap() VarMap { return VarMap{emptyVarMap} }

// Map each type-variable in params to the entry at the same position in b. Entries beyond the
// shorter of the two are ignored.
func BindingMap(params []*Var, b Binding) VarMap {
	m := emptyVarMap
	for i, p := range params {
		if i >= b.Len() {
			break
		}
		m = m.Set(p, b.Get(i))
	}
	return VarMap{m}
}

// Get the number of entries in the map.
func (m VarMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get the type mapped to a type-variable.
func (m VarMap) Get(tv *Var) (Type, bool) {
	if m.m == nil {
		return nil, false
	}
	t, ok := m.m.Get(tv)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Set returns a copy of the map with tv mapped to t.
func (m VarMap) Set(tv *Var, t Type) VarMap {
	imm := m.m
	if imm == nil {
		imm = emptyVarMap
	}
	return VarMap{imm.Set(tv, t)}
}

// Iterate over entries in the map. Entries are visited in hash order.
// If f returns false, iteration will be stopped.
func (m VarMap) Range(f func(*Var, Type) bool) {
	if m.m == nil {
		return
	}
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(*Var), v.(Type)) {
			return
		}
	}
}
