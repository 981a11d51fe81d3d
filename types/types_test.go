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
	"testing"
)

func TestUnionNormalization(t *testing.T) {
	intT, strT := NewClass("int", nil), NewClass("str", nil)
	T := NewVar("T", Invariant)

	u := NewUnion(intT, NewUnion(strT, intT), nil, T, T)
	if s := TypeString(u); s != "int | str | ~T" {
		t.Fatalf("union: %s", s)
	}
	if !u.IsGeneric() {
		t.Fatalf("expected a union containing a type-variable to be generic")
	}
	if NewUnion(intT, intT) != Type(intT) {
		t.Fatalf("expected a union of a single type to collapse")
	}
	if NewUnion() != nil {
		t.Fatalf("expected an empty union to be nil")
	}

	a, b := NewUnion(intT, strT), NewUnion(strT, intT)
	if !Identical(a, b) {
		t.Fatalf("expected resolved unions to be keyed as sets")
	}
	U := NewVar("U", Invariant)
	if Identical(NewUnion(T, intT), NewUnion(intT, T)) {
		t.Fatalf("expected generic unions to be keyed in member order")
	}
	if !Identical(NewUnion(T, intT), NewUnion(U, intT)) {
		t.Fatalf("expected type-variables to collapse within keys")
	}
	if !a.(*Union).Contains(strT) || a.(*Union).Contains(T) {
		t.Fatalf("unexpected membership for %s", TypeString(a))
	}
}

func TestKeys(t *testing.T) {
	intT := NewClass("int", nil)
	T, U := NewVar("T", Invariant), NewVar("U", Covariant)
	box := NewClass("Box", []*Var{T})

	if Key(Apply(box, T)) != Key(Apply(box, U)) {
		t.Fatalf("expected placeholders to share a key")
	}
	if Identical(T, U) || !Identical(T, T) {
		t.Fatalf("expected type-variables to be compared by identity")
	}
	r := NewReified(box, NewBinding(intT))
	if !Identical(r, Apply(box, intT)) || r.Key() != AppKey(box, NewBinding(intT)) {
		t.Fatalf("expected a reified type and an equal application to share a key")
	}
	if !r.IsConcrete() || r.Flavor().String() != "concrete" {
		t.Fatalf("expected %s to be concrete", r)
	}
	if p := NewReified(box, NewBinding(T)); !p.IsPartial() || !p.IsGeneric() {
		t.Fatalf("expected %s to be partial", p)
	}
}

func TestPrinting(t *testing.T) {
	intT := NewClass("int", nil)
	K, V := NewVar("K", Invariant), NewVar("V", Contravariant)
	E := NewVar("E", Covariant)
	pair, list := NewClass("Pair", []*Var{K, V}), NewClass("List", []*Var{E})

	tests := []struct {
		t    Type
		want string
	}{
		{nil, "<nil>"},
		{intT, "int"},
		{K, "~K"},
		{V, "-V"},
		{E, "+E"},
		{Apply(pair, intT, Apply(list, E)), "Pair[int, List[+E]]"},
		{NewReified(pair, NewBinding(NewUnion(intT, V), K)), "Pair[int | -V, ~K]"},
	}
	for _, test := range tests {
		if s := TypeString(test.t); s != test.want {
			t.Fatalf("have %s, want %s", s, test.want)
		}
	}
	if s := NewBinding(intT, K).String(); s != "(int, ~K)" {
		t.Fatalf("binding: %s", s)
	}
}

func TestDeclareVar(t *testing.T) {
	intT, strT := NewClass("int", nil), NewClass("str", nil)
	T := NewVar("T", Invariant)

	invalid := []VarSpec{
		{},
		{Name: "A", Bound: intT, Constraints: []Type{intT, strT}},
		{Name: "B", Constraints: []Type{intT}},
		{Name: "C", Bound: T},
		{Name: "D", Constraints: []Type{intT, T}},
		{Name: "E", Default: T},
	}
	for _, spec := range invalid {
		if _, err := DeclareVar(spec); err == nil {
			t.Fatalf("expected an error for %+v", spec)
		}
	}

	constraints := []Type{intT, strT}
	tv, err := DeclareVar(VarSpec{Name: "N", Variance: Covariant, Constraints: constraints, Default: intT})
	if err != nil {
		t.Fatal(err)
	}
	constraints[0] = T
	if !tv.HasConstraints() || tv.Constraints()[0] != Type(intT) || tv.Default() != Type(intT) {
		t.Fatalf("unexpected declaration for %s", tv)
	}
}

func TestPlaceholder(t *testing.T) {
	intT := NewClass("int", nil)
	tv, err := DeclareVar(VarSpec{Name: "T", Variance: Covariant, Bound: intT})
	if err != nil {
		t.Fatal(err)
	}
	if tv.Placeholder(0) != tv {
		t.Fatalf("expected the first placeholder to be the type-variable itself")
	}
	p := tv.Placeholder(2)
	if p != tv.Placeholder(2) || p == tv.Placeholder(1) {
		t.Fatalf("expected placeholders to be created once per position")
	}
	if s := TypeString(p); s != "+T3" || p.Bound() != Type(intT) {
		t.Fatalf("unexpected placeholder %s", s)
	}
}

func TestPathTo(t *testing.T) {
	T := NewVar("T", Invariant)
	root := NewClass("Root", []*Var{T})
	left := NewClass("Left", nil, Base{Origin: root, Type: root, Args: NewBinding(T)})
	right := NewClass("Right", nil, Base{Origin: root, Type: root, Args: NewBinding(T)})
	leaf := NewClass("Leaf", nil,
		Base{Origin: left, Type: left, Args: NewBinding()},
		Base{Origin: right, Type: right, Args: NewBinding()})

	path, found := leaf.PathTo(root)
	if !found || len(path) != 2 || path[0].Base.Origin != right || path[1].Derived != right {
		t.Fatalf("expected the path through the last base, found: %v", found)
	}
	if path, found = root.PathTo(root); !found || len(path) != 0 {
		t.Fatalf("expected an empty path to the class itself")
	}
	if _, found = root.PathTo(leaf); found {
		t.Fatalf("expected no path from Root to Leaf")
	}
	if !leaf.IsSubclassOf(root) || root.IsSubclassOf(leaf) {
		t.Fatalf("unexpected subclass relation")
	}

	var visited []string
	leaf.WalkAncestors(func(c *Class) bool {
		visited = append(visited, c.Name())
		return true
	})
	if len(visited) != 4 || visited[0] != "Leaf" || visited[1] != "Left" || visited[2] != "Root" || visited[3] != "Right" {
		t.Fatalf("visited: %v", visited)
	}
}

func TestVarMap(t *testing.T) {
	intT, strT := NewClass("int", nil), NewClass("str", nil)
	T, U := NewVar("T", Invariant), NewVar("U", Invariant)

	m := BindingMap([]*Var{T, U}, NewBinding(intT, strT))
	if v, ok := m.Get(U); !ok || v != Type(strT) {
		t.Fatalf("expected U to map to str")
	}
	updated := m.Set(U, intT)
	if v, _ := m.Get(U); v != Type(strT) {
		t.Fatalf("expected the original map to be unchanged")
	}
	if v, _ := updated.Get(U); v != Type(intT) || updated.Len() != 2 {
		t.Fatalf("expected U to map to int after the update")
	}
	if _, ok := NewVarMap().Get(T); ok {
		t.Fatalf("expected an empty map to have no entries")
	}

	b := NewBinding(intT, T, strT)
	if idx := b.Unresolved(); len(idx) != 1 || idx[0] != 1 {
		t.Fatalf("unresolved: %v", idx)
	}
	if set := b.Set(1, strT); !set.IsResolved() || b.IsResolved() {
		t.Fatalf("expected Set to return an updated copy, got %s", set)
	}
}
