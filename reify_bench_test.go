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

package reify_test

import (
	"testing"

	. "github.com/wdamron/reify"
	. "github.com/wdamron/reify/construct"
)

func BenchmarkReifyCached(b *testing.B) {
	e := NewEngine()
	pair := TTemplate("Pair", TVar("K"), TVar("V"))
	list := TTemplate("List", TCovar("E"))
	keep, err := e.Reify(pair, intT, TApp(list, strT))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		r, err := e.Reify(pair, intT, TApp(list, strT))
		if err != nil || r != keep {
			b.Fatal(err)
		}
	}
}

func BenchmarkStagedReify(b *testing.B) {
	e := NewEngine()
	pair := TTemplate("Pair", TVar("K"), TVar("V"))
	partial, err := e.Reify(pair, intT)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if _, err := e.Reify(partial, strT); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIsInstance(b *testing.B) {
	e := NewEngine()
	T, S, U := TVar("T"), TCovar("S"), TCovar("U")
	parent := TTemplate("Parent", T, S)
	child, err := e.Derive("Child", nil, TApp(parent, intT, U))
	if err != nil {
		b.Fatal(err)
	}
	grandChild, err := e.Derive("GrandChild", nil, TApp(child, dog))
	if err != nil {
		b.Fatal(err)
	}
	o, err := e.New(grandChild)
	if err != nil {
		b.Fatal(err)
	}
	target, err := e.Reify(parent, intT, animal)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ok, err := e.IsInstance(o, target)
		if !ok || err != nil {
			b.Fatal(err)
		}
	}
}
