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
	"bytes"
	"errors"
	"log/slog"
	"runtime"
	"strings"
	"testing"

	. "github.com/wdamron/reify"
	. "github.com/wdamron/reify/construct"

	"github.com/wdamron/reify/types"
	"golang.org/x/sync/errgroup"
)

var (
	object = TClass("object")
	intT   = TClass("int", object)
	strT   = TClass("str", object)
	floatT = TClass("float", object)
	noneT  = TClass("None", object)
	animal = TClass("Animal", object)
	dog    = TClass("Dog", animal)
)

func TestIdentityCollapse(t *testing.T) {
	e := NewEngine()
	box := TTemplate("Box", TVar("T"))

	a, err := e.Reify(box, TVar("X"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.Reify(box, TVar("Y"))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("expected Box[X] and Box[Y] to be the same object")
	}
	if !a.IsPartial() {
		t.Fatalf("expected a partial type, got %s", a.Flavor())
	}
	if s := types.TypeString(a); s != "Box[~T]" {
		t.Fatalf("type: %s", s)
	}
	raw, err := e.Reify(box)
	if err != nil {
		t.Fatal(err)
	}
	if raw != a {
		t.Fatalf("expected an unparameterized reification to leave the position unresolved")
	}

	c, err := e.Reify(box, intT)
	if err != nil {
		t.Fatal(err)
	}
	if c == a || !c.IsConcrete() {
		t.Fatalf("expected a distinct concrete type, got %s", c)
	}
	t.Logf("type: %s", c)
}

func TestStagedParameterization(t *testing.T) {
	e := NewEngine()
	pair := TTemplate("Pair", TVar("K"), TVar("V"))

	direct, err := e.Reify(pair, intT, strT)
	if err != nil {
		t.Fatal(err)
	}

	first, err := e.Reify(pair, intT, TVar("U"))
	if err != nil {
		t.Fatal(err)
	}
	staged, err := e.Reify(first, strT)
	if err != nil {
		t.Fatal(err)
	}
	if staged != direct {
		t.Fatalf("expected Pair[int, U][str] to be Pair[int, str], got %s", staged)
	}

	second, err := e.Reify(pair, TVar("U"), strT)
	if err != nil {
		t.Fatal(err)
	}
	if staged, err = e.Reify(second, intT); err != nil {
		t.Fatal(err)
	}
	if staged != direct {
		t.Fatalf("expected Pair[U, str][int] to be Pair[int, str], got %s", staged)
	}

	same, err := e.Reify(first)
	if err != nil {
		t.Fatal(err)
	}
	if same != first {
		t.Fatalf("expected re-parameterization without arguments to return the same type")
	}

	if _, err = e.Reify(first, strT, intT); !errors.Is(err, types.ErrArity) {
		t.Fatalf("expected arity error for too many staged arguments, got %v", err)
	}
	if _, err = e.Reify(direct, intT); !errors.Is(err, types.ErrArity) {
		t.Fatalf("expected arity error for a concrete type, got %v", err)
	}
	_, err = e.Reify(pair, intT, strT, floatT)
	var arity *types.ArityError
	if !errors.As(err, &arity) || arity.Have != 3 || arity.Want != 2 {
		t.Fatalf("expected arity error, got %v", err)
	}
	t.Logf("error: %v", err)
}

func TestNestedParameterization(t *testing.T) {
	e := NewEngine()
	pair := TTemplate("Pair", TVar("K"), TVar("V"))
	list := TTemplate("List", TCovar("E"))

	nested, err := e.Reify(pair, TApp(list, TVar("A")), TVar("B"))
	if err != nil {
		t.Fatal(err)
	}
	if s := types.TypeString(nested); s != "Pair[List[+E], ~V]" {
		t.Fatalf("type: %s", s)
	}
	filled, err := e.Reify(nested, intT, strT)
	if err != nil {
		t.Fatal(err)
	}
	direct, err := e.Reify(pair, TApp(list, intT), strT)
	if err != nil {
		t.Fatal(err)
	}
	if filled != direct {
		t.Fatalf("expected %s to be %s", filled, direct)
	}
	if !filled.IsConcrete() {
		t.Fatalf("expected a concrete type, got %s", filled.Flavor())
	}

	inner, err := e.Reify(list, intT)
	if err != nil {
		t.Fatal(err)
	}
	if filled.Binding().Get(0) != types.Type(inner) {
		t.Fatalf("expected nested applications to be canonical")
	}
	t.Logf("type: %s", filled)
}

func TestUnionArgumentsAreCanonical(t *testing.T) {
	e := NewEngine()
	box := TTemplate("Box", TVar("T"))

	a, err := e.Reify(box, TUnion(intT, strT))
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.Reify(box, TUnion(strT, TUnion(intT, strT)))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("expected %s and %s to be the same object", a, b)
	}
	if s := types.TypeString(TUnion(TUnion(noneT, intT), strT)); s != "None | int | str" {
		t.Fatalf("union: %s", s)
	}
	if u := TUnion(intT, intT); u != types.Type(intT) {
		t.Fatalf("expected a union of one type to be that type, got %s", types.TypeString(u))
	}
}

func TestTypeVariablesInUnionsAreCanonical(t *testing.T) {
	e := NewEngine()
	T := TVar("T")
	box := TTemplate("Box", T)
	X, Y := TVar("X"), TVar("Y")

	a := mustReify(t, e, box, TUnion(X, intT))
	b := mustReify(t, e, box, TUnion(Y, intT))
	if a != b {
		t.Fatalf("expected %s and %s to be the same object", a, b)
	}
	if s := b.String(); s != "Box[~T | int]" {
		t.Fatalf("expected the position's placeholder, got %s", s)
	}
	if free := types.BindingFreeVars(b.Binding()); len(free) != 1 || free[0] != T {
		t.Fatalf("expected only the placeholder to be free, got %v", free)
	}

	d := mustDerive(t, e, "D", nil, b)
	if d.NumParams() != 1 || d.Param(0) != T {
		t.Fatalf("expected D to inherit T, got %v", d.Params())
	}
	if _, err := e.Derive("WithY", []*types.Var{Y}, b); !errors.Is(err, types.ErrKind) {
		t.Fatalf("expected kind error for a caller's type-variable, got %v", err)
	}
	mustDerive(t, e, "WithT", []*types.Var{T}, b)

	// Each type-variable of a union occupies its own placeholder:
	two := mustReify(t, e, box, TUnion(X, Y, intT))
	if s := two.String(); s != "Box[~T | ~T2 | int]" {
		t.Fatalf("placeholders: %s", s)
	}
	if two != mustReify(t, e, box, TUnion(Y, X, intT)) {
		t.Fatalf("expected type-variable identity not to affect the canonical type")
	}
	if mustReify(t, e, two, strT, floatT) != mustReify(t, e, box, TUnion(floatT, intT, strT)) {
		t.Fatalf("expected placeholders to be filled in order")
	}
}

func TestConstructionGating(t *testing.T) {
	e := NewEngine()
	K, V := TVar("K"), TVar("V")
	pair := TTemplate("Pair", K, V)

	partial, err := e.Reify(pair, intT)
	if err != nil {
		t.Fatal(err)
	}
	_, err = e.New(partial)
	if !errors.Is(err, types.ErrAbstractParameterization) {
		t.Fatalf("expected abstract parameterization error, got %v", err)
	}
	var abstract *types.AbstractError
	if !errors.As(err, &abstract) || abstract.Type != partial {
		t.Fatalf("expected the partial type in the error, got %v", err)
	}
	if len(abstract.Positions) != 1 || abstract.Positions[0] != 1 {
		t.Fatalf("expected position 1 to be unresolved, got %v", abstract.Positions)
	}
	t.Logf("error: %v", err)

	concrete, err := e.Reify(partial, strT)
	if err != nil {
		t.Fatal(err)
	}
	o, err := e.New(concrete)
	if err != nil {
		t.Fatal(err)
	}
	if o.Type() != types.Type(concrete) || o.Class() != pair {
		t.Fatalf("unexpected object type %s", types.TypeString(o.Type()))
	}
	if !o.Binding().Equal(concrete.Binding()) {
		t.Fatalf("binding: %s", o.Binding())
	}
	if v, ok := o.Mapping().Get(V); !ok || v != types.Type(strT) {
		t.Fatalf("expected V to be mapped to str, got %v", v)
	}

	app, err := e.New(TApp(pair, intT, strT))
	if err != nil {
		t.Fatal(err)
	}
	if app.Type() != types.Type(concrete) {
		t.Fatalf("expected an application to be reified before construction")
	}

	plain, err := e.New(dog)
	if err != nil {
		t.Fatal(err)
	}
	if plain.Binding().Len() != 0 {
		t.Fatalf("expected an empty binding for a non-generic class")
	}

	if _, err = e.New(K); !errors.Is(err, types.ErrKind) {
		t.Fatalf("expected kind error, got %v", err)
	}
}

func TestDefaults(t *testing.T) {
	T, err := types.DeclareVar(types.VarSpec{Name: "T", Default: intT})
	if err != nil {
		t.Fatal(err)
	}
	opt := TTemplate("Optional", T)

	e := NewEngine()
	r, err := e.Reify(opt)
	if err != nil {
		t.Fatal(err)
	}
	if !r.IsConcrete() || r.Binding().Get(0) != types.Type(intT) {
		t.Fatalf("expected the declared default to be used, got %s", r)
	}
	o, err := e.New(opt)
	if err != nil {
		t.Fatal(err)
	}
	if o.Binding().Get(0) != types.Type(intT) {
		t.Fatalf("binding: %s", o.Binding())
	}

	explicit, err := e.Reify(opt, TVar("X"))
	if err != nil {
		t.Fatal(err)
	}
	if !explicit.IsPartial() {
		t.Fatalf("expected an explicit type-variable argument to stay unresolved")
	}
	if same, _ := e.Reify(explicit); same != explicit {
		t.Fatalf("expected defaults to be ignored during re-parameterization")
	}

	none := NewEngine(WithDefaults(NoDefaults))
	if r, err = none.Reify(opt); err != nil {
		t.Fatal(err)
	}
	if !r.IsPartial() {
		t.Fatalf("expected no defaults to be used, got %s", r)
	}

	custom := NewEngine(WithDefaults(func(*types.Var) (types.Type, bool) { return strT, true }))
	if r, err = custom.Reify(opt); err != nil {
		t.Fatal(err)
	}
	if r.Binding().Get(0) != types.Type(strT) {
		t.Fatalf("expected the custom default to be used, got %s", r)
	}
}

func TestConcurrentReify(t *testing.T) {
	e := NewEngine()
	pair := TTemplate("Pair", TVar("K"), TVar("V"))

	const n = 64
	results := make([]*types.Reified, n)
	start := make(chan struct{})
	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			<-start
			r, err := e.Reify(pair, intT, strT)
			results[i] = r
			return err
		})
	}
	close(start)
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	for i, r := range results {
		if r != results[0] {
			t.Fatalf("result %d differs from result 0", i)
		}
	}
	if s := e.CacheStats(); s.Misses != 1 {
		t.Fatalf("expected a single construction, stats: %+v", s)
	}
}

func TestReifyAfterCollection(t *testing.T) {
	e := NewEngine()
	box := TTemplate("Box", TVar("T"))

	r, err := e.Reify(box, intT)
	if err != nil {
		t.Fatal(err)
	}
	key := r.Key()
	r = nil

	for i := 0; i < 10 && e.CacheStats().Entries > 0; i++ {
		runtime.GC()
		e.Purge()
	}
	if s := e.CacheStats(); s.Entries != 0 || s.Evictions != 1 {
		t.Fatalf("expected the unreachable type to be purged, stats: %+v", s)
	}

	r, err = e.Reify(box, intT)
	if err != nil {
		t.Fatal(err)
	}
	if r.Key() != key || !r.IsConcrete() {
		t.Fatalf("expected an equal replacement, got %s", r)
	}
	if _, err = e.New(r); err != nil {
		t.Fatal(err)
	}
	if ok, err := e.IsSubtype(r, TApp(box, intT)); !ok || err != nil {
		t.Fatalf("expected the replacement to match Box[int]: %v", err)
	}
	if s := e.CacheStats(); s.Misses != 2 {
		t.Fatalf("stats: %+v", s)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := NewEngine(WithLogger(log))
	box := TTemplate("Box", TVar("T"))
	if _, err := e.Reify(box, intT); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, "reified type") || !strings.Contains(out, "Box[int]") {
		t.Fatalf("log: %s", out)
	}
}

func TestDefaultEngine(t *testing.T) {
	box := TTemplate("Box", TVar("T"))
	r, err := Reify(box, strT)
	if err != nil {
		t.Fatal(err)
	}
	o, err := New(r)
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := IsInstance(o, TApp(box, strT)); !ok || err != nil {
		t.Fatalf("expected an instance of Box[str]: %v", err)
	}
	if ok, err := IsSubtype(r, box); !ok || err != nil {
		t.Fatalf("expected Box[str] to be a subtype of Box: %v", err)
	}
	child, err := Derive("Child", nil, TApp(box, TVar("U")))
	if err != nil {
		t.Fatal(err)
	}
	b, found, err := AncestorBinding(child, box)
	if err != nil || !found || b.Len() != 1 || b.Get(0) != types.Type(child.Param(0)) {
		t.Fatalf("binding: %s, found: %v, err: %v", b, found, err)
	}
}
