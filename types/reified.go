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

// Flavor tags a reified type as concrete (instantiable) or partial (check-only).
type Flavor uint8

const (
	// Every position of the binding is resolved.
	Concrete Flavor = iota
	// At least one position of the binding is unresolved.
	Partial
)

func (f Flavor) String() string {
	if f == Partial {
		return "partial"
	}
	return "concrete"
}

// Reified is the canonical runtime type for a template and a canonical binding.
//
// Reified types should be obtained through the engine, which guarantees that two canonically
// equal parameterizations of a template are the same object while either is reachable.
type Reified struct {
	template *Class
	binding  Binding
	flavor   Flavor
	key      string
}

// Create a reified type for a canonical binding. The binding must have one entry per position of
// the template's signature.
func NewReified(template *Class, binding Binding) *Reified {
	r := &Reified{template: template, binding: binding, flavor: Concrete}
	if binding.IsGeneric() {
		r.flavor = Partial
	}
	r.key = AppKey(template, binding)
	return r
}

// Template returns the generic template which the type was reified from.
func (r *Reified) Template() *Class { return r.template }

// Binding returns the canonical binding of the template's signature.
func (r *Reified) Binding() Binding { return r.binding }

func (r *Reified) Flavor() Flavor   { return r.flavor }
func (r *Reified) IsPartial() bool  { return r.flavor == Partial }
func (r *Reified) IsConcrete() bool { return r.flavor == Concrete }

// Key returns the canonical key of the type.
func (r *Reified) Key() string { return r.key }

// Mapping returns the read-only mapping from the template's type-variables to the bound types.
func (r *Reified) Mapping() VarMap { return BindingMap(r.template.params, r.binding) }

func (r *Reified) String() string { return TypeString(r) }
