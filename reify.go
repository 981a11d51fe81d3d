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

// reify provides runtime reification of parametric types.
//
// Templates are classes declared over an ordered signature of type-variables. Applying a template to
// type-arguments produces a canonical type object: two parameterizations of a template which are
// structurally equal (after collapsing unresolved positions) are the same object for as long as either
// is reachable. A reified type is concrete when every position of its binding is resolved, or partial
// otherwise; objects can only be constructed from concrete types, while partial types remain usable
// for re-parameterization, derivation, and instance and subtype checks.
//
//
// Supported Features:
//
//   * Canonical, weakly-cached reified types with per-key atomic construction
//   * Staged (re-)parameterization of partial types, in any order
//   * Invariant, covariant and contravariant type-variables with bounds or constraints
//   * Variance-aware instance and subtype checks against concrete and partial types
//   * Derivation from partial types, with inherited type-variables
//   * Resolution of ancestor type-variables across multiple inheritance
//
//
// The package-level functions dispatch to the Default engine.
package reify

import (
	"github.com/wdamron/reify/types"
)

// Default is the engine used by the package-level functions.
var Default = NewEngine()

// Reify returns the canonical reified type for a template (or partial type) and type-arguments,
// using the Default engine.
func Reify(t types.Type, args ...types.Type) (*types.Reified, error) { return Default.Reify(t, args...) }

// New constructs an object of a class or concrete type, using the Default engine.
func New(t types.Type) (*types.Object, error) { return Default.New(t) }

// Derive declares a class with the given signature and bases, using the Default engine.
func Derive(name string, params []*types.Var, bases ...types.Type) (*types.Class, error) {
	return Default.Derive(name, params, bases...)
}

// IsInstance reports whether an object is an instance of t, using the Default engine.
func IsInstance(o *types.Object, t types.Type) (bool, error) { return Default.IsInstance(o, t) }

// IsSubtype reports whether sub is a subtype of super, using the Default engine.
func IsSubtype(sub, super types.Type) (bool, error) { return Default.IsSubtype(sub, super) }

// AncestorBinding resolves the binding which sub assigns to the signature of an ancestor template,
// using the Default engine.
func AncestorBinding(sub types.Type, ancestor *types.Class) (types.Binding, bool, error) {
	return Default.AncestorBinding(sub, ancestor)
}
