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

package construct

import (
	"github.com/wdamron/reify/types"
)

// Type-variables

// Invariant type-variable: `~T`
func TVar(name string) *types.Var {
	return types.NewVar(name, types.Invariant)
}

// Covariant type-variable: `+T`
func TCovar(name string) *types.Var {
	return types.NewVar(name, types.Covariant)
}

// Contravariant type-variable: `-T`
func TContravar(name string) *types.Var {
	return types.NewVar(name, types.Contravariant)
}

// Type-variable with an upper bound: `T <: bound`
//
// TBounded panics if the bound contains type-variables.
func TBounded(name string, variance types.Variance, bound types.Type) *types.Var {
	tv, err := types.DeclareVar(types.VarSpec{Name: name, Variance: variance, Bound: bound})
	if err != nil {
		panic(err)
	}
	return tv
}

// Type-variable constrained to a set of types: `T in (a, b)`
//
// TConstrained panics unless two or more resolved constraints are given.
func TConstrained(name string, variance types.Variance, constraints ...types.Type) *types.Var {
	tv, err := types.DeclareVar(types.VarSpec{Name: name, Variance: variance, Constraints: constraints})
	if err != nil {
		panic(err)
	}
	return tv
}

// Types

// Non-generic class: `int`, `Animal(Object)`, etc
//
// Bases must be non-generic classes; generic bases are captured through the engine.
func TClass(name string, bases ...*types.Class) *types.Class {
	declared := make([]types.Base, len(bases))
	for i, b := range bases {
		declared[i] = types.Base{Origin: b, Type: b, Args: types.EmptyBinding}
	}
	return types.NewClass(name, nil, declared...)
}

// Generic template without bases: `List[T]`
func TTemplate(name string, params ...*types.Var) *types.Class {
	return types.NewClass(name, params)
}

// Type application: `List[int]`
func TApp(template *types.Class, args ...types.Type) *types.App {
	return types.Apply(template, args...)
}

// Union type: `int | str`
func TUnion(members ...types.Type) types.Type {
	return types.NewUnion(members...)
}
