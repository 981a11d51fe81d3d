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

package reify

import (
	"github.com/wdamron/reify/types"
)

// Derive declares a class with the given signature and bases.
//
// Bases may be classes, reified types or symbolic applications. The binding of each base's signature is
// captured when the class is declared; applications keep the identity of their type-variables, so the
// derived class can refer to them in its own signature. If params is nil, the signature is the
// type-variables of the bases in order of first appearance. An explicit signature must contain every
// type-variable of the bases.
func (e *Engine) Derive(name string, params []*types.Var, bases ...types.Type) (*types.Class, error) {
	declared := make([]types.Base, 0, len(bases))
	var free []*types.Var
	for _, bt := range bases {
		b, err := e.base(bt)
		if err != nil {
			return nil, err
		}
		for _, prev := range declared {
			if prev.Origin == b.Origin {
				return nil, &types.KindError{Op: "derive " + name, Type: b.Origin, Reason: "is a duplicate base"}
			}
		}
		declared = append(declared, b)
		free = appendVars(free, types.BindingFreeVars(b.Args)...)
	}

	if params == nil {
		params = free
	} else {
		for i, p := range params {
			if p == nil {
				return nil, &types.KindError{Op: "derive " + name, Reason: "nil type-variable in signature"}
			}
			for _, q := range params[:i] {
				if p == q {
					return nil, &types.KindError{Op: "derive " + name, Type: p, Reason: "appears more than once in the signature"}
				}
			}
		}
		for _, tv := range free {
			if !containsVar(params, tv) {
				return nil, &types.KindError{Op: "derive " + name, Type: tv, Reason: "is used by a base but missing from the signature"}
			}
		}
	}

	c := types.NewClass(name, params, declared...)
	e.log.Debug("derived class", "class", name, "params", len(params), "bases", len(declared))
	return c, nil
}

// Capture the canonical type and the symbolic binding of a base.
func (e *Engine) base(t types.Type) (types.Base, error) {
	switch t := t.(type) {
	case *types.Class:
		return types.Base{Origin: t, Type: t, Args: types.IdentityBinding(t.Params())}, nil
	case *types.Reified:
		return types.Base{Origin: t.Template(), Type: t, Args: t.Binding()}, nil
	case *types.App:
		origin, b, err := e.Resolve(t)
		if err != nil {
			return types.Base{}, err
		}
		r, err := e.reify(origin, b)
		if err != nil {
			return types.Base{}, err
		}
		return types.Base{Origin: origin, Type: r, Args: b}, nil
	case nil:
		return types.Base{}, &types.KindError{Op: "derive", Reason: "nil base"}
	}
	return types.Base{}, &types.KindError{Op: "derive", Type: t, Reason: "cannot be used as a base"}
}

func containsVar(vars []*types.Var, tv *types.Var) bool {
	for _, v := range vars {
		if v == tv {
			return true
		}
	}
	return false
}

func appendVars(vars []*types.Var, add ...*types.Var) []*types.Var {
	for _, tv := range add {
		if !containsVar(vars, tv) {
			vars = append(vars, tv)
		}
	}
	return vars
}
