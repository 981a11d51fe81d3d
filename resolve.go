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
	"github.com/wdamron/reify/internal/typeutil"
	"github.com/wdamron/reify/types"
)

// Resolve produces the symbolic binding of a template's signature for a target and type-arguments,
// without reifying it.
//
// Resolved arguments are validated against the bound or constraints of their position. Type-variable
// arguments leave their position unresolved and keep their identity within the returned binding.
// Nested applications are normalized, and ground applications are replaced by their canonical types.
func (e *Engine) Resolve(t types.Type, args ...types.Type) (*types.Class, types.Binding, error) {
	switch t := t.(type) {
	case *types.Class:
		if !t.IsTemplate() {
			return nil, types.EmptyBinding, &types.KindError{Op: "reify", Type: t, Reason: "is not generic"}
		}
		b, err := e.resolveTemplate(t, args)
		return t, b, err

	case *types.Reified:
		if len(args) == 0 {
			return t.Template(), t.Binding(), nil
		}
		b, err := e.reparameterize(t.Template(), t.Binding(), args)
		return t.Template(), b, err

	case *types.App:
		b, err := e.resolveTemplate(t.Func, t.Args.Types())
		if err != nil || len(args) == 0 {
			return t.Func, b, err
		}
		b, err = e.reparameterize(t.Func, b, args)
		return t.Func, b, err

	case *types.Var:
		return nil, types.EmptyBinding, &types.KindError{Op: "reify", Type: t, Reason: "is a type-variable"}
	case *types.Union:
		return nil, types.EmptyBinding, &types.KindError{Op: "reify", Type: t, Reason: "is a union"}
	}
	return nil, types.EmptyBinding, &types.KindError{Op: "reify", Reason: "nil type"}
}

// Bind args to the signature of c positionally. Positions beyond args are resolved through the
// defaulting policy, or left unresolved.
func (e *Engine) resolveTemplate(c *types.Class, args []types.Type) (types.Binding, error) {
	if !c.IsTemplate() {
		return types.EmptyBinding, &types.KindError{Op: "reify", Type: c, Reason: "is not generic"}
	}
	if len(args) > c.NumParams() {
		return types.EmptyBinding, &types.ArityError{Type: c.Name(), Have: len(args), Want: c.NumParams()}
	}
	b := types.NewBindingBuilder()
	for i := 0; i < c.NumParams(); i++ {
		p := c.Param(i)
		if i >= len(args) {
			if d, ok := e.defaults(p); ok && d != nil {
				t, err := e.resolveArg(p, d)
				if err != nil {
					return types.EmptyBinding, err
				}
				b.Append(t)
			} else {
				b.Append(p)
			}
			continue
		}
		t, err := e.resolveArg(p, args[i])
		if err != nil {
			return types.EmptyBinding, err
		}
		b.Append(t)
	}
	return b.Build(), nil
}

// Normalize an argument for position p. If p is nil, the argument is not validated.
func (e *Engine) resolveArg(p *types.Var, arg types.Type) (types.Type, error) {
	var t types.Type
	switch arg := arg.(type) {
	case nil:
		return nil, &types.KindError{Op: "reify", Reason: "nil type argument"}
	case *types.Var:
		return arg, nil
	case *types.App:
		b, err := e.resolveTemplate(arg.Func, arg.Args.Types())
		if err != nil {
			return nil, err
		}
		if b.IsGeneric() {
			return types.ApplyBinding(arg.Func, b), nil
		}
		if t, err = e.reify(arg.Func, b); err != nil {
			return nil, err
		}
	case *types.Union:
		members := arg.Members()
		for i, m := range members {
			r, err := e.resolveArg(nil, m)
			if err != nil {
				return nil, err
			}
			members[i] = r
		}
		t = types.NewUnion(members...)
	default:
		t = arg
	}
	if p == nil || t.IsGeneric() {
		return t, nil
	}
	if err := e.validate(p, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Check a resolved argument against the bound or constraints of a type-variable. Constraints are
// matched literally; a union satisfies the constraints only if each of its members is one of them.
func (e *Engine) validate(p *types.Var, t types.Type) error {
	if bound := p.Bound(); bound != nil {
		ok, err := e.subtype(t, bound)
		if err != nil {
			return err
		}
		if !ok {
			return &types.ConstraintError{Var: p, Arg: t}
		}
		return nil
	}
	if !p.HasConstraints() {
		return nil
	}
	constraints := types.NewUnion(p.Constraints()...)
	members := []types.Type{t}
	if u, ok := t.(*types.Union); ok {
		members = u.Members()
	}
	for _, m := range members {
		if !literal(m, constraints) {
			return &types.ConstraintError{Var: p, Arg: t}
		}
	}
	return nil
}

// Fill the open slots of a binding from left to right. Resolved positions are kept; defaults are not
// consulted, so re-parameterizing without arguments is the identity.
func (e *Engine) reparameterize(c *types.Class, b types.Binding, args []types.Type) (types.Binding, error) {
	if slots := typeutil.BindingSlots(b); len(args) > slots {
		return types.EmptyBinding, &types.ArityError{Type: types.TypeString(types.ApplyBinding(c, b)), Have: len(args), Want: slots}
	}
	for _, i := range b.Unresolved() {
		if len(args) == 0 {
			break
		}
		t, err := e.fill(c.Param(i), b.Get(i), &args)
		if err != nil {
			return types.EmptyBinding, err
		}
		b = b.Set(i, t)
	}
	return b, nil
}

func (e *Engine) fill(p *types.Var, t types.Type, args *[]types.Type) (types.Type, error) {
	if len(*args) == 0 || !t.IsGeneric() {
		return t, nil
	}
	switch t := t.(type) {
	case *types.Var:
		arg := (*args)[0]
		*args = (*args)[1:]
		return e.resolveArg(p, arg)

	case *types.Reified:
		nested, err := e.fillBinding(t.Template(), t.Binding(), args)
		if err != nil {
			return nil, err
		}
		return e.resolveArg(p, types.ApplyBinding(t.Template(), nested))

	case *types.App:
		nested, err := e.fillBinding(t.Func, t.Args, args)
		if err != nil {
			return nil, err
		}
		return e.resolveArg(p, types.ApplyBinding(t.Func, nested))

	case *types.Union:
		members := t.Members()
		for i, m := range members {
			filled, err := e.fill(nil, m, args)
			if err != nil {
				return nil, err
			}
			members[i] = filled
		}
		return e.resolveArg(p, types.NewUnion(members...))
	}
	return t, nil
}

func (e *Engine) fillBinding(c *types.Class, b types.Binding, args *[]types.Type) (types.Binding, error) {
	builder := types.NewBindingBuilder()
	for i := 0; i < b.Len(); i++ {
		t, err := e.fill(c.Param(i), b.Get(i), args)
		if err != nil {
			return types.EmptyBinding, err
		}
		builder.Append(t)
	}
	return builder.Build(), nil
}
