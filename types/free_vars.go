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

// FreeVars returns the type-variables occurring in t, in order of first appearance. Each
// type-variable is listed once.
func FreeVars(t Type) []*Var {
	var vars []*Var
	visitTypeVars(t, func(tv *Var) {
		for _, seen := range vars {
			if seen == tv {
				return
			}
		}
		vars = append(vars, tv)
	})
	return vars
}

// BindingFreeVars returns the type-variables occurring in the entries of b, in order of first appearance.
func BindingFreeVars(b Binding) []*Var {
	var vars []*Var
	b.Range(func(_ int, t Type) bool {
		for _, tv := range FreeVars(t) {
			dupe := false
			for _, seen := range vars {
				if seen == tv {
					dupe = true
					break
				}
			}
			if !dupe {
				vars = append(vars, tv)
			}
		}
		return true
	})
	return vars
}

func visitTypeVars(t Type, visit func(*Var)) {
	switch t := t.(type) {
	case *Var:
		visit(t)

	case *Reified:
		if t.flavor == Concrete {
			return
		}
		t.binding.Range(func(_ int, arg Type) bool {
			visitTypeVars(arg, visit)
			return true
		})

	case *App:
		if !t.generic {
			return
		}
		t.Args.Range(func(_ int, arg Type) bool {
			visitTypeVars(arg, visit)
			return true
		})

	case *Union:
		if !t.generic {
			return
		}
		for _, m := range t.members {
			visitTypeVars(m, visit)
		}
	}
}
