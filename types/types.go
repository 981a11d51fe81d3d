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
	"sync/atomic"
)

// Type is the base interface for all types.
type Type interface {
	TypeName() string
	// IsGeneric reports whether the type contains unresolved type-variables.
	IsGeneric() bool
}

func (t *Var) TypeName() string     { return "Var" }
func (t *Class) TypeName() string   { return "Class" }
func (t *Reified) TypeName() string { return "Reified" }
func (t *App) TypeName() string     { return "App" }
func (t *Union) TypeName() string   { return "Union" }

func (t *Var) IsGeneric() bool     { return true }
func (t *Class) IsGeneric() bool   { return false }
func (t *Reified) IsGeneric() bool { return t.flavor == Partial }
func (t *App) IsGeneric() bool     { return t.generic }
func (t *Union) IsGeneric() bool   { return t.generic }

var lastId int64

// Type-variables and classes share one id space; ids are never reused.
func freshId() int { return int(atomic.AddInt64(&lastId, 1)) }

// Type application: `list[T]`
//
// An App is the symbolic (uncached) form of a parameterized type. Unlike a Reified type, an App
// preserves the identity of the type-variables it was applied to, so it is used for derivation
// snapshots and nested generic arguments.
type App struct {
	Func    *Class
	Args    Binding
	generic bool
}

// Apply creates a symbolic application of a template to type-arguments. Arguments are not validated;
// the engine normalizes applications when they are resolved.
func Apply(template *Class, args ...Type) *App {
	b := NewBinding(args...)
	return &App{Func: template, Args: b, generic: b.IsGeneric()}
}

// ApplyBinding creates a symbolic application from an existing binding.
func ApplyBinding(template *Class, args Binding) *App {
	return &App{Func: template, Args: args, generic: args.IsGeneric()}
}

// Origin returns the class which a type is declared from: the class itself, the template of a
// reified type or application, or nil for type-variables and unions.
func Origin(t Type) *Class {
	switch t := t.(type) {
	case *Class:
		return t
	case *Reified:
		return t.template
	case *App:
		return t.Func
	}
	return nil
}

// Identical reports whether two types are canonically equal. Type-variables are compared by identity;
// all other types are compared by canonical key, so unresolved positions nested within applications
// collapse to anonymous placeholders.
func Identical(a, b Type) bool {
	if a == b {
		return true
	}
	if _, ok := a.(*Var); ok {
		return false
	}
	if _, ok := b.(*Var); ok {
		return false
	}
	if a == nil || b == nil {
		return false
	}
	return Key(a) == Key(b)
}
