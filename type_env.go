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
	"errors"

	"github.com/wdamron/reify/types"
)

// TypeEnv is a type-environment containing mappings from identifiers to declared classes, type-variables
// and aliased types. Declarations are made through the environment's engine.
//
// A type-environment cannot be used concurrently for declarations; to share a type-environment
// across threads, create a new type-environment for each thread which inherits from the
// shared environment.
type TypeEnv struct {
	// Predeclared types in the parent of the current type-environment
	Parent *TypeEnv
	// Mappings from identifiers to declared types in the current type-environment
	Types map[string]types.Type
	// Type-variables declared in the current type-environment
	Vars map[string]*types.Var

	engine *Engine
}

// Create a type-environment. The new environment will inherit bindings from the parent, if the parent is not nil.
//
// If engine is nil, the parent's engine is used, or the Default engine if there is no parent.
func NewTypeEnv(parent *TypeEnv, engine *Engine) *TypeEnv {
	if engine == nil {
		engine = Default
		if parent != nil {
			engine = parent.engine
		}
	}
	return &TypeEnv{
		Parent: parent,
		Types:  make(map[string]types.Type),
		Vars:   make(map[string]*types.Var),
		engine: engine,
	}
}

// Engine returns the engine which declarations in the environment are made through.
func (e *TypeEnv) Engine() *Engine { return e.engine }

func (e *TypeEnv) declared(name string) error {
	if name == "" {
		return errors.New("Missing name for declaration")
	}
	if e.Lookup(name) != nil {
		return errors.New("Type " + name + " is already declared")
	}
	return nil
}

// Declare a type-variable within the type environment.
func (e *TypeEnv) DeclareVar(spec types.VarSpec) (*types.Var, error) {
	if err := e.declared(spec.Name); err != nil {
		return nil, err
	}
	tv, err := types.DeclareVar(spec)
	if err != nil {
		return nil, err
	}
	e.Vars[spec.Name] = tv
	return tv, nil
}

// Declare a generic template with the given signature and bases within the type environment.
func (e *TypeEnv) DeclareTemplate(name string, params []*types.Var, bases ...types.Type) (*types.Class, error) {
	if len(params) == 0 {
		return nil, errors.New("Template " + name + " must declare at least one type-variable")
	}
	return e.Derive(name, params, bases...)
}

// Declare a non-generic class with the given bases within the type environment. Each base must be resolved.
func (e *TypeEnv) DeclareClass(name string, bases ...types.Type) (*types.Class, error) {
	for _, b := range bases {
		if b != nil && b.IsGeneric() {
			return nil, errors.New("Class " + name + " cannot derive from generic base " + types.TypeString(b))
		}
		if c, ok := b.(*types.Class); ok && c.IsTemplate() {
			return nil, errors.New("Class " + name + " cannot derive from generic base " + c.Name())
		}
	}
	return e.Derive(name, []*types.Var{}, bases...)
}

// Declare a class within the type environment. If params is nil, the class inherits the type-variables
// of its bases in order of first appearance.
func (e *TypeEnv) Derive(name string, params []*types.Var, bases ...types.Type) (*types.Class, error) {
	if err := e.declared(name); err != nil {
		return nil, err
	}
	c, err := e.engine.Derive(name, params, bases...)
	if err != nil {
		return nil, err
	}
	e.Types[name] = c
	return c, nil
}

// Assign an aliased type to an identifier within the type environment, replacing any existing assignment
// within the current environment.
func (e *TypeEnv) Assign(name string, t types.Type) { e.Types[name] = t }

// Remove the assigned type or type-variable for an identifier within the type environment. Parent environment(s)
// will not be affected, and the identifier will still be visible if defined in a parent environment.
func (e *TypeEnv) Remove(name string) {
	delete(e.Types, name)
	delete(e.Vars, name)
}

// Lookup the type or type-variable for an identifier in the environment or its parent environment(s).
func (e *TypeEnv) Lookup(name string) types.Type {
	if t, ok := e.Types[name]; ok {
		return t
	}
	if tv, ok := e.Vars[name]; ok {
		return tv
	}
	if e.Parent == nil {
		return nil
	}
	return e.Parent.Lookup(name)
}

// Lookup a declared class in the environment or its parent environment(s).
func (e *TypeEnv) LookupClass(name string) *types.Class {
	c, _ := e.Lookup(name).(*types.Class)
	return c
}

// Lookup a declared type-variable in the environment or its parent environment(s).
func (e *TypeEnv) LookupVar(name string) *types.Var {
	tv, _ := e.Lookup(name).(*types.Var)
	return tv
}
