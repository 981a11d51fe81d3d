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

// Object is a runtime value constructed from a class or a concrete reified type.
type Object struct {
	typ     Type
	class   *Class
	binding Binding

	// Value is an arbitrary payload owned by the caller.
	Value interface{}
}

// Create an object of a class or concrete reified type with its binding attached. Objects should be
// constructed through the engine, which rejects partial types.
func NewObject(t Type, binding Binding) *Object {
	return &Object{typ: t, class: Origin(t), binding: binding}
}

// Type returns the type which the object was constructed from.
func (o *Object) Type() Type { return o.typ }

// Class returns the declared class of the object, ignoring parameterization.
func (o *Object) Class() *Class { return o.class }

// Binding returns the binding of the object's class signature attached at construction.
func (o *Object) Binding() Binding { return o.binding }

// Mapping returns the read-only mapping from the object's class type-variables to the bound types.
func (o *Object) Mapping() VarMap { return BindingMap(o.class.params, o.binding) }
