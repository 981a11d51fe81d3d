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
	"errors"
	"strconv"
)

// Sentinel errors for use with errors.Is.
var (
	ErrArity                    = errors.New("wrong number of type arguments")
	ErrTypeConstraint           = errors.New("type argument violates type-variable constraint")
	ErrAbstractParameterization = errors.New("cannot instantiate partially parameterized type")
	ErrKind                     = errors.New("malformed type operand")
)

// ArityError is returned when the number of type arguments does not fit a signature.
type ArityError struct {
	// Type is the printed form of the type being parameterized.
	Type string
	Have int
	Want int
}

func (e *ArityError) Error() string {
	qual := "not enough"
	if e.Have > e.Want {
		qual = "too many"
	}
	return qual + " type arguments for " + e.Type + ": have " + strconv.Itoa(e.Have) + ", want " + strconv.Itoa(e.Want)
}

func (e *ArityError) Is(target error) bool { return target == ErrArity }

// ConstraintError is returned when a resolved argument violates the bound or constraints of a type-variable.
type ConstraintError struct {
	Var *Var
	Arg Type
}

func (e *ConstraintError) Error() string {
	if e.Var.bound != nil {
		return "type argument " + TypeString(e.Arg) + " is not a subtype of " + TypeString(e.Var.bound) +
			", the bound of type-variable " + e.Var.name
	}
	return "type argument " + TypeString(e.Arg) + " is not one of the constraints of type-variable " + e.Var.name
}

func (e *ConstraintError) Is(target error) bool { return target == ErrTypeConstraint }

// AbstractError is returned when constructing an instance of a partial type.
type AbstractError struct {
	Type *Reified
	// Unresolved positions of the type's binding.
	Positions []int
}

func (e *AbstractError) Error() string {
	msg := "cannot instantiate " + TypeString(e.Type) + ": type has unresolved type-variables"
	for i, pos := range e.Positions {
		if i == 0 {
			msg += " at position "
		} else {
			msg += ", "
		}
		msg += strconv.Itoa(pos)
	}
	return msg
}

func (e *AbstractError) Is(target error) bool { return target == ErrAbstractParameterization }

// KindError is returned for malformed operands, such as nil types or type-variables where a type is required.
type KindError struct {
	Op     string
	Type   Type
	Reason string
}

func (e *KindError) Error() string {
	if e.Type == nil {
		return e.Op + ": " + e.Reason
	}
	return e.Op + ": " + TypeString(e.Type) + " " + e.Reason
}

func (e *KindError) Is(target error) bool { return target == ErrKind }
