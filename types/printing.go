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
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	sb strings.Builder
}

// TypeString returns a string representation of a Type.
//
// Type-variables are prefixed by their variance: `~T` (invariant), `+T` (covariant), `-T` (contravariant).
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, t)
	s := p.sb.String()
	p.Release()
	return s
}

func typeString(p *typePrinter, t Type) {
	switch t := t.(type) {
	case nil:
		p.sb.WriteString("<nil>")

	case *Class:
		p.sb.WriteString(t.name)

	case *Var:
		switch t.variance {
		case Covariant:
			p.sb.WriteByte('+')
		case Contravariant:
			p.sb.WriteByte('-')
		default:
			p.sb.WriteByte('~')
		}
		p.sb.WriteString(t.name)

	case *Reified:
		appString(p, t.template, t.binding)

	case *App:
		appString(p, t.Func, t.Args)

	case *Union:
		for i, m := range t.members {
			if i > 0 {
				p.sb.WriteString(" | ")
			}
			typeString(p, m)
		}
	}
}

func appString(p *typePrinter, c *Class, args Binding) {
	p.sb.WriteString(c.name)
	p.sb.WriteByte('[')
	args.Range(func(i int, t Type) bool {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		typeString(p, t)
		return true
	})
	p.sb.WriteByte(']')
}
