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
	"sort"
	"strconv"
	"strings"
)

// Placeholder for an unresolved position within a canonical key.
const unresolvedKey = "?"

// Key returns the canonical key of a type.
//
// Classes are keyed by identity. Type-variables collapse to a position-only placeholder, so
// `Box[T]` and `Box[U]` share a key. Resolved unions are keyed as sets; unions containing
// type-variables are keyed in member order.
func Key(t Type) string {
	var sb strings.Builder
	writeKey(&sb, t)
	return sb.String()
}

// AppKey returns the canonical key of a template applied to a binding. A reified type and an
// application with canonically equal bindings share a key.
func AppKey(c *Class, args Binding) string {
	var sb strings.Builder
	writeAppKey(&sb, c, args)
	return sb.String()
}

func writeKey(sb *strings.Builder, t Type) {
	switch t := t.(type) {
	case *Class:
		sb.WriteByte('#')
		sb.WriteString(strconv.Itoa(t.id))
	case *Var:
		sb.WriteString(unresolvedKey)
	case *Reified:
		sb.WriteString(t.key)
	case *App:
		writeAppKey(sb, t.Func, t.Args)
	case *Union:
		keys := make([]string, len(t.members))
		for i, m := range t.members {
			keys[i] = Key(m)
		}
		if !t.generic {
			sort.Strings(keys)
		}
		sb.WriteByte('(')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(k)
		}
		sb.WriteByte(')')
	}
}

func writeAppKey(sb *strings.Builder, c *Class, args Binding) {
	sb.WriteByte('#')
	sb.WriteString(strconv.Itoa(c.id))
	sb.WriteByte('[')
	args.Range(func(i int, t Type) bool {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeKey(sb, t)
		return true
	})
	sb.WriteByte(']')
}
