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

// Union of types: `int | str`
//
// Members are kept in order of first appearance. Nested unions are flattened and duplicate members
// are removed; resolved members are deduplicated by canonical key and type-variables by identity.
type Union struct {
	members []Type
	generic bool
}

// NewUnion creates a union of types. A union of a single type is that type; an empty union is nil.
func NewUnion(ts ...Type) Type {
	u := &Union{}
	seen := make(map[string]bool, len(ts))
	u.add(seen, ts)
	switch len(u.members) {
	case 0:
		return nil
	case 1:
		return u.members[0]
	}
	return u
}

func (u *Union) add(seen map[string]bool, ts []Type) {
	for _, t := range ts {
		switch t := t.(type) {
		case nil:
			continue
		case *Union:
			u.add(seen, t.members)
			continue
		case *Var:
			dupe := false
			for _, m := range u.members {
				if m == Type(t) {
					dupe = true
					break
				}
			}
			if !dupe {
				u.members, u.generic = append(u.members, t), true
			}
			continue
		}
		k := Key(t)
		if seen[k] {
			continue
		}
		seen[k] = true
		u.members = append(u.members, t)
		if t.IsGeneric() {
			u.generic = true
		}
	}
}

// Members returns a copy of the union's members.
func (u *Union) Members() []Type { return append([]Type(nil), u.members...) }

func (u *Union) Len() int { return len(u.members) }

// Contains reports whether t is literally one of the union's members.
func (u *Union) Contains(t Type) bool {
	for _, m := range u.members {
		if Identical(m, t) {
			return true
		}
	}
	return false
}

func (u *Union) String() string { return TypeString(u) }
