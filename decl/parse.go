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

package decl

import (
	"fmt"
	"strings"
	"text/scanner"

	"github.com/wdamron/reify"
	"github.com/wdamron/reify/types"
)

// ParseType parses a type expression, resolving names within env.
//
//	expr := term ('|' term)*
//	term := name ('[' expr (',' expr)* ']')*
//
// Names may refer to classes, templates, type-variables or assigned aliases. Applications of templates
// are returned as symbolic applications; unions are flattened. Applications followed by further
// argument lists are reified and re-parameterized.
func ParseType(env *reify.TypeEnv, src string) (types.Type, error) {
	p := &parser{env: env, src: src}
	p.s.Init(strings.NewReader(src))
	p.s.Mode = scanner.ScanIdents
	p.s.Error = func(s *scanner.Scanner, msg string) { p.errorf("%s", msg) }
	p.next()
	t := p.expr()
	if p.err == nil && p.tok != scanner.EOF {
		p.errorf("unexpected %q", p.s.TokenText())
	}
	if p.err != nil {
		return nil, p.err
	}
	return t, nil
}

type parser struct {
	env *reify.TypeEnv
	src string
	s   scanner.Scanner
	tok rune
	err error
}

func (p *parser) next() { p.tok = p.s.Scan() }

func (p *parser) errorf(format string, args ...interface{}) {
	if p.err == nil {
		p.err = fmt.Errorf("type %q, column %d: %s", p.src, p.s.Position.Column, fmt.Sprintf(format, args...))
	}
}

func (p *parser) expr() types.Type {
	members := []types.Type{p.term()}
	for p.err == nil && p.tok == '|' {
		p.next()
		members = append(members, p.term())
	}
	if p.err != nil {
		return nil
	}
	return types.NewUnion(members...)
}

func (p *parser) term() types.Type {
	if p.tok != scanner.Ident {
		if p.tok == scanner.EOF {
			p.errorf("unexpected end of type")
		} else {
			p.errorf("unexpected %q", p.s.TokenText())
		}
		return nil
	}
	name := p.s.TokenText()
	t := p.env.Lookup(name)
	if t == nil {
		p.errorf("undeclared type %s", name)
		return nil
	}
	p.next()
	if p.tok != '[' {
		return t
	}
	if template, ok := t.(*types.Class); ok && template.IsTemplate() {
		args := p.args(name)
		if p.err != nil {
			return nil
		}
		t = types.Apply(template, args...)
	} else if _, ok := t.(*types.Reified); !ok {
		p.errorf("%s is not a generic template", name)
		return nil
	}
	// Further arguments re-parameterize the application: `Pair[int, T][str]`
	for p.err == nil && p.tok == '[' {
		args := p.args(name)
		if p.err != nil {
			return nil
		}
		r, err := p.env.Engine().Reify(t, args...)
		if err != nil {
			p.err = fmt.Errorf("type %q: %w", p.src, err)
			return nil
		}
		t = r
	}
	return t
}

// Parse a bracketed argument list, starting at '['.
func (p *parser) args(name string) []types.Type {
	p.next()
	var args []types.Type
	for p.err == nil {
		args = append(args, p.expr())
		if p.tok != ',' {
			break
		}
		p.next()
	}
	if p.err == nil && p.tok != ']' {
		p.errorf("expected ']' to close arguments of %s", name)
	}
	if p.err != nil {
		return nil
	}
	p.next()
	return args
}
