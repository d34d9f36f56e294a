// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parser implements a recursive-descent parser over the
// lexer's token stream, producing the ast package's parse-tree node
// family. Each grammar production gets its own small top-down
// function, in the same shape as the teacher's per-construct parse
// functions.
package parser

import (
	"fmt"

	"github.com/rtoal/carlos-lang/ast"
	"github.com/rtoal/carlos-lang/lexer"
)

// Error is returned when the source text does not conform to the
// grammar. It carries the position at which parsing failed.
type Error struct {
	Pos     ast.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Message)
}

type parser struct {
	toks []lexer.Token
	pos  int
}

// Parse lexes and parses src into a *ast.Program, or returns the first
// syntax error encountered.
func Parse(src string) (prog *ast.Program, err error) {
	toks, lexErr := lexer.New(src).Scan()
	if lexErr != nil {
		return nil, lexErr
	}
	p := &parser{toks: toks}
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(*Error); ok {
				err = pe
				return
			}
			panic(r)
		}
	}()
	start := p.pos0()
	var stmts []ast.Node
	for !p.atEOF() {
		stmts = append(stmts, p.statement())
	}
	prog = &ast.Program{Statements: stmts}
	prog.SetPos(start)
	return prog, nil
}

func (p *parser) pos0() ast.Position {
	if len(p.toks) == 0 {
		return ast.Position{Line: 1, Col: 1}
	}
	return p.toks[0].Pos
}

func (p *parser) errorf(pos ast.Position, format string, args ...interface{}) {
	panic(&Error{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

func (p *parser) cur() lexer.Token { return p.toks[p.pos] }

func (p *parser) atEOF() bool { return p.cur().Kind == lexer.EOF }

func (p *parser) advance() lexer.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// isOp reports whether the current token is the operator op.
func (p *parser) isOp(op string) bool {
	t := p.cur()
	return t.Kind == lexer.Operator && t.Text == op
}

// isKeyword reports whether the current token is the keyword kw.
func (p *parser) isKeyword(kw string) bool {
	t := p.cur()
	return t.Kind == lexer.Keyword && t.Text == kw
}

func (p *parser) matchOp(op string) bool {
	if p.isOp(op) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) matchKeyword(kw string) bool {
	if p.isKeyword(kw) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expectOp(op string) lexer.Token {
	if !p.isOp(op) {
		p.errorf(p.cur().Pos, "expected %q, got %q", op, p.cur().Text)
	}
	return p.advance()
}

func (p *parser) expectKeyword(kw string) lexer.Token {
	if !p.isKeyword(kw) {
		p.errorf(p.cur().Pos, "expected %q, got %q", kw, p.cur().Text)
	}
	return p.advance()
}

func (p *parser) identifier() *ast.Identifier {
	t := p.cur()
	if t.Kind != lexer.Ident {
		p.errorf(t.Pos, "expected identifier, got %q", t.Text)
	}
	p.advance()
	id := &ast.Identifier{Name: t.Text}
	id.SetPos(t.Pos)
	return id
}
