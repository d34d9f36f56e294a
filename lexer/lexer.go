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

package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rtoal/carlos-lang/ast"
)

// Lexer scans a source string into a Token slice in one pass.
type Lexer struct {
	src        []rune
	pos        int
	line, col  int
}

// New returns a Lexer ready to scan src.
func New(src string) *Lexer {
	return &Lexer{src: []rune(src), line: 1, col: 1}
}

// Scan consumes the entire source and returns its tokens, terminated
// by a single EOF token. It returns an error at the first lexical
// fault (unterminated string, unrecognized rune), matching the
// analyzer's own fail-fast discipline.
func (l *Lexer) Scan() ([]Token, error) {
	var toks []Token
	for {
		l.skipSpaceAndComments()
		if l.atEnd() {
			toks = append(toks, Token{Kind: EOF, Pos: l.position()})
			return toks, nil
		}
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
}

func (l *Lexer) atEnd() bool { return l.pos >= len(l.src) }

func (l *Lexer) position() ast.Position { return ast.Position{Line: l.line, Col: l.col} }

func (l *Lexer) peek() rune {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekAt(off int) rune {
	if l.pos+off >= len(l.src) {
		return 0
	}
	return l.src[l.pos+off]
}

func (l *Lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) skipSpaceAndComments() {
	for !l.atEnd() {
		r := l.peek()
		switch {
		case unicode.IsSpace(r):
			l.advance()
		case r == '/' && l.peekAt(1) == '/':
			for !l.atEnd() && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func isIdentStart(r rune) bool { return unicode.IsLetter(r) || r == '_' }
func isIdentPart(r rune) bool  { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' }

// next scans a single token starting at the current position, which
// is known not to be whitespace, a comment, or end of input.
func (l *Lexer) next() (Token, error) {
	start := l.position()
	r := l.peek()

	switch {
	case isIdentStart(r):
		return l.scanIdentifier(start), nil
	case unicode.IsDigit(r):
		return l.scanNumber(start), nil
	case r == '"':
		return l.scanString(start)
	default:
		return l.scanOperator(start)
	}
}

func (l *Lexer) scanIdentifier(start ast.Position) Token {
	var b strings.Builder
	for !l.atEnd() && isIdentPart(l.peek()) {
		b.WriteRune(l.advance())
	}
	text := b.String()
	kind := Ident
	if isKeyword(text) {
		kind = Keyword
	}
	return Token{Kind: kind, Text: text, Pos: start}
}

func (l *Lexer) scanNumber(start ast.Position) Token {
	var b strings.Builder
	for !l.atEnd() && unicode.IsDigit(l.peek()) {
		b.WriteRune(l.advance())
	}
	isFloat := false
	if l.peek() == '.' && unicode.IsDigit(l.peekAt(1)) {
		isFloat = true
		b.WriteRune(l.advance()) // '.'
		for !l.atEnd() && unicode.IsDigit(l.peek()) {
			b.WriteRune(l.advance())
		}
	}
	if l.peek() == 'E' || l.peek() == 'e' {
		save, saveCol := l.pos, l.col
		var exp strings.Builder
		exp.WriteRune(l.advance())
		if l.peek() == '+' || l.peek() == '-' {
			exp.WriteRune(l.advance())
		}
		if unicode.IsDigit(l.peek()) {
			isFloat = true
			for !l.atEnd() && unicode.IsDigit(l.peek()) {
				exp.WriteRune(l.advance())
			}
			b.WriteString(exp.String())
		} else {
			l.pos, l.col = save, saveCol
		}
	}
	kind := Int
	if isFloat {
		kind = Float
	}
	return Token{Kind: kind, Text: b.String(), Pos: start}
}

func (l *Lexer) scanString(start ast.Position) (Token, error) {
	var b strings.Builder
	b.WriteRune(l.advance()) // opening quote
	for {
		if l.atEnd() {
			return Token{}, fmt.Errorf("%d:%d: unterminated string literal", start.Line, start.Col)
		}
		r := l.peek()
		if r == '"' {
			b.WriteRune(l.advance())
			break
		}
		if r == '\\' {
			b.WriteRune(l.advance())
			if l.atEnd() {
				return Token{}, fmt.Errorf("%d:%d: unterminated string literal", start.Line, start.Col)
			}
			b.WriteRune(l.advance())
			continue
		}
		if r == '\n' {
			return Token{}, fmt.Errorf("%d:%d: unterminated string literal", start.Line, start.Col)
		}
		b.WriteRune(l.advance())
	}
	return Token{Kind: String, Text: b.String(), Pos: start}, nil
}

// multiCharOperators is checked longest-first, and before the
// single-character operators, so that, e.g., "..." and "..<" are
// recognized before ".".
var multiCharOperators = []string{
	"..<", "...", "?.", "??", "->",
	"<<", ">>", "<=", ">=", "==", "!=", "&&", "||", "**", "++", "--",
}

var singleCharOperators = "(){}[],:;.?+-*/%#!&|^<>="

func (l *Lexer) scanOperator(start ast.Position) (Token, error) {
	for _, op := range multiCharOperators {
		n := len([]rune(op))
		if l.matches(op, n) {
			for i := 0; i < n; i++ {
				l.advance()
			}
			return Token{Kind: Operator, Text: op, Pos: start}, nil
		}
	}
	r := l.peek()
	if strings.ContainsRune(singleCharOperators, r) {
		l.advance()
		return Token{Kind: Operator, Text: string(r), Pos: start}, nil
	}
	return Token{}, fmt.Errorf("%d:%d: unrecognized character %q", start.Line, start.Col, r)
}

func (l *Lexer) matches(op string, n int) bool {
	runes := []rune(op)
	for i := 0; i < n; i++ {
		if l.peekAt(i) != runes[i] {
			return false
		}
	}
	return true
}
