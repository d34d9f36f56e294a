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

package parser

import (
	"github.com/rtoal/carlos-lang/ast"
	"github.com/rtoal/carlos-lang/lexer"
)

// expr is the entry point for the full precedence cascade, from the
// ternary conditional down through unary prefix operators.
func (p *parser) expr() ast.Node { return p.conditional() }

func (p *parser) conditional() ast.Node {
	start := p.cur().Pos
	test := p.unwrapElse()
	if !p.isOp("?") {
		return test
	}
	p.advance()
	consequent := p.expr()
	p.expectOp(":")
	alternate := p.conditional()
	n := &ast.Conditional{Test: test, Consequent: consequent, Alternate: alternate}
	n.SetPos(start)
	return n
}

func (p *parser) unwrapElse() ast.Node {
	start := p.cur().Pos
	e := p.or()
	for p.isOp(ast.OpUnwrap) {
		p.advance()
		rhs := p.or()
		n := &ast.BinaryExpr{Left: e, Operator: ast.OpUnwrap, Right: rhs}
		n.SetPos(start)
		e = n
	}
	return e
}

// naryLevel parses a left-associative chain of the same operator,
// producing a flat NaryExpr when three or more operands are chained,
// a single BinaryExpr for exactly two, and the bare operand for one.
func (p *parser) naryLevel(op string, next func() ast.Node) ast.Node {
	start := p.cur().Pos
	first := next()
	if !p.isOp(op) {
		return first
	}
	operands := []ast.Node{first}
	for p.isOp(op) {
		p.advance()
		operands = append(operands, next())
	}
	if len(operands) == 2 {
		n := &ast.BinaryExpr{Left: operands[0], Operator: op, Right: operands[1]}
		n.SetPos(start)
		return n
	}
	n := &ast.NaryExpr{Operator: op, Operands: operands}
	n.SetPos(start)
	return n
}

func (p *parser) or() ast.Node     { return p.naryLevel(ast.OpOr, p.and) }
func (p *parser) and() ast.Node    { return p.naryLevel(ast.OpAnd, p.bitOr) }
func (p *parser) bitOr() ast.Node  { return p.naryLevel(ast.OpBitOr, p.bitXor) }
func (p *parser) bitXor() ast.Node { return p.naryLevel(ast.OpBitXor, p.bitAnd) }
func (p *parser) bitAnd() ast.Node { return p.naryLevel(ast.OpBitAnd, p.equality) }

// binaryLevel parses an optional single operator from ops between two
// operands at the next tier down, for levels the grammar does not
// allow to chain (equality, relational).
func (p *parser) binaryLevel(next func() ast.Node, ops ...string) ast.Node {
	start := p.cur().Pos
	left := next()
	for _, op := range ops {
		if p.isOp(op) {
			p.advance()
			right := next()
			n := &ast.BinaryExpr{Left: left, Operator: op, Right: right}
			n.SetPos(start)
			return n
		}
	}
	return left
}

func (p *parser) equality() ast.Node {
	return p.binaryLevel(p.relational, ast.OpEQ, ast.OpNE)
}

func (p *parser) relational() ast.Node {
	return p.binaryLevel(p.shift, ast.OpLT, ast.OpLE, ast.OpGT, ast.OpGE)
}

// leftAssocLevel parses a left-associative cascade of the given
// operators, each producing its own BinaryExpr nested around the
// running result.
func (p *parser) leftAssocLevel(next func() ast.Node, ops ...string) ast.Node {
	start := p.cur().Pos
	left := next()
	for {
		matched := ""
		for _, op := range ops {
			if p.isOp(op) {
				matched = op
				break
			}
		}
		if matched == "" {
			return left
		}
		p.advance()
		right := next()
		n := &ast.BinaryExpr{Left: left, Operator: matched, Right: right}
		n.SetPos(start)
		left = n
	}
}

func (p *parser) shift() ast.Node {
	return p.leftAssocLevel(p.additive, ast.OpShl, ast.OpShr)
}

func (p *parser) additive() ast.Node {
	return p.leftAssocLevel(p.multiplicative, ast.OpPlus, ast.OpMinus)
}

func (p *parser) multiplicative() ast.Node {
	return p.leftAssocLevel(p.power, ast.OpMul, ast.OpDiv, ast.OpMod)
}

// power is right-associative: 2 ** 3 ** 2 == 2 ** (3 ** 2).
func (p *parser) power() ast.Node {
	start := p.cur().Pos
	left := p.unary()
	if !p.isOp(ast.OpPow) {
		return left
	}
	p.advance()
	right := p.power()
	n := &ast.BinaryExpr{Left: left, Operator: ast.OpPow, Right: right}
	n.SetPos(start)
	return n
}

func (p *parser) unary() ast.Node {
	start := p.cur().Pos
	switch {
	case p.isOp(ast.OpMinus), p.isOp(ast.OpNot), p.isOp(ast.OpLen):
		op := p.advance().Text
		operand := p.unary()
		n := &ast.UnaryExpr{Operator: op, Operand: operand}
		n.SetPos(start)
		return n
	case p.isKeyword(ast.KeywordSome):
		p.advance()
		operand := p.unary()
		n := &ast.UnaryExpr{Operator: ast.OpSome, Operand: operand}
		n.SetPos(start)
		return n
	default:
		return p.postfix()
	}
}

func (p *parser) postfix() ast.Node {
	start := p.cur().Pos
	e := p.primary()
	for {
		switch {
		case p.isOp("["):
			p.advance()
			idx := p.expr()
			p.expectOp("]")
			n := &ast.Subscript{Array: e, Index: idx}
			n.SetPos(start)
			e = n
		case p.isOp("."):
			p.advance()
			field := p.identifier()
			n := &ast.Member{Object: e, Field: field, Optional: false}
			n.SetPos(start)
			e = n
		case p.isOp(ast.OpOptDot):
			p.advance()
			field := p.identifier()
			n := &ast.Member{Object: e, Field: field, Optional: true}
			n.SetPos(start)
			e = n
		case p.isOp("("):
			p.advance()
			var args []ast.Node
			if !p.isOp(")") {
				args = append(args, p.expr())
				for p.matchOp(",") {
					args = append(args, p.expr())
				}
			}
			p.expectOp(")")
			n := &ast.Call{Callee: e, Arguments: args}
			n.SetPos(start)
			e = n
		default:
			return e
		}
	}
}

func (p *parser) primary() ast.Node {
	t := p.cur()
	switch {
	case p.isKeyword(ast.KeywordTrue):
		p.advance()
		n := &ast.BoolLit{Value: true}
		n.SetPos(t.Pos)
		return n
	case p.isKeyword(ast.KeywordFalse):
		p.advance()
		n := &ast.BoolLit{Value: false}
		n.SetPos(t.Pos)
		return n
	case t.Kind == lexer.Int:
		p.advance()
		n := &ast.IntLit{Value: t.Text}
		n.SetPos(t.Pos)
		return n
	case t.Kind == lexer.Float:
		p.advance()
		n := &ast.FloatLit{Value: t.Text}
		n.SetPos(t.Pos)
		return n
	case t.Kind == lexer.String:
		p.advance()
		n := &ast.StringLit{Value: t.Text}
		n.SetPos(t.Pos)
		return n
	case p.isKeyword(ast.KeywordNo):
		p.advance()
		typ := p.typeExpr()
		n := &ast.EmptyOptional{Type: typ}
		n.SetPos(t.Pos)
		return n
	case p.isOp("["):
		return p.arrayExprOrEmpty(t.Pos)
	case p.isOp("("):
		p.advance()
		inner := p.expr()
		p.expectOp(")")
		return inner
	case t.Kind == lexer.Ident:
		return p.identifier()
	default:
		p.errorf(t.Pos, "unexpected token %q", t.Text)
		return nil
	}
}

// arrayExprOrEmpty parses either the «"[" "]" "(" "of" type ")"»
// empty-array literal or a «"[" e1 "," ... "]"» array literal.
func (p *parser) arrayExprOrEmpty(start ast.Position) ast.Node {
	p.expectOp("[")
	if p.matchOp("]") {
		p.expectOp("(")
		p.expectKeyword(ast.KeywordOf)
		typ := p.typeExpr()
		p.expectOp(")")
		n := &ast.EmptyArray{Type: typ}
		n.SetPos(start)
		return n
	}
	var elems []ast.Node
	elems = append(elems, p.expr())
	for p.matchOp(",") {
		elems = append(elems, p.expr())
	}
	p.expectOp("]")
	n := &ast.ArrayLit{Elements: elems}
	n.SetPos(start)
	return n
}
