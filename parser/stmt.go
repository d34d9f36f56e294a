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

import "github.com/rtoal/carlos-lang/ast"

// statement dispatches on the current token to parse any one of the
// statement forms in the grammar.
func (p *parser) statement() ast.Node {
	switch {
	case p.isKeyword(ast.KeywordLet), p.isKeyword(ast.KeywordConst):
		return p.varDecl()
	case p.isKeyword(ast.KeywordStruct):
		return p.structDecl()
	case p.isKeyword(ast.KeywordFunction):
		return p.functionDecl()
	case p.isKeyword(ast.KeywordBreak):
		return p.breakStmt()
	case p.isKeyword(ast.KeywordReturn):
		return p.returnStmt()
	case p.isKeyword(ast.KeywordIf):
		return p.ifStmt()
	case p.isKeyword(ast.KeywordWhile):
		return p.whileStmt()
	case p.isKeyword(ast.KeywordRepeat):
		return p.repeatStmt()
	case p.isKeyword(ast.KeywordFor):
		return p.forStmt()
	default:
		return p.simpleStmt()
	}
}

func (p *parser) breakStmt() ast.Node {
	start := p.cur().Pos
	p.expectKeyword(ast.KeywordBreak)
	p.expectOp(";")
	n := &ast.Break{}
	n.SetPos(start)
	return n
}

func (p *parser) returnStmt() ast.Node {
	start := p.cur().Pos
	p.expectKeyword(ast.KeywordReturn)
	var value ast.Node
	if !p.isOp(";") {
		value = p.expr()
	}
	p.expectOp(";")
	n := &ast.Return{Value: value}
	n.SetPos(start)
	return n
}

// ifStmt parses «"if" test "{" body "}" ["else" ("{" body "}" | if)]».
func (p *parser) ifStmt() ast.Node {
	start := p.cur().Pos
	p.expectKeyword(ast.KeywordIf)
	test := p.expr()
	p.expectOp("{")
	var consequent []ast.Node
	for !p.isOp("}") {
		consequent = append(consequent, p.statement())
	}
	p.expectOp("}")
	var alternate ast.Node
	if p.matchKeyword(ast.KeywordElse) {
		if p.isKeyword(ast.KeywordIf) {
			alternate = p.ifStmt()
		} else {
			bstart := p.cur().Pos
			p.expectOp("{")
			var stmts []ast.Node
			for !p.isOp("}") {
				stmts = append(stmts, p.statement())
			}
			p.expectOp("}")
			b := &ast.Block{Statements: stmts}
			b.SetPos(bstart)
			alternate = b
		}
	}
	n := &ast.If{Test: test, Consequent: consequent, Alternate: alternate}
	n.SetPos(start)
	return n
}

func (p *parser) whileStmt() ast.Node {
	start := p.cur().Pos
	p.expectKeyword(ast.KeywordWhile)
	test := p.expr()
	body := p.block()
	n := &ast.While{Test: test, Body: body}
	n.SetPos(start)
	return n
}

func (p *parser) repeatStmt() ast.Node {
	start := p.cur().Pos
	p.expectKeyword(ast.KeywordRepeat)
	count := p.expr()
	body := p.block()
	n := &ast.Repeat{Count: count, Body: body}
	n.SetPos(start)
	return n
}

// forStmt parses «"for" name "in" low [("..<"|"...") high] "{" body
// "}"», distinguishing a range loop from an of-collection loop by
// whether a range operator follows the first expression.
func (p *parser) forStmt() ast.Node {
	start := p.cur().Pos
	p.expectKeyword(ast.KeywordFor)
	iter := p.identifier()
	p.expectKeyword(ast.KeywordIn)
	low := p.expr()
	if p.isOp(ast.OpInEx) || p.isOp(ast.OpInInc) {
		op := p.advance().Text
		high := p.expr()
		body := p.block()
		n := &ast.ForRange{Iterator: iter, Low: low, High: high, Op: op, Body: body}
		n.SetPos(start)
		return n
	}
	body := p.block()
	n := &ast.ForOf{Iterator: iter, Collection: low, Body: body}
	n.SetPos(start)
	return n
}

func (p *parser) block() []ast.Node {
	p.expectOp("{")
	var stmts []ast.Node
	for !p.isOp("}") {
		stmts = append(stmts, p.statement())
	}
	p.expectOp("}")
	return stmts
}

// simpleStmt parses the statement forms that begin with an expression:
// increment/decrement, assignment, and bare calls.
func (p *parser) simpleStmt() ast.Node {
	start := p.cur().Pos
	target := p.expr()
	switch {
	case p.isOp(ast.OpInc), p.isOp(ast.OpDec):
		op := p.advance().Text
		p.expectOp(";")
		n := &ast.IncDec{Target: target, Operator: op}
		n.SetPos(start)
		return n
	case p.isOp(ast.OpAssign):
		p.advance()
		value := p.expr()
		p.expectOp(";")
		n := &ast.Assign{Target: target, Value: value}
		n.SetPos(start)
		return n
	default:
		if _, ok := target.(*ast.Call); !ok {
			p.errorf(start, "expected a statement")
		}
		p.expectOp(";")
		return target
	}
}
