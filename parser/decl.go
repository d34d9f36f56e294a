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

// varDecl parses «("let"|"const") name "=" expression ";"».
func (p *parser) varDecl() ast.Node {
	start := p.cur().Pos
	readOnly := p.isKeyword(ast.KeywordConst)
	p.advance() // "let" or "const"
	name := p.identifier()
	p.expectOp("=")
	init := p.expr()
	p.expectOp(";")
	n := &ast.VarDecl{ReadOnly: readOnly, Name: name, Initializer: init}
	n.SetPos(start)
	return n
}

// structDecl parses «"struct" name "{" [field ("," field)* [","]] "}"».
func (p *parser) structDecl() ast.Node {
	start := p.cur().Pos
	p.expectKeyword(ast.KeywordStruct)
	name := p.identifier()
	p.expectOp("{")
	var fields []*ast.Field
	for !p.isOp("}") {
		fields = append(fields, p.field())
		if !p.matchOp(",") {
			break
		}
	}
	p.expectOp("}")
	n := &ast.StructDecl{Name: name, Fields: fields}
	n.SetPos(start)
	return n
}

func (p *parser) field() *ast.Field {
	start := p.cur().Pos
	name := p.identifier()
	p.expectOp(":")
	typ := p.typeExpr()
	n := &ast.Field{Name: name, Type: typ}
	n.SetPos(start)
	return n
}

// functionDecl parses «"function" name "(" params ")" [":" type] "{"
// body "}"».
func (p *parser) functionDecl() ast.Node {
	start := p.cur().Pos
	p.expectKeyword(ast.KeywordFunction)
	name := p.identifier()
	p.expectOp("(")
	var params []*ast.Param
	if !p.isOp(")") {
		params = append(params, p.param())
		for p.matchOp(",") {
			params = append(params, p.param())
		}
	}
	p.expectOp(")")
	var ret ast.Node
	if p.matchOp(":") {
		ret = p.typeExpr()
	}
	p.expectOp("{")
	var body []ast.Node
	for !p.isOp("}") {
		body = append(body, p.statement())
	}
	p.expectOp("}")
	n := &ast.FunctionDecl{Name: name, Params: params, ReturnType: ret, Body: body}
	n.SetPos(start)
	return n
}

func (p *parser) param() *ast.Param {
	start := p.cur().Pos
	name := p.identifier()
	p.expectOp(":")
	typ := p.typeExpr()
	n := &ast.Param{Name: name, Type: typ}
	n.SetPos(start)
	return n
}
