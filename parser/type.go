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

// typeExpr parses a type expression:
//
//	type := baseType "?"*
//	baseType := "[" type "]" | "(" (type ("," type)*)? ")" "->" type | identifier
func (p *parser) typeExpr() ast.Node {
	start := p.cur().Pos
	t := p.baseType(start)
	for p.isOp("?") {
		p.advance()
		opt := &ast.OptionalTypeExpr{Base: t}
		opt.SetPos(start)
		t = opt
	}
	return t
}

func (p *parser) baseType(start ast.Position) ast.Node {
	switch {
	case p.isOp("["):
		p.advance()
		elem := p.typeExpr()
		p.expectOp("]")
		n := &ast.ArrayTypeExpr{Base: elem}
		n.SetPos(start)
		return n
	case p.isOp("("):
		p.advance()
		var params []ast.Node
		if !p.isOp(")") {
			params = append(params, p.typeExpr())
			for p.matchOp(",") {
				params = append(params, p.typeExpr())
			}
		}
		p.expectOp(")")
		p.expectOp("->")
		ret := p.typeExpr()
		n := &ast.FunctionTypeExpr{Params: params, Return: ret}
		n.SetPos(start)
		return n
	default:
		return p.identifier()
	}
}
