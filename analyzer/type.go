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

package analyzer

import (
	"github.com/rtoal/carlos-lang/ast"
	"github.com/rtoal/carlos-lang/semantic"
)

// typeExpr resolves a parse-tree type expression to a semantic.Type.
func (a *analyzer) typeExpr(node ast.Node) semantic.Type {
	switch n := node.(type) {
	case *ast.OptionalTypeExpr:
		return semantic.OptionalOf(a.typeExpr(n.Base))
	case *ast.ArrayTypeExpr:
		return semantic.ArrayOf(a.typeExpr(n.Base))
	case *ast.FunctionTypeExpr:
		params := make([]semantic.Type, len(n.Params))
		for i, p := range n.Params {
			params[i] = a.typeExpr(p)
		}
		return &semantic.FunctionType{ParamTypes: params, ReturnType: a.typeExpr(n.Return)}
	case *ast.Identifier:
		entity, ok := a.ctx.lookup(n.Name)
		if !ok {
			errorf(n, "Identifier %s not declared", n.Name)
		}
		switch t := entity.(type) {
		case *semantic.Primitive:
			return t
		case *semantic.StructType:
			return t
		default:
			errorf(n, "Type expected")
			return nil
		}
	default:
		icef(node, "unexpected type expression %T", node)
		return nil
	}
}

// voidOr returns VoidType when node is nil (an omitted return-type
// annotation), else resolves node.
func (a *analyzer) voidOr(node ast.Node) semantic.Type {
	if node == nil {
		return semantic.VoidType
	}
	return a.typeExpr(node)
}
