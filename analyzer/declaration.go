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

// declare binds name to entity in the current context, enforcing the
// no-shadowing rule against the entire enclosing scope chain.
func (a *analyzer) declare(node ast.Node, name string, entity semantic.Entity) {
	if a.ctx.sees(name) {
		errorf(node, "Identifier %s already declared", name)
	}
	a.ctx.add(name, entity)
}

func (a *analyzer) varDecl(n *ast.VarDecl) semantic.Node {
	init := a.expression(n.Initializer)
	v := &semantic.Variable{Name: n.Name.Name, ReadOnly: n.ReadOnly, Type: typeOf(init)}
	a.declare(n, v.Name, v)
	return &semantic.VariableDeclaration{Variable: v, Initializer: init}
}

func (a *analyzer) structDecl(n *ast.StructDecl) semantic.Node {
	st := &semantic.StructType{Name: n.Name.Name}
	a.declare(n, st.Name, st)

	fields := make([]*semantic.FieldType, len(n.Fields))
	for i, f := range n.Fields {
		fields[i] = &semantic.FieldType{Name: f.Name.Name, Type: a.typeExpr(f.Type)}
	}
	st.Fields = fields

	checkFieldsAllDistinct(n, st)
	checkStructNotRecursive(n, st)
	return &semantic.StructTypeDeclaration{Type: st}
}

func checkFieldsAllDistinct(node ast.Node, st *semantic.StructType) {
	seen := map[string]bool{}
	for _, f := range st.Fields {
		if seen[f.Name] {
			errorf(node, "Fields must be distinct")
		}
		seen[f.Name] = true
	}
}

// checkStructNotRecursive enforces that no field's type is the struct
// itself; recursion through an array or optional wrapper is fine,
// since ArrayOf(st)/OptionalOf(st) are never == st.
func checkStructNotRecursive(node ast.Node, st *semantic.StructType) {
	for _, f := range st.Fields {
		if f.Type == semantic.Type(st) {
			errorf(node, "Struct type must not be recursive")
		}
	}
}

func (a *analyzer) functionDecl(n *ast.FunctionDecl) semantic.Node {
	paramTypes := make([]semantic.Type, len(n.Params))
	params := make([]*semantic.Variable, len(n.Params))
	for i, p := range n.Params {
		paramTypes[i] = a.typeExpr(p.Type)
		params[i] = &semantic.Variable{Name: p.Name.Name, ReadOnly: false, Type: paramTypes[i]}
	}
	returnType := a.voidOr(n.ReturnType)

	f := &semantic.Function{
		Name:   n.Name.Name,
		Type:   &semantic.FunctionType{ParamTypes: paramTypes, ReturnType: returnType},
		Params: params,
	}
	a.declare(n, f.Name, f)

	var body []semantic.Node
	a.with(func(child *Context) {
		child.inLoop = false
		child.function = f
		for _, p := range params {
			a.declare(n, p.Name, p)
		}
	}, func() {
		body = a.statements(n.Body)
	})

	return &semantic.FunctionDeclaration{Function: f, Body: body}
}
