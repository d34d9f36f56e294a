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

// statement dispatches on the parse-tree statement variant.
func (a *analyzer) statement(node ast.Node) semantic.Node {
	switch n := node.(type) {
	case *ast.VarDecl:
		return a.varDecl(n)
	case *ast.StructDecl:
		return a.structDecl(n)
	case *ast.FunctionDecl:
		return a.functionDecl(n)
	case *ast.IncDec:
		return a.incDec(n)
	case *ast.Assign:
		return a.assign(n)
	case *ast.Break:
		checkInLoop(n, a.ctx)
		return &semantic.BreakStatement{}
	case *ast.Return:
		return a.returnStmt(n)
	case *ast.If:
		return a.ifStmt(n)
	case *ast.While:
		return a.whileStmt(n)
	case *ast.Repeat:
		return a.repeatStmt(n)
	case *ast.ForRange:
		return a.forRangeStmt(n)
	case *ast.ForOf:
		return a.forOfStmt(n)
	case *ast.Call:
		return a.call(n)
	default:
		icef(node, "unexpected statement node %T", node)
		return nil
	}
}

func (a *analyzer) incDec(n *ast.IncDec) semantic.Node {
	target := a.expression(n.Target)
	checkIsInteger(n.Target, typeOf(target))
	if n.Operator == ast.OpInc {
		return &semantic.Increment{Target: target}
	}
	return &semantic.Decrement{Target: target}
}

func (a *analyzer) assign(n *ast.Assign) semantic.Node {
	target := a.expression(n.Target)
	value := a.expression(n.Value)
	checkAssignable(n, typeOf(value), typeOf(target))
	if id, ok := target.(*semantic.IdentifierExpression); ok {
		if v, ok := id.Entity.(*semantic.Variable); ok {
			checkNotReadOnly(n, v)
		}
	}
	return &semantic.Assignment{Target: target, Source: value}
}

func (a *analyzer) returnStmt(n *ast.Return) semantic.Node {
	f := checkInFunction(n, a.ctx)
	if n.Value == nil {
		if f.Type.ReturnType != semantic.VoidType {
			errorf(n, "Something should be returned here")
		}
		return &semantic.ShortReturnStatement{}
	}
	if f.Type.ReturnType == semantic.VoidType {
		errorf(n, "Cannot return a value from this function")
	}
	value := a.expression(n.Value)
	checkAssignable(n.Value, typeOf(value), f.Type.ReturnType)
	return &semantic.ReturnStatement{Expression: value}
}

func (a *analyzer) ifStmt(n *ast.If) semantic.Node {
	test := a.expression(n.Test)
	checkIsBoolean(n.Test, typeOf(test))

	var consequent []semantic.Node
	a.with(nil, func() {
		consequent = a.statements(n.Consequent)
	})

	if n.Alternate == nil {
		return &semantic.ShortIfStatement{Test: test, Consequent: consequent}
	}

	var alternate semantic.Node
	switch alt := n.Alternate.(type) {
	case *ast.If:
		// An "else if" chain reuses the current context: no new scope.
		alternate = a.ifStmt(alt)
	case *ast.Block:
		var stmts []semantic.Node
		a.with(nil, func() {
			stmts = a.statements(alt.Statements)
		})
		alternate = &semantic.Block{Statements: stmts}
	default:
		icef(n, "unexpected else-clause node %T", n.Alternate)
	}
	return &semantic.IfStatement{Test: test, Consequent: consequent, Alternate: alternate}
}

func (a *analyzer) whileStmt(n *ast.While) semantic.Node {
	test := a.expression(n.Test)
	checkIsBoolean(n.Test, typeOf(test))
	var body []semantic.Node
	a.with(func(c *Context) { c.inLoop = true }, func() {
		body = a.statements(n.Body)
	})
	return &semantic.WhileStatement{Test: test, Body: body}
}

func (a *analyzer) repeatStmt(n *ast.Repeat) semantic.Node {
	count := a.expression(n.Count)
	checkIsInteger(n.Count, typeOf(count))
	var body []semantic.Node
	a.with(func(c *Context) { c.inLoop = true }, func() {
		body = a.statements(n.Body)
	})
	return &semantic.RepeatStatement{Count: count, Body: body}
}

func (a *analyzer) forRangeStmt(n *ast.ForRange) semantic.Node {
	low := a.expression(n.Low)
	high := a.expression(n.High)
	checkIsInteger(n.Low, typeOf(low))
	checkIsInteger(n.High, typeOf(high))

	iter := &semantic.Variable{Name: n.Iterator.Name, ReadOnly: true, Type: semantic.IntType}
	var body []semantic.Node
	a.with(func(c *Context) { c.inLoop = true }, func() {
		a.declare(n.Iterator, iter.Name, iter)
		body = a.statements(n.Body)
	})
	return &semantic.ForRangeStatement{Iterator: iter, Low: low, Op: n.Op, High: high, Body: body}
}

func (a *analyzer) forOfStmt(n *ast.ForOf) semantic.Node {
	collection := a.expression(n.Collection)
	at := checkIsArray(n.Collection, typeOf(collection))

	iter := &semantic.Variable{Name: n.Iterator.Name, ReadOnly: true, Type: at.Base}
	var body []semantic.Node
	a.with(func(c *Context) { c.inLoop = true }, func() {
		a.declare(n.Iterator, iter.Name, iter)
		body = a.statements(n.Body)
	})
	return &semantic.ForOfStatement{Iterator: iter, Collection: collection, Body: body}
}
