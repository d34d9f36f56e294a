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
	"math/big"
	"strconv"

	"github.com/rtoal/carlos-lang/ast"
	"github.com/rtoal/carlos-lang/semantic"
)

// typeOf returns the resolved type carried by a semantic expression
// node. It only reads the type recorded when the node was built (or,
// for literals, implied by the node kind); it never recomputes one.
func typeOf(n semantic.Node) semantic.Type {
	switch e := n.(type) {
	case *semantic.Conditional:
		return e.Type
	case *semantic.BinaryExpression:
		return e.Type
	case *semantic.UnaryExpression:
		return e.Type
	case *semantic.EmptyArray:
		return e.Type
	case *semantic.EmptyOptional:
		return e.Type
	case *semantic.ArrayExpression:
		return e.Type
	case *semantic.SubscriptExpression:
		return e.Type
	case *semantic.MemberExpression:
		return e.Type
	case *semantic.Call:
		return e.Type
	case *semantic.IdentifierExpression:
		return e.Type
	case *semantic.BoolLiteral:
		return semantic.BoolType
	case *semantic.IntLiteral:
		return semantic.IntType
	case *semantic.FloatLiteral:
		return semantic.FloatType
	case *semantic.StringLiteral:
		return semantic.StringType
	default:
		icef(nil, "no type for expression node %T", n)
		return nil
	}
}

// expression dispatches on the parse-tree expression variant,
// recursively analyzing operands, checking the operator/operand rules
// that apply, and recording a resolved type on the returned node.
func (a *analyzer) expression(node ast.Node) semantic.Node {
	switch n := node.(type) {
	case *ast.BoolLit:
		return &semantic.BoolLiteral{Value: n.Value}
	case *ast.IntLit:
		v := new(big.Int)
		if _, ok := v.SetString(n.Value, 10); !ok {
			icef(n, "invalid integer literal %q", n.Value)
		}
		return &semantic.IntLiteral{Value: v}
	case *ast.FloatLit:
		v, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			icef(n, "invalid float literal %q", n.Value)
		}
		return &semantic.FloatLiteral{Value: v}
	case *ast.StringLit:
		return &semantic.StringLiteral{Value: n.Value}
	case *ast.EmptyArray:
		return &semantic.EmptyArray{Type: semantic.ArrayOf(a.typeExpr(n.Type))}
	case *ast.EmptyOptional:
		return &semantic.EmptyOptional{Type: semantic.OptionalOf(a.typeExpr(n.Type))}
	case *ast.ArrayLit:
		return a.arrayLit(n)
	case *ast.Conditional:
		return a.conditional(n)
	case *ast.BinaryExpr:
		return a.binary(n)
	case *ast.NaryExpr:
		return a.nary(n)
	case *ast.UnaryExpr:
		return a.unary(n)
	case *ast.Subscript:
		return a.subscript(n)
	case *ast.Member:
		return a.member(n)
	case *ast.Call:
		return a.call(n)
	case *ast.Identifier:
		return a.identifierExpr(n)
	default:
		icef(node, "unexpected expression node %T", node)
		return nil
	}
}

func (a *analyzer) expressions(nodes []ast.Node) []semantic.Node {
	out := make([]semantic.Node, len(nodes))
	for i, n := range nodes {
		out[i] = a.expression(n)
	}
	return out
}

func (a *analyzer) arrayLit(n *ast.ArrayLit) semantic.Node {
	elems := a.expressions(n.Elements)
	elemType := typeOf(elems[0])
	for i := 1; i < len(elems); i++ {
		checkEquivalent(n.Elements[i], typeOf(elems[i]), elemType)
	}
	return &semantic.ArrayExpression{Elements: elems, Type: semantic.ArrayOf(elemType)}
}

func (a *analyzer) conditional(n *ast.Conditional) semantic.Node {
	test := a.expression(n.Test)
	checkIsBoolean(n.Test, typeOf(test))
	cons := a.expression(n.Consequent)
	alt := a.expression(n.Alternate)
	checkEquivalent(n, typeOf(cons), typeOf(alt))
	return &semantic.Conditional{Test: test, Consequent: cons, Alternate: alt, Type: typeOf(cons)}
}

// unwrapElseType validates and returns the result type for an "x ?? y"
// expression: x must be optional, y must be assignable to its base,
// and the result is x's optional type.
func unwrapElseType(node ast.Node, x, y semantic.Node) semantic.Type {
	opt := checkIsOptional(node, typeOf(x))
	checkAssignable(node, typeOf(y), opt.Base)
	return opt
}

func (a *analyzer) binary(n *ast.BinaryExpr) semantic.Node {
	left := a.expression(n.Left)
	right := a.expression(n.Right)
	return a.binaryOp(n, n.Operator, left, right)
}

func (a *analyzer) binaryOp(node ast.Node, op string, left, right semantic.Node) semantic.Node {
	lt, rt := typeOf(left), typeOf(right)
	var resultType semantic.Type
	switch op {
	case ast.OpUnwrap:
		resultType = unwrapElseType(node, left, right)
	case ast.OpOr, ast.OpAnd:
		checkIsBoolean(node, lt)
		checkIsBoolean(node, rt)
		resultType = semantic.BoolType
	case ast.OpBitOr, ast.OpBitXor, ast.OpBitAnd, ast.OpShl, ast.OpShr:
		checkIsInteger(node, lt)
		checkIsInteger(node, rt)
		resultType = semantic.IntType
	case ast.OpEQ, ast.OpNE:
		checkEquivalent(node, lt, rt)
		resultType = semantic.BoolType
	case ast.OpLT, ast.OpLE, ast.OpGT, ast.OpGE:
		checkEquivalent(node, lt, rt)
		checkIsNumericOrString(node, lt)
		resultType = semantic.BoolType
	case ast.OpPlus:
		checkEquivalent(node, lt, rt)
		checkIsNumericOrString(node, lt)
		resultType = lt
	case ast.OpMinus, ast.OpMul, ast.OpDiv, ast.OpMod, ast.OpPow:
		checkEquivalent(node, lt, rt)
		checkIsNumber(node, lt)
		resultType = lt
	default:
		icef(node, "unrecognized operator %q", op)
	}
	return &semantic.BinaryExpression{Operator: op, Left: left, Right: right, Type: resultType}
}

// nary desugars a flat parser-level chain of the same operator into a
// left-associative cascade of BinaryExpression nodes.
func (a *analyzer) nary(n *ast.NaryExpr) semantic.Node {
	operands := a.expressions(n.Operands)
	result := a.binaryOp(n, n.Operator, operands[0], operands[1])
	for i := 2; i < len(operands); i++ {
		result = a.binaryOp(n, n.Operator, result, operands[i])
	}
	return result
}

func (a *analyzer) unary(n *ast.UnaryExpr) semantic.Node {
	operand := a.expression(n.Operand)
	t := typeOf(operand)
	var resultType semantic.Type
	switch n.Operator {
	case ast.OpMinus:
		checkIsNumber(n, t)
		resultType = t
	case ast.OpNot:
		checkIsBoolean(n, t)
		resultType = semantic.BoolType
	case ast.OpLen:
		checkIsArray(n, t)
		resultType = semantic.IntType
	case ast.OpSome:
		resultType = semantic.OptionalOf(t)
	default:
		icef(n, "unrecognized unary operator %q", n.Operator)
	}
	return &semantic.UnaryExpression{Operator: n.Operator, Operand: operand, Type: resultType}
}

func (a *analyzer) subscript(n *ast.Subscript) semantic.Node {
	array := a.expression(n.Array)
	index := a.expression(n.Index)
	at := checkIsArray(n.Array, typeOf(array))
	checkIsInteger(n.Index, typeOf(index))
	return &semantic.SubscriptExpression{Array: array, Index: index, Type: at.Base}
}

func (a *analyzer) member(n *ast.Member) semantic.Node {
	object := a.expression(n.Object)
	var st *semantic.StructType
	if n.Optional {
		st = checkIsOptionalOfStruct(n.Object, typeOf(object))
	} else {
		st = checkIsAStruct(n.Object, typeOf(object))
	}
	field := findField(st, n.Field.Name)
	if field == nil {
		errorf(n, "No such field %s", n.Field.Name)
	}
	resultType := field.Type
	if n.Optional {
		resultType = semantic.OptionalOf(field.Type)
	}
	return &semantic.MemberExpression{Object: object, Field: field, IsOptionalChain: n.Optional, Type: resultType}
}

func findField(st *semantic.StructType, name string) *semantic.FieldType {
	for _, f := range st.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (a *analyzer) call(n *ast.Call) semantic.Node {
	callee := a.expression(n.Callee)
	args := a.expressions(n.Arguments)

	if id, ok := callee.(*semantic.IdentifierExpression); ok {
		if st, ok := id.Entity.(*semantic.StructType); ok {
			checkArgCount(n, len(args), len(st.Fields))
			for i, arg := range args {
				checkAssignable(n.Arguments[i], typeOf(arg), st.Fields[i].Type)
			}
			return &semantic.Call{Callee: callee, Arguments: args, Type: st}
		}
	}

	ft, ok := typeOf(callee).(*semantic.FunctionType)
	if !ok {
		errorf(n.Callee, "Call of non-function")
	}
	if ft.Variadic {
		for i, arg := range args {
			checkAssignable(n.Arguments[i], typeOf(arg), ft.ParamTypes[0])
		}
	} else {
		checkArgCount(n, len(args), len(ft.ParamTypes))
		for i, arg := range args {
			checkAssignable(n.Arguments[i], typeOf(arg), ft.ParamTypes[i])
		}
	}
	return &semantic.Call{Callee: callee, Arguments: args, Type: ft.ReturnType}
}

func (a *analyzer) identifierExpr(n *ast.Identifier) semantic.Node {
	entity, ok := a.ctx.lookup(n.Name)
	if !ok {
		errorf(n, "Identifier %s not declared", n.Name)
	}
	return &semantic.IdentifierExpression{Entity: entity, Type: entityType(entity)}
}

// entityType returns the type carried by a reference to entity:
// variables and functions carry their declared type directly; struct
// and primitive type entities, referenced as values (e.g. as a
// constructor callee), carry the type-of-types.
func entityType(entity semantic.Entity) semantic.Type {
	switch e := entity.(type) {
	case *semantic.Variable:
		return e.Type
	case *semantic.Function:
		return e.Type
	case *semantic.StructType, *semantic.Primitive:
		return semantic.TypeType
	default:
		return semantic.TypeType
	}
}
