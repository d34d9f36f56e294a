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

func isInteger(t semantic.Type) bool { return t == semantic.IntType }

func isNumber(t semantic.Type) bool {
	return t == semantic.IntType || t == semantic.FloatType
}

func isNumericOrString(t semantic.Type) bool {
	return isNumber(t) || t == semantic.StringType
}

func isBoolean(t semantic.Type) bool { return t == semantic.BoolType }

func isArray(t semantic.Type) (*semantic.ArrayType, bool) {
	a, ok := t.(*semantic.ArrayType)
	return a, ok
}

func isOptional(t semantic.Type) (*semantic.OptionalType, bool) {
	o, ok := t.(*semantic.OptionalType)
	return o, ok
}

func isStructType(t semantic.Type) (*semantic.StructType, bool) {
	s, ok := t.(*semantic.StructType)
	return s, ok
}

// isOptionalOfStruct reports whether t is OptionalType(StructType).
func isOptionalOfStruct(t semantic.Type) (*semantic.StructType, bool) {
	o, ok := isOptional(t)
	if !ok {
		return nil, false
	}
	return isStructType(o.Base)
}

func checkIsInteger(node ast.Node, t semantic.Type) {
	if !isInteger(t) {
		errorf(node, "Expected an integer")
	}
}

func checkIsNumber(node ast.Node, t semantic.Type) {
	if !isNumber(t) {
		errorf(node, "Expected a number")
	}
}

func checkIsNumericOrString(node ast.Node, t semantic.Type) {
	if !isNumericOrString(t) {
		errorf(node, "Expected a number or string")
	}
}

func checkIsBoolean(node ast.Node, t semantic.Type) {
	if !isBoolean(t) {
		errorf(node, "Expected a boolean")
	}
}

func checkIsArray(node ast.Node, t semantic.Type) *semantic.ArrayType {
	a, ok := isArray(t)
	if !ok {
		errorf(node, "Expected an array")
	}
	return a
}

func checkIsOptional(node ast.Node, t semantic.Type) *semantic.OptionalType {
	o, ok := isOptional(t)
	if !ok {
		errorf(node, "Optional expected")
	}
	return o
}

func checkIsAStruct(node ast.Node, t semantic.Type) *semantic.StructType {
	s, ok := isStructType(t)
	if !ok {
		errorf(node, "Struct expected")
	}
	return s
}

func checkIsOptionalOfStruct(node ast.Node, t semantic.Type) *semantic.StructType {
	s, ok := isOptionalOfStruct(t)
	if !ok {
		errorf(node, "Optional expected")
	}
	return s
}

func checkEquivalent(node ast.Node, t1, t2 semantic.Type) {
	if !semantic.EquivalentTo(t1, t2) {
		errorf(node, "Operands do not have the same type")
	}
}

func checkAssignable(node ast.Node, source, target semantic.Type) {
	if !semantic.AssignableTo(source, target) {
		errorf(node, "Cannot assign a %s to a %s", source, target)
	}
}

func checkNotReadOnly(node ast.Node, v *semantic.Variable) {
	if v.ReadOnly {
		errorf(node, "Cannot assign to constant %s", v.Name)
	}
}

func checkInLoop(node ast.Node, ctx *Context) {
	if !ctx.inLoop {
		errorf(node, "Break can only appear in a loop")
	}
}

func checkInFunction(node ast.Node, ctx *Context) *semantic.Function {
	if ctx.function == nil {
		errorf(node, "Return can only appear in a function")
	}
	return ctx.function
}

func checkArgCount(node ast.Node, got, want int) {
	if got != want {
		errorf(node, "%d argument(s) required but %d passed", want, got)
	}
}
