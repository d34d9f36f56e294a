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

package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimitiveEquivalenceIsIdentity(t *testing.T) {
	assert.True(t, EquivalentTo(IntType, IntType))
	assert.False(t, EquivalentTo(IntType, FloatType))
}

func TestArrayEquivalenceIsStructural(t *testing.T) {
	a := ArrayOf(IntType)
	b := ArrayOf(IntType)
	assert.Same(t, a, b, "ArrayOf should intern by base type")
	assert.True(t, EquivalentTo(a, b))
	assert.False(t, EquivalentTo(a, ArrayOf(FloatType)))
}

func TestOptionalEquivalenceIsStructural(t *testing.T) {
	assert.True(t, EquivalentTo(OptionalOf(IntType), OptionalOf(IntType)))
	assert.False(t, EquivalentTo(OptionalOf(IntType), OptionalOf(FloatType)))
}

func TestArrayAndOptionalAreInvariant(t *testing.T) {
	// [int] is NOT assignable to [int?] even though int is assignable
	// to int? in isolation would be the naive (wrong) expectation —
	// here it must not even hold in isolation, since assignability
	// requires equivalence for these variants.
	assert.False(t, AssignableTo(IntType, OptionalOf(IntType)))
	assert.False(t, AssignableTo(ArrayOf(IntType), ArrayOf(OptionalOf(IntType))))
}

func TestFunctionEquivalenceIsStructural(t *testing.T) {
	f1 := &FunctionType{ParamTypes: []Type{IntType}, ReturnType: BoolType}
	f2 := &FunctionType{ParamTypes: []Type{IntType}, ReturnType: BoolType}
	assert.NotSame(t, f1, f2)
	assert.True(t, EquivalentTo(f1, f2))
}

func TestFunctionAssignabilityIsVariant(t *testing.T) {
	// (boolean)->int assignable to (boolean)->any: covariant return.
	narrow := &FunctionType{ParamTypes: []Type{BoolType}, ReturnType: IntType}
	wide := &FunctionType{ParamTypes: []Type{BoolType}, ReturnType: AnyType}
	assert.True(t, AssignableTo(narrow, wide))

	// (boolean)->int is NOT assignable to (boolean)->void: return
	// types are unrelated.
	voidReturning := &FunctionType{ParamTypes: []Type{BoolType}, ReturnType: VoidType}
	assert.False(t, AssignableTo(narrow, voidReturning))
}

func TestAnyAcceptsAnySource(t *testing.T) {
	assert.True(t, AssignableTo(IntType, AnyType))
	assert.True(t, AssignableTo(ArrayOf(StringType), AnyType))
}

func TestStructEquivalenceIsIdentity(t *testing.T) {
	s1 := &StructType{Name: "S"}
	s2 := &StructType{Name: "S"}
	assert.False(t, EquivalentTo(s1, s2), "two distinct struct declarations are never equivalent")
	assert.True(t, EquivalentTo(s1, s1))
}
