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

// Package semantic defines the resolved, type-annotated program
// representation that the analyzer produces from a parse tree: a
// closed type model (Primitive, ArrayType, OptionalType, FunctionType,
// StructType) together with the entity and node shapes that carry
// those types.
package semantic

import "fmt"

// Type is implemented by every member of the type model. Primitives
// are singletons, each struct declaration is one StructType, and
// ArrayOf/OptionalOf intern their results by base, so == holds for
// the same type built from the same parts. FunctionType values are not
// interned: two equal signatures are distinct pointers, so comparisons
// go through EquivalentTo, which is structural for arrays, optionals
// and functions.
type Type interface {
	String() string
	isType()
}

// Primitive is a built-in scalar type. Its only instances are the
// package-level singletons below; there is no exported constructor.
type Primitive struct{ name string }

func (p *Primitive) String() string    { return p.name }
func (*Primitive) isType()             {}
func (p *Primitive) entityName() string { return p.name }

// The canonical primitive types, the only instances that ever exist.
var (
	IntType    = &Primitive{"int"}
	FloatType  = &Primitive{"float"}
	BoolType   = &Primitive{"boolean"}
	StringType = &Primitive{"string"}
	VoidType   = &Primitive{"void"}
	AnyType    = &Primitive{"any"}
	// TypeType is the type-of-types: the type carried by an
	// IdentifierExpression whose entity is itself a type (a
	// StructType referenced as a constructor, or one of these
	// primitives referenced where a value is expected).
	TypeType = &Primitive{"type"}
)

// Primitives lists the seven canonical primitives by name, for
// installing into the root context as type entities.
var Primitives = map[string]*Primitive{
	"int": IntType, "float": FloatType, "boolean": BoolType,
	"string": StringType, "void": VoidType, "any": AnyType, "type": TypeType,
}

// ArrayType is the type of arrays holding elements of Base.
type ArrayType struct{ Base Type }

func (a *ArrayType) String() string { return fmt.Sprintf("[%s]", a.Base) }
func (*ArrayType) isType()          {}

// OptionalType is the type of optional values wrapping Base.
type OptionalType struct{ Base Type }

func (o *OptionalType) String() string { return fmt.Sprintf("%s?", o.Base) }
func (*OptionalType) isType()          {}

// arrayCache and optionalCache intern ArrayType/OptionalType
// instances so that two requests for "[int]" or "int?" yield the same
// pointer, keeping type identity comparisons a plain ==.
var (
	arrayCache    = map[Type]*ArrayType{}
	optionalCache = map[Type]*OptionalType{}
)

// ArrayOf returns the canonical array-of-base type.
func ArrayOf(base Type) *ArrayType {
	if t, ok := arrayCache[base]; ok {
		return t
	}
	t := &ArrayType{Base: base}
	arrayCache[base] = t
	return t
}

// OptionalOf returns the canonical optional-of-base type.
func OptionalOf(base Type) *OptionalType {
	if t, ok := optionalCache[base]; ok {
		return t
	}
	t := &OptionalType{Base: base}
	optionalCache[base] = t
	return t
}

// FunctionType is the type of a function value: its parameter types in
// order, and its return type (VoidType if the declaration has none).
// Variadic is set only by prelude bindings such as print, whose single
// ParamTypes entry is the type every argument must be assignable to,
// regardless of how many are passed.
type FunctionType struct {
	ParamTypes []Type
	ReturnType Type
	Variadic   bool
}

func (f *FunctionType) String() string {
	s := "("
	for i, t := range f.ParamTypes {
		if i > 0 {
			s += ","
		}
		s += t.String()
	}
	return s + ")->" + f.ReturnType.String()
}
func (*FunctionType) isType() {}

// StructType is both a user-defined type and the entity bound to its
// declared name; its Fields are filled in after the placeholder entity
// is bound, so that a field may reference the struct's own type.
type StructType struct {
	Name   string
	Fields []*FieldType
}

func (s *StructType) String() string { return s.Name }
func (*StructType) isType()          {}

// FieldType names one member of a StructType and its declared type.
type FieldType struct {
	Name string
	Type Type
}

// EquivalentTo reports whether two types denote exactly the same type,
// structurally for arrays/optionals/functions and by identity for
// primitives and structs.
func EquivalentTo(t1, t2 Type) bool {
	if t1 == t2 {
		return true
	}
	switch a := t1.(type) {
	case *ArrayType:
		b, ok := t2.(*ArrayType)
		return ok && EquivalentTo(a.Base, b.Base)
	case *OptionalType:
		b, ok := t2.(*OptionalType)
		return ok && EquivalentTo(a.Base, b.Base)
	case *FunctionType:
		b, ok := t2.(*FunctionType)
		if !ok || len(a.ParamTypes) != len(b.ParamTypes) {
			return false
		}
		for i := range a.ParamTypes {
			if !EquivalentTo(a.ParamTypes[i], b.ParamTypes[i]) {
				return false
			}
		}
		return EquivalentTo(a.ReturnType, b.ReturnType)
	default:
		return false
	}
}

// AssignableTo reports whether a value of type from may be assigned or
// passed where a value of type to is expected. Arrays, optionals,
// structs and primitives are invariant — assignable only if
// equivalent, never by automatic wrapping into an optional. Function
// types are contravariant in parameters, covariant in return. any is a
// universal sink.
func AssignableTo(from, to Type) bool {
	if to == AnyType || EquivalentTo(from, to) {
		return true
	}
	b, ok := to.(*FunctionType)
	if !ok {
		return false
	}
	a, ok := from.(*FunctionType)
	if !ok || len(a.ParamTypes) != len(b.ParamTypes) {
		return false
	}
	for i := range a.ParamTypes {
		// contravariant: the target's parameter type must be
		// assignable to the source's, i.e. the source accepts at
		// least as much as callers will supply.
		if !AssignableTo(b.ParamTypes[i], a.ParamTypes[i]) {
			return false
		}
	}
	return AssignableTo(a.ReturnType, b.ReturnType)
}
