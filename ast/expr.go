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

package ast

// BoolLit is used for the "true" and "false" keywords.
type BoolLit struct {
	base
	Value bool
}

func (BoolLit) isNode() {}

// IntLit represents an integer literal, preserving its raw spelling so
// the analyzer can parse it as an arbitrary-precision integer.
type IntLit struct {
	base
	Value string
}

func (IntLit) isNode() {}

// FloatLit represents a floating-point literal.
type FloatLit struct {
	base
	Value string
}

func (FloatLit) isNode() {}

// StringLit represents a quoted string literal. Value is the raw
// spelling, including the surrounding quotes, per spec.
type StringLit struct {
	base
	Value string
}

func (StringLit) isNode() {}

// EmptyArray represents the «"[" "]" "(" "of" type ")"» empty-array
// literal.
type EmptyArray struct {
	base
	Type Node
}

func (EmptyArray) isNode() {}

// EmptyOptional represents the «"no" type» empty-optional literal.
type EmptyOptional struct {
	base
	Type Node
}

func (EmptyOptional) isNode() {}

// ArrayLit represents a non-empty «"[" e1 "," ... "," en "]"» array
// literal.
type ArrayLit struct {
	base
	Elements []Node
}

func (ArrayLit) isNode() {}

// Conditional represents a «test "?" consequent ":" alternate»
// ternary expression.
type Conditional struct {
	base
	Test       Node
	Consequent Node
	Alternate  Node
}

func (Conditional) isNode() {}

// BinaryExpr represents any two-operand operator expression,
// including logical/bitwise chains before they are desugared into a
// left-associative cascade by the analyzer.
type BinaryExpr struct {
	base
	Left     Node
	Operator string
	Right    Node
}

func (BinaryExpr) isNode() {}

// NaryExpr represents a flat, left-associative chain of the same
// operator applied to three or more operands, as produced by the
// parser for logical/bitwise operator sequences (e.g. "a || b || c").
// The analyzer desugars this into a cascade of BinaryExpr nodes.
type NaryExpr struct {
	base
	Operator string
	Operands []Node
}

func (NaryExpr) isNode() {}

// UnaryExpr represents a «operator operand» prefix expression.
type UnaryExpr struct {
	base
	Operator string
	Operand  Node
}

func (UnaryExpr) isNode() {}

// Subscript represents an «array "[" index "]"» indexing expression.
type Subscript struct {
	base
	Array Node
	Index Node
}

func (Subscript) isNode() {}

// Member represents an «object "."|"?." name» field-access expression.
// Optional is true for the "?." optional-chaining form.
type Member struct {
	base
	Object   Node
	Field    *Identifier
	Optional bool
}

func (Member) isNode() {}

// Call represents a «callee "(" arguments ")"» call expression, used
// for both ordinary function calls and struct constructor calls.
type Call struct {
	base
	Callee    Node
	Arguments []Node
}

func (Call) isNode() {}
