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

// Program is the root of the parse tree: an ordered sequence of
// top-level statements.
type Program struct {
	base
	Statements []Node
}

func (Program) isNode() {}

// Identifier holds a parsed identifier in the parse tree.
type Identifier struct {
	base
	Name string
}

func (Identifier) isNode() {}

// VarDecl represents a «"let"|"const" name "=" expression ";"»
// variable declaration. ReadOnly is true for "const".
type VarDecl struct {
	base
	ReadOnly    bool
	Name        *Identifier
	Initializer Node
}

func (VarDecl) isNode() {}

// Field represents a single «name ":" type» entry in a struct
// declaration's field list.
type Field struct {
	base
	Name *Identifier
	Type Node
}

func (Field) isNode() {}

// StructDecl represents a «"struct" name "{" fields "}"» type
// declaration.
type StructDecl struct {
	base
	Name   *Identifier
	Fields []*Field
}

func (StructDecl) isNode() {}

// Param represents a single «name ":" type» entry in a function's
// parameter list.
type Param struct {
	base
	Name *Identifier
	Type Node
}

func (Param) isNode() {}

// FunctionDecl represents a «"function" name "(" params ")" [":" type]
// "{" body "}"» function declaration. ReturnType is nil when the
// declaration omits a return type (defaults to void).
type FunctionDecl struct {
	base
	Name       *Identifier
	Params     []*Param
	ReturnType Node
	Body       []Node
}

func (FunctionDecl) isNode() {}

// ArrayTypeExpr represents the «"[" base "]"» array-type syntax.
type ArrayTypeExpr struct {
	base
	Base Node
}

func (ArrayTypeExpr) isNode() {}

// OptionalTypeExpr represents the «base "?"» optional-type syntax.
type OptionalTypeExpr struct {
	base
	Base Node
}

func (OptionalTypeExpr) isNode() {}

// FunctionTypeExpr represents the «"(" params ")" "->" returnType»
// function-type syntax.
type FunctionTypeExpr struct {
	base
	Params []Node
	Return Node
}

func (FunctionTypeExpr) isNode() {}
