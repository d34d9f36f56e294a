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

// Package ast defines the parse-tree node family produced by the
// lexer/parser front end and consumed by the analyzer. It is a closed,
// tagged set of plain structs — one shape per grammar construct — with
// no behaviour of its own beyond reporting a source position.
package ast

// Position identifies a single point in the source text, used for
// error reporting. It is a deliberately minimal replacement for a full
// concrete-syntax-tree fragment: the analyzer only ever needs to point
// a reader back at a line and column.
type Position struct {
	Line int // 1-based line number
	Col  int // 1-based column number
}

// Node is implemented by every parse-tree node.
type Node interface {
	isNode() // a dummy method implemented by all node types
	Pos() Position
}

// base is embedded in every node to carry its source position.
type base struct {
	At Position
}

func (b base) Pos() Position { return b.At }

// SetPos records the source position of the node embedding base. The
// parser calls this once a node's span is known, after the rest of its
// fields are filled in.
func (b *base) SetPos(p Position) { b.At = p }
