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

// Package lexer turns Carlos source text into a flat token stream for
// the parser. It is a hand-rolled scanner rather than a
// parser-combinator or lexer-generator output, matching the style of
// every compiler front end in the retrieval pack (none of them pulls
// in a lexer-generator dependency).
package lexer

import "github.com/rtoal/carlos-lang/ast"

// Kind identifies the lexical category of a Token.
type Kind int

const (
	EOF Kind = iota
	Ident
	Keyword
	Int
	Float
	String
	Operator
)

// Token is a single lexical unit together with its source position.
type Token struct {
	Kind  Kind
	Text  string
	Pos   ast.Position
}

var keywords = map[string]bool{
	"let": true, "const": true, "struct": true, "function": true,
	"break": true, "return": true, "if": true, "else": true,
	"while": true, "repeat": true, "for": true, "in": true,
	"true": true, "false": true, "no": true, "of": true, "some": true,
}

func isKeyword(s string) bool { return keywords[s] }
