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

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtoal/carlos-lang/ast"
	"github.com/rtoal/carlos-lang/parser"
)

var validSources = []string{
	`let x = 1;`,
	`const pi = 3.14;`,
	`struct Point {x: int, y: int}`,
	`function add(x: int, y: int): int { return x + y; }`,
	`function compose(): (int)->int { return add; }`,
	`let a = [](of int); let b = [1, 2, 3];`,
	`let o = no int;`,
	`if x < 10 { print(x); } else if x < 20 { print(1); } else { print(2); }`,
	`while x < 10 { x++; }`,
	`repeat 5 { x--; }`,
	`for i in 0..<10 { print(i); }`,
	`for i in 0...10 { print(i); }`,
	`for i in a { print(i); }`,
	`let y = x ?? 0;`,
	`let z = a[0].b?.c;`,
	`let w = x ? 1 : 2;`,
	`let v = 1 || 2 && 3 | 4 ^ 5 & 6;`,
	`let u = -x + #a * 2 ** 3;`,
	`f(1, 2, 3);`,
}

func TestParseValidPrograms(t *testing.T) {
	for _, src := range validSources {
		t.Run(src, func(t *testing.T) {
			tree, err := parser.Parse(src)
			require.NoError(t, err)
			assert.NotNil(t, tree)
		})
	}
}

var invalidSources = []string{
	`let x = ;`,
	`struct S {x int}`,
	`function f(x: int int) {}`,
	`if x { `,
	`let x = 1`,
}

func TestParseInvalidPrograms(t *testing.T) {
	for _, src := range invalidSources {
		t.Run(src, func(t *testing.T) {
			_, err := parser.Parse(src)
			assert.Error(t, err)
		})
	}
}

func TestPowerIsRightAssociative(t *testing.T) {
	tree, err := parser.Parse(`let x = 2 ** 3 ** 2;`)
	require.NoError(t, err)
	decl := tree.Statements[0].(*ast.VarDecl)
	bin := decl.Initializer.(*ast.BinaryExpr)
	assert.Equal(t, ast.OpPow, bin.Operator)
	_, rightIsPow := bin.Right.(*ast.BinaryExpr)
	assert.True(t, rightIsPow, "2 ** 3 ** 2 should parse as 2 ** (3 ** 2)")
}

func TestLogicalChainDesugarsToNaryExpr(t *testing.T) {
	tree, err := parser.Parse(`let x = a || b || c;`)
	require.NoError(t, err)
	decl := tree.Statements[0].(*ast.VarDecl)
	n, ok := decl.Initializer.(*ast.NaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpOr, n.Operator)
	assert.Len(t, n.Operands, 3)
}

func TestForRangeVsForOf(t *testing.T) {
	tree, err := parser.Parse(`for i in 0..<10 { print(i); }`)
	require.NoError(t, err)
	_, ok := tree.Statements[0].(*ast.ForRange)
	assert.True(t, ok)

	tree2, err := parser.Parse(`for i in xs { print(i); }`)
	require.NoError(t, err)
	_, ok2 := tree2.Statements[0].(*ast.ForOf)
	assert.True(t, ok2)
}
