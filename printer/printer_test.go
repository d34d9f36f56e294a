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

package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtoal/carlos-lang/analyzer"
	"github.com/rtoal/carlos-lang/parser"
	"github.com/rtoal/carlos-lang/printer"
)

var roundTripCases = []string{
	`const x = 1; let y = "false";`,
	`struct S {x: int} let y = S(1); print(y.x);`,
	`function square(x: int): int { return x * x; } function compose(): (int)->int { return square; }`,
	`let a = [](of int); let b = [1]; a = b;`,
	`for i in 0..<10 { print(i << 2); }`,
	`let x = 1; while x < 10 { x = x + 1; if x == 5 { break; } }`,
}

func TestRoundTripIdempotence(t *testing.T) {
	for _, src := range roundTripCases {
		t.Run(src, func(t *testing.T) {
			tree, err := parser.Parse(src)
			require.NoError(t, err)
			first, err := analyzer.Analyze(tree)
			require.NoError(t, err)

			printed := printer.Print(first)

			reparsedTree, err := parser.Parse(printed)
			require.NoError(t, err, "printed source must re-parse: %s", printed)
			second, err := analyzer.Analyze(reparsedTree)
			require.NoError(t, err, "printed source must re-analyze: %s", printed)

			assert.Equal(t, len(first.Statements), len(second.Statements))
			assert.Equal(t, printer.Print(second), printed, "printing should be a fixed point after one round trip")
		})
	}
}
