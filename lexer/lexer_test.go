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

package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtoal/carlos-lang/lexer"
)

func kinds(toks []lexer.Token) []lexer.Kind {
	ks := make([]lexer.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func texts(toks []lexer.Token) []string {
	s := make([]string, len(toks))
	for i, t := range toks {
		s[i] = t.Text
	}
	return s
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	toks, err := lexer.New("let x = y;").Scan()
	require.NoError(t, err)
	assert.Equal(t, []string{"let", "x", "=", "y", ";", ""}, texts(toks))
	assert.Equal(t, lexer.Keyword, toks[0].Kind)
	assert.Equal(t, lexer.Ident, toks[1].Kind)
	assert.Equal(t, lexer.EOF, toks[len(toks)-1].Kind)
}

func TestScanMultiCharOperatorsLongestMatchFirst(t *testing.T) {
	toks, err := lexer.New("a ..< b ... c").Scan()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "..<", "b", "...", "c", ""}, texts(toks))
}

func TestScanNumbers(t *testing.T) {
	toks, err := lexer.New("3 3.14 2e10 2.5e-3").Scan()
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, lexer.Int, toks[0].Kind)
	assert.Equal(t, lexer.Float, toks[1].Kind)
	assert.Equal(t, lexer.Float, toks[2].Kind)
	assert.Equal(t, lexer.Float, toks[3].Kind)
}

func TestScanStringWithEscape(t *testing.T) {
	toks, err := lexer.New(`"a\"b"`).Scan()
	require.NoError(t, err)
	assert.Equal(t, lexer.String, toks[0].Kind)
	assert.Equal(t, `"a\"b"`, toks[0].Text)
}

func TestUnterminatedStringIsAnError(t *testing.T) {
	_, err := lexer.New(`"abc`).Scan()
	assert.Error(t, err)
}

func TestCommentsAreSkipped(t *testing.T) {
	toks, err := lexer.New("let x = 1; // trailing comment\nlet y = 2;").Scan()
	require.NoError(t, err)
	assert.NotContains(t, texts(toks), "//")
}

func TestPositionsTrackLineAndColumn(t *testing.T) {
	toks, err := lexer.New("let x\n= 1;").Scan()
	require.NoError(t, err)
	// "=" begins the second line.
	eq := toks[2]
	assert.Equal(t, "=", eq.Text)
	assert.Equal(t, 2, eq.Pos.Line)
}
