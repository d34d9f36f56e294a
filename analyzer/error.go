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
	"fmt"

	"github.com/pkg/errors"
	"github.com/rtoal/carlos-lang/ast"
)

// Error is the single semantic error returned by Analyze, carrying the
// position of the offending construct.
type Error struct {
	Pos     ast.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Message)
}

// errorf records a semantic violation at node's position and aborts
// the remainder of the analysis via panic, to be recovered at the top
// of Analyze. Unlike the accumulate-many-errors style, only the first
// violation reached ever surfaces.
func errorf(node ast.Node, format string, args ...interface{}) {
	pos := ast.Position{}
	if node != nil {
		pos = node.Pos()
	}
	panic(&Error{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// icef records an internal compiler error: a condition the analyzer's
// own invariants should have ruled out before this point. The message
// is prefixed with "INTERNAL ERROR" via pkg/errors; only the message
// text is kept (no stack trace), and Analyze recovers it like any
// other *Error.
func icef(node ast.Node, format string, args ...interface{}) {
	pos := ast.Position{}
	if node != nil {
		pos = node.Pos()
	}
	panic(&Error{
		Pos:     pos,
		Message: errors.Wrapf(fmt.Errorf(format, args...), "INTERNAL ERROR").Error(),
	})
}
