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
	"github.com/rtoal/carlos-lang/ast"
	"github.com/rtoal/carlos-lang/prelude"
	"github.com/rtoal/carlos-lang/semantic"
)

// Analyze walks prog and returns its resolved representation, or the
// first semantic error encountered. Two invocations on an
// unchanged parse tree always produce structurally identical results.
func Analyze(prog *ast.Program) (result *semantic.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ae, ok := r.(*Error); ok {
				err = ae
				return
			}
			panic(r)
		}
	}()

	root := newRootContext()
	for name, p := range semantic.Primitives {
		root.add(name, p)
	}
	for name, entity := range prelude.Bindings() {
		root.add(name, entity)
	}

	a := &analyzer{ctx: root}
	var stmts []semantic.Node
	for _, s := range prog.Statements {
		stmts = append(stmts, a.statement(s))
	}
	return &semantic.Program{Statements: stmts}, nil
}

// analyzer carries the context current at the point of traversal. It
// is a thin wrapper rather than free functions taking a *Context
// parameter so that swapping the context for the duration of a nested
// scope (with) reads naturally at each call site.
type analyzer struct {
	ctx *Context
}

// with runs action with the analyzer's context replaced by a new child
// scope for its duration, then restores the original context.
func (a *analyzer) with(configure func(*Context), action func()) {
	original := a.ctx
	a.ctx = original.newChild()
	if configure != nil {
		configure(a.ctx)
	}
	action()
	a.ctx = original
}

func (a *analyzer) statements(nodes []ast.Node) []semantic.Node {
	var out []semantic.Node
	for _, n := range nodes {
		out = append(out, a.statement(n))
	}
	return out
}
