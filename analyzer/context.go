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

// Package analyzer walks a parser parse tree and produces a resolved
// semantic.Program, rejecting any source that violates Carlos's static
// semantics. It fails fast: the first violation found is returned as
// the sole error, rather than accumulated alongside others.
package analyzer

import (
	"sort"

	"github.com/rtoal/carlos-lang/semantic"
)

// Context is one lexical scope. Entities are added in declaration
// order and looked up by a binary search over a lazily sorted table,
// mirroring the name-table discipline of a larger symbol space without
// paying a sort on every insertion.
type Context struct {
	outer    *Context
	entries  nameTable
	sorted   bool
	inLoop   bool
	function *semantic.Function // enclosing function, nil at top level
}

type nameEntry struct {
	name   string
	entity semantic.Entity
}

type nameTable []nameEntry

func (t nameTable) Len() int           { return len(t) }
func (t nameTable) Swap(i, j int)      { t[i], t[j] = t[j], t[i] }
func (t nameTable) Less(i, j int) bool { return t[i].name < t[j].name }

// newRootContext returns the top-level context, with no enclosing
// scope or function.
func newRootContext() *Context {
	return &Context{}
}

// newChild returns a new scope nested inside c, inheriting its
// inLoop/function state unless overridden by the caller.
func (c *Context) newChild() *Context {
	return &Context{outer: c, inLoop: c.inLoop, function: c.function}
}

// sees reports whether name is visible from this scope, searching
// outward through enclosing scopes.
func (c *Context) sees(name string) bool {
	_, ok := c.lookup(name)
	return ok
}

// add binds name to entity in this scope. The caller must have
// already checked sees(name) to enforce the no-shadowing rule; add
// itself does not check, so that two-phase declarations (bind a
// placeholder, then fill it in) can re-add under the same name when
// updating in place is inconvenient.
func (c *Context) add(name string, entity semantic.Entity) {
	c.entries = append(c.entries, nameEntry{name: name, entity: entity})
	c.sorted = false
}

// lookup searches this scope and its enclosing scopes for name.
func (c *Context) lookup(name string) (semantic.Entity, bool) {
	for ctx := c; ctx != nil; ctx = ctx.outer {
		if e, ok := ctx.findLocal(name); ok {
			return e, true
		}
	}
	return nil, false
}

func (c *Context) findLocal(name string) (semantic.Entity, bool) {
	if !c.sorted {
		sort.Stable(c.entries)
		c.sorted = true
	}
	i := sort.Search(len(c.entries), func(i int) bool { return c.entries[i].name >= name })
	if i < len(c.entries) && c.entries[i].name == name {
		return c.entries[i].entity, true
	}
	return nil, false
}

// with runs action with a new child scope current, mirroring the
// nested-scope-by-closure idiom: the action's own declarations are
// entirely local to it.
func (c *Context) with(action func(*Context)) {
	action(c.newChild())
}
