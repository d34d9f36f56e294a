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

// Package printer reconstructs Carlos source text from a resolved
// program, and offers a debug dump of the resolved tree. Printing and
// re-parsing a program is the basis of the round-trip/idempotence
// property: printed source, re-analyzed, must yield a structurally
// equivalent program.
package printer

import (
	"fmt"
	"strings"

	"github.com/kr/pretty"
	"github.com/rtoal/carlos-lang/semantic"
)

// Print reconstructs textual Carlos source for prog.
func Print(prog *semantic.Program) string {
	p := &printer{}
	for _, s := range prog.Statements {
		p.statement(s)
	}
	return p.b.String()
}

// Dump renders node as a pretty-printed Go value, for debugging.
func Dump(node semantic.Node) string {
	return pretty.Sprint(node)
}

type printer struct {
	b     strings.Builder
	depth int
}

func (p *printer) indent() {
	p.b.WriteString(strings.Repeat("  ", p.depth))
}

func (p *printer) block(stmts []semantic.Node) {
	p.b.WriteString("{\n")
	p.depth++
	for _, s := range stmts {
		p.statement(s)
	}
	p.depth--
	p.indent()
	p.b.WriteString("}\n")
}

func (p *printer) statement(n semantic.Node) {
	p.indent()
	switch s := n.(type) {
	case *semantic.VariableDeclaration:
		kw := "let"
		if s.Variable.ReadOnly {
			kw = "const"
		}
		fmt.Fprintf(&p.b, "%s %s = %s;\n", kw, s.Variable.Name, p.expr(s.Initializer))
	case *semantic.StructTypeDeclaration:
		fmt.Fprintf(&p.b, "struct %s {", s.Type.Name)
		for i, f := range s.Type.Fields {
			if i > 0 {
				p.b.WriteString(", ")
			}
			fmt.Fprintf(&p.b, "%s: %s", f.Name, f.Type)
		}
		p.b.WriteString("}\n")
	case *semantic.FunctionDeclaration:
		fmt.Fprintf(&p.b, "function %s(", s.Function.Name)
		for i, param := range s.Function.Params {
			if i > 0 {
				p.b.WriteString(", ")
			}
			fmt.Fprintf(&p.b, "%s: %s", param.Name, param.Type)
		}
		p.b.WriteString(")")
		if s.Function.Type.ReturnType != semantic.VoidType {
			fmt.Fprintf(&p.b, ": %s", s.Function.Type.ReturnType)
		}
		p.b.WriteString(" ")
		p.block(s.Body)
	case *semantic.Increment:
		fmt.Fprintf(&p.b, "%s++;\n", p.expr(s.Target))
	case *semantic.Decrement:
		fmt.Fprintf(&p.b, "%s--;\n", p.expr(s.Target))
	case *semantic.Assignment:
		fmt.Fprintf(&p.b, "%s = %s;\n", p.expr(s.Target), p.expr(s.Source))
	case *semantic.BreakStatement:
		p.b.WriteString("break;\n")
	case *semantic.ShortReturnStatement:
		p.b.WriteString("return;\n")
	case *semantic.ReturnStatement:
		fmt.Fprintf(&p.b, "return %s;\n", p.expr(s.Expression))
	case *semantic.ShortIfStatement:
		fmt.Fprintf(&p.b, "if %s ", p.expr(s.Test))
		p.block(s.Consequent)
	case *semantic.IfStatement:
		fmt.Fprintf(&p.b, "if %s ", p.expr(s.Test))
		p.block(s.Consequent)
		p.indent()
		p.b.WriteString("else ")
		p.elseClause(s.Alternate)
	case *semantic.WhileStatement:
		fmt.Fprintf(&p.b, "while %s ", p.expr(s.Test))
		p.block(s.Body)
	case *semantic.RepeatStatement:
		fmt.Fprintf(&p.b, "repeat %s ", p.expr(s.Count))
		p.block(s.Body)
	case *semantic.ForRangeStatement:
		fmt.Fprintf(&p.b, "for %s in %s%s%s ", s.Iterator.Name, p.expr(s.Low), s.Op, p.expr(s.High))
		p.block(s.Body)
	case *semantic.ForOfStatement:
		fmt.Fprintf(&p.b, "for %s in %s ", s.Iterator.Name, p.expr(s.Collection))
		p.block(s.Body)
	default:
		// A call used as a statement.
		fmt.Fprintf(&p.b, "%s;\n", p.expr(n))
	}
}

// elseClause prints an else-clause without the leading indent, since
// the "else" keyword was already written by the caller.
func (p *printer) elseClause(n semantic.Node) {
	switch alt := n.(type) {
	case *semantic.IfStatement:
		fmt.Fprintf(&p.b, "if %s ", p.expr(alt.Test))
		p.block(alt.Consequent)
		p.indent()
		p.b.WriteString("else ")
		p.elseClause(alt.Alternate)
	case *semantic.ShortIfStatement:
		fmt.Fprintf(&p.b, "if %s ", p.expr(alt.Test))
		p.block(alt.Consequent)
	case *semantic.Block:
		p.block(alt.Statements)
	}
}

func (p *printer) expr(n semantic.Node) string {
	switch e := n.(type) {
	case *semantic.BoolLiteral:
		return fmt.Sprintf("%t", e.Value)
	case *semantic.IntLiteral:
		return e.Value.String()
	case *semantic.FloatLiteral:
		s := fmt.Sprintf("%g", e.Value)
		if !strings.ContainsAny(s, ".e") {
			s += ".0" // keep the literal a float when re-read
		}
		return s
	case *semantic.StringLiteral:
		return e.Value
	case *semantic.EmptyArray:
		return fmt.Sprintf("[](of %s)", e.Type.Base)
	case *semantic.EmptyOptional:
		return fmt.Sprintf("no %s", e.Type.Base)
	case *semantic.ArrayExpression:
		parts := make([]string, len(e.Elements))
		for i, el := range e.Elements {
			parts[i] = p.expr(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *semantic.Conditional:
		return fmt.Sprintf("(%s ? %s : %s)", p.expr(e.Test), p.expr(e.Consequent), p.expr(e.Alternate))
	case *semantic.BinaryExpression:
		return fmt.Sprintf("(%s %s %s)", p.expr(e.Left), e.Operator, p.expr(e.Right))
	case *semantic.UnaryExpression:
		if e.Operator == "some" {
			return fmt.Sprintf("(some %s)", p.expr(e.Operand))
		}
		return fmt.Sprintf("(%s%s)", e.Operator, p.expr(e.Operand))
	case *semantic.SubscriptExpression:
		return fmt.Sprintf("%s[%s]", p.expr(e.Array), p.expr(e.Index))
	case *semantic.MemberExpression:
		dot := "."
		if e.IsOptionalChain {
			dot = "?."
		}
		return fmt.Sprintf("%s%s%s", p.expr(e.Object), dot, e.Field.Name)
	case *semantic.Call:
		args := make([]string, len(e.Arguments))
		for i, arg := range e.Arguments {
			args[i] = p.expr(arg)
		}
		return fmt.Sprintf("%s(%s)", p.expr(e.Callee), strings.Join(args, ", "))
	case *semantic.IdentifierExpression:
		return entityName(e.Entity)
	default:
		return fmt.Sprintf("<?%T>", n)
	}
}

func entityName(e semantic.Entity) string {
	switch v := e.(type) {
	case *semantic.Variable:
		return v.Name
	case *semantic.Function:
		return v.Name
	case *semantic.StructType:
		return v.Name
	case *semantic.Primitive:
		return v.String()
	default:
		return fmt.Sprintf("<?%T>", e)
	}
}
