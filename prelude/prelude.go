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

// Package prelude supplies the standard-library bindings installed
// into the root context before a program is analyzed: the constant π,
// a handful of math functions, a bool conversion, and a variadic print.
package prelude

import "github.com/rtoal/carlos-lang/semantic"

func function(name string, params []semantic.Type, ret semantic.Type) *semantic.Function {
	return &semantic.Function{
		Name: name,
		Type: &semantic.FunctionType{ParamTypes: params, ReturnType: ret},
	}
}

func variadicFunction(name string, each semantic.Type, ret semantic.Type) *semantic.Function {
	return &semantic.Function{
		Name: name,
		Type: &semantic.FunctionType{ParamTypes: []semantic.Type{each}, ReturnType: ret, Variadic: true},
	}
}

// Bindings returns the name-to-entity table installed in the root
// context. It is built fresh on every call so that callers never share
// mutable entity state across independent analyses.
func Bindings() map[string]semantic.Entity {
	f := semantic.FloatType
	b := semantic.BoolType

	return map[string]semantic.Entity{
		"π":     &semantic.Variable{Name: "π", ReadOnly: true, Type: f},
		"print":  variadicFunction("print", semantic.AnyType, semantic.VoidType),
		"sin":    function("sin", []semantic.Type{f}, f),
		"cos":    function("cos", []semantic.Type{f}, f),
		"exp":    function("exp", []semantic.Type{f}, f),
		"ln":     function("ln", []semantic.Type{f}, f),
		"hypot":  function("hypot", []semantic.Type{f, f}, f),
		"bool":   function("bool", []semantic.Type{semantic.AnyType}, b),
	}
}
