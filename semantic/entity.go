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

package semantic

// Entity is anything that can be bound to a name in a Context:
// variables, functions, struct types, and parameters.
type Entity interface {
	entityName() string
}

// Variable is a binding introduced by a let/const declaration, a
// function parameter, or a for-loop iterator.
type Variable struct {
	Name     string
	ReadOnly bool
	Type     Type
}

func (v *Variable) entityName() string { return v.Name }

// Function is the entity bound to a function declaration's name. Its
// Type is filled in once the signature is known, before the body is
// analyzed, so that a recursive call inside the body resolves.
type Function struct {
	Name string
	Type *FunctionType
	// Params names the formal parameters in order, for binding into
	// the body's scope; their types live in Type.ParamTypes.
	Params []*Variable
}

func (f *Function) entityName() string { return f.Name }

func (s *StructType) entityName() string { return s.Name }
