// Copyright 2024 The Geotools Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import "strings"

// Kind discriminates the Value tagged variant (spec §3).
type Kind int

const (
	// KindLiteral is a textual token: a number, color, identifier, or
	// dimensioned quantity such as "12px" or "30deg".
	KindLiteral Kind = iota
	// KindFunction is a named constructor, e.g. symbol(...), url(...).
	KindFunction
	// KindMultiValue is a comma- or space-separated list of values, used for
	// repeated symbolizers, dash arrays, color maps, and concatenated labels.
	KindMultiValue
	// KindExpression wraps an already-promoted opaque OGC expression.
	KindExpression
)

// Expr is the opaque OGC expression a Value's Expression variant carries.
// Concrete implementations live in the filter package; model stays
// independent of the filter AST so that selector/model can be imported by
// filter without a cycle.
type Expr interface {
	ExprString() string
}

// Value is the tagged variant described in spec §3.
type Value struct {
	kind    Kind
	literal string
	fn      string
	args    []Value
	items   []Value
	expr    Expr
}

// Literal builds a textual-token Value.
func Literal(token string) Value { return Value{kind: KindLiteral, literal: token} }

// Function builds a named-constructor Value, e.g. symbol("circle").
func Function(name string, args ...Value) Value {
	return Value{kind: KindFunction, fn: name, args: args}
}

// MultiValue builds a repeated/list Value.
func MultiValue(items ...Value) Value { return Value{kind: KindMultiValue, items: items} }

// FromExpr wraps an already-promoted OGC expression as a Value.
func FromExpr(e Expr) Value { return Value{kind: KindExpression, expr: e} }

func (v Value) Kind() Kind        { return v.kind }
func (v Value) IsLiteral() bool   { return v.kind == KindLiteral }
func (v Value) IsFunction() bool  { return v.kind == KindFunction }
func (v Value) IsMultiValue() bool { return v.kind == KindMultiValue }
func (v Value) IsExpression() bool { return v.kind == KindExpression }

// LiteralToken returns the raw token of a Literal Value. Safe to call only
// when Kind() == KindLiteral; returns "" otherwise.
func (v Value) LiteralToken() string { return v.literal }

// FuncName returns the function name of a Function Value.
func (v Value) FuncName() string { return v.fn }

// Args returns the arguments of a Function Value.
func (v Value) Args() []Value { return v.args }

// Items returns the elements of a MultiValue.
func (v Value) Items() []Value { return v.items }

// Expr returns the opaque expression of an Expression Value.
func (v Value) Expr() Expr { return v.expr }

// ToLiteral yields the textual form of the value (spec §3).
func (v Value) ToLiteral() string {
	switch v.kind {
	case KindLiteral:
		return v.literal
	case KindFunction:
		parts := make([]string, len(v.args))
		for i, a := range v.args {
			parts[i] = a.ToLiteral()
		}
		return v.fn + "(" + strings.Join(parts, ", ") + ")"
	case KindMultiValue:
		parts := make([]string, len(v.items))
		for i, it := range v.items {
			parts[i] = it.ToLiteral()
		}
		return strings.Join(parts, ", ")
	case KindExpression:
		if v.expr != nil {
			return v.expr.ExprString()
		}
		return ""
	}
	return ""
}

// String implements fmt.Stringer for diagnostics and test output.
func (v Value) String() string { return v.ToLiteral() }

// AsList returns the value's elements when it is a MultiValue, or a
// single-element slice containing itself otherwise. Used throughout the
// symbolizer synthesizers wherever "a MultiValue or its scalar broadcast"
// is accepted.
func (v Value) AsList() []Value {
	if v.kind == KindMultiValue {
		return v.items
	}
	return []Value{v}
}
