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

// Package filter is the OGC filter AST and compiler of spec §4.H: it
// exposes one constructor per operator, named after the OGC filter
// operators (PropertyIsEqualTo, PropertyIsBetween, And, Or, Not, ...),
// specified here only as an interface plus a default in-module
// implementation, since the concrete filter factory is an external
// collaborator per spec's Non-goals.
package filter

// Filter is an OGC filter expression node.
type Filter interface {
	isFilter()
	ExprString() string
}

// Factory builds Filter nodes. A production embedding can supply its own
// Factory (e.g. backed by GeoTools' org.opengis.filter.Filter); DefaultFactory
// below is a conservative in-module implementation sufficient to drive the
// compiler's own tests.
type Factory interface {
	Include() Filter
	Exclude() Filter
	And(children ...Filter) Filter
	Or(children ...Filter) Filter
	Not(child Filter) Filter
	PropertyIsEqualTo(attribute, value string) Filter
	PropertyIsNotEqualTo(attribute, value string) Filter
	PropertyIsLessThan(attribute, value string) Filter
	PropertyIsLessThanOrEqualTo(attribute, value string) Filter
	PropertyIsGreaterThan(attribute, value string) Filter
	PropertyIsGreaterThanOrEqualTo(attribute, value string) Filter
	PropertyIsBetween(attribute, lower, upper string) Filter
	PropertyIsLike(attribute, pattern string) Filter
	FeatureId(ids ...string) Filter
}

type includeFilter struct{}
type excludeFilter struct{}
type andFilter struct{ children []Filter }
type orFilter struct{ children []Filter }
type notFilter struct{ child Filter }
type comparisonFilter struct {
	op        string
	attribute string
	value     string
	value2    string // only meaningful for BETWEEN
}
type featureIDFilter struct{ ids []string }

func (includeFilter) isFilter()    {}
func (excludeFilter) isFilter()    {}
func (andFilter) isFilter()        {}
func (orFilter) isFilter()         {}
func (notFilter) isFilter()        {}
func (comparisonFilter) isFilter() {}
func (featureIDFilter) isFilter()  {}

func (includeFilter) ExprString() string { return "INCLUDE" }
func (excludeFilter) ExprString() string { return "EXCLUDE" }

func (f andFilter) ExprString() string { return joinExprs("AND", f.children) }
func (f orFilter) ExprString() string  { return joinExprs("OR", f.children) }
func (f notFilter) ExprString() string { return "NOT (" + f.child.ExprString() + ")" }

func (f comparisonFilter) ExprString() string {
	if f.op == "BETWEEN" {
		return f.attribute + " BETWEEN " + f.value + " AND " + f.value2
	}
	if f.op == "LIKE" {
		return f.attribute + " LIKE " + f.value
	}
	return f.attribute + " " + f.op + " " + f.value
}

func (f featureIDFilter) ExprString() string {
	out := "FID("
	for i, id := range f.ids {
		if i > 0 {
			out += ", "
		}
		out += id
	}
	return out + ")"
}

func joinExprs(op string, children []Filter) string {
	out := "("
	for i, c := range children {
		if i > 0 {
			out += " " + op + " "
		}
		out += c.ExprString()
	}
	return out + ")"
}

// DefaultFactory is the conservative in-module Factory implementation.
type DefaultFactory struct{}

var _ Factory = DefaultFactory{}

func (DefaultFactory) Include() Filter { return includeFilter{} }
func (DefaultFactory) Exclude() Filter { return excludeFilter{} }

func (DefaultFactory) And(children ...Filter) Filter { return andFilter{children: children} }
func (DefaultFactory) Or(children ...Filter) Filter  { return orFilter{children: children} }
func (DefaultFactory) Not(child Filter) Filter       { return notFilter{child: child} }

func (DefaultFactory) PropertyIsEqualTo(attribute, value string) Filter {
	return comparisonFilter{op: "=", attribute: attribute, value: value}
}
func (DefaultFactory) PropertyIsNotEqualTo(attribute, value string) Filter {
	return comparisonFilter{op: "<>", attribute: attribute, value: value}
}
func (DefaultFactory) PropertyIsLessThan(attribute, value string) Filter {
	return comparisonFilter{op: "<", attribute: attribute, value: value}
}
func (DefaultFactory) PropertyIsLessThanOrEqualTo(attribute, value string) Filter {
	return comparisonFilter{op: "<=", attribute: attribute, value: value}
}
func (DefaultFactory) PropertyIsGreaterThan(attribute, value string) Filter {
	return comparisonFilter{op: ">", attribute: attribute, value: value}
}
func (DefaultFactory) PropertyIsGreaterThanOrEqualTo(attribute, value string) Filter {
	return comparisonFilter{op: ">=", attribute: attribute, value: value}
}
func (DefaultFactory) PropertyIsBetween(attribute, lower, upper string) Filter {
	return comparisonFilter{op: "BETWEEN", attribute: attribute, value: lower, value2: upper}
}
func (DefaultFactory) PropertyIsLike(attribute, pattern string) Filter {
	return comparisonFilter{op: "LIKE", attribute: attribute, value: pattern}
}
func (DefaultFactory) FeatureId(ids ...string) Filter {
	return featureIDFilter{ids: ids}
}
