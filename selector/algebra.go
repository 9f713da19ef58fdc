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

// Package selector implements the selector boolean algebra of spec §4.A:
// And, Or, Not, Simplify, Specificity, and the tree-walking helpers every
// later pass needs. It operates on model.Selector, the tagged variant
// defined in package model.
package selector

import (
	"reflect"

	"github.com/baylisscg/geotools/model"
)

// And conjoins two selectors, normalizing, short-circuiting to Reject when
// either side is Reject or when the conjunction holds both x and Not(x),
// flattening nested And nodes, and merging TypeName/ScaleRange atoms per
// spec §4.A.
func And(a, b model.Selector) model.Selector {
	conjuncts := append(collectAnd(a), collectAnd(b)...)
	return buildAnd(conjuncts)
}

// AndAll folds And across a slice, returning Accept for an empty slice.
func AndAll(selectors ...model.Selector) model.Selector {
	result := model.Selector(model.AcceptAll)
	for _, s := range selectors {
		result = And(result, s)
	}
	return result
}

// Or disjoins two selectors, short-circuiting to Accept when either side is
// Accept, and flattening nested Or nodes.
func Or(a, b model.Selector) model.Selector {
	disjuncts := append(collectOr(a), collectOr(b)...)
	return buildOr(disjuncts)
}

// OrAll folds Or across a slice, returning Reject for an empty slice.
func OrAll(selectors ...model.Selector) model.Selector {
	result := model.Selector(model.RejectAll)
	for _, s := range selectors {
		result = Or(result, s)
	}
	return result
}

// Not negates a selector, collapsing Not(Accept), Not(Reject), and
// Not(Not(x)) to their canonical form.
func Not(s model.Selector) model.Selector {
	switch t := s.(type) {
	case model.AcceptSelector:
		return model.RejectAll
	case model.RejectSelector:
		return model.AcceptAll
	case model.NotSelector:
		return t.Child
	default:
		return model.NotSelector{Child: s}
	}
}

// Disjoint reports whether a and b cannot both match any feature, i.e.
// And(a, b) simplifies to Reject.
func Disjoint(a, b model.Selector) bool {
	return model.IsReject(And(a, b))
}

func collectAnd(s model.Selector) []model.Selector {
	switch t := s.(type) {
	case model.AcceptSelector:
		return nil
	case model.AndSelector:
		var out []model.Selector
		for _, c := range t.Children {
			out = append(out, collectAnd(c)...)
		}
		return out
	default:
		return []model.Selector{s}
	}
}

func collectOr(s model.Selector) []model.Selector {
	switch t := s.(type) {
	case model.RejectSelector:
		return nil
	case model.OrSelector:
		var out []model.Selector
		for _, c := range t.Children {
			out = append(out, collectOr(c)...)
		}
		return out
	default:
		return []model.Selector{s}
	}
}

func buildAnd(conjuncts []model.Selector) model.Selector {
	for _, c := range conjuncts {
		if model.IsReject(c) {
			return model.RejectAll
		}
	}
	for i, c := range conjuncts {
		n, ok := c.(model.NotSelector)
		if !ok {
			continue
		}
		for j, d := range conjuncts {
			if i != j && reflect.DeepEqual(n.Child, d) {
				return model.RejectAll
			}
		}
	}

	var typeName *model.TypeNameSelector
	var scaleRange *model.ScaleRange
	var rest []model.Selector

	for _, c := range conjuncts {
		switch v := c.(type) {
		case model.TypeNameSelector:
			if typeName == nil {
				tn := v
				typeName = &tn
				continue
			}
			merged, ok := mergeTypeName(*typeName, v)
			if !ok {
				return model.RejectAll
			}
			typeName = &merged
		case model.ScaleRangeSelector:
			if scaleRange == nil {
				sr := v.Range
				scaleRange = &sr
				continue
			}
			inter := scaleRange.Intersect(v.Range)
			if inter.IsEmpty() {
				return model.RejectAll
			}
			*scaleRange = inter
		default:
			rest = append(rest, c)
		}
	}

	var result []model.Selector
	if typeName != nil {
		result = append(result, *typeName)
	}
	if scaleRange != nil {
		result = append(result, model.ScaleRangeSelector{Range: *scaleRange})
	}
	result = append(result, rest...)

	switch len(result) {
	case 0:
		return model.AcceptAll
	case 1:
		return result[0]
	default:
		return model.AndSelector{Children: result}
	}
}

func buildOr(disjuncts []model.Selector) model.Selector {
	for _, d := range disjuncts {
		if model.IsAccept(d) {
			return model.AcceptAll
		}
	}

	switch len(disjuncts) {
	case 0:
		return model.RejectAll
	case 1:
		return disjuncts[0]
	default:
		return model.OrSelector{Children: disjuncts}
	}
}

// mergeTypeName implements spec §4.A's TypeName conjunction rule: two
// distinct non-default names reject; one default yields the other.
func mergeTypeName(a, b model.TypeNameSelector) (model.TypeNameSelector, bool) {
	if a.IsDefault() {
		return b, true
	}
	if b.IsDefault() {
		return a, true
	}
	if a.Name == b.Name {
		return a, true
	}
	return model.TypeNameSelector{}, false
}
