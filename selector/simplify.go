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

package selector

import (
	"strconv"

	"github.com/baylisscg/geotools/model"
)

// Simplify recursively simplifies s, additionally folding a conjunction of
// Data predicates to Reject when ft marks their attribute numeric and their
// ranges cannot all hold (spec §4.A). Disjunctions are only re-joined
// through Or; a tautological disjunction of Data predicates is not folded
// to Accept. ft may be nil, in which case only the feature-type-independent
// reductions already performed by And/Or apply.
func Simplify(s model.Selector, ft *model.FeatureType) model.Selector {
	switch t := s.(type) {
	case model.AndSelector:
		children := make([]model.Selector, len(t.Children))
		for i, c := range t.Children {
			children[i] = Simplify(c, ft)
		}
		reduced := AndAll(children...)
		if and, ok := reduced.(model.AndSelector); ok {
			return foldNumericData(and, ft)
		}
		return reduced
	case model.OrSelector:
		children := make([]model.Selector, len(t.Children))
		for i, c := range t.Children {
			children[i] = Simplify(c, ft)
		}
		return OrAll(children...)
	case model.NotSelector:
		return Not(Simplify(t.Child, ft))
	default:
		return s
	}
}

// foldNumericData detects, among and.Children, pairs of Data predicates on
// the same numeric attribute whose ranges cannot simultaneously hold (spec
// §4.A, "may simplify Data predicates when a feature type is attached"),
// collapsing the whole conjunction to Reject when found.
func foldNumericData(and model.AndSelector, ft *model.FeatureType) model.Selector {
	if ft == nil {
		return and
	}

	type bound struct {
		hasMin, hasMax   bool
		min, max         float64
		minIncl, maxIncl bool
		eq               map[float64]bool
		ne               map[float64]bool
	}
	byAttr := map[string]*bound{}

	for _, c := range and.Children {
		d, ok := c.(model.DataSelector)
		if !ok {
			continue
		}
		if ft.KindOf(d.Predicate.Attribute) != model.AttrNumber {
			continue
		}
		v, ok := parseFloat(d.Predicate.Value)
		if !ok {
			continue
		}
		b := byAttr[d.Predicate.Attribute]
		if b == nil {
			b = &bound{eq: map[float64]bool{}, ne: map[float64]bool{}}
			byAttr[d.Predicate.Attribute] = b
		}
		switch d.Predicate.Op {
		case model.OpEQ:
			b.eq[v] = true
		case model.OpNE:
			b.ne[v] = true
		case model.OpLT:
			if !b.hasMax || v < b.max || (v == b.max && !b.maxIncl) {
				b.hasMax, b.max, b.maxIncl = true, v, false
			}
		case model.OpLE:
			if !b.hasMax || v < b.max {
				b.hasMax, b.max, b.maxIncl = true, v, true
			}
		case model.OpGT:
			if !b.hasMin || v > b.min || (v == b.min && !b.minIncl) {
				b.hasMin, b.min, b.minIncl = true, v, false
			}
		case model.OpGE:
			if !b.hasMin || v > b.min {
				b.hasMin, b.min, b.minIncl = true, v, true
			}
		}
	}

	for _, b := range byAttr {
		if b.hasMin && b.hasMax {
			if b.min > b.max || (b.min == b.max && !(b.minIncl && b.maxIncl)) {
				return model.RejectAll
			}
		}
		for v := range b.eq {
			if b.ne[v] {
				return model.RejectAll
			}
			if b.hasMin && (v < b.min || (v == b.min && !b.minIncl)) {
				return model.RejectAll
			}
			if b.hasMax && (v > b.max || (v == b.max && !b.maxIncl)) {
				return model.RejectAll
			}
		}
		if len(b.eq) > 1 {
			return model.RejectAll
		}
	}

	return and
}

func parseFloat(v model.Value) (float64, bool) {
	if !v.IsLiteral() {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.LiteralToken(), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
