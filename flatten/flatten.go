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

// Package flatten implements the scale-range flattener of spec §4.E: the
// downstream SLD rule model cannot express a disjunction of scale ranges
// within a single rule, so an Or whose children mix scale-bearing and
// other selectors is split into sibling rules, one per scale-bearing
// child, plus a single rule for the recombined remainder.
//
// This intentionally shifts selectivity slightly for rules whose Or mixes
// scale-bearing and non-scale-bearing branches: a feature that matches two
// scale-bearing branches at once would, under the source cascade, match a
// single rule once, but here produces two sibling rules that both match it
// (spec §9 Open Question 1). That is documented, accepted behavior, not a
// bug — the caller's rule-list-flattening responsibility ends here; the
// following power-set combiner and coverage subtractor restore mutual
// exclusion downstream.
package flatten

import (
	"github.com/baylisscg/geotools/extract"
	"github.com/baylisscg/geotools/model"
)

// Flatten rewrites each Or-selector rule in rules into its sibling form,
// passing non-Or rules through unchanged.
func Flatten(rules []model.CssRule) []model.CssRule {
	out := make([]model.CssRule, 0, len(rules))
	for _, r := range rules {
		out = append(out, flattenRule(r)...)
	}
	return out
}

func flattenRule(r model.CssRule) []model.CssRule {
	orSel, ok := r.Selector.(model.OrSelector)
	if !ok {
		return []model.CssRule{r}
	}

	var scaleBearing, other []model.Selector
	for _, c := range orSel.Children {
		if _, ok := extract.ScaleRangeOf(c); ok {
			scaleBearing = append(scaleBearing, c)
		} else {
			other = append(other, c)
		}
	}

	var out []model.CssRule
	for _, c := range scaleBearing {
		out = append(out, model.CssRule{Selector: c, Properties: r.Properties, Comment: r.Comment})
	}

	switch len(other) {
	case 0:
	case 1:
		out = append(out, model.CssRule{Selector: other[0], Properties: r.Properties, Comment: r.Comment})
	default:
		out = append(out, model.CssRule{Selector: model.OrSelector{Children: other}, Properties: r.Properties, Comment: r.Comment})
	}

	return out
}
