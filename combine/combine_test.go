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

package combine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baylisscg/geotools/combine"
	"github.com/baylisscg/geotools/model"
)

func rule(sel model.Selector, props model.Properties) model.CssRule {
	return model.CssRule{Selector: sel, Properties: props}
}

func bag(name model.PropertyName, lit string) model.Properties {
	return model.Properties{
		model.Root: model.PropertyBag{
			name: []model.Value{model.Literal(lit)},
		},
	}
}

func TestCombineSingleRulePassesThrough(t *testing.T) {
	r := rule(model.TypeNameSelector{Name: "roads"}, bag(model.PropFill, "red"))
	out := combine.Combine([]model.CssRule{r}, 0, nil)

	require.Len(t, out, 1)
	require.Equal(t, r.Selector, out[0].Selector)
}

func TestCombineDisjointRulesNeverMerge(t *testing.T) {
	a := rule(model.TypeNameSelector{Name: "roads"}, bag(model.PropFill, "red"))
	b := rule(model.TypeNameSelector{Name: "rivers"}, bag(model.PropFill, "blue"))

	out := combine.Combine([]model.CssRule{a, b}, 0, nil)

	require.Len(t, out, 2)
	for _, r := range out {
		require.NotEqual(t, 2, len(r.Properties[model.Root]))
	}
}

func TestCombineOverlappingRulesProduceMergedSubset(t *testing.T) {
	a := rule(model.DataSelector{Predicate: model.Predicate{Op: model.OpEQ, Attribute: "class", Value: model.Literal("major")}}, bag(model.PropStroke, "black"))
	b := rule(model.DataSelector{Predicate: model.Predicate{Op: model.OpEQ, Attribute: "surface", Value: model.Literal("paved")}}, bag(model.PropFill, "grey"))

	out := combine.Combine([]model.CssRule{a, b}, 0, nil)

	// a alone, b alone, and the merged a&b combination.
	require.Len(t, out, 3)

	foundMerged := false
	for _, r := range out {
		bagRoot := r.Properties[model.Root]
		if len(bagRoot) == 2 {
			foundMerged = true
			require.Contains(t, bagRoot, model.PropStroke)
			require.Contains(t, bagRoot, model.PropFill)
		}
	}
	require.True(t, foundMerged, "expected a merged subset carrying both properties")
}

func TestCombineHigherSpecificityOverwritesOnMerge(t *testing.T) {
	generic := rule(model.DataSelector{Predicate: model.Predicate{Op: model.OpEQ, Attribute: "class", Value: model.Literal("major")}}, bag(model.PropFill, "grey"))
	specific := rule(
		model.AndSelector{Children: []model.Selector{
			model.DataSelector{Predicate: model.Predicate{Op: model.OpEQ, Attribute: "class", Value: model.Literal("major")}},
			model.DataSelector{Predicate: model.Predicate{Op: model.OpEQ, Attribute: "surface", Value: model.Literal("paved")}},
		}},
		bag(model.PropFill, "red"),
	)

	out := combine.Combine([]model.CssRule{specific, generic}, 0, nil)

	var merged *model.CssRule
	for i := range out {
		if len(out[i].Properties[model.Root]) == 1 {
			if _, ok := out[i].Selector.(model.AndSelector); ok {
				merged = &out[i]
			}
		}
	}
	require.NotNil(t, merged)
	require.Equal(t, "red", merged.Properties[model.Root][model.PropFill][0].ToLiteral())
}

type countingObserver struct {
	total, kept int
	called      bool
}

func (o *countingObserver) Truncated(total, kept int) {
	o.called = true
	o.total = total
	o.kept = kept
}

func TestCombineCapTruncatesButKeepsSingletons(t *testing.T) {
	rules := make([]model.CssRule, 0, 6)
	for i := 0; i < 6; i++ {
		rules = append(rules, rule(
			model.DataSelector{Predicate: model.Predicate{Op: model.OpEQ, Attribute: "k", Value: model.Literal(string(rune('a' + i)))}},
			bag(model.PropertyName(string(rune('a'+i))), "v"),
		))
	}

	obs := &countingObserver{}
	out := combine.Combine(rules, 1, obs)

	require.True(t, obs.called)
	require.True(t, len(out) >= len(rules), "every singleton subset must survive the cap")
}
