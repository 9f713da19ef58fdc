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

// Package zband implements the z-index partitioner of spec §4.C: splitting
// a flat rule list into bands keyed by z-index, each carrying the
// restriction of every rule to that band.
package zband

import (
	"sort"

	"github.com/baylisscg/geotools/model"
	"github.com/baylisscg/geotools/selector"
)

// Band is one z-index band: its z value and the sub-rules restricted to it.
type Band struct {
	Z     int
	Rules []model.CssRule
}

// Partition splits rules into ascending z-index bands (spec §4.C). A band
// is emitted only when at least one of its sub-rules carries a
// symbolizer-producing property.
func Partition(rules []model.CssRule) []Band {
	zset := collectZIndexes(rules)

	bands := make([]Band, 0, len(zset))
	for _, z := range zset {
		var subRules []model.CssRule
		hasSymbolizer := false

		for _, r := range rules {
			restricted := restrictZIndex(r.Selector, z)
			if model.IsReject(restricted) {
				continue
			}
			sub := model.CssRule{Selector: restricted, Properties: r.Properties, Comment: r.Comment}
			subRules = append(subRules, sub)
			if sub.HasSymbolizerProperty() {
				hasSymbolizer = true
			}
		}

		if hasSymbolizer {
			bands = append(bands, Band{Z: z, Rules: subRules})
		}
	}

	return bands
}

// collectZIndexes returns the ascending, deduplicated set of z-index values
// referenced by any rule. A rule that declares no z-index contributes the
// implicit band z=0, so an empty rule list also yields the single band z=0.
func collectZIndexes(rules []model.CssRule) []int {
	seen := map[int]bool{}
	for _, r := range rules {
		zs := selector.Collect(r.Selector, func(n model.Selector) bool {
			_, ok := n.(model.ZIndexSelector)
			return ok
		})
		if len(zs) == 0 {
			seen[0] = true
		}
		for _, n := range zs {
			seen[n.(model.ZIndexSelector).Z] = true
		}
	}
	if len(seen) == 0 {
		return []int{0}
	}
	out := make([]int, 0, len(seen))
	for z := range seen {
		out = append(out, z)
	}
	sort.Ints(out)
	return out
}

// restrictZIndex rewrites s for a single z-index band: every ZIndexSelector
// atom becomes Accept if it matches z, Reject otherwise, and the
// surrounding And/Or/Not structure is re-simplified through the algebra so
// a Reject anywhere in a conjunction collapses the whole sub-rule.
func restrictZIndex(s model.Selector, z int) model.Selector {
	switch t := s.(type) {
	case model.ZIndexSelector:
		if t.Z == z {
			return model.AcceptAll
		}
		return model.RejectAll
	case model.AndSelector:
		result := model.Selector(model.AcceptAll)
		for _, c := range t.Children {
			result = selector.And(result, restrictZIndex(c, z))
		}
		return result
	case model.OrSelector:
		result := model.Selector(model.RejectAll)
		for _, c := range t.Children {
			result = selector.Or(result, restrictZIndex(c, z))
		}
		return result
	case model.NotSelector:
		return selector.Not(restrictZIndex(t.Child, z))
	default:
		return s
	}
}
