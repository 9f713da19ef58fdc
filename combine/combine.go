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

// Package combine implements the power-set combiner of spec §4.F: for a
// group of rules that may match simultaneously, enumerate the subsets that
// can, merge their property bags with specificity-weighted precedence, and
// cap the output at a configurable combination limit.
package combine

import (
	"sort"

	"github.com/mitchellh/hashstructure"
	"github.com/sirupsen/logrus"

	"github.com/baylisscg/geotools/model"
	"github.com/baylisscg/geotools/selector"
)

// DefaultMaxCombinations is the default combination cap (spec §6).
const DefaultMaxCombinations = 10000

// maxEligibleRules bounds the power-set universe exhaustively enumerated.
// A band with more candidate rules than this is itself pathological (2^n
// subsets); the lowest-specificity overflow rules are dropped before
// enumeration and a warning is logged, rather than materializing an
// intractable number of candidates before the cap can even apply.
const maxEligibleRules = 20

// Observer receives the documented capacity-exhaustion warning (spec §7)
// instead of the combiner failing the translation.
type Observer interface {
	Truncated(total, kept int)
}

type nopObserver struct{}

func (nopObserver) Truncated(int, int) {}

// NopObserver discards truncation notifications.
var NopObserver Observer = nopObserver{}

type candidate struct {
	indices     []int
	specificity model.Specificity
	selector    model.Selector
	rule        model.CssRule
}

// Combine enumerates combinable subsets of rules (already sorted by
// specificity descending, per spec §4.F's stated input contract), merges
// their property bags, and returns at most maxCombinations merged rules,
// always including every singleton subset regardless of the cap.
func Combine(rules []model.CssRule, maxCombinations int, observer Observer) []model.CssRule {
	if maxCombinations <= 0 {
		maxCombinations = DefaultMaxCombinations
	}
	if observer == nil {
		observer = NopObserver
	}

	if len(rules) > maxEligibleRules {
		logrus.WithFields(logrus.Fields{
			"rules": len(rules),
			"limit": maxEligibleRules,
		}).Warn("combine: dropping lowest-specificity rules before power-set enumeration")
		rules = rules[:maxEligibleRules]
	}

	n := len(rules)
	if n == 0 {
		return nil
	}

	specs := make([]model.Specificity, n)
	for i, r := range rules {
		specs[i] = selector.SpecificityOf(r.Selector)
	}

	buckets := map[uint64][]candidate{}

	for mask := 1; mask < (1 << uint(n)); mask++ {
		idxs := indicesOf(mask, n)

		combined := model.Selector(model.AcceptAll)
		for _, i := range idxs {
			combined = selector.And(combined, rules[i].Selector)
		}
		if model.IsReject(combined) {
			continue
		}

		anti := model.Selector(model.AcceptAll)
		for i := 0; i < n; i++ {
			if !contains(idxs, i) {
				anti = selector.And(anti, selector.Not(rules[i].Selector))
			}
		}
		if model.IsReject(selector.And(combined, anti)) {
			continue
		}

		aggSpec := model.Specificity{}
		for _, i := range idxs {
			aggSpec = aggSpec.Add(specs[i])
		}

		c := candidate{
			indices:     idxs,
			specificity: aggSpec,
			selector:    combined,
			rule: model.CssRule{
				Selector:   combined,
				Properties: mergeProperties(rules, idxs, specs),
				Comment:    mergeComments(rules, idxs),
			},
		}

		key, err := hashstructure.Hash(aggSpec, nil)
		if err != nil {
			key = 0
		}
		buckets[key] = append(buckets[key], c)
	}

	all := make([]candidate, 0, len(buckets))
	for _, bucket := range buckets {
		all = append(all, bucket...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return less(all[i], all[j])
	})

	kept := make([]candidate, 0, len(all))
	for _, c := range all {
		if len(kept) < maxCombinations || len(c.indices) == 1 {
			kept = append(kept, c)
		}
	}

	if len(kept) < len(all) {
		observer.Truncated(len(all), len(kept))
	}

	out := make([]model.CssRule, len(kept))
	for i, c := range kept {
		out[i] = c.rule
	}
	return out
}

// less implements the enumeration order fixed by spec §9 Open Question 3:
// specificity descending, then source position ascending, then subset
// cardinality ascending.
func less(a, b candidate) bool {
	if cmp := a.specificity.Compare(b.specificity); cmp != 0 {
		return cmp > 0 // higher specificity sorts first
	}
	if cmp := comparePositions(a.indices, b.indices); cmp != 0 {
		return cmp < 0
	}
	return len(a.indices) < len(b.indices)
}

func comparePositions(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func indicesOf(mask, n int) []int {
	idxs := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if mask&(1<<uint(i)) != 0 {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

func contains(idxs []int, i int) bool {
	for _, v := range idxs {
		if v == i {
			return true
		}
	}
	return false
}

// mergeProperties merges the property bags of the rules in idxs, with
// higher-specificity rules overwriting lower-specificity rules key-by-key
// at the (pseudoClass, propertyName) granularity (spec §4.F). Rules are
// applied from lowest to highest specificity so later writes win; equal
// specificity ties are broken by ascending source position, also applied
// last-wins.
func mergeProperties(rules []model.CssRule, idxs []int, specs []model.Specificity) model.Properties {
	order := append([]int(nil), idxs...)
	sort.SliceStable(order, func(a, b int) bool {
		return specs[order[a]].Less(specs[order[b]])
	})

	merged := model.Properties{}
	for _, i := range order {
		for pc, bag := range rules[i].Properties {
			dst, ok := merged[pc]
			if !ok {
				dst = model.PropertyBag{}
				merged[pc] = dst
			}
			for k, v := range bag {
				dst[k] = v
			}
		}
	}
	return merged
}

// mergeComments concatenates the comments of the rules in idxs, in
// ascending source-position order, skipping empty comments.
func mergeComments(rules []model.CssRule, idxs []int) string {
	var parts []string
	for _, i := range idxs {
		if rules[i].Comment != "" {
			parts = append(parts, rules[i].Comment)
		}
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "\n"
		}
		out += p
	}
	return out
}
