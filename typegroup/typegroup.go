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

// Package typegroup implements the type-name partitioner of spec §4.D:
// splitting a z-index band into one group per referenced feature-type name,
// injecting the type-name into each group's rule selectors.
package typegroup

import (
	"github.com/baylisscg/geotools/extract"
	"github.com/baylisscg/geotools/model"
	"github.com/baylisscg/geotools/selector"
)

// Group is one feature-type group: its type name and the rules restricted
// to it.
type Group struct {
	TypeName string
	Rules    []model.CssRule
}

// Partition splits a band into type-name groups, iterated in the stable
// insertion order the type names were first seen in (spec §4.D).
func Partition(rules []model.CssRule) []Group {
	var order []string
	seen := map[string]bool{}

	for _, r := range rules {
		for _, n := range extract.TypeNames(r.Selector) {
			if n == model.DefaultTypeName {
				continue
			}
			if !seen[n] {
				seen[n] = true
				order = append(order, n)
			}
		}
	}

	if len(order) == 0 {
		// The only name referenced (by any rule, or none at all) is DEFAULT:
		// emit a single group keyed by DEFAULT containing the band verbatim.
		return []Group{{TypeName: model.DefaultTypeName, Rules: append([]model.CssRule(nil), rules...)}}
	}

	groups := make([]Group, 0, len(order))
	for _, name := range order {
		var grouped []model.CssRule
		for _, r := range rules {
			combined := selector.And(model.TypeNameSelector{Name: name}, r.Selector)
			if model.IsReject(combined) {
				continue
			}
			grouped = append(grouped, model.CssRule{Selector: combined, Properties: r.Properties, Comment: r.Comment})
		}
		groups = append(groups, Group{TypeName: name, Rules: grouped})
	}
	return groups
}
