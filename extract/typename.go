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

// Package extract implements the extractor helpers of spec §4.B:
// TypeNames, ScaleRangeOf, and GuessFeatureType, each a focused walk over a
// selector (or a rule set) rather than a stateful analysis.
package extract

import (
	"sort"

	"github.com/baylisscg/geotools/model"
	"github.com/baylisscg/geotools/selector"
)

// TypeNames returns the set of TypeName names s references, sorted for
// deterministic iteration. If s references none, the result is
// [model.DefaultTypeName] (spec §4.B).
func TypeNames(s model.Selector) []string {
	names := map[string]bool{}
	referencesAny := false

	selector.Walk(s, func(n model.Selector) bool {
		if t, ok := n.(model.TypeNameSelector); ok {
			referencesAny = true
			if !t.IsDefault() {
				names[t.Name] = true
			}
		}
		return true
	})

	if !referencesAny || len(names) == 0 {
		return []string{model.DefaultTypeName}
	}

	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
