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

package extract

import "github.com/baylisscg/geotools/model"

// ScaleRangeOf returns the single [min, max) range s admits, or ok == false
// when s imposes no scale constraint at all. Conjunctions intersect ranges
// found along And-only paths; disjunctions over scale ranges are not
// resolved here — they are rejected at this layer and handled by the
// flatten package (spec §4.B, §4.E).
func ScaleRangeOf(s model.Selector) (model.ScaleRange, bool) {
	switch t := s.(type) {
	case model.ScaleRangeSelector:
		return t.Range, true
	case model.AndSelector:
		result := model.Unbounded()
		found := false
		for _, c := range t.Children {
			if r, ok := ScaleRangeOf(c); ok {
				result = result.Intersect(r)
				found = true
			}
		}
		return result, found
	default:
		return model.ScaleRange{}, false
	}
}
