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

import "github.com/baylisscg/geotools/model"

// SpecificityOf computes the lexicographic specificity tuple of s (spec
// §3): counts of TypeName, Id, Data, ScaleRange atoms, plus ZIndex
// pseudo-classes, over the whole selector tree.
func SpecificityOf(s model.Selector) model.Specificity {
	var out model.Specificity
	Walk(s, func(n model.Selector) bool {
		switch n.(type) {
		case model.TypeNameSelector:
			out.TypeNames++
		case model.IdSelector:
			out.Ids++
		case model.DataSelector:
			out.DataAtoms++
		case model.ScaleRangeSelector:
			out.ScaleRanges++
		case model.ZIndexSelector:
			out.ZIndexes++
		}
		return true
	})
	return out
}
