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

package model

// Specificity is the lexicographic selector-complexity tuple used to rank
// rules deterministically (spec §3): (TypeNames, Ids, DataAtoms,
// ScaleRanges, ZIndexes).
type Specificity struct {
	TypeNames   int
	Ids         int
	DataAtoms   int
	ScaleRanges int
	ZIndexes    int
}

// Add returns the component-wise sum of two specificities, used by the
// power-set combiner to score a candidate subset by its aggregate
// specificity (spec §4.F).
func (s Specificity) Add(o Specificity) Specificity {
	return Specificity{
		TypeNames:   s.TypeNames + o.TypeNames,
		Ids:         s.Ids + o.Ids,
		DataAtoms:   s.DataAtoms + o.DataAtoms,
		ScaleRanges: s.ScaleRanges + o.ScaleRanges,
		ZIndexes:    s.ZIndexes + o.ZIndexes,
	}
}

// Compare returns -1, 0, or 1 as s is less than, equal to, or greater than
// o, comparing component-wise in declared (lexicographic) order.
func (s Specificity) Compare(o Specificity) int {
	pairs := [][2]int{
		{s.TypeNames, o.TypeNames},
		{s.Ids, o.Ids},
		{s.DataAtoms, o.DataAtoms},
		{s.ScaleRanges, o.ScaleRanges},
		{s.ZIndexes, o.ZIndexes},
	}
	for _, p := range pairs {
		if p[0] != p[1] {
			if p[0] < p[1] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether s is strictly less specific than o.
func (s Specificity) Less(o Specificity) bool { return s.Compare(o) < 0 }
