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

import "math"

// ScaleRange is a semi-open interval [Min, Max) on denominator scale (spec
// §3). A Min of 0 means "no lower bound"; a Max of +Inf means "no upper
// bound".
type ScaleRange struct {
	Min float64
	Max float64
}

// Unbounded returns the scale range that admits every scale.
func Unbounded() ScaleRange { return ScaleRange{Min: 0, Max: math.Inf(1)} }

// IsUnbounded reports whether this range constrains neither side.
func (r ScaleRange) IsUnbounded() bool { return r.Min == 0 && math.IsInf(r.Max, 1) }

// IsEmpty reports whether the interval admits no scale at all.
func (r ScaleRange) IsEmpty() bool { return r.Min >= r.Max }

// Intersect returns the intersection of two scale ranges. The result may be
// empty (IsEmpty() == true) when the ranges are disjoint.
func (r ScaleRange) Intersect(o ScaleRange) ScaleRange {
	return ScaleRange{Min: math.Max(r.Min, o.Min), Max: math.Min(r.Max, o.Max)}
}

// Disjoint reports whether two scale ranges share no scale.
func (r ScaleRange) Disjoint(o ScaleRange) bool { return r.Intersect(o).IsEmpty() }

// Contains reports whether the range admits the given scale denominator.
func (r ScaleRange) Contains(scale float64) bool { return scale >= r.Min && scale < r.Max }

// Boundaries returns the distinct finite endpoints of the range, in the
// order they'd be used to split a sibling range: Min (if > 0), Max (if
// finite).
func (r ScaleRange) Boundaries() []float64 {
	var b []float64
	if r.Min > 0 {
		b = append(b, r.Min)
	}
	if !math.IsInf(r.Max, 1) {
		b = append(b, r.Max)
	}
	return b
}

// SplitAt splits r at every boundary in bounds that falls strictly inside
// it, returning the resulting sorted, contiguous sub-ranges. Used by the
// domain-coverage subtractor (spec §4.G) to carve a rule's scale range
// around previously-covered boundaries.
func (r ScaleRange) SplitAt(bounds []float64) []ScaleRange {
	if r.IsEmpty() {
		return nil
	}
	cuts := []float64{r.Min}
	for _, b := range bounds {
		if b > r.Min && b < r.Max {
			cuts = append(cuts, b)
		}
	}
	cuts = append(cuts, r.Max)
	// sort ascending (cuts is small; insertion sort keeps this allocation-free)
	for i := 1; i < len(cuts); i++ {
		for j := i; j > 0 && cuts[j] < cuts[j-1]; j-- {
			cuts[j], cuts[j-1] = cuts[j-1], cuts[j]
		}
	}
	out := make([]ScaleRange, 0, len(cuts)-1)
	for i := 0; i+1 < len(cuts); i++ {
		if cuts[i] < cuts[i+1] {
			out = append(out, ScaleRange{Min: cuts[i], Max: cuts[i+1]})
		}
	}
	return out
}
