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

// Package coverage implements the domain-coverage subtractor of spec §4.G:
// given rules already sorted by specificity descending, it carves each
// rule's (scale range, filter) domain down to the portion not already
// covered by a higher-specificity rule, guaranteeing that at most one
// emitted SLD rule ever matches a given (scale, feature) pair.
package coverage

import (
	"github.com/baylisscg/geotools/model"
	"github.com/baylisscg/geotools/selector"
)

// band tracks, for one scale sub-interval already carved out by prior
// rules, the union of filters that cover it.
type band struct {
	scaleRange model.ScaleRange
	filters    []model.Selector
}

// accumulator is the running `covered` state of spec §4.G.
type accumulator struct {
	bands []band
}

func newAccumulator() *accumulator {
	return &accumulator{bands: []band{{scaleRange: model.Unbounded()}}}
}

// boundaries returns every scale-range endpoint so far recorded.
func (a *accumulator) boundaries() []float64 {
	var out []float64
	for _, b := range a.bands {
		out = append(out, b.scaleRange.Boundaries()...)
	}
	return out
}

// coveringFilters returns the filters covering any part of sr.
func (a *accumulator) coveringFilters(sr model.ScaleRange) []model.Selector {
	var out []model.Selector
	for _, b := range a.bands {
		if !b.scaleRange.Disjoint(sr) {
			out = append(out, b.filters...)
		}
	}
	return out
}

// union merges a newly emitted rule's domain into the accumulator.
func (a *accumulator) union(d model.Domain) {
	a.bands = append(a.bands, band{scaleRange: d.ScaleRange, filters: []model.Selector{d.Filter}})
}

// Subtract runs spec §4.G over rules, which must already be sorted by
// specificity descending (the responsibility of the caller, per the
// documented pipeline order combine -> sort -> subtract coverage). Each
// input rule's scale range and filter selector are derived by the caller
// (via extract.ScaleRangeOf and the selector residue) and passed in
// through domainOf; each emitted sub-domain keeps the input rule's
// properties and comment.
func Subtract(rules []model.CssRule, domainOf func(model.CssRule) model.Domain) []model.CssRule {
	acc := newAccumulator()
	var out []model.CssRule

	for _, r := range rules {
		d := domainOf(r)

		subRanges := d.ScaleRange.SplitAt(acc.boundaries())
		for _, sr := range subRanges {
			covering := acc.coveringFilters(sr)
			filter := d.Filter
			if len(covering) > 0 {
				excluded := selector.Not(selector.OrAll(covering...))
				filter = selector.And(filter, excluded)
			}
			if model.IsReject(filter) {
				continue
			}

			out = append(out, model.CssRule{
				Selector:   restrictScale(filter, sr),
				Properties: r.Properties,
				Comment:    r.Comment,
			})
		}

		acc.union(d)
	}

	return out
}

// restrictScale conjoins filter with sr's bound, unless sr is unbounded (in
// which case filter alone already denotes the full domain).
func restrictScale(filter model.Selector, sr model.ScaleRange) model.Selector {
	if sr.IsUnbounded() {
		return filter
	}
	return selector.And(filter, model.ScaleRangeSelector{Range: sr})
}
