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

package sld_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/baylisscg/geotools/filter"
	"github.com/baylisscg/geotools/sld"
)

// filterOpt compares filter.Filter values by their rendered expression
// string: the concrete filter node types are unexported (an external
// filter-factory library's own nodes, per spec's Non-goals), so go-cmp
// cannot traverse them structurally without this.
var filterOpt = cmp.Comparer(func(a, b filter.Filter) bool {
	return a.ExprString() == b.ExprString()
})

func roadStyle(color string) *sld.Style {
	return &sld.Style{
		Name: "roads",
		FeatureTypeStyles: []sld.FeatureTypeStyle{
			{
				FeatureTypeNames: []string{"roads"},
				Rules: []sld.Rule{
					{
						Filter: filter.Compile(nil, filter.DefaultFactory{}),
						Symbolizers: []sld.Symbolizer{
							sld.LineSymbolizer{Stroke: sld.Stroke{Color: color, Width: "2"}},
						},
					},
				},
			},
		},
	}
}

func TestStyleDiffIsEmptyForEquivalentTrees(t *testing.T) {
	a := roadStyle("#ff0000")
	b := roadStyle("#ff0000")

	diff := cmp.Diff(a, b, filterOpt)
	require.Empty(t, diff, "expected equivalent trees to have no structural diff")
}

func TestStyleDiffSurfacesSymbolizerMismatch(t *testing.T) {
	a := roadStyle("#ff0000")
	b := roadStyle("#0000ff")

	diff := cmp.Diff(a, b, filterOpt)
	require.NotEmpty(t, diff)
	require.Contains(t, diff, "ff0000")
	require.Contains(t, diff, "0000ff")
}
