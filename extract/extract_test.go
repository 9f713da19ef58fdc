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

package extract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baylisscg/geotools/extract"
	"github.com/baylisscg/geotools/model"
	"github.com/baylisscg/geotools/selector"
)

func TestTypeNamesDefaultWhenUnreferenced(t *testing.T) {
	got := extract.TypeNames(model.ScaleRangeSelector{Range: model.ScaleRange{Min: 0, Max: 1000}})
	require.Equal(t, []string{model.DefaultTypeName}, got)
}

func TestTypeNamesCollectsNonDefault(t *testing.T) {
	s := selector.And(model.TypeNameSelector{Name: "roads"}, model.ZIndexSelector{Z: 1})
	require.Equal(t, []string{"roads"}, extract.TypeNames(s))
}

func TestScaleRangeOfIntersectsAcrossAnd(t *testing.T) {
	s := selector.And(
		model.ScaleRangeSelector{Range: model.ScaleRange{Min: 0, Max: 2000}},
		model.ScaleRangeSelector{Range: model.ScaleRange{Min: 1000, Max: 5000}},
	)
	r, ok := extract.ScaleRangeOf(s)
	require.True(t, ok)
	require.Equal(t, model.ScaleRange{Min: 1000, Max: 2000}, r)
}

func TestScaleRangeOfFalseWhenUnconstrained(t *testing.T) {
	_, ok := extract.ScaleRangeOf(model.TypeNameSelector{Name: "roads"})
	require.False(t, ok)
}

func TestGuessFeatureTypeInfersNumericAndString(t *testing.T) {
	rules := []model.CssRule{
		{Selector: model.DataSelector{Predicate: model.Predicate{
			Op: model.OpGT, Attribute: "pop", Value: model.Literal("1000"),
		}}},
		{Selector: model.DataSelector{Predicate: model.Predicate{
			Op: model.OpEQ, Attribute: "name", Value: model.Literal("Main St"),
		}}},
	}
	ft := extract.GuessFeatureType("streets", rules)
	require.Equal(t, model.AttrNumber, ft.KindOf("pop"))
	require.Equal(t, model.AttrString, ft.KindOf("name"))
}

func TestGuessFeatureTypeInfersGeometryFromGeometryProperty(t *testing.T) {
	rules := []model.CssRule{
		{Properties: model.Properties{model.Root: model.PropertyBag{
			"stroke-geometry": {model.Literal("[centerline]")},
		}}},
	}
	ft := extract.GuessFeatureType("streets", rules)
	require.Equal(t, model.AttrGeometry, ft.KindOf("centerline"))
}
