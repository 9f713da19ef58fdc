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

package zband_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baylisscg/geotools/model"
	"github.com/baylisscg/geotools/selector"
	"github.com/baylisscg/geotools/zband"
)

func strokeRule(color string, z *int) model.CssRule {
	sel := model.Selector(model.AcceptAll)
	if z != nil {
		sel = model.ZIndexSelector{Z: *z}
	}
	return model.CssRule{
		Selector:   sel,
		Properties: model.Properties{model.Root: model.PropertyBag{model.PropStroke: {model.Literal(color)}}},
	}
}

func TestPartitionSingleImplicitBand(t *testing.T) {
	rules := []model.CssRule{strokeRule("black", nil)}
	bands := zband.Partition(rules)
	require.Len(t, bands, 1)
	require.Equal(t, 0, bands[0].Z)
}

func TestPartitionOrdersBandsAscending(t *testing.T) {
	z0, z1 := 0, 1
	rules := []model.CssRule{strokeRule("white", &z1), strokeRule("black", &z0)}
	bands := zband.Partition(rules)
	require.Len(t, bands, 2)
	require.Equal(t, 0, bands[0].Z)
	require.Equal(t, 1, bands[1].Z)
}

func TestPartitionRuleWithoutZIndexAppearsInEveryBand(t *testing.T) {
	z1 := 1
	rules := []model.CssRule{strokeRule("black", nil), strokeRule("white", &z1)}
	bands := zband.Partition(rules)
	require.Len(t, bands, 2)
	require.Len(t, bands[0].Rules, 1) // only the no-z rule, since z1 rule doesn't match z=0
	require.Len(t, bands[1].Rules, 2) // no-z rule + the z1 rule
}

func TestPartitionDropsBandWithNoSymbolizerProperty(t *testing.T) {
	rule := model.CssRule{
		Selector:   model.ZIndexSelector{Z: 5},
		Properties: model.Properties{model.Root: model.PropertyBag{"title": {model.Literal("x")}}},
	}
	bands := zband.Partition([]model.CssRule{rule})
	require.Empty(t, bands)
}

func TestPartitionCombinedWithTypeNameSurvivesRestriction(t *testing.T) {
	sel := selector.And(model.TypeNameSelector{Name: "roads"}, model.ZIndexSelector{Z: 2})
	rule := model.CssRule{
		Selector:   sel,
		Properties: model.Properties{model.Root: model.PropertyBag{model.PropStroke: {model.Literal("red")}}},
	}
	bands := zband.Partition([]model.CssRule{rule})
	require.Len(t, bands, 1)
	require.Equal(t, 2, bands[0].Z)
	require.Equal(t, model.TypeNameSelector{Name: "roads"}, bands[0].Rules[0].Selector)
}
