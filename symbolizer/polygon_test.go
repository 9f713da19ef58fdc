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

package symbolizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baylisscg/geotools/model"
	"github.com/baylisscg/geotools/symbolizer"
)

func TestPolygonBasicFillAndOpacity(t *testing.T) {
	props := model.Properties{
		model.Root: model.PropertyBag{
			model.PropFill: []model.Value{model.Literal("#ff0000")},
			"fill-opacity":  []model.Value{model.Literal("0.5")},
		},
	}

	syms, err := symbolizer.Polygon(props)
	require.NoError(t, err)
	require.Len(t, syms, 1)
	require.Equal(t, "#ff0000", syms[0].Fill.Color)
	require.Equal(t, "0.5", syms[0].Fill.Opacity)
	require.Nil(t, syms[0].Stroke)
}

func TestPolygonIncludesStrokeWhenNoLineVendorOption(t *testing.T) {
	props := model.Properties{
		model.Root: model.PropertyBag{
			model.PropFill:   []model.Value{model.Literal("#ff0000")},
			model.PropStroke: []model.Value{model.Literal("black")},
		},
	}

	syms, err := symbolizer.Polygon(props)
	require.NoError(t, err)
	require.Len(t, syms, 1)
	require.NotNil(t, syms[0].Stroke)
	require.Equal(t, "black", syms[0].Stroke.Color)
}

func TestPolygonSkipsStrokeWhenLineVendorOptionPresent(t *testing.T) {
	props := model.Properties{
		model.Root: model.PropertyBag{
			model.PropFill:                []model.Value{model.Literal("#ff0000")},
			model.PropStroke:              []model.Value{model.Literal("black")},
			"-gt-stroke-label-obstacle":    []model.Value{model.Literal("true")},
		},
	}

	syms, err := symbolizer.Polygon(props)
	require.NoError(t, err)
	require.Len(t, syms, 1)
	require.Nil(t, syms[0].Stroke)
}

func TestPolygonNoFillProducesNothing(t *testing.T) {
	props := model.Properties{model.Root: model.PropertyBag{}}
	syms, err := symbolizer.Polygon(props)
	require.NoError(t, err)
	require.Nil(t, syms)
}
