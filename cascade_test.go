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

package cascade_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	cascade "github.com/baylisscg/geotools"
	"github.com/baylisscg/geotools/model"
	"github.com/baylisscg/geotools/sld"
)

func rootRule(bag model.PropertyBag) model.CssRule {
	return model.CssRule{
		Selector:   model.AcceptAll,
		Properties: model.Properties{model.Root: bag},
	}
}

func TestTranslateSinglePolygon(t *testing.T) {
	sheet := cascade.Stylesheet{
		Rules: []model.CssRule{
			rootRule(model.PropertyBag{
				model.PropFill: []model.Value{model.Literal("#ff0000")},
			}),
		},
	}

	style, err := cascade.Translate(sheet)
	require.NoError(t, err)
	require.Len(t, style.FeatureTypeStyles, 1)

	poly := style.FeatureTypeStyles[0].Rules[0].Symbolizers[0].(sld.PolygonSymbolizer)
	require.Equal(t, "#ff0000", poly.Fill.Color)
}

func TestTranslateStampsGeneratedNameWhenAnonymous(t *testing.T) {
	sheet := cascade.Stylesheet{
		Rules: []model.CssRule{
			rootRule(model.PropertyBag{
				model.PropFill: []model.Value{model.Literal("#000000")},
			}),
		},
	}

	style, err := cascade.Translate(sheet)
	require.NoError(t, err)
	require.NotEmpty(t, style.Name)
}

func TestTranslatePreservesExplicitName(t *testing.T) {
	sheet := cascade.Stylesheet{
		Name: "my-style",
		Rules: []model.CssRule{
			rootRule(model.PropertyBag{
				model.PropFill: []model.Value{model.Literal("#000000")},
			}),
		},
	}

	style, err := cascade.Translate(sheet)
	require.NoError(t, err)
	require.Equal(t, "my-style", style.Name)
}

func TestTranslateWithCapOverridesDefault(t *testing.T) {
	var rules []model.CssRule
	for i := 0; i < 4; i++ {
		rules = append(rules, model.CssRule{
			Selector: model.DataSelector{Predicate: model.Predicate{
				Op: model.OpEQ, Attribute: "a", Value: model.Literal(string(rune('a' + i))),
			}},
			Properties: model.Properties{
				model.Root: model.PropertyBag{
					model.PropFill: []model.Value{model.Literal("#000000")},
				},
			},
		})
	}

	style, err := cascade.TranslateWithCap(cascade.Stylesheet{Rules: rules}, 2)
	require.NoError(t, err)
	require.NotEmpty(t, style.FeatureTypeStyles)
}

func TestTranslateFailsSynchronouslyOnInvalidValue(t *testing.T) {
	sheet := cascade.Stylesheet{
		Rules: []model.CssRule{
			rootRule(model.PropertyBag{
				model.PropRasterChannels: []model.Value{model.Literal("r"), model.Literal("g")},
			}),
		},
	}

	style, err := cascade.Translate(sheet)
	require.Error(t, err)
	require.Nil(t, style)
}
