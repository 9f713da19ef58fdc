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

package symbolizer

import (
	"github.com/baylisscg/geotools/model"
	"github.com/baylisscg/geotools/sld"
)

// polygonVendorOptions is the Polygon vendor-option translation table of
// spec §6.
var polygonVendorOptions = map[model.PropertyName]string{
	"-gt-graphic-margin":           "graphic-margin",
	"-gt-fill-label-obstacle":      "labelObstacle",
	"-gt-fill-random":              "random",
	"-gt-fill-random-seed":         "random-seed",
	"-gt-fill-random-tile-size":    "random-tile-size",
	"-gt-fill-random-symbol-count": "random-symbol-count",
	"-gt-fill-random-space-around": "random-space-around",
	"-gt-fill-random-rotation":     "random-rotation",
}

// hasLineVendorOption reports whether bag carries any line-only vendor
// option; Polygon does not include a stroke block when one is present,
// since that signals the cascade wants the stroke as a distinct line
// symbolizer instead (spec §4.I "Polygon": "iff stroke exists and no
// line-specific vendor option is present").
func hasLineVendorOption(bag model.PropertyBag) bool {
	_, ok := bag["-gt-stroke-label-obstacle"]
	return ok
}

// Polygon synthesizes one PolygonSymbolizer per repetition index (spec
// §4.I "Polygon"), triggered by the presence of "fill".
func Polygon(props model.Properties) ([]sld.PolygonSymbolizer, error) {
	bag := props[model.Root]
	if !hasAny(bag, model.PropFill) {
		return nil, nil
	}

	n := repeatCount(bag, model.PropFill, model.PropStroke)
	out := make([]sld.PolygonSymbolizer, 0, n)
	for i := 0; i < n; i++ {
		sym := sld.PolygonSymbolizer{}

		fill, err := buildFill(props, bag, i)
		if err != nil {
			return nil, err
		}
		sym.Fill = fill

		if hasAny(bag, model.PropStroke) && !hasLineVendorOption(bag) {
			stroke, err := buildStroke(props, bag, i)
			if err != nil {
				return nil, err
			}
			sym.Stroke = stroke
		}

		if geom, ok := valueAt(bag, "fill-geometry", i); ok {
			sym.Geometry = geom.ToLiteral()
		}

		sym.VendorOptions = vendorOptions(bag, i, polygonVendorOptions)

		out = append(out, sym)
	}
	return out, nil
}

// vendorOptions projects every cartographic key in table present in bag
// into its SLD option-key equivalent at repetition index i.
func vendorOptions(bag model.PropertyBag, i int, table map[model.PropertyName]string) map[string]string {
	var out map[string]string
	for cartoKey, sldKey := range table {
		v, ok := valueAt(bag, cartoKey, i)
		if !ok {
			continue
		}
		if out == nil {
			out = map[string]string{}
		}
		out[sldKey] = v.ToLiteral()
	}
	return out
}
