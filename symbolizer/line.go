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

// lineVendorOptions is the Line vendor-option translation table of spec §6.
var lineVendorOptions = map[model.PropertyName]string{
	"-gt-stroke-label-obstacle": "labelObstacle",
}

// Line synthesizes one LineSymbolizer per repetition index (spec §4.I
// "Line"), triggered by "stroke" when it wasn't already folded into a
// polygon symbolizer's own stroke block.
func Line(props model.Properties) ([]sld.LineSymbolizer, error) {
	bag := props[model.Root]
	if !hasAny(bag, model.PropStroke) {
		return nil, nil
	}
	if hasAny(bag, model.PropFill) && !hasLineVendorOption(bag) {
		// folded into the polygon symbolizer's own stroke block instead.
		return nil, nil
	}

	n := repeatCount(bag, model.PropStroke)
	out := make([]sld.LineSymbolizer, 0, n)
	for i := 0; i < n; i++ {
		stroke, err := buildStroke(props, bag, i)
		if err != nil {
			return nil, err
		}
		if stroke == nil {
			continue
		}

		sym := sld.LineSymbolizer{Stroke: *stroke}
		if geom, ok := valueAt(bag, "stroke-geometry", i); ok {
			sym.Geometry = geom.ToLiteral()
		}
		sym.VendorOptions = vendorOptions(bag, i, lineVendorOptions)

		out = append(out, sym)
	}
	return out, nil
}
