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

// pointVendorOptions is the Point vendor-option translation table of spec
// §6.
var pointVendorOptions = map[model.PropertyName]string{
	"-gt-mark-label-obstacle": "labelObstacle",
}

// Point synthesizes one PointSymbolizer per mark value (spec §4.I
// "Point"), triggered by the presence of "mark".
func Point(props model.Properties) ([]sld.PointSymbolizer, error) {
	bag := props[model.Root]
	if !hasAny(bag, model.PropMark) {
		return nil, nil
	}

	n := repeatCount(bag, model.PropMark)
	out := make([]sld.PointSymbolizer, 0, n)
	for i := 0; i < n; i++ {
		graphic, err := buildGraphic(props, bag, model.PropMark, i, true)
		if err != nil {
			return nil, err
		}
		if graphic == nil {
			continue
		}

		sym := sld.PointSymbolizer{Graphic: *graphic}
		if geom, ok := valueAt(bag, "mark-geometry", i); ok {
			sym.Geometry = geom.ToLiteral()
		}
		sym.VendorOptions = vendorOptions(bag, i, pointVendorOptions)

		out = append(out, sym)
	}
	return out, nil
}
