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
	"strings"

	"github.com/baylisscg/geotools/model"
	"github.com/baylisscg/geotools/sld"
)

// textVendorOptions is the Text vendor-option translation table of spec §6.
var textVendorOptions = map[model.PropertyName]string{
	"-gt-label-padding":             "spaceAround",
	"-gt-label-group":               "group",
	"-gt-label-max-displacement":    "maxDisplacement",
	"-gt-label-min-group-distance":  "minGroupDistance",
	"-gt-label-repeat":              "repeat",
	"-gt-label-all-group":           "allGroup",
	"-gt-label-remove-overlaps":     "removeOverlaps",
	"-gt-label-allow-overruns":      "allowOverrun",
	"-gt-label-follow-line":         "followLine",
	"-gt-label-max-angle-delta":     "maxAngleDelta",
	"-gt-label-auto-wrap":           "autoWrap",
	"-gt-label-force-ltr":           "forceLeftToRight",
	"-gt-label-conflict-resolution": "conflictResolution",
	"-gt-label-fit-goodness":        "goodnessOfFit",
	"-gt-shield-resize":             "graphic-resize",
	"-gt-shield-margin":             "graphic-margin",
}

var fontTriggerProps = []model.PropertyName{"font-family", "font-style", "font-weight", "font-size"}

// Text synthesizes one TextSymbolizer per repetition index (spec §4.I
// "Text"), triggered by the presence of "label".
func Text(props model.Properties) ([]sld.TextSymbolizer, error) {
	bag := props[model.Root]
	if !hasAny(bag, model.PropLabel) {
		return nil, nil
	}

	n := repeatCount(bag, model.PropLabel)
	out := make([]sld.TextSymbolizer, 0, n)
	for i := 0; i < n; i++ {
		v, ok := valueAt(bag, model.PropLabel, i)
		if !ok {
			continue
		}
		sym := sld.TextSymbolizer{Label: labelExpression(v)}

		placement, err := buildPlacement(bag, i)
		if err != nil {
			return nil, err
		}
		sym.Placement = placement

		sym.Font = buildFont(bag, i)

		halo, err := buildHalo(bag, i)
		if err != nil {
			return nil, err
		}
		sym.Halo = halo

		if hasAny(bag, "shield") {
			shield, err := buildGraphic(props, bag, "shield", i, false)
			if err != nil {
				return nil, err
			}
			sym.Shield = shield
		}

		if p, ok := valueAt(bag, "-gt-label-priority", i); ok {
			sym.Priority = p.ToLiteral()
		}

		sym.VendorOptions = vendorOptions(bag, i, textVendorOptions)
		out = append(out, sym)
	}
	return out, nil
}

// labelExpression renders a label Value as an OGC expression string: a
// MultiValue becomes Concatenate(a, b, c) (spec §4.I, testable property 7),
// anything else compiles to its own literal.
func labelExpression(v model.Value) string {
	if !v.IsMultiValue() {
		return v.ToLiteral()
	}
	items := v.Items()
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.ToLiteral()
	}
	return "Concatenate(" + strings.Join(parts, ", ") + ")"
}

// buildPlacement resolves point vs. line label placement (spec §4.I
// "Text"): a 1-element label-offset selects line placement with that
// offset; a 2-element offset or any label-anchor selects point placement.
func buildPlacement(bag model.PropertyBag, i int) (sld.LabelPlacement, error) {
	offsets := doubleArray(bag, "label-offset")
	_, hasAnchor := bag["label-anchor"]

	if hasAnchor || len(offsets) == 2 {
		placement := sld.LabelPlacement{}
		if hasAnchor {
			anchor, err := parseAnchor(bag)
			if err != nil {
				return sld.LabelPlacement{}, err
			}
			placement.AnchorX, placement.AnchorY = anchor[0], anchor[1]
		}
		if len(offsets) == 2 {
			placement.Offset = [2]string{offsets[0], offsets[1]}
		}
		if rot, ok := measure(bag, "label-rotation", i, "deg"); ok {
			placement.Rotation = rot
		}
		return placement, nil
	}

	if len(offsets) == 1 {
		return sld.LabelPlacement{Line: true, PerpOff: offsets[0]}, nil
	}

	return sld.LabelPlacement{}, nil
}

// parseAnchor reads label-anchor, which must carry exactly two numeric
// components, whether given as one 2-item MultiValue or two top-level
// values (spec §7 ErrInvalidLabelAnchor).
func parseAnchor(bag model.PropertyBag) ([2]string, error) {
	values := bag["label-anchor"]

	if len(values) == 1 && values[0].IsMultiValue() {
		items := values[0].Items()
		if len(items) == 2 {
			return [2]string{items[0].ToLiteral(), items[1].ToLiteral()}, nil
		}
		return [2]string{}, model.ErrInvalidLabelAnchor.New(values[0].ToLiteral())
	}
	if len(values) == 2 {
		return [2]string{values[0].ToLiteral(), values[1].ToLiteral()}, nil
	}

	rendered := ""
	for i, v := range values {
		if i > 0 {
			rendered += ", "
		}
		rendered += v.ToLiteral()
	}
	return [2]string{}, model.ErrInvalidLabelAnchor.New(rendered)
}

// buildFont emits a Font block only when a font property beyond font-fill
// is present (spec §4.I "Text").
func buildFont(bag model.PropertyBag, i int) *sld.Font {
	if !hasAny(bag, fontTriggerProps...) {
		return nil
	}
	font := &sld.Font{Family: stringArray(bag, "font-family")}
	if v, ok := valueAt(bag, "font-style", i); ok {
		font.Style = v.ToLiteral()
	}
	if v, ok := valueAt(bag, "font-weight", i); ok {
		font.Weight = v.ToLiteral()
	}
	if sz, ok := measure(bag, "font-size", i, "px"); ok {
		font.Size = sz
	}
	return font
}

// buildHalo emits a Halo block when any halo-* property is present (spec
// §4.I "Text").
func buildHalo(bag model.PropertyBag, i int) (*sld.Halo, error) {
	if !hasAnyPrefix(bag, "halo-") {
		return nil, nil
	}
	halo := &sld.Halo{}
	if r, ok := measure(bag, "halo-radius", i, "px"); ok {
		halo.Radius = r
	}
	if v, ok := valueAt(bag, "halo-fill", i); ok {
		fill := &sld.Fill{Color: v.ToLiteral()}
		if op, ok := measure(bag, "halo-opacity", i, ""); ok {
			fill.Opacity = percentToUnit(op)
		}
		halo.Fill = fill
	}
	return halo, nil
}
