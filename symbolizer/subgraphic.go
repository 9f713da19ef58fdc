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

// buildGraphic is the SubgraphicBuilder of spec §4.I: bag[propName][i] must
// be a Function. symbol(name) emits a well-known mark, with its fill/stroke
// recursively built from indexedPseudoClassValues over the fill/stroke
// pseudo-classes; url(location) emits an external graphic, with mime read
// from "<propName>-mime" (default image/jpeg). Size (px) and rotation (deg)
// are always applied; opacity only when applyOpacity (mark graphics only,
// per spec).
func buildGraphic(props model.Properties, bag model.PropertyBag, propName model.PropertyName, i int, applyOpacity bool) (*sld.Graphic, error) {
	v, ok := valueAt(bag, propName, i)
	if !ok {
		return nil, nil
	}
	if !v.IsFunction() {
		return nil, model.ErrInvalidGraphicValue.New(string(propName), v.ToLiteral())
	}

	g := &sld.Graphic{}
	switch v.FuncName() {
	case "symbol":
		name := ""
		if args := v.Args(); len(args) > 0 {
			name = args[0].ToLiteral()
		}
		mark, err := buildMark(props, name, i)
		if err != nil {
			return nil, err
		}
		g.Mark = mark
	case "url":
		location := ""
		if args := v.Args(); len(args) > 0 {
			location = args[0].ToLiteral()
		}
		mime := "image/jpeg"
		if m, ok := valueAt(bag, model.PropertyName(string(propName)+"-mime"), i); ok {
			mime = m.ToLiteral()
		}
		g.ExternalGraphic = &sld.ExternalGraphic{OnlineResource: location, Format: mime}
	default:
		return nil, model.ErrInvalidGraphicValue.New(string(propName), v.ToLiteral())
	}

	if size, ok := measure(bag, model.PropertyName(string(propName)+"-size"), i, "px"); ok {
		g.Size = size
	}
	if rot, ok := measure(bag, model.PropertyName(string(propName)+"-rotation"), i, "deg"); ok {
		g.Rotation = rot
	}
	if applyOpacity {
		if op, ok := measure(bag, model.PropertyName(string(propName)+"-opacity"), i, ""); ok {
			g.Opacity = percentToUnit(op)
		}
	}
	return g, nil
}

// buildMark builds a well-known mark's own fill/stroke by recursively
// reading the "fill"/"stroke" pseudo-classes merged at repetition index i.
func buildMark(props model.Properties, name string, i int) (*sld.Mark, error) {
	mark := &sld.Mark{WellKnownName: name}

	fillBag := indexedPseudoClassValues(props, model.PseudoFill, i)
	if _, ok := valueAt(fillBag, model.PropFill, 0); ok {
		fill, err := buildFill(props, fillBag, 0)
		if err != nil {
			return nil, err
		}
		mark.Fill = fill
	}

	strokeBag := indexedPseudoClassValues(props, model.PseudoStroke, i)
	if _, ok := valueAt(strokeBag, model.PropStroke, 0); ok {
		stroke, err := buildStroke(props, strokeBag, 0)
		if err != nil {
			return nil, err
		}
		mark.Stroke = stroke
	}

	return mark, nil
}

// buildFill builds a Fill from bag's "fill" property at index i: a literal
// compiles to a flat color, a Function to a graphic fill (spec §4.I
// "Polygon" / "SubgraphicBuilder").
func buildFill(props model.Properties, bag model.PropertyBag, i int) (*sld.Fill, error) {
	v, ok := valueAt(bag, model.PropFill, i)
	if !ok {
		return nil, nil
	}

	fill := &sld.Fill{}
	if v.IsFunction() {
		g, err := buildGraphic(props, bag, model.PropFill, i, false)
		if err != nil {
			return nil, err
		}
		fill.GraphicFill = g
	} else {
		fill.Color = v.ToLiteral()
	}

	if op, ok := measure(bag, "fill-opacity", i, ""); ok {
		fill.Opacity = percentToUnit(op)
	}
	return fill, nil
}

// buildStroke builds a Stroke from bag's "stroke" property at index i: a
// literal compiles to a flat color, a Function to a graphic stroke (spec
// §4.I "Line" / "SubgraphicBuilder").
func buildStroke(props model.Properties, bag model.PropertyBag, i int) (*sld.Stroke, error) {
	v, ok := valueAt(bag, model.PropStroke, i)
	if !ok {
		return nil, nil
	}

	stroke := &sld.Stroke{}
	if v.IsFunction() {
		g, err := buildGraphic(props, bag, model.PropStroke, i, false)
		if err != nil {
			return nil, err
		}
		stroke.GraphicStroke = g
		if repeat, ok := valueAt(bag, "stroke-repeat", i); ok {
			stroke.GraphicRepeat = repeat.ToLiteral()
		}
	} else {
		stroke.Color = v.ToLiteral()
	}

	if op, ok := measure(bag, "stroke-opacity", i, ""); ok {
		stroke.Opacity = percentToUnit(op)
	}
	if w, ok := measure(bag, "stroke-width", i, "px"); ok {
		stroke.Width = w
	}
	if cap, ok := valueAt(bag, "stroke-linecap", i); ok {
		stroke.LineCap = cap.ToLiteral()
	}
	if join, ok := valueAt(bag, "stroke-linejoin", i); ok {
		stroke.LineJoin = join.ToLiteral()
	}
	if dash := doubleArray(bag, "stroke-dasharray"); len(dash) > 0 {
		stroke.DashArray = dash
	}
	if off, ok := measure(bag, "stroke-dashoffset", i, "px"); ok {
		stroke.DashOffset = off
	}
	return stroke, nil
}
