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

// Package symbolizer synthesizes SLD symbolizers from a merged cartographic
// property bag (spec §4.I): the five synthesizer kinds (polygon, line,
// point, text, raster), plus the shared repetition/unit/pseudo-class
// helpers they all use.
package symbolizer

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/baylisscg/geotools/model"
)

// repeatCount returns the maximum list length among the values of interest
// (spec §4.I "repeatCount"), or 1 when none of the named properties are
// present. A property's value list is itself the repetition list (spec
// §3: "the i-th symbolizer takes the i-th value").
func repeatCount(bag model.PropertyBag, names ...model.PropertyName) int {
	max := 1
	for _, name := range names {
		if n := len(bag[name]); n > max {
			max = n
		}
	}
	return max
}

// valueAt returns the i-th value of bag[name], or the singleton broadcast
// when there is only one (spec §4.I "valueAt"). ok is false when the
// property is absent.
func valueAt(bag model.PropertyBag, name model.PropertyName, i int) (model.Value, bool) {
	values, ok := bag[name]
	if !ok || len(values) == 0 {
		return model.Value{}, false
	}
	if i < len(values) {
		return values[i], true
	}
	return values[len(values)-1], true // scalar/short-list broadcast
}

// measure parses a dimensioned literal (spec §4.I "measure"): strips the
// default-unit suffix when present, otherwise returns the token verbatim.
func measure(bag model.PropertyBag, name model.PropertyName, i int, defaultUnit string) (string, bool) {
	v, ok := valueAt(bag, name, i)
	if !ok {
		return "", false
	}
	token := v.ToLiteral()
	if defaultUnit != "" && strings.HasSuffix(token, defaultUnit) {
		numeric := strings.TrimSuffix(token, defaultUnit)
		if _, err := strconv.ParseFloat(numeric, 64); err == nil {
			return numeric, true
		}
	}
	return token, true
}

// percentToUnit normalizes a trailing "%" token to the [0,1] range, per
// spec §4.I's "percentages are normalized to the [0,1] range".
func percentToUnit(token string) string {
	if !strings.HasSuffix(token, "%") {
		return token
	}
	numeric := strings.TrimSuffix(token, "%")
	f, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return token
	}
	return cast.ToString(f / 100)
}

// doubleArray/floatArray project a property's full value list to strings,
// normalizing percentages (spec §4.I).
func doubleArray(bag model.PropertyBag, name model.PropertyName) []string {
	values, ok := bag[name]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, percentToUnit(v.ToLiteral()))
	}
	return out
}

func floatArray(bag model.PropertyBag, name model.PropertyName) []string { return doubleArray(bag, name) }

// stringArray projects a property's full value list to strings verbatim
// (no percentage normalization — used for non-numeric repeated properties
// such as font-family).
func stringArray(bag model.PropertyBag, name model.PropertyName) []string {
	values, ok := bag[name]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.ToLiteral())
	}
	return out
}

// indexedPseudoClassValues merges, in precedence order (later overrides
// earlier), the property bags of: "symbol", "symbol:nth(i)", pseudoName,
// "pseudoName:nth(i)" (spec §4.I).
func indexedPseudoClassValues(props model.Properties, pseudoName string, i int) model.PropertyBag {
	merged := model.PropertyBag{}
	layers := []model.PseudoClass{
		model.NewPseudoClass(model.PseudoSymbol),
		model.NewIndexedPseudoClass(model.PseudoSymbol, i+1),
		model.NewPseudoClass(pseudoName),
		model.NewIndexedPseudoClass(pseudoName, i+1),
	}
	for _, pc := range layers {
		bag, ok := props[pc]
		if !ok {
			continue
		}
		for k, v := range bag {
			merged[k] = v
		}
	}
	return merged
}

// hasAny reports whether bag contains any of names.
func hasAny(bag model.PropertyBag, names ...model.PropertyName) bool {
	for _, n := range names {
		if _, ok := bag[n]; ok {
			return true
		}
	}
	return false
}

// hasAnyPrefix reports whether bag contains any key starting with prefix.
func hasAnyPrefix(bag model.PropertyBag, prefix string) bool {
	for k := range bag {
		if strings.HasPrefix(string(k), prefix) {
			return true
		}
	}
	return false
}

// boolToken interprets a literal token as an SLD boolean vendor-option
// value, via spf13/cast's permissive boolean coercion (so "1"/"yes" style
// tokens from the cartographic source still resolve correctly).
func boolToken(token string) string {
	if cast.ToBool(token) {
		return "true"
	}
	return "false"
}
