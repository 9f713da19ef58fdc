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

package extract

import (
	"strconv"
	"strings"

	"github.com/baylisscg/geotools/model"
	"github.com/baylisscg/geotools/selector"
)

// GuessFeatureType infers a minimal feature-type descriptor from the
// attribute names referenced in rules' Data predicates and in *-geometry
// property expressions, with coarse type inferred from comparison operands
// (spec §4.B).
func GuessFeatureType(name string, rules []model.CssRule) *model.FeatureType {
	ft := model.NewFeatureType(name)

	for _, r := range rules {
		selector.Walk(r.Selector, func(n model.Selector) bool {
			d, ok := n.(model.DataSelector)
			if !ok {
				return true
			}
			ft.Observe(d.Predicate.Attribute, guessKind(d.Predicate.Value))
			return true
		})

		for propName, values := range r.RootBag() {
			if !strings.HasSuffix(string(propName), "-geometry") {
				continue
			}
			for _, v := range values {
				if attr, ok := bracketedAttribute(v); ok {
					ft.Observe(attr, model.AttrGeometry)
				}
			}
		}
	}

	return ft
}

func guessKind(v model.Value) model.AttributeKind {
	if !v.IsLiteral() {
		return model.AttrUnknown
	}
	if _, err := strconv.ParseFloat(v.LiteralToken(), 64); err == nil {
		return model.AttrNumber
	}
	return model.AttrString
}

// bracketedAttribute recognizes the "[attrName]" property-reference token
// the cartographic stylesheet uses for attribute references inside
// property values.
func bracketedAttribute(v model.Value) (string, bool) {
	if !v.IsLiteral() {
		return "", false
	}
	tok := v.LiteralToken()
	if strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]") && len(tok) > 2 {
		return tok[1 : len(tok)-1], true
	}
	return "", false
}
