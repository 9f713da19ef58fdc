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

package model

// PropertyName is a closed enumeration of recognized cartographic property
// keys, with vendor/extension keys passed through verbatim as their own
// string value (spec §9, "Stringly-typed property maps").
type PropertyName string

// Reserved property names that trigger a symbolizer when present at the
// ROOT pseudo-class (spec §6).
const (
	PropFill           PropertyName = "fill"
	PropStroke         PropertyName = "stroke"
	PropMark           PropertyName = "mark"
	PropLabel          PropertyName = "label"
	PropRasterChannels PropertyName = "raster-channels"
)

// symbolizerTriggers is the reserved-key set checked by HasSymbolizerProperty.
var symbolizerTriggers = map[PropertyName]bool{
	PropFill:           true,
	PropStroke:         true,
	PropMark:           true,
	PropLabel:          true,
	PropRasterChannels: true,
}

// PropertyBag is the property map of a single pseudo-class: each value list
// represents repetition (the i-th symbolizer takes the i-th value, with
// scalar broadcast when a property has one value but another has many).
type PropertyBag map[PropertyName][]Value

// Clone returns a shallow copy of the bag (value slices are not copied,
// since Value is immutable).
func (b PropertyBag) Clone() PropertyBag {
	out := make(PropertyBag, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Properties maps pseudo-classes to their property bags (spec §3).
type Properties map[PseudoClass]PropertyBag

// Clone returns a deep-enough copy (new bag per pseudo-class; value slices
// shared, as above).
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for pc, bag := range p {
		out[pc] = bag.Clone()
	}
	return out
}

// CssRule is a single cascading rule: a selector, a property map, and an
// optional source comment (spec §3).
type CssRule struct {
	Selector   Selector
	Properties Properties
	Comment    string
}

// HasSymbolizerProperty reports whether the ROOT pseudo-class of the rule
// carries at least one of the reserved visual property keys.
func (r CssRule) HasSymbolizerProperty() bool {
	bag, ok := r.Properties[Root]
	if !ok {
		return false
	}
	for name := range bag {
		if symbolizerTriggers[name] {
			return true
		}
	}
	return false
}

// RootBag returns the ROOT pseudo-class property bag, or an empty bag if
// the rule carries none.
func (r CssRule) RootBag() PropertyBag {
	if bag, ok := r.Properties[Root]; ok {
		return bag
	}
	return PropertyBag{}
}
