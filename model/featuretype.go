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

// AttributeKind is the coarse type FeatureTypeGuesser infers for an
// attribute from its comparison operands (spec §4.B).
type AttributeKind int

const (
	AttrUnknown AttributeKind = iota
	AttrString
	AttrNumber
	AttrGeometry
)

// FeatureType is a minimal feature-type descriptor: the set of attribute
// names referenced by a rule set, with their guessed coarse type. It is
// threaded as an explicit parameter into Selector.Simplify rather than
// stored on the selector node itself (spec §9, "Cyclic back-references").
type FeatureType struct {
	Name       string
	Attributes map[string]AttributeKind
}

// NewFeatureType builds an empty feature type with the given name.
func NewFeatureType(name string) *FeatureType {
	return &FeatureType{Name: name, Attributes: map[string]AttributeKind{}}
}

// Observe records that attribute has been seen compared with values of the
// given kind, widening AttrUnknown but never silently overwriting a
// previously observed concrete kind with a conflicting one (last writer
// with a concrete kind wins only over AttrUnknown).
func (ft *FeatureType) Observe(attribute string, kind AttributeKind) {
	if ft.Attributes == nil {
		ft.Attributes = map[string]AttributeKind{}
	}
	if existing, ok := ft.Attributes[attribute]; !ok || existing == AttrUnknown {
		ft.Attributes[attribute] = kind
	}
}

// KindOf returns the guessed kind of attribute, or AttrUnknown if unseen.
func (ft *FeatureType) KindOf(attribute string) AttributeKind {
	if ft == nil {
		return AttrUnknown
	}
	return ft.Attributes[attribute]
}
