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

import "fmt"

// PseudoClass names the sub-namespaces a rule's properties can be grouped
// under (spec §3): root, symbol, mark, stroke, fill, shield, and their
// 1-based indexed forms such as symbol:nth(2).
type PseudoClass struct {
	Name  string
	Index int // 0 means unindexed
}

// Root is the default container for top-level properties.
var Root = PseudoClass{Name: "root"}

// NewPseudoClass builds an unindexed pseudo-class.
func NewPseudoClass(name string) PseudoClass { return PseudoClass{Name: name} }

// NewIndexedPseudoClass builds a 1-based indexed pseudo-class, e.g. symbol:nth(2).
func NewIndexedPseudoClass(name string, index int) PseudoClass {
	return PseudoClass{Name: name, Index: index}
}

// HasIndex reports whether this pseudo-class carries an explicit index.
func (p PseudoClass) HasIndex() bool { return p.Index > 0 }

// String renders the pseudo-class the way it would appear in source, e.g.
// "symbol:nth(2)" or "root".
func (p PseudoClass) String() string {
	if p.HasIndex() {
		return fmt.Sprintf("%s:nth(%d)", p.Name, p.Index)
	}
	return p.Name
}

const (
	PseudoSymbol = "symbol"
	PseudoMark   = "mark"
	PseudoStroke = "stroke"
	PseudoFill   = "fill"
	PseudoShield = "shield"
)
