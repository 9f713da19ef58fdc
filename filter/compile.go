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

package filter

import (
	"github.com/baylisscg/geotools/model"
)

// Compile translates the non-scale, non-typename residue of a selector
// into an OGC filter expression tree via factory (spec §4.H). Accept
// compiles to INCLUDE; Reject to EXCLUDE. ScaleRangeSelector and
// TypeNameSelector atoms are stripped, since scale and feature-type
// grouping are already handled upstream (zband/typegroup/coverage).
func Compile(s model.Selector, factory Factory) Filter {
	switch t := s.(type) {
	case model.AcceptSelector:
		return factory.Include()
	case model.RejectSelector:
		return factory.Exclude()
	case model.TypeNameSelector:
		return factory.Include()
	case model.ScaleRangeSelector:
		return factory.Include()
	case model.IdSelector:
		return factory.FeatureId(t.Ids...)
	case model.DataSelector:
		return compilePredicate(t.Predicate, factory)
	case model.AndSelector:
		return compileJunction(t.Children, factory, factory.And, factory.Include())
	case model.OrSelector:
		return compileJunction(t.Children, factory, factory.Or, factory.Exclude())
	case model.NotSelector:
		return factory.Not(Compile(t.Child, factory))
	default:
		return factory.Include()
	}
}

// compileJunction compiles each child, drops the stripped-atom identity
// value children collapse to, and folds to identity when nothing remains
// (e.g. an And whose only children were TypeName/ScaleRange atoms already
// handled upstream compiles to INCLUDE, not an empty AND()).
func compileJunction(children []model.Selector, factory Factory, build func(...Filter) Filter, identity Filter) Filter {
	var compiled []Filter
	for _, c := range children {
		if isStrippedAtom(c) {
			continue
		}
		compiled = append(compiled, Compile(c, factory))
	}
	switch len(compiled) {
	case 0:
		return identity
	case 1:
		return compiled[0]
	default:
		return build(compiled...)
	}
}

func isStrippedAtom(s model.Selector) bool {
	switch s.(type) {
	case model.TypeNameSelector, model.ScaleRangeSelector:
		return true
	default:
		return false
	}
}

func compilePredicate(p model.Predicate, factory Factory) Filter {
	value := p.Value.ToLiteral()
	switch p.Op {
	case model.OpEQ:
		return factory.PropertyIsEqualTo(p.Attribute, value)
	case model.OpNE:
		return factory.PropertyIsNotEqualTo(p.Attribute, value)
	case model.OpLT:
		return factory.PropertyIsLessThan(p.Attribute, value)
	case model.OpLE:
		return factory.PropertyIsLessThanOrEqualTo(p.Attribute, value)
	case model.OpGT:
		return factory.PropertyIsGreaterThan(p.Attribute, value)
	case model.OpGE:
		return factory.PropertyIsGreaterThanOrEqualTo(p.Attribute, value)
	case model.OpBetween:
		return factory.PropertyIsBetween(p.Attribute, value, p.Value2.ToLiteral())
	case model.OpLike:
		return factory.PropertyIsLike(p.Attribute, value)
	default:
		return factory.Include()
	}
}
