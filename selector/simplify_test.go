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

package selector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baylisscg/geotools/model"
	"github.com/baylisscg/geotools/selector"
)

func data(attr string, op model.CompareOp, lit string) model.Selector {
	return model.DataSelector{Predicate: model.Predicate{Op: op, Attribute: attr, Value: model.Literal(lit)}}
}

func TestSimplifyFoldsContradictoryNumericRange(t *testing.T) {
	ft := model.NewFeatureType("parcels")
	ft.Observe("area", model.AttrNumber)

	s := selector.And(data("area", model.OpGT, "100"), data("area", model.OpLT, "50"))
	require.True(t, model.IsReject(selector.Simplify(s, ft)))
}

func TestSimplifyKeepsSatisfiableNumericRange(t *testing.T) {
	ft := model.NewFeatureType("parcels")
	ft.Observe("area", model.AttrNumber)

	s := selector.And(data("area", model.OpGT, "10"), data("area", model.OpLT, "50"))
	got := selector.Simplify(s, ft)
	require.False(t, model.IsReject(got))
}

func TestSimplifyFoldsEqualAndNotEqualSameValue(t *testing.T) {
	ft := model.NewFeatureType("parcels")
	ft.Observe("kind", model.AttrNumber)

	s := selector.And(data("kind", model.OpEQ, "3"), data("kind", model.OpNE, "3"))
	require.True(t, model.IsReject(selector.Simplify(s, ft)))
}

func TestSimplifyIgnoresNonNumericAttributes(t *testing.T) {
	ft := model.NewFeatureType("parcels")
	ft.Observe("name", model.AttrString)

	s := selector.And(data("name", model.OpEQ, "a"), data("name", model.OpNE, "a"))
	got := selector.Simplify(s, ft)
	require.False(t, model.IsReject(got))
}

func TestSimplifyWithoutFeatureTypeIsNoOp(t *testing.T) {
	s := selector.And(data("area", model.OpGT, "100"), data("area", model.OpLT, "50"))
	got := selector.Simplify(s, nil)
	require.False(t, model.IsReject(got))
}
