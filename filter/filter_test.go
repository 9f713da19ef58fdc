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

package filter_test

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"github.com/baylisscg/geotools/filter"
	"github.com/baylisscg/geotools/model"
)

// requireExprString compares two rendered filter expressions the way
// sql/analyzer/common_test.go compares rendered plans: on mismatch it prints
// a unified diff instead of testify's default single-line message, which is
// hard to read once expressions grow past a handful of atoms.
func requireExprString(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  1,
	})
	require.NoError(t, err)
	t.Fatalf("expression mismatch:\n%s", diff)
}

func TestCompileAcceptIsInclude(t *testing.T) {
	f := filter.Compile(model.AcceptAll, filter.DefaultFactory{})
	require.Equal(t, "INCLUDE", f.ExprString())
}

func TestCompileRejectIsExclude(t *testing.T) {
	f := filter.Compile(model.RejectAll, filter.DefaultFactory{})
	require.Equal(t, "EXCLUDE", f.ExprString())
}

func TestCompileTypeNameAloneIsInclude(t *testing.T) {
	f := filter.Compile(model.TypeNameSelector{Name: "roads"}, filter.DefaultFactory{})
	require.Equal(t, "INCLUDE", f.ExprString())
}

func TestCompileDataSelectorComparison(t *testing.T) {
	s := model.DataSelector{Predicate: model.Predicate{
		Op:        model.OpEQ,
		Attribute: "class",
		Value:     model.Literal("major"),
	}}
	f := filter.Compile(s, filter.DefaultFactory{})
	require.Equal(t, "class = major", f.ExprString())
}

func TestCompileBetween(t *testing.T) {
	s := model.DataSelector{Predicate: model.Predicate{
		Op:        model.OpBetween,
		Attribute: "population",
		Value:     model.Literal("100"),
		Value2:    model.Literal("500"),
	}}
	f := filter.Compile(s, filter.DefaultFactory{})
	require.Equal(t, "population BETWEEN 100 AND 500", f.ExprString())
}

func TestCompileAndStripsTypeNameAndScaleAtoms(t *testing.T) {
	s := model.AndSelector{Children: []model.Selector{
		model.TypeNameSelector{Name: "roads"},
		model.ScaleRangeSelector{Range: model.ScaleRange{Min: 0, Max: 1000}},
		model.DataSelector{Predicate: model.Predicate{Op: model.OpEQ, Attribute: "class", Value: model.Literal("major")}},
	}}
	f := filter.Compile(s, filter.DefaultFactory{})
	require.Equal(t, "class = major", f.ExprString())
}

func TestCompileAndOfOnlyStrippedAtomsIsInclude(t *testing.T) {
	s := model.AndSelector{Children: []model.Selector{
		model.TypeNameSelector{Name: "roads"},
		model.ScaleRangeSelector{Range: model.ScaleRange{Min: 0, Max: 1000}},
	}}
	f := filter.Compile(s, filter.DefaultFactory{})
	require.Equal(t, "INCLUDE", f.ExprString())
}

func TestCompileNot(t *testing.T) {
	s := model.NotSelector{Child: model.DataSelector{Predicate: model.Predicate{Op: model.OpEQ, Attribute: "class", Value: model.Literal("major")}}}
	f := filter.Compile(s, filter.DefaultFactory{})
	require.Equal(t, "NOT (class = major)", f.ExprString())
}

func TestCompileIdSelector(t *testing.T) {
	s := model.IdSelector{Ids: []string{"a", "b"}}
	f := filter.Compile(s, filter.DefaultFactory{})
	require.Equal(t, "FID(a, b)", f.ExprString())
}

func TestCompileNestedAndOr(t *testing.T) {
	s := model.AndSelector{Children: []model.Selector{
		model.DataSelector{Predicate: model.Predicate{Op: model.OpEQ, Attribute: "class", Value: model.Literal("major")}},
		model.OrSelector{Children: []model.Selector{
			model.DataSelector{Predicate: model.Predicate{Op: model.OpGT, Attribute: "population", Value: model.Literal("1000")}},
			model.NotSelector{Child: model.DataSelector{Predicate: model.Predicate{Op: model.OpEQ, Attribute: "status", Value: model.Literal("closed")}}},
		}},
	}}
	f := filter.Compile(s, filter.DefaultFactory{})
	requireExprString(t, "(class = major AND (population > 1000 OR NOT (status = closed)))", f.ExprString())
}
