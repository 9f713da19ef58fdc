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

// Package analyzer wires components A through I into the fixed-order
// pipeline documented in spec §2: z-bands, then per-type-name groups, then
// scale-range flattening, power-set combination, specificity-descending
// sort, domain-coverage subtraction, and per-rule filter compilation plus
// symbolizer synthesis. Unlike the teacher's analyzer.Rule passes, which
// iterate a rule batch to a fixpoint, this pipeline is a single-pass DAG:
// each stage runs exactly once, in the order the spec fixes.
package analyzer

import (
	"math"
	"regexp"
	"sort"
	"strings"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"

	"github.com/baylisscg/geotools/combine"
	"github.com/baylisscg/geotools/coverage"
	"github.com/baylisscg/geotools/extract"
	"github.com/baylisscg/geotools/filter"
	"github.com/baylisscg/geotools/flatten"
	"github.com/baylisscg/geotools/model"
	"github.com/baylisscg/geotools/selector"
	"github.com/baylisscg/geotools/sld"
	"github.com/baylisscg/geotools/symbolizer"
	"github.com/baylisscg/geotools/typegroup"
	"github.com/baylisscg/geotools/zband"
)

// Options configures a single translation run (spec §6, §9's "no global
// mutable configuration" note: every knob here is an explicit parameter,
// never read from the process environment by this package).
type Options struct {
	// MaxCombinations caps the power-set combiner per band (spec §4.F).
	// Zero or negative resolves to combine.DefaultMaxCombinations.
	MaxCombinations int
	// Factory builds the emitted OGC filter trees. Defaults to
	// filter.DefaultFactory{} when nil.
	Factory filter.Factory
	// Observer receives combine's capacity-exhaustion notifications (spec
	// §7). Defaults to combine.NopObserver when nil.
	Observer combine.Observer
	// Tracer, when set, receives one span per (z-band, type-name) group.
	// Defaults to opentracing.GlobalTracer() when nil.
	Tracer opentracing.Tracer
}

func (o Options) factory() filter.Factory {
	if o.Factory != nil {
		return o.Factory
	}
	return filter.DefaultFactory{}
}

func (o Options) observer() combine.Observer {
	if o.Observer != nil {
		return o.Observer
	}
	return combine.NopObserver
}

func (o Options) tracer() opentracing.Tracer {
	if o.Tracer != nil {
		return o.Tracer
	}
	return opentracing.GlobalTracer()
}

// Analyze runs the full pipeline over a flat input rule list (a parsed
// Stylesheet, per spec §6) and returns the assembled Style tree. Per spec §7
// the translator never produces a partial style: the first synthesizer
// error encountered in any group aborts the whole run.
func Analyze(rules []model.CssRule, opts Options) (*sld.Style, error) {
	style := &sld.Style{}

	for _, band := range zband.Partition(rules) {
		for _, group := range typegroup.Partition(band.Rules) {
			span := opts.tracer().StartSpan("analyzer.translate_group")
			span.SetTag("z", band.Z)
			span.SetTag("type_name", group.TypeName)

			log := logrus.WithFields(logrus.Fields{
				"z":         band.Z,
				"typeName":  group.TypeName,
				"ruleCount": len(group.Rules),
			})
			log.Debug("analyzer: translating group")

			emitted, err := translateGroup(group.TypeName, group.Rules, opts)
			if err != nil {
				span.Finish()
				return nil, err
			}
			if len(emitted) == 0 {
				log.Debug("analyzer: group produced no rules")
				span.Finish()
				continue
			}

			var names []string
			if group.TypeName != model.DefaultTypeName {
				names = []string{group.TypeName}
			}
			style.FeatureTypeStyles = append(style.FeatureTypeStyles, sld.FeatureTypeStyle{
				FeatureTypeNames: names,
				Rules:            emitted,
			})

			span.Finish()
		}
	}

	return style, nil
}

// translateGroup runs E through I over a single (z-band, type-name)
// group's rules (spec §2 data flow, the back half).
func translateGroup(typeName string, rules []model.CssRule, opts Options) ([]sld.Rule, error) {
	ft := extract.GuessFeatureType(typeName, rules)

	simplified := make([]model.CssRule, len(rules))
	for i, r := range rules {
		simplified[i] = model.CssRule{
			Selector:   selector.Simplify(r.Selector, ft),
			Properties: r.Properties,
			Comment:    r.Comment,
		}
	}

	flattened := flatten.Flatten(simplified)
	sortBySpecificityDesc(flattened)

	combined := combine.Combine(flattened, opts.MaxCombinations, opts.observer())

	subtracted := coverage.Subtract(combined, domainOf)

	out := make([]sld.Rule, 0, len(subtracted))
	for _, r := range subtracted {
		rule, err := emitRule(r, opts.factory())
		if err != nil {
			logrus.WithError(err).WithField("comment", r.Comment).
				Error("analyzer: rule failed symbolizer synthesis")
			return nil, err
		}
		out = append(out, rule)
	}
	return out, nil
}

// sortBySpecificityDesc orders rules by descending specificity, the input
// contract combine.Combine documents for its own enumeration order (spec
// §4.F). Ties keep source order (stable sort).
func sortBySpecificityDesc(rules []model.CssRule) {
	sort.SliceStable(rules, func(i, j int) bool {
		si := selector.SpecificityOf(rules[i].Selector)
		sj := selector.SpecificityOf(rules[j].Selector)
		return si.Compare(sj) > 0
	})
}

// domainOf derives the (scaleRange, filter) domain coverage.Subtract needs
// from a combined rule's selector: the scale range it admits, and the
// filter residue with ScaleRange atoms stripped (but TypeName atoms left in
// place, since filter.Compile strips those too when it runs downstream).
func domainOf(r model.CssRule) model.Domain {
	sr, ok := extract.ScaleRangeOf(r.Selector)
	if !ok {
		sr = model.Unbounded()
	}
	return model.Domain{ScaleRange: sr, Filter: stripScaleRange(r.Selector)}
}

func stripScaleRange(s model.Selector) model.Selector {
	switch t := s.(type) {
	case model.ScaleRangeSelector:
		return model.AcceptAll
	case model.AndSelector:
		out := model.Selector(model.AcceptAll)
		for _, c := range t.Children {
			out = selector.And(out, stripScaleRange(c))
		}
		return out
	case model.OrSelector:
		children := make([]model.Selector, len(t.Children))
		for i, c := range t.Children {
			children[i] = stripScaleRange(c)
		}
		return selector.OrAll(children...)
	case model.NotSelector:
		return selector.Not(stripScaleRange(t.Child))
	default:
		return s
	}
}

// emitRule installs filter, scale bounds, title/abstract, and the five
// symbolizer kinds in fixed order onto one derived rule (spec §4.I "Rule
// emission").
func emitRule(r model.CssRule, factory filter.Factory) (sld.Rule, error) {
	sr, hasScale := extract.ScaleRangeOf(r.Selector)
	title, abstract := parseCommentTags(r.Comment)

	rule := sld.Rule{
		Filter:   filter.Compile(r.Selector, factory),
		Title:    title,
		Abstract: abstract,
	}
	if hasScale {
		if sr.Min > 0 {
			min := sr.Min
			rule.ScaleMin = &min
		}
		if !math.IsInf(sr.Max, 1) {
			max := sr.Max
			rule.ScaleMax = &max
		}
	}

	polygons, err := symbolizer.Polygon(r.Properties)
	if err != nil {
		return sld.Rule{}, err
	}
	for _, s := range polygons {
		rule.Symbolizers = append(rule.Symbolizers, s)
	}

	lines, err := symbolizer.Line(r.Properties)
	if err != nil {
		return sld.Rule{}, err
	}
	for _, s := range lines {
		rule.Symbolizers = append(rule.Symbolizers, s)
	}

	points, err := symbolizer.Point(r.Properties)
	if err != nil {
		return sld.Rule{}, err
	}
	for _, s := range points {
		rule.Symbolizers = append(rule.Symbolizers, s)
	}

	texts, err := symbolizer.Text(r.Properties)
	if err != nil {
		return sld.Rule{}, err
	}
	for _, s := range texts {
		rule.Symbolizers = append(rule.Symbolizers, s)
	}

	raster, err := symbolizer.Raster(r.Properties)
	if err != nil {
		return sld.Rule{}, err
	}
	if raster != nil {
		rule.Symbolizers = append(rule.Symbolizers, *raster)
	}

	return rule, nil
}

var (
	titleTagRe    = regexp.MustCompile(`(?i)^.*@title\s*(?::\s*)?(.+?)\s*$`)
	abstractTagRe = regexp.MustCompile(`(?i)^.*@abstract\s*(?::\s*)?(.+?)\s*$`)
)

// parseCommentTags scans a rule's source comment line-by-line for the two
// documented tags (spec §6 "Comment tags"), joining multiple title matches
// with ", " and multiple abstract matches with "\n".
func parseCommentTags(comment string) (title, abstract string) {
	if comment == "" {
		return "", ""
	}

	var titles, abstracts []string
	for _, line := range strings.Split(comment, "\n") {
		if m := titleTagRe.FindStringSubmatch(line); m != nil {
			titles = append(titles, strings.TrimSpace(m[1]))
		}
		if m := abstractTagRe.FindStringSubmatch(line); m != nil {
			abstracts = append(abstracts, strings.TrimSpace(m[1]))
		}
	}

	return strings.Join(titles, ", "), strings.Join(abstracts, "\n")
}
