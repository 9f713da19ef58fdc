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

// Package cascade is the public entry point of the cartographic-stylesheet
// to OGC SLD translator: a parsed Stylesheet goes in, an assembled sld.Style
// tree comes out. Everything upstream of Stylesheet (parsing the cartographic
// syntax) and downstream of Style (XML serialization) is outside this
// module, per spec §6.
package cascade

import (
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	uuid "github.com/satori/go.uuid"

	"github.com/baylisscg/geotools/analyzer"
	"github.com/baylisscg/geotools/combine"
	"github.com/baylisscg/geotools/config"
	"github.com/baylisscg/geotools/filter"
	"github.com/baylisscg/geotools/model"
	"github.com/baylisscg/geotools/sld"
)

// Stylesheet is an ordered list of CssRules produced by an external parser
// (spec §6 "Inputs"). Name, when non-empty, is stamped onto the emitted
// Style; when empty, Translator.Translate generates one so two anonymous
// translations are never confused downstream.
type Stylesheet struct {
	Name  string
	Rules []model.CssRule
}

// Translator holds the reusable collaborators a long-lived embedder wires in
// once: the filter factory an external filter-factory library supplies, the
// combine.Observer that surfaces capacity-exhaustion warnings, and an
// opentracing.Tracer. A zero-value Translator is ready to use; every field
// defaults exactly as analyzer.Options does.
type Translator struct {
	Factory  filter.Factory
	Observer combine.Observer
	Tracer   opentracing.Tracer
}

// Translate runs a Stylesheet through the default-configured Translator
// (the combination cap from config.Default, i.e. combine.DefaultMaxCombinations).
func Translate(sheet Stylesheet) (*sld.Style, error) {
	var t Translator
	return t.Translate(sheet)
}

// TranslateWithCap runs a Stylesheet through the default-configured
// Translator, overriding only the combination cap (spec §6's second Core
// API overload).
func TranslateWithCap(sheet Stylesheet, maxCombinations int) (*sld.Style, error) {
	var t Translator
	return t.TranslateWithCap(sheet, maxCombinations)
}

// Translate runs the pipeline with the cap from config.Default; it reads no
// configuration file or environment variable (config.Load is left to the
// embedding process).
func (t Translator) Translate(sheet Stylesheet) (*sld.Style, error) {
	cfg := config.Default()
	return t.translate(sheet, cfg.MaxCombinations)
}

// TranslateWithCap runs the pipeline with an explicit combination cap,
// bypassing config.Load entirely.
func (t Translator) TranslateWithCap(sheet Stylesheet, maxCombinations int) (*sld.Style, error) {
	return t.translate(sheet, maxCombinations)
}

func (t Translator) translate(sheet Stylesheet, maxCombinations int) (*sld.Style, error) {
	tracer := t.Tracer
	if tracer == nil {
		tracer = opentracing.GlobalTracer()
	}

	span := tracer.StartSpan("cascade.translate")
	defer span.Finish()
	span.SetTag("rule_count", len(sheet.Rules))

	log := logrus.WithField("ruleCount", len(sheet.Rules))
	log.Debug("cascade: starting translation")

	style, err := analyzer.Analyze(sheet.Rules, analyzer.Options{
		MaxCombinations: maxCombinations,
		Factory:         t.Factory,
		Observer:        t.Observer,
		Tracer:          tracer,
	})
	if err != nil {
		log.WithError(err).Error("cascade: translation failed")
		span.SetTag("error", true)
		return nil, err
	}

	style.Name = sheet.Name
	if style.Name == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return nil, err
		}
		style.Name = id.String()
	}

	log.WithField("featureTypeStyleCount", len(style.FeatureTypeStyles)).
		Debug("cascade: translation complete")

	return style, nil
}
