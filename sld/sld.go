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

// Package sld is the output tree shaped by the OGC SLD 1.0 / Symbology
// Encoding model (spec §6): a Style built once by the analyzer and handed
// to an external serializer, never mutated afterward — the same
// build-once, read-only tree idiom the teacher's sql/plan.Node uses.
package sld

import "github.com/baylisscg/geotools/filter"

// Style is the root of a translation's output.
type Style struct {
	Name              string
	FeatureTypeStyles []FeatureTypeStyle
}

// FeatureTypeStyle groups rules under one or more feature-type names,
// ordered z-index ascending then type-name insertion order at the parent
// level (spec §6).
type FeatureTypeStyle struct {
	FeatureTypeNames []string
	Rules            []Rule
}

// Rule is one mutually-exclusive selection+action pair. ScaleMin/ScaleMax
// are nil when unconstrained on that side (spec §6: "omitted when
// unconstrained at that side").
type Rule struct {
	Filter      filter.Filter
	ScaleMin    *float64
	ScaleMax    *float64
	Title       string
	Abstract    string
	Symbolizers []Symbolizer
}

// Symbolizer is the marker interface implemented by the five symbolizer
// kinds (spec §4.I).
type Symbolizer interface{ isSymbolizer() }

// PolygonSymbolizer (spec §4.I "Polygon").
type PolygonSymbolizer struct {
	Fill          *Fill
	Stroke        *Stroke
	Geometry      string
	VendorOptions map[string]string
}

// LineSymbolizer (spec §4.I "Line").
type LineSymbolizer struct {
	Stroke        Stroke
	Geometry      string
	VendorOptions map[string]string
}

// PointSymbolizer (spec §4.I "Point").
type PointSymbolizer struct {
	Graphic       Graphic
	Geometry      string
	VendorOptions map[string]string
}

// TextSymbolizer (spec §4.I "Text").
type TextSymbolizer struct {
	Label         string
	Font          *Font
	Halo          *Halo
	Placement     LabelPlacement
	Shield        *Graphic
	Priority      string
	VendorOptions map[string]string
}

// RasterSymbolizer (spec §4.I "Raster").
type RasterSymbolizer struct {
	ChannelSelection    ChannelSelection
	ContrastEnhancement string // symbolizer-level, only set for the "auto" channel case
	ColorMap            *ColorMap
}

func (PolygonSymbolizer) isSymbolizer() {}
func (LineSymbolizer) isSymbolizer()    {}
func (PointSymbolizer) isSymbolizer()   {}
func (TextSymbolizer) isSymbolizer()    {}
func (RasterSymbolizer) isSymbolizer()  {}

// Fill is a polygon or mark fill.
type Fill struct {
	Color       string
	Opacity     string
	GraphicFill *Graphic
}

// Stroke is a line stroke, or the outline of a polygon/mark.
type Stroke struct {
	Color         string
	Opacity       string
	Width         string
	LineCap       string
	LineJoin      string
	DashArray     []string
	DashOffset    string
	GraphicStroke *Graphic
	GraphicRepeat string // "repeat" or "stipple"
}

// Graphic is a well-known mark or external graphic, sized/rotated/made
// translucent uniformly (spec §4.I "SubgraphicBuilder").
type Graphic struct {
	Mark            *Mark
	ExternalGraphic *ExternalGraphic
	Size            string
	Rotation        string
	Opacity         string // mark only
}

// Mark is a well-known name with its own fill/stroke.
type Mark struct {
	WellKnownName string
	Fill          *Fill
	Stroke        *Stroke
}

// ExternalGraphic references an external image resource.
type ExternalGraphic struct {
	OnlineResource string
	Format         string
}

// Font is emitted only when font-related properties beyond font-fill are
// present (spec §4.I "Text").
type Font struct {
	Family []string
	Style  string
	Weight string
	Size   string
}

// Halo is emitted when any halo-* property is present.
type Halo struct {
	Radius string
	Fill   *Fill
}

// LabelPlacement distinguishes point vs. line label placement (spec §4.I
// "Text").
type LabelPlacement struct {
	Line     bool
	AnchorX  string
	AnchorY  string
	Offset   [2]string // point placement displacement
	PerpOff  string    // line placement offset
	Rotation string
}

// ChannelSelection binds one (grayscale) or three (RGB) raster channels.
type ChannelSelection struct {
	GrayChannel  *SelectedChannel
	RedChannel   *SelectedChannel
	GreenChannel *SelectedChannel
	BlueChannel  *SelectedChannel
}

// SelectedChannel names a raster band and its per-channel enhancement.
type SelectedChannel struct {
	Name                string
	ContrastEnhancement string
	GammaValue          string
}

// ColorMap is a raster-color-map (spec §4.I "Raster").
type ColorMap struct {
	Type    string // ramp, intervals, or values
	Entries []ColorMapEntry
}

// ColorMapEntry is one color-map-entry(color, quantity[, opacity]).
type ColorMapEntry struct {
	Color    string
	Quantity string
	Opacity  string
}
