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

import "gopkg.in/src-d/go-errors.v1"

// Error kinds for the translation failures documented in spec §7. A
// translation never produces a partial style: every synthesizer returns one
// of these, wrapped with the offending property/value, instead of panicking.
var (
	// ErrInvalidGraphicValue is raised when a fill/mark/shield graphic value
	// is not a symbol(...) or url(...) function.
	ErrInvalidGraphicValue = errors.NewKind("invalid graphic value for property %q: %v (expected symbol(...) or url(...))")

	// ErrInvalidLabelAnchor is raised when label-anchor does not carry
	// exactly two numeric components.
	ErrInvalidLabelAnchor = errors.NewKind("invalid label-anchor value: %v (expected exactly two numbers)")

	// ErrInvalidRasterChannelCount is raised when raster-channels names two
	// or more than three channels.
	ErrInvalidRasterChannelCount = errors.NewKind("invalid raster-channels count: %d (expected 1 or 3, or \"auto\")")

	// ErrInvalidColorMapEntry is raised when a raster-color-map entry is not
	// a color-map-entry(...) function of arity 2 or 3.
	ErrInvalidColorMapEntry = errors.NewKind("invalid raster-color-map entry: %v (expected color-map-entry(color, quantity[, opacity]))")

	// ErrUnknownColorMapType is raised for an unrecognized
	// raster-color-map-type.
	ErrUnknownColorMapType = errors.NewKind("unknown raster-color-map-type: %q (expected ramp, intervals, or values)")

	// ErrUnknownContrastEnhancement is raised for an unrecognized
	// raster-contrast-enhancement.
	ErrUnknownContrastEnhancement = errors.NewKind("unknown raster-contrast-enhancement: %q (expected none, histogram, or normalize)")

	// ErrUnsupportedPropertyValue is a catch-all for a recognized property
	// whose value shape the synthesizer cannot use.
	ErrUnsupportedPropertyValue = errors.NewKind("unsupported value for property %q: %v")
)
