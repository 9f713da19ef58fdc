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

package symbolizer

import (
	"github.com/baylisscg/geotools/model"
	"github.com/baylisscg/geotools/sld"
)

// Raster synthesizes one RasterSymbolizer (spec §4.I "Raster"), triggered
// by the presence of "raster-channels".
func Raster(props model.Properties) (*sld.RasterSymbolizer, error) {
	bag := props[model.Root]
	if !hasAny(bag, model.PropRasterChannels) {
		return nil, nil
	}

	channels := stringArray(bag, model.PropRasterChannels)
	if len(channels) == 0 {
		return nil, nil
	}

	sym := &sld.RasterSymbolizer{}

	if channels[0] == "auto" {
		ce, err := contrastEnhancementAt(bag, 0)
		if err != nil {
			return nil, err
		}
		sym.ContrastEnhancement = ce
	} else {
		switch len(channels) {
		case 1:
			gray, err := buildSelectedChannel(bag, channels, 0)
			if err != nil {
				return nil, err
			}
			sym.ChannelSelection.GrayChannel = gray
		case 3:
			red, err := buildSelectedChannel(bag, channels, 0)
			if err != nil {
				return nil, err
			}
			green, err := buildSelectedChannel(bag, channels, 1)
			if err != nil {
				return nil, err
			}
			blue, err := buildSelectedChannel(bag, channels, 2)
			if err != nil {
				return nil, err
			}
			sym.ChannelSelection.RedChannel = red
			sym.ChannelSelection.GreenChannel = green
			sym.ChannelSelection.BlueChannel = blue
		default:
			return nil, model.ErrInvalidRasterChannelCount.New(len(channels))
		}
	}

	cm, err := buildColorMap(bag)
	if err != nil {
		return nil, err
	}
	sym.ColorMap = cm

	return sym, nil
}

func buildSelectedChannel(bag model.PropertyBag, channels []string, i int) (*sld.SelectedChannel, error) {
	ce, err := contrastEnhancementAt(bag, i)
	if err != nil {
		return nil, err
	}
	gamma := broadcastFromZero(doubleArray(bag, "raster-gamma"), i)
	return &sld.SelectedChannel{Name: channels[i], ContrastEnhancement: ce, GammaValue: gamma}, nil
}

// contrastEnhancementAt resolves the per-channel contrast enhancement,
// broadcasting a shorter array from its first element rather than its last
// (spec §9 Open Question 2): a single "histogram" entry covering three
// bound channels applies to every channel, and with two entries for three
// channels the third channel takes the first entry, where valueAt's
// broadcast would take the last.
func contrastEnhancementAt(bag model.PropertyBag, i int) (string, error) {
	values := stringArray(bag, "raster-contrast-enhancement")
	if len(values) == 0 {
		return "", nil
	}
	token := broadcastFromZero(values, i)
	switch token {
	case "none", "histogram", "normalize":
		return token, nil
	default:
		return "", model.ErrUnknownContrastEnhancement.New(token)
	}
}

// broadcastFromZero returns values[i] when present, otherwise values[0]
// (spec §9 Open Question 2's broadcast-from-index-0 fix for raster
// per-channel arrays).
func broadcastFromZero(values []string, i int) string {
	if len(values) == 0 {
		return ""
	}
	if i < len(values) {
		return values[i]
	}
	return values[0]
}

func buildColorMap(bag model.PropertyBag) (*sld.ColorMap, error) {
	if !hasAny(bag, "raster-color-map") {
		return nil, nil
	}

	mapType := "ramp"
	if t, ok := valueAt(bag, "raster-color-map-type", 0); ok {
		token := t.ToLiteral()
		switch token {
		case "ramp", "intervals", "values":
			mapType = token
		default:
			return nil, model.ErrUnknownColorMapType.New(token)
		}
	}

	v, ok := valueAt(bag, "raster-color-map", 0)
	if !ok {
		return nil, nil
	}

	items := v.AsList()
	entries := make([]sld.ColorMapEntry, 0, len(items))
	for _, item := range items {
		if !item.IsFunction() || item.FuncName() != "color-map-entry" {
			return nil, model.ErrInvalidColorMapEntry.New(item.ToLiteral())
		}
		args := item.Args()
		if len(args) != 2 && len(args) != 3 {
			return nil, model.ErrInvalidColorMapEntry.New(item.ToLiteral())
		}
		entry := sld.ColorMapEntry{Color: args[0].ToLiteral(), Quantity: args[1].ToLiteral()}
		if len(args) == 3 {
			entry.Opacity = args[2].ToLiteral()
		}
		entries = append(entries, entry)
	}

	return &sld.ColorMap{Type: mapType, Entries: entries}, nil
}
