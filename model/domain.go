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

// Domain is the visual footprint of an emitted rule: the pair (scale range,
// feature filter) described in spec §3. Filter is kept as a Selector here
// (rather than an already-compiled OGC filter) because coverage subtraction
// happens before the filter compiler runs (spec §2 data flow: combine ->
// sort -> subtract coverage -> per emitted rule: filter + symbolizers).
type Domain struct {
	ScaleRange ScaleRange
	Filter     Selector
}
