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

package selector

import "github.com/baylisscg/geotools/model"

// Walk visits every node of s, including s itself, calling fn for each.
// Traversal is iterative (an explicit stack rather than recursion) so that
// deeply nested selectors cannot exhaust the goroutine stack (spec §5,
// §9's "Anonymous visitor classes" note prefers explicit recursion or a
// visitor trait over dynamic dispatch, but recursion depth is bounded
// here by using our own stack instead of the call stack).
func Walk(s model.Selector, fn func(model.Selector) bool) {
	stack := []model.Selector{s}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			continue
		}
		switch t := n.(type) {
		case model.AndSelector:
			for i := len(t.Children) - 1; i >= 0; i-- {
				stack = append(stack, t.Children[i])
			}
		case model.OrSelector:
			for i := len(t.Children) - 1; i >= 0; i-- {
				stack = append(stack, t.Children[i])
			}
		case model.NotSelector:
			stack = append(stack, t.Child)
		}
	}
}

// Collect returns every node of s for which pred returns true.
func Collect(s model.Selector, pred func(model.Selector) bool) []model.Selector {
	var out []model.Selector
	Walk(s, func(n model.Selector) bool {
		if pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}
