// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package schedule

// Rotate applies a single step of the circle method to s, in place.
//
// The first element is held fixed while the others turn around it: the top
// row (indices 1 to ⌈n/2⌉-1) moves right, the bottom row moves left, and the
// two rows swap their end elements where they meet. Calling Rotate
// repeatedly on an even length slice cycles through all n-1 distinct rounds
// of pairings before returning to the starting order.
//
// Slices with less than 3 elements are left untouched.
func Rotate[T any](s []T) {
	n := len(s)
	if n < 3 {
		return
	}

	// Odd lengths keep the extra element in the top row.
	factor := (n + 1) / 2

	topRight, bottomLeft := factor-1, factor
	topRightItem, bottomLeftItem := s[topRight], s[bottomLeft]

	for i := topRight; i > 0; i-- {
		s[i] = s[i-1]
	}

	for i := bottomLeft; i < n-1; i++ {
		s[i] = s[i+1]
	}

	s[1] = bottomLeftItem
	s[n-1] = topRightItem
}
