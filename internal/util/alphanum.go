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

package util

import (
	"regexp"
	"sort"
	"strconv"
)

var chunkifyRegexp = regexp.MustCompile(`(\d+|\D+)`)

func chunkify(s string) []string {
	return chunkifyRegexp.FindAllString(s, -1)
}

// AlphanumCompare returns true if the first string precedes the second one
// according to natural order, so that "Team 2" comes before "Team 10".
func AlphanumCompare(a, b string) bool {
	chunksA, chunksB := chunkify(a), chunkify(b)

	for i := 0; i < len(chunksA) && i < len(chunksB); i++ {
		if chunksA[i] == chunksB[i] {
			continue
		}

		// If both chunks are numeric, compare them as integers.
		aInt, aErr := strconv.Atoi(chunksA[i])
		bInt, bErr := strconv.Atoi(chunksB[i])
		if aErr == nil && bErr == nil && aInt != bInt {
			return aInt < bInt
		}

		return chunksA[i] < chunksB[i]
	}

	// One string is a prefix of the other, the shorter one goes first.
	return len(chunksA) < len(chunksB)
}

// SortAlphanum sorts the given strings in natural order.
func SortAlphanum(s []string) {
	sort.SliceStable(s, func(i, j int) bool {
		return AlphanumCompare(s[i], s[j])
	})
}
