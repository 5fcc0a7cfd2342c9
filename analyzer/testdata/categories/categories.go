// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package categories

func ints(numbers []int) int {
	sum := 0 // want "Loop summing into 'sum' not rewritten: no sum reduction for this numeric type"
	for _, n := range numbers {
		sum += n
	}
	return sum
}

func float32s(values []float32) float32 {
	var sum float32 = 0 // want "Loop summing into 'sum' can be replaced with lo.Sum"
	for _, v := range values {
		sum += v
	}
	return sum
}
