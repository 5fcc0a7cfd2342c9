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

package explain

func eligible(numbers []int) int {
	sum := 0 // want "Loop summing into 'sum' can be replaced with lo.Sum"
	for _, n := range numbers {
		sum += n
	}
	return sum
}

func commuted(numbers []int) int {
	sum := 0 // want "Loop summing into 'sum' not rewritten: body is not a single accumulation of the loop variable"
	for _, n := range numbers {
		sum = n + sum
	}
	return sum
}

func twoStatements(numbers []int) (int, int) {
	sum, count := 0, 0 // want "Loop summing into 'sum' not rewritten: not preceded by a single zero-initialized accumulator declaration"
	for _, n := range numbers {
		sum += n
		count++
	}
	return sum, count
}

func nonZero(numbers []int) int {
	sum := 1 // want "Loop summing into 'sum' not rewritten: not preceded by a single zero-initialized accumulator declaration"
	for _, n := range numbers {
		sum += n
	}
	return sum
}

func narrow(values []int8) int8 {
	var sum int8 = 0 // want "Loop summing into 'sum' not rewritten: no sum reduction for this numeric type"
	for _, v := range values {
		sum += v
	}
	return sum
}

func unrelated(numbers []int) int {
	sum := 0
	offset := 2
	for _, n := range numbers {
		sum += n
	}
	return sum + offset
}

func notASlice(byKey map[string]int) int {
	sum := 0
	for _, v := range byKey {
		sum += v
	}
	return sum
}

func suppressed(numbers []int) int {
	sum := 0 //nolint:sumfold
	for _, n := range numbers {
		sum = n + sum
	}
	return sum
}
