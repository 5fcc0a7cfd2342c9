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

package a

type Meters float64

func ints(numbers []int) int {
	sum := 0 // want "Loop summing into 'sum' can be replaced with lo.Sum"
	for _, n := range numbers {
		sum += n
	}
	return sum
}

func expanded(numbers []int64) int64 {
	var total int64 = 0 // want "Loop summing into 'total' can be replaced with lo.Sum"
	for _, n := range numbers {
		total = total + n
	}
	return total
}

func implicitZero(values []float64) float64 {
	var sum float64 // want "Loop summing into 'sum' can be replaced with lo.Sum"
	for _, v := range values {
		sum += v
	}
	return sum
}

func floatZero(values []float64) float64 {
	sum := 0.0 // want "Loop summing into 'sum' can be replaced with lo.Sum"
	for _, v := range values {
		sum += v
	}
	return sum
}

func hexZero(values []int32) int32 {
	var sum int32 = 0x0 // want "Loop summing into 'sum' can be replaced with lo.Sum"
	for _, v := range values {
		sum += v
	}
	return sum
}

func defined(distances []Meters) Meters {
	var sum Meters = 0 // want "Loop summing into 'sum' can be replaced with lo.Sum"
	for _, d := range distances {
		sum += d
	}
	return sum
}

func grouped(values []float64) float64 {
	var ( // want "Loop summing into 'sum' can be replaced with lo.Sum"
		sum float64 = 0
	)
	for _, v := range values {
		sum += v
	}
	return sum
}

func nested(matrix [][]int) int {
	total := 0
	for _, row := range matrix {
		sum := 0 // want "Loop summing into 'sum' can be replaced with lo.Sum"
		for _, v := range row {
			sum += v
		}
		total += sum
	}
	return total
}

func literal() func([]int64) int64 {
	return func(numbers []int64) int64 {
		var sum int64 = 0 // want "Loop summing into 'sum' can be replaced with lo.Sum"
		for _, n := range numbers {
			sum += n
		}
		return sum
	}
}

func narrow(values []int16) int16 {
	var sum int16 = 0
	for _, v := range values {
		sum += v
	}
	return sum
}

func narrowFloat(values []float32) float32 {
	var sum float32 = 0
	for _, v := range values {
		sum += v
	}
	return sum
}

func unsigned(values []uint) uint {
	var sum uint = 0
	for _, v := range values {
		sum += v
	}
	return sum
}

func commuted(numbers []int) int {
	sum := 0
	for _, n := range numbers {
		sum = n + sum
	}
	return sum
}

func nonZero(numbers []int) int {
	sum := 1
	for _, n := range numbers {
		sum += n
	}
	return sum
}

func shared(numbers []int) int {
	sum, count := 0, 0
	for _, n := range numbers {
		sum += n
	}
	return sum + count
}

func notAdjacent(numbers []int) int {
	sum := 0
	offset := 2
	for _, n := range numbers {
		sum += n
	}
	return sum + offset
}

func reassigned(numbers []int) int {
	sum := 0
	sum = len(numbers)
	for _, n := range numbers {
		sum += n
	}
	return sum
}

func twoStatements(numbers []int) (int, int) {
	sum, count := 0, 0
	for _, n := range numbers {
		sum += n
		count++
	}
	return sum, count
}

func scaled(numbers []int) int {
	sum := 0
	for _, n := range numbers {
		sum += 2 * n
	}
	return sum
}

func indexed(numbers []int) int {
	sum := 0
	for i, n := range numbers {
		sum += i * n
	}
	return sum
}

func mapValues(byKey map[string]int) int {
	sum := 0
	for _, v := range byKey {
		sum += v
	}
	return sum
}

func array(fixed [3]int) int {
	sum := 0
	for _, v := range fixed {
		sum += v
	}
	return sum
}

func assigned(numbers []int) int {
	var n int
	sum := 0
	for _, n = range numbers {
		sum += n
	}
	return sum
}

func suppressed(numbers []int) int {
	sum := 0 //nolint:sumfold
	for _, n := range numbers {
		sum += n
	}
	return sum
}

//nolint:sumfold
func suppressedFunc(numbers []int) int {
	sum := 0
	for _, n := range numbers {
		sum += n
	}
	return sum
}

var literalVar = func(numbers []int) int {
	sum := 0 // want "Loop summing into 'sum' can be replaced with lo.Sum"
	for _, n := range numbers {
		sum += n
	}
	return sum
}

//nolint:sumfold
var ignoredLiteral = func(numbers []int) int {
	sum := 0
	for _, n := range numbers {
		sum += n
	}
	return sum
}
