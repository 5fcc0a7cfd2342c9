// Code generated by hand. DO NOT EDIT.

package generated

func generated(numbers []int) int {
	sum := 0 // want "Loop summing into 'sum' can be replaced with lo.Sum"
	for _, n := range numbers {
		sum += n
	}
	return sum
}
