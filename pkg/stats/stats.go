// Package stats computes assembly quality statistics over contig lengths.
package stats

import (
	"errors"
	"slices"
)

// ErrNoLengths is returned by [N50] and [L50] when the length set is empty.
// An empty assembly has no meaningful quality statistic, so this fails fast
// instead of reporting a misleading zero.
var ErrNoLengths = errors.New("no contig lengths")

// Lengths maps a contig set to its length set, preserving order.
func Lengths(contigs []string) []int {
	lengths := make([]int, len(contigs))
	for i, c := range contigs {
		lengths[i] = len(c)
	}
	return lengths
}

// Total returns the sum of all lengths.
func Total(lengths []int) int {
	total := 0
	for _, l := range lengths {
		total += l
	}
	return total
}

// N50 returns the length L such that contigs of length >= L cover at least
// half of the total assembled bases: sort descending and return the first
// length at which the running sum reaches total/2. The half point is
// compared without rounding, so an odd total of 9 needs a running sum of
// at least 4.5.
//
// Returns ErrNoLengths for an empty input.
func N50(lengths []int) (int, error) {
	if len(lengths) == 0 {
		return 0, ErrNoLengths
	}

	sorted := slices.Clone(lengths)
	slices.SortFunc(sorted, func(a, b int) int { return b - a })

	half := float64(Total(sorted)) / 2
	running := 0
	for _, l := range sorted {
		running += l
		if float64(running) >= half {
			return l, nil
		}
	}
	// Unreachable: the full sum always reaches half.
	return sorted[len(sorted)-1], nil
}

// L50 returns the smallest number of contigs whose lengths sum to at least
// half of the total. It is the rank of the N50 contig.
//
// Returns ErrNoLengths for an empty input.
func L50(lengths []int) (int, error) {
	if len(lengths) == 0 {
		return 0, ErrNoLengths
	}

	sorted := slices.Clone(lengths)
	slices.SortFunc(sorted, func(a, b int) int { return b - a })

	half := float64(Total(sorted)) / 2
	running := 0
	for i, l := range sorted {
		running += l
		if float64(running) >= half {
			return i + 1, nil
		}
	}
	return len(sorted), nil
}
