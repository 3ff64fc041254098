// Package analyzer finds the empty seat in a set of occupied seats.
package analyzer

import (
	"fmt"
	"sort"

	"github.com/keep94/boarding/seat"
	"github.com/keep94/goconsume"
)

// Result reports the range of occupied seat ids and the empty seat within it.
type Result struct {

	// The lowest occupied seat id
	Lowest int

	// The highest occupied seat id
	Highest int

	// The one unoccupied seat id between Lowest and Highest
	Mine int
}

// Analyze takes occupied seats in any order and finds the lowest id, the
// highest id, and the first id between them that is not occupied.
// Analyze does not modify seats. seats are expected to have unique ids
// with exactly one gap; if they don't, the returned Mine is unspecified.
// Analyze returns an AnalysisError if seats is empty or has no gap.
func Analyze(seats []seat.Seat) (*Result, error) {
	if len(seats) == 0 {
		return nil, seat.NewError(seat.AnalysisError, "no seats to analyze")
	}
	sorted := make([]seat.Seat, len(seats))
	copy(sorted, seats)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Id < sorted[j].Id
	})
	lowest := sorted[0].Id
	highest := sorted[len(sorted)-1].Id
	for id := lowest; id <= highest; id++ {
		idx := id - lowest
		if idx >= len(sorted) || sorted[idx].Id != id {
			return &Result{Lowest: lowest, Highest: highest, Mine: id}, nil
		}
	}
	return nil, seat.NewError(
		seat.AnalysisError,
		fmt.Sprintf("no missing seat id between %d and %d", lowest, highest))
}

// Collect returns a consumer that appends each consumed *seat.Seat to
// seats.
func Collect(seats *[]seat.Seat) goconsume.Consumer {
	return goconsume.AppendTo(seats)
}
