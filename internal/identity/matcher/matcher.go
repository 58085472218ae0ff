// Package matcher decides whether two face descriptors belong to the same
// person. Distance is Euclidean (L2) over the full vectors; smaller distance
// means higher similarity.
package matcher

import (
	"fmt"
	"math"

	"biometric-core-api/internal/identity/domain"
)

// Result is the outcome of comparing a probe descriptor against a stored one.
type Result struct {
	Distance float64
	IsMatch  bool
}

// DimensionMismatchError reports descriptors of differing lengths. Unreachable
// when both inputs passed validation; if it surfaces, it is a bug upstream.
type DimensionMismatchError struct {
	LenA, LenB int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("descriptor dimension mismatch: %d vs %d", e.LenA, e.LenB)
}

// Compare returns the Euclidean distance between a and b and whether it is
// within threshold. The comparison never truncates or pads: mismatched lengths
// fail. Differences accumulate in float64, so the result is deterministic for
// identical inputs.
func Compare(a, b domain.Descriptor, threshold float64) (Result, error) {
	if len(a) != len(b) {
		return Result{}, &DimensionMismatchError{LenA: len(a), LenB: len(b)}
	}
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	dist := math.Sqrt(sum)
	return Result{Distance: dist, IsMatch: dist <= threshold}, nil
}
