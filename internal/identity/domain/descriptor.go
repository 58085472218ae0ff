package domain

import "math"

// DescriptorLength is the dimensionality of the face embeddings produced by the
// external detector. Every stored descriptor has exactly this length.
const DescriptorLength = 128

// Descriptor is a fixed-length face embedding. Descriptors are opaque values:
// they are compared only through the matcher, never element-wise.
type Descriptor []float32

// ValidateDescriptor checks shape and finiteness of a raw descriptor before it
// crosses into the enrollment or verification path. A nil descriptor is treated
// as absent. The detector should never emit NaN or Inf, but the boundary does
// not trust it.
func ValidateDescriptor(d Descriptor) error {
	if d == nil {
		return &ValidationError{Field: "descriptor", Reason: ReasonMissing}
	}
	if len(d) != DescriptorLength {
		return &ValidationError{
			Field:    "descriptor",
			Reason:   ReasonWrongLength,
			Expected: DescriptorLength,
			Actual:   len(d),
		}
	}
	for _, v := range d {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return &ValidationError{Field: "descriptor", Reason: ReasonNonFinite}
		}
	}
	return nil
}
