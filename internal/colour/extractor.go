package colour

import (
	"fmt"
	"image"
)

// Extractor defines the interface for colour extraction algorithms.
type Extractor interface {
	// Extract extracts a colour palette from an image.
	// The count parameter specifies the maximum number of colours to extract.
	Extract(img image.Image, count int) (*Palette, error)
}

// Algorithm represents the colour extraction algorithm type.
type Algorithm string

const (
	// AlgorithmMedianCut reduces the image with median cut and orders the
	// resulting colours by how many pixels map to them.
	AlgorithmMedianCut Algorithm = "mediancut"
)

const (
	// DefaultColourCount is the number of colours extracted when none is given.
	DefaultColourCount = 5

	// MaxColourCount is the largest palette an extractor will produce.
	MaxColourCount = 256
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmMedianCut,
	}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// NewExtractor creates a new Extractor based on the specified algorithm.
// Returns an error if the algorithm is not recognised.
func NewExtractor(alg Algorithm) (Extractor, error) {
	switch alg {
	case AlgorithmMedianCut:
		return NewQuantizer(), nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm: %s (valid algorithms: %v)", ErrInvalidArgument, alg, ValidAlgorithms())
	}
}

// ExtractorConfig holds configuration for colour extraction.
type ExtractorConfig struct {
	Algorithm  Algorithm
	ColorCount int
}

// DefaultExtractorConfig returns the default extractor configuration.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Algorithm:  AlgorithmMedianCut,
		ColorCount: DefaultColourCount,
	}
}

// Validate validates the extractor configuration.
func (c ExtractorConfig) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("%w: invalid algorithm: %s", ErrInvalidArgument, c.Algorithm)
	}
	return validateColourCount(c.ColorCount)
}

func validateColourCount(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: colour count must be at least 1, got %d", ErrInvalidArgument, n)
	}
	if n > MaxColourCount {
		return fmt.Errorf("%w: colour count too large: %d (maximum: %d)", ErrInvalidArgument, n, MaxColourCount)
	}
	return nil
}
