package items

import (
	"fmt"
	"log/slog"
)

// Weight is a non-negative mass in kilograms
type Weight float64

// NewWeight converts a raw value, replacing negatives with zero
func NewWeight(kg float64) Weight {
	if kg < 0 {
		slog.Warn("negative weight replaced with zero", "kg", kg)
		return 0
	}
	return Weight(kg)
}

// Add sums two weights
func (w Weight) Add(other Weight) Weight {
	return w + other
}

// Scale multiplies the weight by a non-negative factor
func (w Weight) Scale(factor float64) Weight {
	if factor < 0 {
		return 0
	}
	return Weight(float64(w) * factor)
}

// Exceeds reports whether w is strictly greater than limit
func (w Weight) Exceeds(limit Weight) bool {
	return w > limit
}

func (w Weight) String() string {
	return fmt.Sprintf("%.1f kg", float64(w))
}
