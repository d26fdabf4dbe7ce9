package mortgage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinimumDownPayment(t *testing.T) {
	tests := []struct {
		name          string
		propertyPrice float64
		expected      float64
	}{
		{"Zero price", 0, 0},
		{"Below lower threshold", 400000, 20000},
		{"At lower threshold", 500000, 25000},
		{"Just above lower threshold", 500001, 25000.1},
		{"Between thresholds", 750000, 50000},
		{"At upper threshold", 1000000, 75000},
		{"Just above upper threshold", 1000001, 200000.2},
		{"Well above upper threshold", 2000000, 400000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, MinimumDownPayment(tt.propertyPrice), 1e-6)
		})
	}
}

func TestMinimumDownPaymentIsContinuousAtLowerThreshold(t *testing.T) {
	// Both sides of the 500,000 boundary agree on 25,000.
	below := MinimumDownPayment(500000)
	above := MinimumDownPayment(500000.000001)
	assert.InDelta(t, 25000.0, below, 1e-9)
	assert.InDelta(t, below, above, 1e-3)
}

func TestIsSufficientDownPayment(t *testing.T) {
	tests := []struct {
		name          string
		downPayment   float64
		propertyPrice float64
		expected      bool
	}{
		{"Exactly five percent", 25000, 500000, true},
		{"One short of five percent", 24999, 500000, false},
		{"Tier two exact", 50000, 750000, true},
		{"Tier two short", 49999, 750000, false},
		{"Twenty percent of a million is plenty", 200000, 1000000, true},
		{"Twenty percent rule above a million", 200000, 1000001, false},
		{"Negative down payment", -1, 100000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSufficientDownPayment(tt.downPayment, tt.propertyPrice))
		})
	}
}
