package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	tests := []struct {
		input  string
		weight float64
		reps   int
	}{
		{"80, 12", 80, 12},
		{"80,12", 80, 12},
		{"80 12", 80, 12},
		{"82.5, 5", 82.5, 5},
		{"82.5,   5", 82.5, 5},
		{"100, 0", 100, 0},
		{"0.5 20", 0.5, 20},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Set(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.weight, got.Weight)
			assert.Equal(t, tt.reps, got.Reps)
		})
	}
}

func TestSetRejectsNonSetInput(t *testing.T) {
	inputs := []string{
		"",
		"Pull-ups",
		"80",
		"80, 12, 3",
		"80, 12.5", // повторения должны быть целыми
		"-80, 12",
		"80, -12",
		"80.5.5, 12",
		"80, twelve",
		"Bench 80 12",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, ok := Set(input)
			assert.False(t, ok)
			assert.False(t, IsSet(input))
		})
	}
}

func TestSetPreservesWeightDigits(t *testing.T) {
	// Вес не округляется: текстовые цифры воспроизводятся точно
	got, ok := Set("67.25, 8")
	require.True(t, ok)
	assert.Equal(t, 67.25, got.Weight)
}
