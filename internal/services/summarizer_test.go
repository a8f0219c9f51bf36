package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Akash89-eng/StockMarketAnalysis/internal/models"
)

func TestSummarizer_Summarize(t *testing.T) {
	s := NewSummarizer()
	symbols := []string{"A", "B", "C"}

	tests := []struct {
		name             string
		eig              *models.EigenDecomposition
		expectedStock    string
		expectedPct      float64
		expectDegenerate bool
	}{
		{
			name: "dominant by absolute weight",
			eig: &models.EigenDecomposition{
				Eigenvalues: []float64{3, 1, 0},
				Vectors: [][]float64{
					{0.2, 1, 0},
					{-0.9, 0, 1},
					{0.3, 0, 0},
				},
			},
			expectedStock: "B",
			expectedPct:   75,
		},
		{
			name: "tie broken by lowest index",
			eig: &models.EigenDecomposition{
				Eigenvalues: []float64{2, 2},
				Vectors: [][]float64{
					{0.5, 0.5},
					{-0.5, 0.5},
				},
			},
			expectedStock: "A",
			expectedPct:   50,
		},
		{
			name: "zero total variance",
			eig: &models.EigenDecomposition{
				Eigenvalues: []float64{0, 0},
				Vectors: [][]float64{
					{1, 0},
					{0, 1},
				},
			},
			expectedStock:    "A",
			expectedPct:      0,
			expectDegenerate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := s.Summarize(tt.eig, symbols, 10)
			assert.Equal(t, tt.expectedStock, summary.MainTrendStock)
			assert.InDelta(t, tt.expectedPct, summary.VarianceExplained, 1e-12)
			assert.Equal(t, tt.expectDegenerate, summary.DegenerateVariance)
			assert.Equal(t, 10, summary.NumberOfDays)
		})
	}
}

func TestSummarizer_VarianceExplainedBounds(t *testing.T) {
	s := NewSummarizer()

	// A tiny negative trailing eigenvalue from floating-point noise must
	// not push the percentage outside [0, 100].
	summary := s.Summarize(&models.EigenDecomposition{
		Eigenvalues: []float64{1e-4, -1e-20},
		Vectors: [][]float64{
			{1, 0},
			{0, 1},
		},
	}, []string{"A", "B"}, 5)

	assert.GreaterOrEqual(t, summary.VarianceExplained, 0.0)
	assert.LessOrEqual(t, summary.VarianceExplained, 100.0)
	assert.InDelta(t, 1e-4, summary.TotalVariance, 1e-10)
}

func TestSummarizer_EmptyDecomposition(t *testing.T) {
	s := NewSummarizer()

	summary := s.Summarize(nil, []string{"A"}, 0)
	assert.True(t, summary.DegenerateVariance)
	assert.Zero(t, summary.VarianceExplained)
	assert.Empty(t, summary.MainTrendStock)
}
