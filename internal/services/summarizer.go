package services

import (
	"math"

	"github.com/Akash89-eng/StockMarketAnalysis/internal/models"
)

// Summarizer derives the human-facing analysis digest from an
// eigen-decomposition.
type Summarizer struct{}

// NewSummarizer creates a new analytics summarizer.
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize reports the instrument dominating the first principal component,
// the share of variance that component explains, and totals. The dominant
// instrument is the one with the largest absolute weight in the first
// eigenvector, lowest index winning ties. A numerically zero total variance
// makes the explained percentage undefined; it is reported as 0 with the
// degenerate flag set instead of dividing by zero.
func (s *Summarizer) Summarize(eig *models.EigenDecomposition, symbols []string, observationCount int) models.AnalysisSummary {
	summary := models.AnalysisSummary{
		NumberOfDays: observationCount,
	}
	if eig == nil || eig.Dim() == 0 {
		summary.DegenerateVariance = true
		return summary
	}

	leading := eig.Column(0)
	dominant := 0
	for i := 1; i < len(leading); i++ {
		if math.Abs(leading[i]) > math.Abs(leading[dominant]) {
			dominant = i
		}
	}
	if dominant < len(symbols) {
		summary.MainTrendStock = symbols[dominant]
	}

	var total float64
	for _, v := range eig.Eigenvalues {
		total += v
	}
	summary.TotalVariance = total

	if total == 0 || math.Abs(total) < 1e-300 {
		summary.DegenerateVariance = true
		return summary
	}

	pct := eig.Eigenvalues[0] / total * 100
	// Tiny negative eigenvalues from floating-point noise can push the
	// ratio just outside [0, 100].
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	summary.VarianceExplained = pct
	return summary
}
