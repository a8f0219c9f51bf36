package models

// CovarianceMatrix is the N×N sample covariance between instrument return
// series, with rows and columns in instrument declaration order.
type CovarianceMatrix struct {
	Symbols []string    `json:"symbols"`
	Data    [][]float64 `json:"data"`
}

// Trace returns the sum of the diagonal entries.
func (m *CovarianceMatrix) Trace() float64 {
	var trace float64
	for i := range m.Data {
		trace += m.Data[i][i]
	}
	return trace
}

// ToSymbolMap converts the matrix into the symbol-keyed nested map used on
// the wire.
func (m *CovarianceMatrix) ToSymbolMap() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(m.Symbols))
	for i, row := range m.Symbols {
		entries := make(map[string]float64, len(m.Symbols))
		for j, col := range m.Symbols {
			entries[col] = m.Data[i][j]
		}
		out[row] = entries
	}
	return out
}

// EigenDecomposition holds eigenvalues sorted descending with their
// eigenvectors as columns of Vectors: Vectors[i][k] is the i-th component of
// the eigenvector for Eigenvalues[k]. Column ordering matches the eigenvalue
// ordering; ties were broken by original column index so the layout is
// deterministic.
type EigenDecomposition struct {
	Eigenvalues []float64   `json:"eigenvalues"`
	Vectors     [][]float64 `json:"eigenvectors"`
}

// Dim returns the dimension of the decomposition.
func (e *EigenDecomposition) Dim() int {
	return len(e.Eigenvalues)
}

// Column returns eigenvector k as a slice.
func (e *EigenDecomposition) Column(k int) []float64 {
	col := make([]float64, len(e.Vectors))
	for i := range e.Vectors {
		col[i] = e.Vectors[i][k]
	}
	return col
}

// AnalysisSummary is the human-facing digest of an eigen-decomposition.
type AnalysisSummary struct {
	MainTrendStock    string  `json:"main_trend_stock"`
	VarianceExplained float64 `json:"variance_explained"`
	TotalVariance     float64 `json:"total_variance"`
	NumberOfDays      int     `json:"number_of_days"`
	// DegenerateVariance is set when total variance was numerically zero
	// and the explained percentage was reported as 0 instead of dividing
	// by zero.
	DegenerateVariance bool `json:"degenerate_variance,omitempty"`
}
