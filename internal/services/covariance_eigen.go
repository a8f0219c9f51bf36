package services

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/Akash89-eng/StockMarketAnalysis/internal/models"
	"github.com/Akash89-eng/StockMarketAnalysis/internal/utils"
)

// CovarianceEigenAnalyzer computes the sample covariance matrix of aligned
// return series and its eigen-decomposition. The covariance matrix is
// real-symmetric, so a symmetric solver is used and eigenvalues are
// guaranteed real.
type CovarianceEigenAnalyzer struct{}

// NewCovarianceEigenAnalyzer creates a new covariance/eigen analyzer.
func NewCovarianceEigenAnalyzer() *CovarianceEigenAnalyzer {
	return &CovarianceEigenAnalyzer{}
}

// Analyze computes the unbiased pairwise covariance of the given return
// series and decomposes it. Eigenvalues and their eigenvector columns are
// sorted by eigenvalue descending; exact ties keep their original column
// order so the output is deterministic even for degenerate spectra.
//
// All series must share identical date alignment; a mismatch is an internal
// invariant violation reported as MisalignedSeriesError.
func (a *CovarianceEigenAnalyzer) Analyze(returns []models.ReturnSeries) (*models.CovarianceMatrix, *models.EigenDecomposition, error) {
	n := len(returns)
	if n == 0 {
		return nil, nil, utils.NewEmptyRangeError("no return series to analyze")
	}

	if err := checkAlignment(returns); err != nil {
		return nil, nil, err
	}
	obs := returns[0].Len()

	// Observation matrix: one row per date, one column per instrument.
	data := make([]float64, obs*n)
	for j, rs := range returns {
		for t, p := range rs.Points {
			data[t*n+j] = p.Return
		}
	}

	cov := mat.NewSymDense(n, nil)
	stat.CovarianceMatrix(cov, mat.NewDense(obs, n, data), nil)

	symbols := make([]string, n)
	covData := make([][]float64, n)
	for i := range covData {
		symbols[i] = returns[i].Symbol
		covData[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			v := cov.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, nil, utils.NewNumericalErrorf("non-finite covariance entry at (%d, %d)", i, j)
			}
			covData[i][j] = v
		}
	}
	matrix := &models.CovarianceMatrix{Symbols: symbols, Data: covData}

	var es mat.EigenSym
	if ok := es.Factorize(cov, true); !ok {
		return nil, nil, utils.NewNumericalErrorf("eigen-decomposition of %dx%d covariance matrix failed to converge", n, n)
	}

	values := es.Values(nil)
	var vectors mat.Dense
	es.VectorsTo(&vectors)

	// gonum returns eigenvalues ascending; reorder descending. The stable
	// sort preserves original column order for exact ties.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return values[order[x]] > values[order[y]]
	})

	eig := &models.EigenDecomposition{
		Eigenvalues: make([]float64, n),
		Vectors:     make([][]float64, n),
	}
	for k, col := range order {
		eig.Eigenvalues[k] = values[col]
	}
	for i := 0; i < n; i++ {
		eig.Vectors[i] = make([]float64, n)
		for k, col := range order {
			eig.Vectors[i][k] = vectors.At(i, col)
		}
	}
	return matrix, eig, nil
}

// checkAlignment verifies that every return series covers exactly the same
// dates as the first one.
func checkAlignment(returns []models.ReturnSeries) error {
	ref := returns[0]
	for _, rs := range returns[1:] {
		if rs.Len() != ref.Len() {
			return utils.NewMisalignedSeriesErrorf("return series %s has %d observations, %s has %d",
				rs.Symbol, rs.Len(), ref.Symbol, ref.Len())
		}
		for t := range rs.Points {
			if !rs.Points[t].Date.Equal(ref.Points[t].Date) {
				return utils.NewMisalignedSeriesErrorf("return series %s and %s diverge at observation %d",
					rs.Symbol, ref.Symbol, t)
			}
		}
	}
	return nil
}
