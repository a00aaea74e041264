package linear_model

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

const eps = 2.220446049250313e-16

// centerData は切片を学習する場合に X と y を列平均で中心化する
func centerData(X mat.Matrix, y *mat.VecDense, fitIntercept bool) (Xc *mat.Dense, yc *mat.VecDense, xMean []float64, yMean float64) {
	rows, cols := X.Dims()
	Xc = mat.DenseCopyOf(X)
	yc = mat.VecDenseCopyOf(y)
	xMean = make([]float64, cols)
	if !fitIntercept {
		return Xc, yc, xMean, 0
	}
	for j := 0; j < cols; j++ {
		xMean[j] = stat.Mean(mat.Col(nil, j, Xc), nil)
		for i := 0; i < rows; i++ {
			Xc.Set(i, j, Xc.At(i, j)-xMean[j])
		}
	}
	yMean = stat.Mean(yc.RawVector().Data, nil)
	for i := 0; i < rows; i++ {
		yc.SetVec(i, yc.AtVec(i)-yMean)
	}
	return Xc, yc, xMean, yMean
}

// leastSquares solves min ||A·w - b||₂. Full-rank systems use QR; rank-deficient
// ones (duplicated or collinear columns) get the minimum-norm solution from
// the SVD pseudo-inverse.
func leastSquares(op string, A mat.Matrix, b *mat.VecDense) ([]float64, error) {
	rows, cols := A.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(A, mat.SVDThin); !ok {
		return nil, errors.NewModelError(op, "SVD factorization failed", errors.ErrSingularMatrix)
	}
	rank := svd.Rank(float64(max(rows, cols)) * eps)
	if rank == 0 {
		return make([]float64, cols), nil
	}

	w := mat.NewDense(cols, 1, nil)
	if rank == cols {
		// 正規方程式より数値的に安定なQR分解を使用
		var qr mat.QR
		qr.Factorize(A)
		if err := qr.SolveTo(w, false, b); err == nil {
			return mat.Col(nil, 0, w), nil
		}
	}
	svd.SolveTo(w, b, rank)
	return mat.Col(nil, 0, w), nil
}

// nonNegativeLeastSquares solves min ||A·w - b||₂ subject to w ≥ 0 with the
// Lawson–Hanson active set method.
func nonNegativeLeastSquares(op string, A *mat.Dense, b *mat.VecDense) ([]float64, error) {
	rows, cols := A.Dims()
	tol := 10 * eps * mat.Norm(A, 1) * float64(max(rows, cols))
	maxIter := 3 * cols

	x := make([]float64, cols)
	passive := make([]bool, cols)

	// 勾配 w = Aᵀ(b - A·x)
	gradient := func() []float64 {
		var ax, r, g mat.VecDense
		ax.MulVec(A, mat.NewVecDense(cols, x))
		r.SubVec(b, &ax)
		g.MulVec(A.T(), &r)
		return g.RawVector().Data
	}

	for iter := 0; ; iter++ {
		g := gradient()
		best, bestJ := tol, -1
		for j := 0; j < cols; j++ {
			if !passive[j] && g[j] > best {
				best, bestJ = g[j], j
			}
		}
		if bestJ < 0 {
			break
		}
		if iter >= maxIter {
			return nil, errors.NewModelError(op, "non-negative least squares did not converge", errors.ErrSingularMatrix)
		}
		passive[bestJ] = true

		for {
			z, err := passiveSolve(op, A, b, passive)
			if err != nil {
				return nil, err
			}
			feasible := true
			alpha := math.Inf(1)
			for j := 0; j < cols; j++ {
				if passive[j] && z[j] <= 0 {
					feasible = false
					step := 0.0
					if d := x[j] - z[j]; d > 0 {
						step = x[j] / d
					}
					if step < alpha {
						alpha = step
					}
				}
			}
			if feasible {
				copy(x, z)
				break
			}
			// 実行可能域の境界まで進め、ゼロになった係数を能動集合に戻す
			for j := 0; j < cols; j++ {
				x[j] += alpha * (z[j] - x[j])
				if passive[j] && x[j] <= tol {
					passive[j] = false
					x[j] = 0
				}
			}
		}
	}

	if err := errors.CheckNumericalStability(op, x); err != nil {
		return nil, err
	}
	return x, nil
}

// passiveSolve は受動集合の列だけで最小二乗を解き、他の係数を0にする
func passiveSolve(op string, A *mat.Dense, b *mat.VecDense, passive []bool) ([]float64, error) {
	rows, cols := A.Dims()
	idx := make([]int, 0, cols)
	for j, p := range passive {
		if p {
			idx = append(idx, j)
		}
	}
	sub := mat.NewDense(rows, len(idx), nil)
	for k, j := range idx {
		for i := 0; i < rows; i++ {
			sub.Set(i, k, A.At(i, j))
		}
	}
	w, err := leastSquares(op, sub, b)
	if err != nil {
		return nil, err
	}
	z := make([]float64, cols)
	for k, j := range idx {
		z[j] = w[k]
	}
	return z, nil
}
