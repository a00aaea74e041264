// Package linear_model provides least-squares regressors.
package linear_model

import (
	"gonum.org/v1/gonum/mat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/metrics"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

// checkFitInput は学習データの形状を検証し、y をベクトルとして返す
func checkFitInput(op string, X, y mat.Matrix) (rows, cols int, yVec *mat.VecDense, err error) {
	rows, cols = X.Dims()
	yRows, yCols := y.Dims()

	if rows == 0 || cols == 0 {
		return 0, 0, nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if rows != yRows {
		return 0, 0, nil, errors.NewDimensionError(op, rows, yRows, 0)
	}
	if yCols != 1 {
		return 0, 0, nil, errors.NewDimensionError(op, 1, yCols, 1)
	}
	yVec, err = metrics.ColumnVec(op, y)
	if err != nil {
		return 0, 0, nil, err
	}
	return rows, cols, yVec, nil
}

// linearPredict は y = X·coef + intercept を n×1 行列で返す
func linearPredict(X mat.Matrix, coef []float64, intercept float64) *mat.Dense {
	rows, cols := X.Dims()
	predictions := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		pred := intercept
		for j := 0; j < cols; j++ {
			pred += X.At(i, j) * coef[j]
		}
		predictions.Set(i, 0, pred)
	}
	return predictions
}

// r2 scores predictions against y with the coefficient of determination.
func r2(op string, predictions, y mat.Matrix) (float64, error) {
	yTrue, err := metrics.ColumnVec(op, y)
	if err != nil {
		return 0, err
	}
	yPred, err := metrics.ColumnVec(op, predictions)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(yTrue, yPred)
}
