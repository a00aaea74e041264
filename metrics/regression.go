package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

// checkPair は回帰指標の共通入力検証を行う
func checkPair(op string, yTrue, yPred *mat.VecDense) (int, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError(op, "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError(op, n, yPred.Len(), 0)
	}
	return n, nil
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkPair("MSE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// MSEMatrix は n×1 の行列形式の入力に対してMSEを計算する
func MSEMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	a, err := ColumnVec("MSEMatrix", yTrue)
	if err != nil {
		return 0, err
	}
	b, err := ColumnVec("MSEMatrix", yPred)
	if err != nil {
		return 0, err
	}
	return MSE(a, b)
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkPair("MAE", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	// MAE = (1/n) * Σ|yTrue - yPred|
	return floats.Distance(denseData(yTrue), denseData(yPred), 1) / float64(n), nil
}

// R2Score は決定係数（R²）を計算する。yTrue の分散が0の場合は有限値に丸める
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkPair("R2Score", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	yMean := stat.Mean(denseData(yTrue), nil)

	// 全変動（TSS）と残差変動（RSS）
	var tss, rss float64
	for i := 0; i < n; i++ {
		t := yTrue.AtVec(i)
		p := yPred.AtVec(i)
		tss += (t - yMean) * (t - yMean)
		rss += (t - p) * (t - p)
	}

	// 目的変数が定数の場合: 完全一致なら1、それ以外は0
	if tss == 0 {
		if rss == 0 {
			return 1, nil
		}
		return 0, nil
	}
	return 1 - rss/tss, nil
}

// ExpM1RMSE computes the RMSE between expm1(yTrue) and expm1(yPred). Both
// inputs are on the log1p scale, so the error is reported in the original
// target units. An overflowing expm1 yields a NumericalInstabilityError.
func ExpM1RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkPair("ExpM1RMSE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	a := make([]float64, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = math.Expm1(yTrue.AtVec(i))
		b[i] = math.Expm1(yPred.AtVec(i))
	}
	if err := errors.CheckNumericalStability("ExpM1RMSE.yTrue", a); err != nil {
		return 0, err
	}
	if err := errors.CheckNumericalStability("ExpM1RMSE.yPred", b); err != nil {
		return 0, err
	}

	rmse, err := RMSE(mat.NewVecDense(n, a), mat.NewVecDense(n, b))
	if err != nil {
		return 0, err
	}
	if err := errors.CheckScalar("ExpM1RMSE", rmse); err != nil {
		return 0, err
	}
	return rmse, nil
}

// ColumnVec copies an n×1 matrix into a vector.
func ColumnVec(op string, m mat.Matrix) (*mat.VecDense, error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewValueError(op, "empty matrix")
	}
	if c != 1 {
		return nil, errors.NewValueError(op, "must be a column vector (n×1 matrix)")
	}
	if v, ok := m.(*mat.VecDense); ok {
		return mat.VecDenseCopyOf(v), nil
	}
	return mat.NewVecDense(r, mat.Col(nil, 0, m)), nil
}

// denseData returns a contiguous copy of v's elements.
func denseData(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
