package linear_model

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/core/model"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

// LinearRegression is ordinary least squares. Full-rank designs are solved
// with QR, rank-deficient ones with the SVD minimum-norm solution, and
// positive=true runs non-negative least squares.
type LinearRegression struct {
	state *model.StateManager

	// Hyperparameters
	fitIntercept bool
	positive     bool

	// Learned parameters
	coef_      []float64
	intercept_ float64
}

// LinearRegressionOption は設定オプション
type LinearRegressionOption func(*LinearRegression)

// WithFitIntercept は切片の学習有無を設定
func WithFitIntercept(fit bool) LinearRegressionOption {
	return func(lr *LinearRegression) {
		lr.fitIntercept = fit
	}
}

// WithPositive は係数の正制約を設定
func WithPositive(positive bool) LinearRegressionOption {
	return func(lr *LinearRegression) {
		lr.positive = positive
	}
}

// NewLinearRegression は新しいLinearRegressionモデルを作成
func NewLinearRegression(options ...LinearRegressionOption) *LinearRegression {
	lr := &LinearRegression{
		state:        model.NewStateManager(),
		fitIntercept: true,
	}
	for _, opt := range options {
		opt(lr)
	}
	return lr
}

// Fit はモデルを訓練データで学習
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	rows, cols, yVec, err := checkFitInput("LinearRegression.Fit", X, y)
	if err != nil {
		return err
	}

	nParams := cols
	if lr.fitIntercept {
		nParams++
	}
	if rows < nParams {
		return errors.NewValueError("LinearRegression.Fit",
			fmt.Sprintf("need at least %d samples for %d coefficients, got %d", nParams, nParams, rows))
	}

	// 中心化して切片を係数から分離する。切片は正制約の対象外
	Xc, yc, xMean, yMean := centerData(X, yVec, lr.fitIntercept)

	var coef []float64
	if lr.positive {
		coef, err = nonNegativeLeastSquares("LinearRegression.Fit", Xc, yc)
	} else {
		coef, err = leastSquares("LinearRegression.Fit", Xc, yc)
	}
	if err != nil {
		return err
	}
	if err := errors.CheckNumericalStability("LinearRegression.Fit", coef); err != nil {
		return err
	}

	lr.coef_ = coef
	lr.intercept_ = 0
	if lr.fitIntercept {
		lr.intercept_ = yMean - floats.Dot(xMean, coef)
	}

	lr.state.SetFitted(cols, rows)
	return nil
}

// Predict は入力データに対する予測を行う
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := lr.state.RequirePredictable("LinearRegression", "Predict", X); err != nil {
		return nil, err
	}
	return linearPredict(X, lr.coef_, lr.intercept_), nil
}

// Score はモデルの決定係数（R²）を計算
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	predictions, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}
	return r2("LinearRegression.Score", predictions, y)
}

// Coef は学習された重み係数のコピーを返す
func (lr *LinearRegression) Coef() []float64 {
	if lr.coef_ == nil {
		return nil
	}
	coef := make([]float64, len(lr.coef_))
	copy(coef, lr.coef_)
	return coef
}

// Intercept は学習された切片を返す
func (lr *LinearRegression) Intercept() float64 {
	return lr.intercept_
}

// IsFitted returns whether the model has been fitted.
func (lr *LinearRegression) IsFitted() bool {
	return lr.state.IsFitted()
}

// GetParams returns the hyperparameters.
func (lr *LinearRegression) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"fit_intercept": lr.fitIntercept,
		"positive":      lr.positive,
	}
}

// SetParams sets hyperparameters by name.
func (lr *LinearRegression) SetParams(params map[string]interface{}) error {
	for k, v := range params {
		var err error
		switch k {
		case "fit_intercept":
			lr.fitIntercept, err = model.ParamBool(k, v)
		case "positive":
			lr.positive, err = model.ParamBool(k, v)
		default:
			err = model.UnknownParam("LinearRegression", k, v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Clone returns an unfitted copy with the same hyperparameters.
func (lr *LinearRegression) Clone() model.Model {
	return NewLinearRegression(WithFitIntercept(lr.fitIntercept), WithPositive(lr.positive))
}

// String returns the string representation of the model
func (lr *LinearRegression) String() string {
	return fmt.Sprintf("LinearRegression(fit_intercept=%t, positive=%t)", lr.fitIntercept, lr.positive)
}
