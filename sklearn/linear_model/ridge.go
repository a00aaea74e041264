package linear_model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/core/model"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

// Ridge is least squares with an L2 penalty alpha·‖w‖².
//
// With fit_intercept the features and target are centred before solving so
// the intercept is not penalised. The penalised normal equations
// (XᵀX + αI)w = Xᵀy are solved with a Cholesky factorization.
type Ridge struct {
	state *model.StateManager

	alpha        float64
	fitIntercept bool

	coef_      []float64
	intercept_ float64
}

// RidgeOption configures a Ridge.
type RidgeOption func(*Ridge)

// WithAlpha sets the regularization strength.
func WithAlpha(alpha float64) RidgeOption {
	return func(r *Ridge) {
		r.alpha = alpha
	}
}

// WithRidgeFitIntercept は切片の学習有無を設定
func WithRidgeFitIntercept(fit bool) RidgeOption {
	return func(r *Ridge) {
		r.fitIntercept = fit
	}
}

// NewRidge creates a Ridge with alpha=1 and fit_intercept=true.
func NewRidge(options ...RidgeOption) *Ridge {
	r := &Ridge{
		state:        model.NewStateManager(),
		alpha:        1.0,
		fitIntercept: true,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Fit はモデルを訓練データで学習
func (r *Ridge) Fit(X, y mat.Matrix) error {
	if r.alpha < 0 {
		return errors.NewValidationError("alpha", "must be non-negative", r.alpha)
	}
	rows, cols, yVec, err := checkFitInput("Ridge.Fit", X, y)
	if err != nil {
		return err
	}

	Xc, yc, xMean, yMean := centerData(X, yVec, r.fitIntercept)

	// XᵀX + αI
	var gram mat.SymDense
	gram.SymOuterK(1, Xc.T())
	for j := 0; j < cols; j++ {
		gram.SetSym(j, j, gram.At(j, j)+r.alpha)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(&gram); !ok {
		return errors.NewModelError("Ridge.Fit", "penalised gram matrix is not positive definite", errors.ErrSingularMatrix)
	}

	var xty mat.VecDense
	xty.MulVec(Xc.T(), yc)

	var w mat.VecDense
	if err := chol.SolveVecTo(&w, &xty); err != nil {
		return errors.NewModelError("Ridge.Fit", "failed to solve normal equations", errors.Wrap(errors.ErrSingularMatrix, err.Error()))
	}

	r.coef_ = make([]float64, cols)
	for j := 0; j < cols; j++ {
		r.coef_[j] = w.AtVec(j)
	}
	r.intercept_ = 0
	if r.fitIntercept {
		r.intercept_ = yMean - mat.Dot(mat.NewVecDense(cols, xMean), &w)
	}
	if err := errors.CheckNumericalStability("Ridge.Fit", r.coef_); err != nil {
		return err
	}

	r.state.SetFitted(cols, rows)
	return nil
}

// Predict は入力データに対する予測を行う
func (r *Ridge) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := r.state.RequirePredictable("Ridge", "Predict", X); err != nil {
		return nil, err
	}
	return linearPredict(X, r.coef_, r.intercept_), nil
}

// Score returns R² on (X, y).
func (r *Ridge) Score(X, y mat.Matrix) (float64, error) {
	predictions, err := r.Predict(X)
	if err != nil {
		return 0, err
	}
	return r2("Ridge.Score", predictions, y)
}

// Coef returns a copy of the learned weights.
func (r *Ridge) Coef() []float64 {
	if r.coef_ == nil {
		return nil
	}
	coef := make([]float64, len(r.coef_))
	copy(coef, r.coef_)
	return coef
}

// Intercept returns the learned intercept.
func (r *Ridge) Intercept() float64 {
	return r.intercept_
}

// IsFitted returns whether the model has been fitted.
func (r *Ridge) IsFitted() bool {
	return r.state.IsFitted()
}

// GetParams returns the hyperparameters.
func (r *Ridge) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"alpha":         r.alpha,
		"fit_intercept": r.fitIntercept,
	}
}

// SetParams sets hyperparameters by name.
func (r *Ridge) SetParams(params map[string]interface{}) error {
	for k, v := range params {
		var err error
		switch k {
		case "alpha":
			var alpha float64
			alpha, err = model.ParamFloat(k, v)
			if err == nil && alpha < 0 {
				err = errors.NewValidationError(k, "must be non-negative", v)
			}
			if err == nil {
				r.alpha = alpha
			}
		case "fit_intercept":
			r.fitIntercept, err = model.ParamBool(k, v)
		default:
			err = model.UnknownParam("Ridge", k, v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Clone returns an unfitted copy with the same hyperparameters.
func (r *Ridge) Clone() model.Model {
	return NewRidge(WithAlpha(r.alpha), WithRidgeFitIntercept(r.fitIntercept))
}

func (r *Ridge) String() string {
	return fmt.Sprintf("Ridge(alpha=%g, fit_intercept=%t)", r.alpha, r.fitIntercept)
}
