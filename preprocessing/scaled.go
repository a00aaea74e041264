package preprocessing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/core/model"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/metrics"
)

// ScaledRegressor standardises the features with a StandardScaler fitted on
// the training data, then delegates to the wrapped regressor. Because the
// scaler is refitted on every Fit, cross-validation never leaks test-fold
// statistics into training.
type ScaledRegressor struct {
	scaler    *StandardScaler
	regressor model.Tunable
}

// NewScaledRegressor wraps regressor with a default StandardScaler.
func NewScaledRegressor(regressor model.Tunable) *ScaledRegressor {
	return &ScaledRegressor{
		scaler:    NewStandardScaler(true, true),
		regressor: regressor,
	}
}

// Regressor returns the wrapped model.
func (p *ScaledRegressor) Regressor() model.Tunable { return p.regressor }

// Name reports "Scaled" followed by the wrapped model's name.
func (p *ScaledRegressor) Name() string {
	return "Scaled" + model.Name(p.regressor)
}

// Fit scales X and fits the regressor on the scaled features.
func (p *ScaledRegressor) Fit(X, y mat.Matrix) error {
	XScaled, err := p.scaler.FitTransform(X)
	if err != nil {
		return err
	}
	return p.regressor.Fit(XScaled, y)
}

// Predict scales X with the fitted statistics and predicts.
func (p *ScaledRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	XScaled, err := p.scaler.Transform(X)
	if err != nil {
		return nil, err
	}
	return p.regressor.Predict(XScaled)
}

// Score scores the regressor on scaled features with its own Score, or R²
// when it has none.
func (p *ScaledRegressor) Score(X, y mat.Matrix) (float64, error) {
	XScaled, err := p.scaler.Transform(X)
	if err != nil {
		return 0, err
	}
	return metrics.DefaultScorer(p.regressor, XScaled, y)
}

// GetParams merges the scaler's with_mean/with_std with the regressor's
// parameters.
func (p *ScaledRegressor) GetParams() map[string]interface{} {
	params := p.regressor.GetParams()
	for k, v := range p.scaler.GetParams() {
		params[k] = v
	}
	return params
}

// SetParams routes with_mean and with_std to the scaler and everything else
// to the regressor.
func (p *ScaledRegressor) SetParams(params map[string]interface{}) error {
	scalerParams := map[string]interface{}{}
	regressorParams := map[string]interface{}{}
	for k, v := range params {
		switch k {
		case "with_mean", "with_std":
			scalerParams[k] = v
		default:
			regressorParams[k] = v
		}
	}
	if err := p.scaler.SetParams(scalerParams); err != nil {
		return err
	}
	return p.regressor.SetParams(regressorParams)
}

// Clone returns an unfitted copy of the scaler and regressor.
func (p *ScaledRegressor) Clone() model.Model {
	inner, ok := p.regressor.Clone().(model.Tunable)
	if !ok {
		inner = p.regressor
	}
	c := NewScaledRegressor(inner)
	c.scaler.withMean, c.scaler.withStd = p.scaler.withMean, p.scaler.withStd
	return c
}

func (p *ScaledRegressor) String() string {
	return fmt.Sprintf("ScaledRegressor(%v, %v)", p.scaler, p.regressor)
}
