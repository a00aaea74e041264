// Package dummy provides baseline regressors that ignore the features.
package dummy

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/core/model"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/metrics"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

// Strategies supported by DummyRegressor.
const (
	StrategyMean     = "mean"
	StrategyMedian   = "median"
	StrategyConstant = "constant"
)

// DummyRegressor always predicts a single value derived from the training
// target: its mean, its median or a user supplied constant.
type DummyRegressor struct {
	state *model.StateManager

	strategy    string
	constant    float64
	hasConstant bool

	value float64
}

// Option configures a DummyRegressor.
type Option func(*DummyRegressor)

// WithStrategy sets the strategy.
func WithStrategy(strategy string) Option {
	return func(d *DummyRegressor) { d.strategy = strategy }
}

// WithConstant sets the value predicted by the "constant" strategy.
func WithConstant(c float64) Option {
	return func(d *DummyRegressor) {
		d.constant = c
		d.hasConstant = true
	}
}

// NewDummyRegressor creates a regressor using the "mean" strategy.
func NewDummyRegressor(options ...Option) *DummyRegressor {
	d := &DummyRegressor{
		state:    model.NewStateManager(),
		strategy: StrategyMean,
	}
	for _, opt := range options {
		opt(d)
	}
	return d
}

// Fit computes the value to predict.
func (d *DummyRegressor) Fit(X, y mat.Matrix) error {
	rows, cols := X.Dims()
	yRows, _ := y.Dims()
	if rows == 0 {
		return errors.NewModelError("DummyRegressor.Fit", "empty data", errors.ErrEmptyData)
	}
	if rows != yRows {
		return errors.NewDimensionError("DummyRegressor.Fit", rows, yRows, 0)
	}
	yVec, err := metrics.ColumnVec("DummyRegressor.Fit", y)
	if err != nil {
		return err
	}
	data := yVec.RawVector().Data

	switch d.strategy {
	case StrategyMean:
		d.value = stat.Mean(data, nil)
	case StrategyMedian:
		d.value = median(data)
	case StrategyConstant:
		if !d.hasConstant {
			return errors.NewValidationError("constant", `required by the "constant" strategy`, nil)
		}
		d.value = d.constant
	default:
		return errors.NewValidationError("strategy", "must be one of mean, median, constant", d.strategy)
	}

	d.state.SetFitted(cols, rows)
	return nil
}

// median は偶数個なら中央2値の平均を返す
func median(data []float64) float64 {
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Predict returns the fitted value for every row.
func (d *DummyRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := d.state.RequirePredictable("DummyRegressor", "Predict", X); err != nil {
		return nil, err
	}
	rows, _ := X.Dims()
	out := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		out.Set(i, 0, d.value)
	}
	return out, nil
}

// Score returns R² on (X, y).
func (d *DummyRegressor) Score(X, y mat.Matrix) (float64, error) {
	r2, err := metrics.GetScorer("r2")
	if err != nil {
		return 0, err
	}
	return r2(d, X, y)
}

// IsFitted returns whether the model has been fitted.
func (d *DummyRegressor) IsFitted() bool {
	return d.state.IsFitted()
}

// GetParams returns the hyperparameters. "constant" is nil until set.
func (d *DummyRegressor) GetParams() map[string]interface{} {
	var constant interface{}
	if d.hasConstant {
		constant = d.constant
	}
	return map[string]interface{}{
		"strategy": d.strategy,
		"constant": constant,
	}
}

// SetParams sets hyperparameters by name. A nil constant clears it.
func (d *DummyRegressor) SetParams(params map[string]interface{}) error {
	for k, v := range params {
		var err error
		switch k {
		case "strategy":
			d.strategy, err = model.ParamString(k, v)
		case "constant":
			if v == nil {
				d.constant, d.hasConstant = 0, false
				continue
			}
			d.constant, err = model.ParamFloat(k, v)
			d.hasConstant = err == nil
		default:
			err = model.UnknownParam("DummyRegressor", k, v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Clone returns an unfitted copy with the same hyperparameters.
func (d *DummyRegressor) Clone() model.Model {
	c := NewDummyRegressor(WithStrategy(d.strategy))
	c.constant, c.hasConstant = d.constant, d.hasConstant
	return c
}

func (d *DummyRegressor) String() string {
	if d.hasConstant {
		return fmt.Sprintf("DummyRegressor(strategy=%s, constant=%g)", d.strategy, d.constant)
	}
	return fmt.Sprintf("DummyRegressor(strategy=%s)", d.strategy)
}
