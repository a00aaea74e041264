// Package neighbors implements regression based on k-nearest neighbors.
package neighbors

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/core/model"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/core/parallel"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/metrics"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

const (
	// WeightsUniform gives every neighbor the same weight.
	WeightsUniform = "uniform"
	// WeightsDistance weights neighbors by the inverse of their distance.
	WeightsDistance = "distance"
)

// 予測行数がこの値以下なら並列化しない
const parallelThreshold = 64

// KNeighborsRegressor predicts the (weighted) mean target of the k nearest
// training rows under Euclidean distance.
type KNeighborsRegressor struct {
	state *model.StateManager

	nNeighbors int
	weights    string
	nJobs      int

	xTrain *mat.Dense
	yTrain []float64
}

// Option configures a KNeighborsRegressor.
type Option func(*KNeighborsRegressor)

// WithNNeighbors sets k.
func WithNNeighbors(k int) Option {
	return func(r *KNeighborsRegressor) { r.nNeighbors = k }
}

// WithWeights sets the weighting scheme ("uniform" or "distance").
func WithWeights(weights string) Option {
	return func(k *KNeighborsRegressor) { k.weights = weights }
}

// WithNJobs sets the number of goroutines used by Predict; -1 uses every CPU.
func WithNJobs(n int) Option {
	return func(k *KNeighborsRegressor) { k.nJobs = n }
}

// NewKNeighborsRegressor creates a regressor with k=5 and uniform weights.
func NewKNeighborsRegressor(options ...Option) *KNeighborsRegressor {
	k := &KNeighborsRegressor{
		state:      model.NewStateManager(),
		nNeighbors: 5,
		weights:    WeightsUniform,
		nJobs:      1,
	}
	for _, opt := range options {
		opt(k)
	}
	return k
}

func (k *KNeighborsRegressor) validate() error {
	if k.nNeighbors < 1 {
		return errors.NewValidationError("n_neighbors", "must be at least 1", k.nNeighbors)
	}
	if k.weights != WeightsUniform && k.weights != WeightsDistance {
		return errors.NewValidationError("weights", `must be "uniform" or "distance"`, k.weights)
	}
	return nil
}

// Fit stores a copy of the training data.
func (k *KNeighborsRegressor) Fit(X, y mat.Matrix) error {
	if err := k.validate(); err != nil {
		return err
	}
	rows, cols := X.Dims()
	yRows, _ := y.Dims()
	if rows == 0 || cols == 0 {
		return errors.NewModelError("KNeighborsRegressor.Fit", "empty data", errors.ErrEmptyData)
	}
	if rows != yRows {
		return errors.NewDimensionError("KNeighborsRegressor.Fit", rows, yRows, 0)
	}
	yVec, err := metrics.ColumnVec("KNeighborsRegressor.Fit", y)
	if err != nil {
		return err
	}

	k.xTrain = mat.DenseCopyOf(X)
	k.yTrain = yVec.RawVector().Data
	k.state.SetFitted(cols, rows)
	return nil
}

type neighbor struct {
	index    int
	distance float64
}

// Predict averages the targets of each row's nearest training rows.
func (k *KNeighborsRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := k.state.RequirePredictable("KNeighborsRegressor", "Predict", X); err != nil {
		return nil, err
	}
	_, nTrain := k.state.Dimensions()
	if k.nNeighbors > nTrain {
		return nil, errors.NewValueError("KNeighborsRegressor.Predict",
			fmt.Sprintf("n_neighbors=%d exceeds the %d fitted samples", k.nNeighbors, nTrain))
	}

	rows, cols := X.Dims()
	out := mat.NewDense(rows, 1, nil)

	parallel.ParallelizeWithThreshold(rows, parallelThreshold, k.nJobs, func(start, end int) {
		row := make([]float64, cols)
		neighbors := make([]neighbor, nTrain)
		for i := start; i < end; i++ {
			mat.Row(row, i, X)
			for t := 0; t < nTrain; t++ {
				neighbors[t] = neighbor{index: t, distance: floats.Distance(row, k.xTrain.RawRowView(t), 2)}
			}
			// 同距離は学習データの順序を保つ
			sort.SliceStable(neighbors, func(a, b int) bool {
				return neighbors[a].distance < neighbors[b].distance
			})
			out.Set(i, 0, k.aggregate(neighbors[:k.nNeighbors]))
		}
	})

	if err := errors.CheckColumn("KNeighborsRegressor.Predict", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (k *KNeighborsRegressor) aggregate(nearest []neighbor) float64 {
	if k.weights == WeightsUniform {
		sum := 0.0
		for _, n := range nearest {
			sum += k.yTrain[n.index]
		}
		return sum / float64(len(nearest))
	}

	// 距離0の近傍があればそれらだけの平均を返す
	exact, nExact := 0.0, 0
	for _, n := range nearest {
		if n.distance == 0 {
			exact += k.yTrain[n.index]
			nExact++
		}
	}
	if nExact > 0 {
		return exact / float64(nExact)
	}

	num, den := 0.0, 0.0
	for _, n := range nearest {
		w := 1 / n.distance
		num += w * k.yTrain[n.index]
		den += w
	}
	if math.IsInf(den, 0) {
		return math.NaN()
	}
	return num / den
}

// Score returns R² on (X, y).
func (k *KNeighborsRegressor) Score(X, y mat.Matrix) (float64, error) {
	r2, err := metrics.GetScorer("r2")
	if err != nil {
		return 0, err
	}
	return r2(k, X, y)
}

// IsFitted returns whether the model has been fitted.
func (k *KNeighborsRegressor) IsFitted() bool {
	return k.state.IsFitted()
}

// GetParams returns the hyperparameters.
func (k *KNeighborsRegressor) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"n_neighbors": k.nNeighbors,
		"weights":     k.weights,
		"n_jobs":      k.nJobs,
	}
}

// SetParams sets hyperparameters by name.
func (k *KNeighborsRegressor) SetParams(params map[string]interface{}) error {
	next := *k
	for name, v := range params {
		var err error
		switch name {
		case "n_neighbors":
			next.nNeighbors, err = model.ParamInt(name, v)
		case "weights":
			next.weights, err = model.ParamString(name, v)
		case "n_jobs":
			next.nJobs, err = model.ParamInt(name, v)
		default:
			err = model.UnknownParam("KNeighborsRegressor", name, v)
		}
		if err != nil {
			return err
		}
	}
	if err := next.validate(); err != nil {
		return err
	}
	k.nNeighbors, k.weights, k.nJobs = next.nNeighbors, next.weights, next.nJobs
	return nil
}

// Clone returns an unfitted copy with the same hyperparameters.
func (k *KNeighborsRegressor) Clone() model.Model {
	return NewKNeighborsRegressor(WithNNeighbors(k.nNeighbors), WithWeights(k.weights), WithNJobs(k.nJobs))
}

func (k *KNeighborsRegressor) String() string {
	return fmt.Sprintf("KNeighborsRegressor(n_neighbors=%d, weights=%s)", k.nNeighbors, k.weights)
}
