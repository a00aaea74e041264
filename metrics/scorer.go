package metrics

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/core/model"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

// Scorer evaluates a fitted model on (X, y). Greater is better, so error
// metrics are negated ("neg_mean_squared_error").
type Scorer func(m model.Predictor, X, y mat.Matrix) (float64, error)

type vecMetric func(yTrue, yPred *mat.VecDense) (float64, error)

func predictionScorer(op string, metric vecMetric, sign float64) Scorer {
	return func(m model.Predictor, X, y mat.Matrix) (float64, error) {
		pred, err := m.Predict(X)
		if err != nil {
			return 0, err
		}
		yTrue, err := ColumnVec(op, y)
		if err != nil {
			return 0, err
		}
		yPred, err := ColumnVec(op, pred)
		if err != nil {
			return 0, err
		}
		v, err := metric(yTrue, yPred)
		if err != nil {
			return 0, err
		}
		return sign * v, nil
	}
}

var scorers = map[string]Scorer{
	"r2":                          predictionScorer("r2", R2Score, 1),
	"neg_mean_squared_error":      predictionScorer("neg_mean_squared_error", MSE, -1),
	"neg_root_mean_squared_error": predictionScorer("neg_root_mean_squared_error", RMSE, -1),
	"neg_mean_absolute_error":     predictionScorer("neg_mean_absolute_error", MAE, -1),
	"neg_rmse_expm1":              predictionScorer("neg_rmse_expm1", ExpM1RMSE, -1),
}

// GetScorer returns the scorer registered under name. The empty name selects
// the model's own Score method when it has one and R² otherwise.
func GetScorer(name string) (Scorer, error) {
	if name == "" {
		return DefaultScorer, nil
	}
	s, ok := scorers[name]
	if !ok {
		return nil, errors.NewValidationError("scoring", "unknown scorer, want one of "+joinNames(), name)
	}
	return s, nil
}

// DefaultScorer delegates to model.Scorer and falls back to R².
func DefaultScorer(m model.Predictor, X, y mat.Matrix) (float64, error) {
	if s, ok := m.(model.Scorer); ok {
		return s.Score(X, y)
	}
	return scorers["r2"](m, X, y)
}

// ScorerNames lists the registered scorer names in sorted order.
func ScorerNames() []string {
	names := make([]string, 0, len(scorers))
	for k := range scorers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func joinNames() string {
	out := ""
	for i, n := range ScorerNames() {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
