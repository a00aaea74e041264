// Package explore holds the helpers used while comparing regression models on
// a log1p-transformed target: log-space RMSE, a holdout comparison across
// models, a grid-search summary, cross-validated score reporting and
// averaged blending of predictions.
//
// Models are fitted in place and owned by the caller; none of the helpers is
// safe to call concurrently on the same model.
package explore

import (
	"gonum.org/v1/gonum/mat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/metrics"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

// RMSE returns the root mean squared error between yTrue and yPred after
// undoing the log1p transform (expm1) on both.
func RMSE(yTrue, yPred []float64) (float64, error) {
	if len(yTrue) == 0 || len(yPred) == 0 {
		return 0, errors.NewValueError("RMSE", "empty input")
	}
	if len(yTrue) != len(yPred) {
		return 0, errors.NewDimensionError("RMSE", len(yTrue), len(yPred), 0)
	}
	return metrics.ExpM1RMSE(mat.NewVecDense(len(yTrue), yTrue), mat.NewVecDense(len(yPred), yPred))
}
