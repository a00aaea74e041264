package model_selection

import (
	"gonum.org/v1/gonum/mat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/core/model"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/metrics"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/log"
)

// foldData is one fold materialised as dense train and test matrices.
type foldData struct {
	XTrain, yTrain *mat.Dense
	XTest, yTest   *mat.Dense
}

func materialise(X, y mat.Matrix, folds []Fold) []foldData {
	out := make([]foldData, len(folds))
	for i, f := range folds {
		out[i] = foldData{
			XTrain: takeRows(X, f.Train),
			yTrain: takeRows(y, f.Train),
			XTest:  takeRows(X, f.Test),
			yTest:  takeRows(y, f.Test),
		}
	}
	return out
}

func checkXY(op string, X, y mat.Matrix) (int, error) {
	rows, _ := X.Dims()
	yRows, yCols := y.Dims()
	if rows != yRows {
		return 0, errors.NewDimensionError(op, rows, yRows, 0)
	}
	if yCols != 1 {
		return 0, errors.NewDimensionError(op, 1, yCols, 1)
	}
	return rows, nil
}

// fitAndScore fits m on the train part of fd and scores it on the test part.
// A panic inside the model is returned as a PanicError.
func fitAndScore(m model.Model, fd foldData, scorer metrics.Scorer) (score float64, err error) {
	defer errors.Recover(&err, model.Name(m)+".Fit")

	if err := m.Fit(fd.XTrain, fd.yTrain); err != nil {
		return 0, err
	}
	return scorer(m, fd.XTest, fd.yTest)
}

// CrossValScore evaluates est on each fold of cv and returns the test scores
// in fold order. Estimators implementing model.Cloner are cloned per fold,
// others are refitted in place. An empty scoring uses the estimator's own
// Score method, or R² when it has none.
func CrossValScore(est model.Model, X, y mat.Matrix, cv Splitter, scoring string) ([]float64, error) {
	n, err := checkXY("CrossValScore", X, y)
	if err != nil {
		return nil, err
	}
	if cv == nil {
		cv = NewKFold(5)
	}
	scorer, err := metrics.GetScorer(scoring)
	if err != nil {
		return nil, err
	}
	folds, err := cv.Split(n)
	if err != nil {
		return nil, err
	}

	logger := log.GetLogger().With(
		log.ComponentKey, "model_selection",
		log.ModelNameKey, model.Name(est),
	)

	scores := make([]float64, len(folds))
	for i, fd := range materialise(X, y, folds) {
		m, _ := model.CloneOf(est)
		scores[i], err = fitAndScore(m, fd, scorer)
		if err != nil {
			logger.Error("Cross-validation fold failed", err, log.FoldKey, i)
			return nil, err
		}
		logger.Debug("Fold scored", log.FoldKey, i, log.ScoreKey, scores[i])
	}
	return scores, nil
}
