package explore

import (
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/core/model"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/metrics"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/log"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/sklearn/model_selection"
)

// holdoutTestSize is the share of rows held out by GetScores.
const holdoutTestSize = 0.2

// ScoreRow is one model's holdout RMSE.
type ScoreRow struct {
	Name string
	RMSE float64
}

// ScoreTable lists holdout RMSEs sorted worst first.
type ScoreTable struct {
	Rows []ScoreRow
}

// Len returns the number of rows.
func (t *ScoreTable) Len() int { return len(t.Rows) }

// Get returns the RMSE recorded for name.
func (t *ScoreTable) Get(name string) (float64, bool) {
	for _, r := range t.Rows {
		if r.Name == name {
			return r.RMSE, true
		}
	}
	return 0, false
}

// GetScores fits every model on its own random 80/20 split of (X, y) and
// scores it on the held-out rows with RMSE. Rows are keyed by model.Name and
// sorted by RMSE in descending order (worst first). A later model with the
// same name replaces the earlier score.
//
// rng drives the splits; nil gives a different split on every call.
func GetScores(models []model.Model, X, y mat.Matrix, rng *rand.Rand) (*ScoreTable, error) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	logger := log.GetLogger().With(log.ComponentKey, "explore")

	table := &ScoreTable{}
	index := make(map[string]int, len(models))

	for _, m := range models {
		name := model.Name(m)

		XTrain, XTest, yTrain, yTest, err := model_selection.TrainTestSplit(X, y, holdoutTestSize, rng)
		if err != nil {
			return nil, err
		}

		var pred mat.Matrix
		err = errors.SafeExecute(name+".Fit", func() error {
			if err := m.Fit(XTrain, yTrain); err != nil {
				return err
			}
			var err error
			pred, err = m.Predict(XTest)
			return err
		})
		if err != nil {
			logger.Error("Holdout fit failed", err, log.ModelNameKey, name)
			return nil, err
		}

		rmse, err := scoreHoldout(yTest, pred)
		if err != nil {
			return nil, err
		}

		trainRows, _ := XTrain.Dims()
		testRows, _ := XTest.Dims()
		logger.Debug("Model scored",
			log.ModelNameKey, name,
			log.TrainKey, trainRows,
			log.TestKey, testRows,
			log.RMSEKey, rmse,
		)

		if i, ok := index[name]; ok {
			table.Rows[i].RMSE = rmse
			continue
		}
		index[name] = len(table.Rows)
		table.Rows = append(table.Rows, ScoreRow{Name: name, RMSE: rmse})
	}

	sort.SliceStable(table.Rows, func(i, j int) bool {
		return table.Rows[i].RMSE > table.Rows[j].RMSE
	})
	return table, nil
}

func scoreHoldout(yTest, pred mat.Matrix) (float64, error) {
	yTrue, err := metrics.ColumnVec("GetScores", yTest)
	if err != nil {
		return 0, err
	}
	yPred, err := metrics.ColumnVec("GetScores", pred)
	if err != nil {
		return 0, err
	}
	return metrics.ExpM1RMSE(yTrue, yPred)
}
