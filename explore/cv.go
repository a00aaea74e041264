package explore

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/core/model"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/log"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/sklearn/model_selection"
)

// cvFolds is the number of unshuffled folds ReportCVScores uses.
const cvFolds = 5

// Descriptor pairs a display name with a model.
type Descriptor struct {
	Name  string
	Model model.Model
}

// ReportCVScores writes one line per descriptor, in order, with the mean
// 5-fold cross-validated score:
//
//	Model: ridge, CV score:0.8123
//
// Scoring is the model's own Score method, or R² when it has none.
func ReportCVScores(w io.Writer, models []Descriptor, X, y mat.Matrix) error {
	logger := log.GetLogger().With(log.ComponentKey, "explore")
	for _, d := range models {
		scores, err := model_selection.CrossValScore(d.Model, X, y, model_selection.NewKFold(cvFolds), "")
		if err != nil {
			return err
		}
		mean := stat.Mean(scores, nil)
		logger.Debug("Cross-validated", log.ModelNameKey, d.Name, log.FoldsKey, len(scores), log.ScoreKey, mean)

		if _, err := fmt.Fprintf(w, "Model: %s, CV score:%.4f\n", d.Name, mean); err != nil {
			return err
		}
	}
	return nil
}
