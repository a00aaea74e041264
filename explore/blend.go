package explore

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/core/model"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/log"
)

// AverageBlending fits every model on (XTrain, yTrain), predicts XPred with
// each and returns the unweighted mean of the predictions.
func AverageBlending(models []Descriptor, XTrain, yTrain, XPred mat.Matrix) ([]float64, error) {
	if len(models) == 0 {
		return nil, errors.NewValueError("AverageBlending", "no models to blend")
	}
	rows, _ := XPred.Dims()
	logger := log.GetLogger().With(log.ComponentKey, "explore", log.OperationKey, log.OperationBlend)

	sum := make([]float64, rows)
	for _, d := range models {
		var pred mat.Matrix
		err := errors.SafeExecute(model.Name(d.Model)+".Fit", func() error {
			if err := d.Model.Fit(XTrain, yTrain); err != nil {
				return err
			}
			var err error
			pred, err = d.Model.Predict(XPred)
			return err
		})
		if err != nil {
			logger.Error("Blend member failed", err, log.ModelNameKey, d.Name)
			return nil, err
		}

		pr, pc := pred.Dims()
		if pr != rows {
			return nil, errors.NewDimensionError("AverageBlending", rows, pr, 0)
		}
		if pc != 1 {
			return nil, errors.NewDimensionError("AverageBlending", 1, pc, 1)
		}
		floats.Add(sum, mat.Col(nil, 0, pred))
	}

	if len(models) > 1 {
		floats.Scale(1/float64(len(models)), sum)
	}
	logger.Debug("Blended predictions", log.SamplesKey, rows, log.ModelsKey, len(models))
	return sum, nil
}
