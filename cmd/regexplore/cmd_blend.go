package main

import (
	"math"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/dataset"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/explore"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

const idColumn = "id"

func newBlendCmd(st *cliState) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "blend",
		Short: "Fit every model and write the averaged predictions for data.predict",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := st.cfg
			if cfg.Data.Predict == "" {
				return errors.NewValidationError("data.predict", "is required for blending", cfg.Data.Predict)
			}
			data, err := loadTraining(cfg)
			if err != nil {
				return err
			}
			descs, err := descriptors(cfg)
			if err != nil {
				return err
			}
			predFrame, err := dataset.ReadCSVFile(cfg.Data.Predict)
			if err != nil {
				return err
			}
			ids := predictionIDs(predFrame)
			predFrame, err = predFrame.Select(data.features...)
			if err != nil {
				return err
			}

			blended, err := explore.AverageBlending(descs, data.X, data.y, predFrame.Matrix())
			if err != nil {
				return err
			}

			// 対数変換した目的変数は元のスケールに戻して出力する
			if cfg.Data.LogTarget {
				for i, v := range blended {
					blended[i] = math.Expm1(v)
				}
			}
			frame, err := predictionFrame(ids, cfg.Data.Target, blended)
			if err != nil {
				return err
			}

			if output == "" {
				output = cfg.Output.Predictions
			}
			if output == "" {
				return dataset.WriteCSV(cmd.OutOrStdout(), frame)
			}
			return writePredictions(output, frame)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "predictions CSV (default stdout)")
	return cmd
}

// predictionIDs returns the predict file's id column, or row indices when it
// has none.
func predictionIDs(f *dataset.Frame) []float64 {
	if f.Has(idColumn) {
		ids, _ := f.Column(idColumn)
		return ids
	}
	rows, _ := f.Dims()
	ids := make([]float64, rows)
	for i := range ids {
		ids[i] = float64(i)
	}
	return ids
}

// predictionFrame pairs ids with predictions under "id,<target>". A target
// named id is written as id_pred.
func predictionFrame(ids []float64, target string, predictions []float64) (*dataset.Frame, error) {
	if len(ids) != len(predictions) {
		return nil, errors.NewDimensionError("predictionFrame", len(ids), len(predictions), 0)
	}
	if target == idColumn {
		target += "_pred"
	}
	out := mat.NewDense(len(predictions), 2, nil)
	for i, v := range predictions {
		out.Set(i, 0, ids[i])
		out.Set(i, 1, v)
	}
	return dataset.NewFrame([]string{idColumn, target}, out)
}

func writePredictions(path string, frame *dataset.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := dataset.WriteCSV(f, frame); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	return nil
}
