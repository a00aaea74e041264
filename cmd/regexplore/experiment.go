package main

import (
	"gonum.org/v1/gonum/mat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/core/model"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/dataset"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/explore"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/config"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/log"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/sklearn/estimators"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/sklearn/model_selection"
)

// trainingData is the training table split into features and target.
type trainingData struct {
	X, y     *mat.Dense
	features []string
}

func loadTraining(cfg *config.Config) (*trainingData, error) {
	frame, err := dataset.ReadCSVFile(cfg.Data.Train)
	if err != nil {
		return nil, err
	}
	if cfg.Data.LogTarget {
		if frame, err = frame.Log1p(cfg.Data.Target); err != nil {
			return nil, err
		}
	}
	X, y, features, err := frame.Split(cfg.Data.Target, cfg.Data.Features...)
	if err != nil {
		return nil, err
	}
	rows, cols := X.Dims()
	log.GetLogger().Info("Loaded training data",
		log.ComponentKey, "cli",
		log.SamplesKey, rows,
		log.FeaturesKey, cols,
	)
	return &trainingData{X: X, y: y, features: features}, nil
}

// descriptors builds every model listed in the experiment.
func descriptors(cfg *config.Config) ([]explore.Descriptor, error) {
	if len(cfg.Models) == 0 {
		return nil, errors.NewValidationError("models", "at least one model is required", nil)
	}
	out := make([]explore.Descriptor, 0, len(cfg.Models))
	for _, mc := range cfg.Models {
		m, err := newModel(mc.Kind, mc.Params, mc.Scale)
		if err != nil {
			return nil, errors.Wrapf(err, "model %s", mc.Name)
		}
		out = append(out, explore.Descriptor{Name: mc.Name, Model: m})
	}
	return out, nil
}

func paramGrids(cfg *config.Config) []model_selection.ParamGrid {
	grids := make([]model_selection.ParamGrid, len(cfg.Grid.Params))
	for i, g := range cfg.Grid.Params {
		grids[i] = model_selection.ParamGrid(g)
	}
	return grids
}

func newModel(kind string, params map[string]interface{}, scale bool) (model.Tunable, error) {
	if scale {
		return estimators.NewScaled(kind, params)
	}
	return estimators.New(kind, params)
}
