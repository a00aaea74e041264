package model_selection

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/log"
)

func withTestLogger(t *testing.T) *log.TestLogger {
	t.Helper()
	prev := log.GetLogger()
	logger, _ := log.NewTestLogger(log.LevelDebug)
	log.SetLogger(logger)
	t.Cleanup(func() { log.SetLogger(prev) })
	return logger
}

func TestParameterGrid(t *testing.T) {
	got, err := ParameterGrid(ParamGrid{
		"b": {1, 2},
		"a": {"x", "y"},
	})
	require.NoError(t, err)
	assert.Equal(t, []map[string]interface{}{
		{"a": "x", "b": 1},
		{"a": "x", "b": 2},
		{"a": "y", "b": 1},
		{"a": "y", "b": 2},
	}, got)
}

func TestParameterGridMultiple(t *testing.T) {
	got, err := ParameterGrid(
		ParamGrid{"alpha": {0.1, 1.0}},
		ParamGrid{},
	)
	require.NoError(t, err)
	assert.Equal(t, []map[string]interface{}{
		{"alpha": 0.1},
		{"alpha": 1.0},
		{},
	}, got)

	_, err = ParameterGrid(ParamGrid{"alpha": {}})
	var ve *errors.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestCrossValScore(t *testing.T) {
	X, y := linearData(10)

	scores, err := CrossValScore(identityModel{}, X, y, NewKFold(5), "neg_mean_squared_error")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, scores)

	scores, err = CrossValScore(scoredModel{}, X, y, nil, "")
	require.NoError(t, err)
	assert.Equal(t, []float64{42, 42, 42, 42, 42}, scores, "default scoring uses the model's Score")
}

func TestCrossValScoreOffset(t *testing.T) {
	X, y := constantData(10, 3)
	fits := 0
	m := &offsetModel{offset: 2, fits: &fits}

	scores, err := CrossValScore(m, X, y, NewKFold(5), "neg_mean_squared_error")
	require.NoError(t, err)
	for _, s := range scores {
		assert.InDelta(t, -4.0, s, 1e-12)
	}
	assert.Equal(t, 5, fits, "one fit per fold")
	assert.Equal(t, 0.0, m.mean, "the original model is never fitted")
}

func TestCrossValScoreErrors(t *testing.T) {
	X, y := constantData(10, 1)

	_, err := CrossValScore(&offsetModel{offset: 99}, X, y, nil, "")
	assert.True(t, errors.Is(err, errBoom))

	_, err = CrossValScore(&offsetModel{offset: -99}, X, y, nil, "")
	var pe *errors.PanicError
	assert.True(t, errors.As(err, &pe), "panic is converted: %v", err)

	_, err = CrossValScore(identityModel{}, X, y, nil, "accuracy")
	assert.Error(t, err)

	_, err = CrossValScore(identityModel{}, X, y, NewKFold(11), "")
	assert.Error(t, err)
}

func TestGridSearchCV(t *testing.T) {
	X, y := constantData(20, 3)
	grid := []ParamGrid{{"offset": {-1.0, 0.0, 2.0}}}

	for _, nJobs := range []int{1, 4, -1} {
		gs := NewGridSearchCV(&offsetModel{}, grid,
			WithScoring("neg_mean_squared_error"),
			WithNJobs(nJobs),
		)
		require.NoError(t, gs.Fit(X, y))

		res := gs.CVResults
		require.NotNil(t, res)
		assert.Equal(t, []map[string]interface{}{{"offset": -1.0}, {"offset": 0.0}, {"offset": 2.0}}, res.Params)
		assert.InDeltaSlice(t, []float64{-1, 0, -4}, res.MeanTestScore, 1e-12)
		assert.InDeltaSlice(t, []float64{0, 0, 0}, res.StdTestScore, 1e-12)
		assert.Equal(t, []int{2, 1, 3}, res.RankTestScore)
		assert.Len(t, res.SplitTestScores, 3)
		assert.Len(t, res.SplitTestScores[0], 5)
		assert.Len(t, res.MeanFitTime, 3)

		assert.Equal(t, 1, gs.BestIndex)
		assert.Equal(t, 0.0, gs.BestScore)
		assert.Equal(t, map[string]interface{}{"offset": 0.0}, gs.BestParams)

		require.NotNil(t, gs.BestEstimator)
		best := gs.BestEstimator.(*offsetModel)
		assert.Equal(t, 0.0, best.offset)
		assert.Equal(t, 3.0, best.mean, "refit on the full data")
	}
}

func TestGridSearchCVNoRefit(t *testing.T) {
	X, y := constantData(10, 1)
	gs := NewGridSearchCV(&offsetModel{}, []ParamGrid{{"offset": {0.0}}}, WithRefit(false))
	require.NoError(t, gs.Fit(X, y))
	assert.Nil(t, gs.BestEstimator)
	assert.Equal(t, 0, gs.BestIndex)
}

func TestGridSearchCVFirstErrorAborts(t *testing.T) {
	X, y := constantData(10, 1)
	logger := withTestLogger(t)

	gs := NewGridSearchCV(&offsetModel{}, []ParamGrid{{"offset": {0.0, 99.0, 1.0}}}, WithNJobs(3))
	err := gs.Fit(X, y)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errBoom), "error is returned unchanged: %v", err)
	assert.Nil(t, gs.CVResults)
	assert.Nil(t, gs.BestEstimator)
	assert.True(t, logger.ContainsMessage("Grid search failed"))
}

func TestGridSearchCVPanicAndInstability(t *testing.T) {
	X, y := constantData(10, 1)

	err := NewGridSearchCV(&offsetModel{}, []ParamGrid{{"offset": {-99.0}}}).Fit(X, y)
	var pe *errors.PanicError
	assert.True(t, errors.As(err, &pe), "got %v", err)

	err = NewGridSearchCV(&offsetModel{}, []ParamGrid{{"offset": {math.Inf(1)}}},
		WithScoring("neg_mean_squared_error")).Fit(X, y)
	var ne *errors.NumericalInstabilityError
	assert.True(t, errors.As(err, &ne), "got %v", err)
}

func TestGridSearchCVValidation(t *testing.T) {
	X, y := constantData(10, 1)

	assert.Error(t, NewGridSearchCV(nil, []ParamGrid{{"offset": {0.0}}}).Fit(X, y))
	assert.Error(t, NewGridSearchCV(&offsetModel{}, nil).Fit(X, y), "no candidates")
	assert.Error(t, NewGridSearchCV(&offsetModel{}, []ParamGrid{{"alpha": {1.0}}}).Fit(X, y), "unknown parameter")
	assert.Error(t, NewGridSearchCV(&offsetModel{}, []ParamGrid{{"offset": {0.0}}}, WithScoring("nope")).Fit(X, y))
}

func TestGridSearchCVCancelledContext(t *testing.T) {
	X, y := constantData(10, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewGridSearchCV(&offsetModel{}, []ParamGrid{{"offset": {0.0, 1.0}}}).FitContext(ctx, X, y)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGridSearchCVVerboseLogging(t *testing.T) {
	X, y := constantData(10, 1)
	grid := []ParamGrid{{"offset": {0.0, 1.0, 2.0}}}

	logger := withTestLogger(t)
	require.NoError(t, NewGridSearchCV(&offsetModel{}, grid, WithVerbose(0)).Fit(X, y))
	assert.Equal(t, 0, logger.CountMessage("CV fit"))
	assert.Equal(t, 0, logger.CountMessage("Fitting folds for each candidate"))

	logger.Clear()
	require.NoError(t, NewGridSearchCV(&offsetModel{}, grid, WithVerbose(1)).Fit(X, y))
	assert.Equal(t, 1, logger.CountMessage("Fitting folds for each candidate"))
	assert.Equal(t, 0, logger.CountMessage("CV fit"))
	assert.True(t, logger.ContainsField(log.FitsKey, 15.0))

	logger.Clear()
	require.NoError(t, NewGridSearchCV(&offsetModel{}, grid, WithVerbose(3), WithNJobs(2)).Fit(X, y))
	assert.Equal(t, 15, logger.CountMessage("CV fit"))
	assert.True(t, logger.ContainsField(log.TrainKey, 8.0))
	assert.True(t, logger.ContainsField(log.ModelNameKey, "offsetModel"))
}

func TestRankDescending(t *testing.T) {
	assert.Equal(t, []int{4, 1, 1, 3}, rankDescending([]float64{1, 3, 3, 2}))
}
