package neighbors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

func TestKNeighborsRegressor_Uniform(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{0, 1, 2, 10})
	y := mat.NewDense(4, 1, []float64{0, 1, 2, 10})

	knn := NewKNeighborsRegressor(WithNNeighbors(2))
	require.NoError(t, knn.Fit(X, y))

	pred, err := knn.Predict(mat.NewDense(2, 1, []float64{0.4, 9}))
	require.NoError(t, err)
	// 0.4 → {0, 1}; 9 → {10, 2}
	assert.InDelta(t, 0.5, pred.At(0, 0), 1e-12)
	assert.InDelta(t, 6.0, pred.At(1, 0), 1e-12)
}

func TestKNeighborsRegressor_Distance(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{0, 1, 4})
	y := mat.NewDense(3, 1, []float64{0, 3, 100})

	knn := NewKNeighborsRegressor(WithNNeighbors(2), WithWeights(WeightsDistance))
	require.NoError(t, knn.Fit(X, y))

	pred, err := knn.Predict(mat.NewDense(2, 1, []float64{0.25, 1}))
	require.NoError(t, err)
	// weights 1/0.25 = 4 and 1/0.75 = 4/3
	assert.InDelta(t, (4.0/3*3)/(4+4.0/3), pred.At(0, 0), 1e-12)
	// exact match takes the training target
	assert.InDelta(t, 3.0, pred.At(1, 0), 1e-12)
}

func TestKNeighborsRegressor_ParallelMatchesSerial(t *testing.T) {
	nTrain, nTest := 30, 200
	X := mat.NewDense(nTrain, 2, nil)
	y := mat.NewDense(nTrain, 1, nil)
	for i := 0; i < nTrain; i++ {
		X.Set(i, 0, float64(i))
		X.Set(i, 1, float64(i%7))
		y.Set(i, 0, float64(i*i))
	}
	XTest := mat.NewDense(nTest, 2, nil)
	for i := 0; i < nTest; i++ {
		XTest.Set(i, 0, float64(i)*0.15)
		XTest.Set(i, 1, float64(i%5))
	}

	serial := NewKNeighborsRegressor(WithNNeighbors(3))
	require.NoError(t, serial.Fit(X, y))
	want, err := serial.Predict(XTest)
	require.NoError(t, err)

	par := NewKNeighborsRegressor(WithNNeighbors(3), WithNJobs(4))
	require.NoError(t, par.Fit(X, y))
	got, err := par.Predict(XTest)
	require.NoError(t, err)

	assert.True(t, mat.Equal(want, got))
}

func TestKNeighborsRegressor_Errors(t *testing.T) {
	knn := NewKNeighborsRegressor(WithNNeighbors(3))

	_, err := knn.Predict(mat.NewDense(1, 1, []float64{0}))
	var nf *errors.NotFittedError
	assert.True(t, errors.As(err, &nf))

	require.NoError(t, knn.Fit(mat.NewDense(2, 1, []float64{0, 1}), mat.NewDense(2, 1, []float64{0, 1})))
	_, err = knn.Predict(mat.NewDense(1, 1, []float64{0}))
	var ve *errors.ValueError
	assert.True(t, errors.As(err, &ve), "k larger than the training set: %v", err)

	assert.Error(t, NewKNeighborsRegressor(WithWeights("gaussian")).Fit(
		mat.NewDense(1, 1, []float64{0}), mat.NewDense(1, 1, []float64{0})))
}

func TestKNeighborsRegressor_Params(t *testing.T) {
	knn := NewKNeighborsRegressor()
	require.NoError(t, knn.SetParams(map[string]interface{}{"n_neighbors": 3.0, "weights": "distance"}))
	assert.Equal(t, 3, knn.GetParams()["n_neighbors"])
	assert.Equal(t, "distance", knn.GetParams()["weights"])

	assert.Error(t, knn.SetParams(map[string]interface{}{"n_neighbors": 0}))
	assert.Equal(t, 3, knn.GetParams()["n_neighbors"], "invalid values are not applied")

	assert.Error(t, knn.SetParams(map[string]interface{}{"leaf_size": 30}))

	clone := knn.Clone().(*KNeighborsRegressor)
	assert.Equal(t, knn.GetParams(), clone.GetParams())
	assert.False(t, clone.IsFitted())
}

func TestKNeighborsRegressor_Score(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewDense(4, 1, []float64{1, 2, 3, 4})

	knn := NewKNeighborsRegressor(WithNNeighbors(1))
	require.NoError(t, knn.Fit(X, y))
	score, err := knn.Score(X, y)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-12)
}
