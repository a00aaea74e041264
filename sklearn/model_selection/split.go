// Package model_selection provides data splitting, cross-validation and an
// exhaustive hyperparameter search for the regressors in this module.
package model_selection

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

// NewRand returns a PCG-backed source seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// randOrDefault は rng が nil のとき非決定的なソースを返す
func randOrDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// TrainTestIndices shuffles 0..n-1 and returns the train and test index sets.
// The test set has ceil(testSize·n) samples and takes the head of the
// permutation, the train set takes the rest.
func TrainTestIndices(n int, testSize float64, rng *rand.Rand) (train, test []int, err error) {
	if n < 2 {
		return nil, nil, errors.NewValueError("TrainTestSplit", fmt.Sprintf("need at least 2 samples to split, got %d", n))
	}
	if !(testSize > 0 && testSize < 1) {
		return nil, nil, errors.NewValidationError("test_size", "must be in (0, 1)", testSize)
	}
	nTest := int(math.Ceil(testSize * float64(n)))
	nTrain := n - nTest
	if nTest == 0 || nTrain == 0 {
		return nil, nil, errors.NewValueError("TrainTestSplit",
			fmt.Sprintf("test_size=%g with %d samples leaves an empty train or test set", testSize, n))
	}

	perm := randOrDefault(rng).Perm(n)
	return perm[nTest:], perm[:nTest], nil
}

// TrainTestSplit splits X and y into random train and test subsets.
// Rows keep the order of the permutation.
func TrainTestSplit(X, y mat.Matrix, testSize float64, rng *rand.Rand) (XTrain, XTest, yTrain, yTest *mat.Dense, err error) {
	rows, _ := X.Dims()
	yRows, _ := y.Dims()
	if rows != yRows {
		return nil, nil, nil, nil, errors.NewDimensionError("TrainTestSplit", rows, yRows, 0)
	}

	train, test, err := TrainTestIndices(rows, testSize, rng)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return takeRows(X, train), takeRows(X, test), takeRows(y, train), takeRows(y, test), nil
}

// takeRows copies the given rows of m, in the given order, into a new matrix.
func takeRows(m mat.Matrix, indices []int) *mat.Dense {
	_, cols := m.Dims()
	if len(indices) == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(len(indices), cols, nil)
	for i, idx := range indices {
		for j := 0; j < cols; j++ {
			out.Set(i, j, m.At(idx, j))
		}
	}
	return out
}
