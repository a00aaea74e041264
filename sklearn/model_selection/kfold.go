package model_selection

import (
	"fmt"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

// Fold holds the train and test row indices of one cross-validation split.
type Fold struct {
	Train []int
	Test  []int
}

// Splitter generates cross-validation folds for n samples.
type Splitter interface {
	Split(n int) ([]Fold, error)
	GetNSplits() int
}

// KFold splits the samples into NSplits consecutive folds. Each fold is used
// once as the test set while the remaining folds form the training set. The
// first n % NSplits folds get one extra sample.
type KFold struct {
	NSplits int
	Shuffle bool
	// RandomState seeds the shuffle. Ignored unless Shuffle is set.
	RandomState uint64
}

// NewKFold creates an unshuffled k-fold splitter.
func NewKFold(nSplits int) *KFold {
	return &KFold{NSplits: nSplits}
}

// GetNSplits returns the number of splits
func (kf *KFold) GetNSplits() int {
	return kf.NSplits
}

// Split generates train/test indices for each fold
func (kf *KFold) Split(n int) ([]Fold, error) {
	if kf.NSplits < 2 {
		return nil, errors.NewValidationError("n_splits", "must be at least 2", kf.NSplits)
	}
	if kf.NSplits > n {
		return nil, errors.NewValidationError("n_splits",
			fmt.Sprintf("cannot be greater than the number of samples (%d)", n), kf.NSplits)
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	if kf.Shuffle {
		NewRand(kf.RandomState).Shuffle(n, func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	folds := make([]Fold, kf.NSplits)
	foldSize := n / kf.NSplits
	remainder := n % kf.NSplits

	start := 0
	for i := 0; i < kf.NSplits; i++ {
		testSize := foldSize
		if i < remainder {
			testSize++
		}
		end := start + testSize

		test := make([]int, testSize)
		copy(test, indices[start:end])

		train := make([]int, 0, n-testSize)
		train = append(train, indices[:start]...)
		train = append(train, indices[end:]...)

		folds[i] = Fold{Train: train, Test: test}
		start = end
	}
	return folds, nil
}
