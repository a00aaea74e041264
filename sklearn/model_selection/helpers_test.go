package model_selection

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/core/model"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

var errBoom = errors.New("boom")

// offsetModel predicts mean(y_train) + offset. Fit fails when offset is 99
// and panics when it is -99.
type offsetModel struct {
	offset float64
	mean   float64
	fits   *int
}

func (m *offsetModel) Fit(X, y mat.Matrix) error {
	switch m.offset {
	case 99:
		return errBoom
	case -99:
		panic("offset -99")
	}
	m.mean = stat.Mean(mat.Col(nil, 0, y), nil)
	if m.fits != nil {
		*m.fits++
	}
	return nil
}

func (m *offsetModel) Predict(X mat.Matrix) (mat.Matrix, error) {
	r, _ := X.Dims()
	out := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		out.Set(i, 0, m.mean+m.offset)
	}
	return out, nil
}

func (m *offsetModel) GetParams() map[string]interface{} {
	return map[string]interface{}{"offset": m.offset}
}

func (m *offsetModel) SetParams(params map[string]interface{}) error {
	for k, v := range params {
		if k != "offset" {
			return model.UnknownParam("offsetModel", k, v)
		}
		f, err := model.ParamFloat(k, v)
		if err != nil {
			return err
		}
		m.offset = f
	}
	return nil
}

func (m *offsetModel) Clone() model.Model {
	return &offsetModel{offset: m.offset, fits: m.fits}
}

func (m *offsetModel) String() string { return fmt.Sprintf("offsetModel(%g)", m.offset) }

// identityModel predicts the first feature column and keeps no state.
type identityModel struct{}

func (identityModel) Fit(X, y mat.Matrix) error { return nil }

func (identityModel) Predict(X mat.Matrix) (mat.Matrix, error) {
	r, _ := X.Dims()
	return mat.NewDense(r, 1, mat.Col(nil, 0, X)), nil
}

// scoredModel reports a fixed score from its own Score method.
type scoredModel struct{ identityModel }

func (scoredModel) Score(X, y mat.Matrix) (float64, error) { return 42, nil }

// linearData returns X = [0..n) as one column and y = X.
func linearData(n int) (*mat.Dense, *mat.Dense) {
	X := mat.NewDense(n, 1, nil)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i))
		y.Set(i, 0, float64(i))
	}
	return X, y
}

// constantData returns n rows with X = i and y = value.
func constantData(n int, value float64) (*mat.Dense, *mat.Dense) {
	X := mat.NewDense(n, 1, nil)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i))
		y.Set(i, 0, value)
	}
	return X, y
}
