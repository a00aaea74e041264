// Package estimators builds regressors from a kind tag and a parameter map,
// the form they take in experiment files.
package estimators

import (
	"sort"
	"strings"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/core/model"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/preprocessing"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/sklearn/dummy"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/sklearn/linear_model"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/sklearn/neighbors"
)

// Kind tags.
const (
	KindLinearRegression = "linear_regression"
	KindRidge            = "ridge"
	KindKNN              = "knn"
	KindDummy            = "dummy"
)

var constructors = map[string]func() model.Tunable{
	KindLinearRegression: func() model.Tunable { return linear_model.NewLinearRegression() },
	KindRidge:            func() model.Tunable { return linear_model.NewRidge() },
	KindKNN:              func() model.Tunable { return neighbors.NewKNeighborsRegressor() },
	KindDummy:            func() model.Tunable { return dummy.NewDummyRegressor() },
}

// New returns a default-configured model of the given kind with params applied.
func New(kind string, params map[string]interface{}) (model.Tunable, error) {
	return build(kind, params, false)
}

// NewScaled is New with the model wrapped in a preprocessing.ScaledRegressor.
// params may also set the scaler's with_mean and with_std.
func NewScaled(kind string, params map[string]interface{}) (model.Tunable, error) {
	return build(kind, params, true)
}

func build(kind string, params map[string]interface{}, scale bool) (model.Tunable, error) {
	ctor, ok := constructors[kind]
	if !ok {
		return nil, errors.NewValidationError("kind", "unknown model kind, want one of "+strings.Join(Kinds(), ", "), kind)
	}
	m := ctor()
	if scale {
		m = preprocessing.NewScaledRegressor(m)
	}
	if len(params) > 0 {
		if err := m.SetParams(params); err != nil {
			return nil, errors.Wrapf(err, "configure %s", kind)
		}
	}
	return m, nil
}

// Kinds lists the registered kinds in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(constructors))
	for k := range constructors {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
