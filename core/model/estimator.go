// Package model defines the capability interfaces every regressor satisfies.
package model

import (
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる。y は n×1 の列ベクトル。
	Fit(X, y mat.Matrix) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データに対する n×1 の予測を返す
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Model is the capability every helper in this module drives: fit on training
// data, then predict on features. Fitting mutates the model in place.
type Model interface {
	Fitter
	Predictor
}

// Scorer is implemented by models with their own default score (R² for regressors).
type Scorer interface {
	Score(X, y mat.Matrix) (float64, error)
}

// Cloner returns an unfitted copy carrying the same hyperparameters.
type Cloner interface {
	Clone() Model
}

// ParameterGetter exposes a model's hyperparameters by name.
type ParameterGetter interface {
	GetParams() map[string]interface{}
}

// ParameterSetter sets hyperparameters by name. Unknown names are an error.
type ParameterSetter interface {
	SetParams(params map[string]interface{}) error
}

// Tunable is a model grid search can clone and reconfigure.
type Tunable interface {
	Model
	Cloner
	ParameterGetter
	ParameterSetter
}

// Named lets a model override its display name.
type Named interface {
	Name() string
}

// Name returns the display name of m: Name() when implemented, otherwise the
// Go type name without package or pointer ("LinearRegression").
func Name(m interface{}) string {
	if n, ok := m.(Named); ok {
		return n.Name()
	}
	t := reflect.TypeOf(m)
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

// CloneOf returns m.Clone() when m is a Cloner and m itself otherwise.
// The boolean reports whether a fresh copy was made.
func CloneOf(m Model) (Model, bool) {
	if c, ok := m.(Cloner); ok {
		return c.Clone(), true
	}
	return m, false
}
