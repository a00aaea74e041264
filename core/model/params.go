package model

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

// Hyperparameter values arrive from Go code, YAML and JSON, so numbers may be
// int, int64, float64 or uint. These helpers coerce them for SetParams.

// ParamFloat coerces v to float64.
func ParamFloat(name string, v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	default:
		return 0, errors.NewValidationError(name, "must be a number", v)
	}
}

// ParamInt coerces v to int; floats must be whole.
func ParamInt(name string, v interface{}) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case int32:
		return int(x), nil
	case uint:
		return int(x), nil
	case uint64:
		return int(x), nil
	case float64:
		if x != math.Trunc(x) {
			return 0, errors.NewValidationError(name, "must be an integer", v)
		}
		return int(x), nil
	default:
		return 0, errors.NewValidationError(name, "must be an integer", v)
	}
}

// ParamBool coerces v to bool.
func ParamBool(name string, v interface{}) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, errors.NewValidationError(name, "must be a boolean", v)
	}
	return b, nil
}

// ParamString coerces v to string.
func ParamString(name string, v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.NewValidationError(name, "must be a string", v)
	}
	return s, nil
}

// UnknownParam is the error SetParams returns for a name the model lacks.
func UnknownParam(modelName, param string, value interface{}) error {
	return errors.NewValidationError(param, fmt.Sprintf("unknown parameter for %s", modelName), value)
}

// FormatParams renders params as "a=1, b=x" with keys sorted.
func FormatParams(params map[string]interface{}) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, params[k])
	}
	return strings.Join(parts, ", ")
}
