package errors

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		kind    string
		err     error
		wantMsg string
	}{
		{
			name:    "with original error",
			op:      "GridSearchCV.Fit",
			kind:    "fit failed",
			err:     fmt.Errorf("bad alpha"),
			wantMsg: "regexplore: GridSearchCV.Fit: fit failed: bad alpha",
		},
		{
			name:    "without original error",
			op:      "Predict",
			kind:    "not fitted",
			err:     nil,
			wantMsg: "regexplore: Predict: not fitted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}

			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
			if tt.err != nil && !Is(err, tt.err) {
				t.Error("ModelError should unwrap to its cause")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("RMSE", 4, 3, 0)

	want := "regexplore: RMSE: dimension mismatch on axis 0 (rows). Expected 4, got 3"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Fatal("Error should be castable to *DimensionError")
	}
	if dimErr.Expected != 4 || dimErr.Got != 3 {
		t.Errorf("unexpected fields: %+v", dimErr)
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("n_splits", "must be at least 2", 1)
	want := "regexplore: validation failed for parameter 'n_splits': must be at least 2 (got: 1)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestStacktrace(t *testing.T) {
	if got := Stacktrace(nil); got != "" {
		t.Errorf("Stacktrace(nil) = %q, want empty", got)
	}
	err := NewValueError("Fit", "empty data")
	if got := Stacktrace(err); !strings.Contains(got, "errors_test.go") {
		t.Errorf("Stacktrace() should mention the caller, got %q", got)
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("ok", []float64{1, 2, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := CheckNumericalStability("expm1", []float64{1, math.Inf(1), math.NaN()})
	var numErr *NumericalInstabilityError
	if !As(err, &numErr) {
		t.Fatalf("expected NumericalInstabilityError, got %v", err)
	}
	if numErr.Index != 1 {
		t.Errorf("Index = %d, want 1", numErr.Index)
	}

	if err := CheckScalar("score", math.NaN()); err == nil {
		t.Error("CheckScalar(NaN) should fail")
	}
}

func TestCheckColumn(t *testing.T) {
	m := mat.NewDense(3, 1, []float64{0, math.NaN(), 1})
	err := CheckColumn("predict", m)
	var numErr *NumericalInstabilityError
	if !As(err, &numErr) {
		t.Fatalf("expected NumericalInstabilityError, got %v", err)
	}
	if numErr.Index != 1 {
		t.Errorf("Index = %d, want 1", numErr.Index)
	}
	if err := CheckColumn("predict", mat.NewDense(2, 1, []float64{1, 2})); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
