// Package dataset loads numeric tables from CSV into gonum matrices with
// named columns.
package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

// Frame is a numeric table: one named column per matrix column.
type Frame struct {
	columns []string
	index   map[string]int
	data    *mat.Dense
}

// NewFrame wraps data with column names. The matrix is not copied.
func NewFrame(columns []string, data *mat.Dense) (*Frame, error) {
	_, c := data.Dims()
	if len(columns) != c {
		return nil, errors.NewDimensionError("NewFrame", c, len(columns), 1)
	}
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, dup := index[name]; dup {
			return nil, errors.NewValidationError("columns", "duplicate column name", name)
		}
		index[name] = i
	}
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Frame{columns: cols, index: index, data: data}, nil
}

// ReadCSV reads a header row followed by numeric rows. Every cell must parse
// as a float; empty cells are rejected.
func ReadCSV(r io.Reader) (*Frame, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewModelError("ReadCSV", "missing header", errors.ErrEmptyData)
	}
	if err != nil {
		return nil, errors.Wrap(err, "read csv header")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var values []float64
	rows := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read csv row %d", rows+1)
		}
		for j, cell := range rec {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				return nil, errors.NewValueError("ReadCSV",
					fmt.Sprintf("row %d column %q: empty cell", rows+1, header[j]))
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errors.NewValueError("ReadCSV",
					fmt.Sprintf("row %d column %q: %q is not a number", rows+1, header[j], cell))
			}
			values = append(values, v)
		}
		rows++
	}
	if rows == 0 {
		return nil, errors.NewModelError("ReadCSV", "no data rows", errors.ErrEmptyData)
	}
	return NewFrame(header, mat.NewDense(rows, len(header), values))
}

// ReadCSVFile opens path and reads it with ReadCSV.
func ReadCSVFile(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	return ReadCSV(f)
}

// WriteCSV writes f with a header row. Values use the shortest
// representation that round-trips.
func WriteCSV(w io.Writer, f *Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.columns); err != nil {
		return err
	}
	rows, cols := f.data.Dims()
	rec := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			rec[j] = strconv.FormatFloat(f.data.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.columns))
	copy(out, f.columns)
	return out
}

// Dims returns the number of rows and columns.
func (f *Frame) Dims() (rows, cols int) {
	return f.data.Dims()
}

// Matrix returns the underlying matrix.
func (f *Frame) Matrix() *mat.Dense {
	return f.data
}

func (f *Frame) lookup(name string) (int, error) {
	j, ok := f.index[name]
	if !ok {
		return 0, errors.NewValidationError("column", "no such column", name)
	}
	return j, nil
}

// Has reports whether the frame has a column called name.
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column returns a copy of the named column.
func (f *Frame) Column(name string) ([]float64, error) {
	j, err := f.lookup(name)
	if err != nil {
		return nil, err
	}
	return mat.Col(nil, j, f.data), nil
}

// Select returns a new frame with the named columns, in the given order.
func (f *Frame) Select(names ...string) (*Frame, error) {
	if len(names) == 0 {
		return nil, errors.NewValueError("Select", "no columns selected")
	}
	rows, _ := f.data.Dims()
	out := mat.NewDense(rows, len(names), nil)
	for k, name := range names {
		j, err := f.lookup(name)
		if err != nil {
			return nil, err
		}
		out.SetCol(k, mat.Col(nil, j, f.data))
	}
	return NewFrame(names, out)
}

// Drop returns a new frame without the named columns.
func (f *Frame) Drop(names ...string) (*Frame, error) {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		if _, err := f.lookup(name); err != nil {
			return nil, err
		}
		drop[name] = true
	}
	var keep []string
	for _, c := range f.columns {
		if !drop[c] {
			keep = append(keep, c)
		}
	}
	return f.Select(keep...)
}

// Split separates target from the feature columns. features lists the
// feature columns to keep; when empty every other column is used.
func (f *Frame) Split(target string, features ...string) (X, y *mat.Dense, names []string, err error) {
	if _, err := f.lookup(target); err != nil {
		return nil, nil, nil, err
	}
	var feat *Frame
	if len(features) == 0 {
		feat, err = f.Drop(target)
	} else {
		for _, name := range features {
			if name == target {
				return nil, nil, nil, errors.NewValidationError("features", "target column listed as a feature", name)
			}
		}
		feat, err = f.Select(features...)
	}
	if err != nil {
		return nil, nil, nil, err
	}
	tgt, err := f.Select(target)
	if err != nil {
		return nil, nil, nil, err
	}
	return feat.data, tgt.data, feat.Columns(), nil
}

// Log1p returns a copy of f with log(1+x) applied to the named column.
func (f *Frame) Log1p(name string) (*Frame, error) {
	j, err := f.lookup(name)
	if err != nil {
		return nil, err
	}
	col := mat.Col(nil, j, f.data)
	for i, v := range col {
		col[i] = math.Log1p(v)
	}
	if err := errors.CheckNumericalStability("Log1p("+name+")", col); err != nil {
		return nil, err
	}
	data := mat.DenseCopyOf(f.data)
	data.SetCol(j, col)
	return NewFrame(f.columns, data)
}
