package dataset

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

const sample = `sqft, rooms, price
1000, 3, 99
1500, 4, 149
2000, 5, 199
`

func TestReadCSV(t *testing.T) {
	f, err := ReadCSV(strings.NewReader(sample))
	require.NoError(t, err)

	r, c := f.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []string{"sqft", "rooms", "price"}, f.Columns())

	price, err := f.Column("price")
	require.NoError(t, err)
	assert.Equal(t, []float64{99, 149, 199}, price)

	assert.True(t, f.Has("rooms"))
	assert.False(t, f.Has("id"))
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"header only", "a,b\n"},
		{"empty cell", "a,b\n1,\n"},
		{"not a number", "a,b\n1,x\n"},
		{"ragged row", "a,b\n1,2,3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}

	_, err := ReadCSV(strings.NewReader("a,b\n1,\n"))
	var ve *errors.ValueError
	assert.True(t, errors.As(err, &ve))
}

func TestSplit(t *testing.T) {
	f, err := ReadCSV(strings.NewReader(sample))
	require.NoError(t, err)

	X, y, names, err := f.Split("price")
	require.NoError(t, err)
	assert.Equal(t, []string{"sqft", "rooms"}, names)
	assert.True(t, mat.Equal(mat.NewDense(3, 2, []float64{1000, 3, 1500, 4, 2000, 5}), X))
	assert.True(t, mat.Equal(mat.NewDense(3, 1, []float64{99, 149, 199}), y))

	X, _, names, err = f.Split("price", "rooms")
	require.NoError(t, err)
	assert.Equal(t, []string{"rooms"}, names)
	assert.Equal(t, []float64{3, 4, 5}, mat.Col(nil, 0, X))

	_, _, _, err = f.Split("missing")
	assert.Error(t, err)
	_, _, _, err = f.Split("price", "price")
	assert.Error(t, err)
}

func TestLog1p(t *testing.T) {
	f, err := ReadCSV(strings.NewReader(sample))
	require.NoError(t, err)

	g, err := f.Log1p("price")
	require.NoError(t, err)
	price, _ := g.Column("price")
	assert.InDelta(t, math.Log(100), price[0], 1e-12)

	orig, _ := f.Column("price")
	assert.Equal(t, 99.0, orig[0], "original frame is unchanged")

	neg, err := NewFrame([]string{"v"}, mat.NewDense(1, 1, []float64{-2}))
	require.NoError(t, err)
	_, err = neg.Log1p("v")
	var ne *errors.NumericalInstabilityError
	assert.True(t, errors.As(err, &ne))
}

func TestNewFrameValidation(t *testing.T) {
	_, err := NewFrame([]string{"a"}, mat.NewDense(1, 2, nil))
	var de *errors.DimensionError
	assert.True(t, errors.As(err, &de))

	_, err = NewFrame([]string{"a", "a"}, mat.NewDense(1, 2, nil))
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	f, err := NewFrame([]string{"id", "pred"}, mat.NewDense(2, 2, []float64{0, 1.5, 1, 2.25}))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, f))
	assert.Equal(t, "id,pred\n0,1.5\n1,2.25\n", buf.String())

	back, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.True(t, mat.Equal(f.Matrix(), back.Matrix()))
}
