package report

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/core/model"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/explore"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

const (
	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
)

var barColor = color.RGBA{R: 77, G: 182, B: 172, A: 255}

// ScoreChart plots one bar per model with its holdout RMSE.
func ScoreChart(t *explore.ScoreTable) (*plot.Plot, error) {
	if t.Len() == 0 {
		return nil, errors.NewValueError("ScoreChart", "score table is empty")
	}
	values := make(plotter.Values, t.Len())
	names := make([]string, t.Len())
	for i, r := range t.Rows {
		values[i] = r.RMSE
		names[i] = r.Name
	}

	p := plot.New()
	p.Title.Text = "Holdout RMSE by model"
	p.Y.Label.Text = "RMSE"

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return nil, errors.Wrap(err, "score chart")
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}

// GridChart plots RMSLE against the rank of each grid-search candidate.
func GridChart(t *explore.GridTable) (*plot.Plot, error) {
	if t.Len() == 0 {
		return nil, errors.NewValueError("GridChart", "grid table is empty")
	}
	pts := make(plotter.XYs, t.Len())
	for i, r := range t.Rows {
		pts[i].X = float64(i + 1)
		pts[i].Y = r.RMSLE
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Grid search (best: %s)", model.FormatParams(t.Rows[0].Params))
	p.X.Label.Text = "Rank"
	p.Y.Label.Text = "RMSLE"

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, errors.Wrap(err, "grid chart")
	}
	line.Color = barColor
	points.Color = color.RGBA{R: 41, G: 67, B: 78, A: 255}
	p.Add(line, points)
	return p, nil
}

// SaveScoreChart writes ScoreChart to path; the extension picks the format
// (png, svg, pdf, ...).
func SaveScoreChart(t *explore.ScoreTable, path string) error {
	p, err := ScoreChart(t)
	if err != nil {
		return err
	}
	return save(p, path)
}

// SaveGridChart writes GridChart to path.
func SaveGridChart(t *explore.GridTable, path string) error {
	p, err := GridChart(t)
	if err != nil {
		return err
	}
	return save(p, path)
}

// WriteChart encodes p in format ("png", "svg", ...) to w.
func WriteChart(w io.Writer, p *plot.Plot, format string) error {
	wt, err := p.WriterTo(chartWidth, chartHeight, format)
	if err != nil {
		return errors.Wrapf(err, "chart format %q", format)
	}
	_, err = wt.WriteTo(w)
	return err
}

func save(p *plot.Plot, path string) error {
	if strings.TrimPrefix(filepath.Ext(path), ".") == "" {
		return errors.NewValidationError("path", "chart path needs a file extension", path)
	}
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return errors.Wrapf(err, "save chart %s", path)
	}
	return nil
}
