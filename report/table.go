// Package report renders exploration results as terminal tables and charts.
package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/explore"
)

var (
	borderColor = lipgloss.Color("#29434e")
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

func newTable(numericFrom int) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= numericFrom:
				return numberStyle
			default:
				return cellStyle
			}
		})
}

// ScoreTableString renders a holdout comparison, one model per row, in the
// table's order.
func ScoreTableString(t *explore.ScoreTable) string {
	tbl := newTable(1).Headers("MODEL", "RMSE")
	for _, r := range t.Rows {
		tbl.Row(r.Name, fmt.Sprintf("%.4f", r.RMSE))
	}
	return tbl.String()
}

// GridTableString renders grid-search results with one column per parameter
// followed by the mean score and the RMSLE.
func GridTableString(t *explore.GridTable) string {
	params := t.ParamNames()
	headers := append(append([]string{}, params...), "SCORE", "RMSLE")

	tbl := newTable(len(params)).Headers(headers...)
	for _, r := range t.Rows {
		cells := make([]string, 0, len(headers))
		for _, p := range params {
			v, ok := r.Params[p]
			if !ok {
				cells = append(cells, "-")
				continue
			}
			cells = append(cells, fmt.Sprint(v))
		}
		cells = append(cells, fmt.Sprintf("%.4f", r.Score), fmt.Sprintf("%.4f", r.RMSLE))
		tbl.Row(cells...)
	}
	return tbl.String()
}
