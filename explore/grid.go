package explore

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/core/model"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/sklearn/model_selection"
)

// gridFolds is the number of unshuffled folds GridSearch evaluates.
const gridFolds = 5

// GridRow is one evaluated hyperparameter combination.
type GridRow struct {
	Params map[string]interface{}
	// Score is the mean negative MSE over the folds.
	Score float64
	// RMSLE is sqrt(-Score).
	RMSLE float64
}

// GridTable lists grid-search results sorted by RMSLE, best first.
type GridTable struct {
	Rows []GridRow
}

// Len returns the number of rows.
func (t *GridTable) Len() int { return len(t.Rows) }

// ParamNames returns the union of parameter names across rows, sorted.
func (t *GridTable) ParamNames() []string {
	seen := map[string]bool{}
	var names []string
	for _, r := range t.Rows {
		for k := range r.Params {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}
	sort.Strings(names)
	return names
}

// GridSearch evaluates every combination in grids with 5-fold
// cross-validation scored by negative mean squared error, using nJobs
// concurrent fits (-1 for every CPU). The model itself is not fitted.
// The first failing fit aborts the search and its error is returned.
func GridSearch(m model.Tunable, X, y mat.Matrix, grids []model_selection.ParamGrid, verbose, nJobs int) (*GridTable, error) {
	gs := model_selection.NewGridSearchCV(m, grids,
		model_selection.WithCV(model_selection.NewKFold(gridFolds)),
		model_selection.WithScoring("neg_mean_squared_error"),
		model_selection.WithNJobs(nJobs),
		model_selection.WithVerbose(verbose),
		model_selection.WithRefit(false),
	)
	if err := gs.Fit(X, y); err != nil {
		return nil, err
	}

	res := gs.CVResults
	table := &GridTable{Rows: make([]GridRow, len(res.Params))}
	for i, params := range res.Params {
		score := res.MeanTestScore[i]
		table.Rows[i] = GridRow{
			Params: params,
			Score:  score,
			RMSLE:  math.Sqrt(-score),
		}
	}
	sort.SliceStable(table.Rows, func(i, j int) bool {
		return table.Rows[i].RMSLE < table.Rows[j].RMSLE
	})
	return table, nil
}
