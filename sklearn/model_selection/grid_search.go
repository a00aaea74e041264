package model_selection

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/core/model"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/core/parallel"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/metrics"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/log"
)

// CVResults holds one entry per candidate, in ParameterGrid order.
type CVResults struct {
	Params          []map[string]interface{}
	MeanTestScore   []float64
	StdTestScore    []float64
	SplitTestScores [][]float64 // [candidate][fold]
	RankTestScore   []int       // 1 is best; ties share the lowest rank
	MeanFitTime     []float64   // seconds
}

// GridSearchCV scores every combination of a parameter grid with
// cross-validation and keeps the best one.
type GridSearchCV struct {
	estimator model.Tunable
	grids     []ParamGrid

	cv      Splitter
	scoring string
	nJobs   int
	verbose int
	refit   bool

	CVResults     *CVResults
	BestParams    map[string]interface{}
	BestScore     float64
	BestIndex     int
	BestEstimator model.Tunable
}

// GridSearchOption configures a GridSearchCV.
type GridSearchOption func(*GridSearchCV)

// WithCV sets the cross-validation splitter. Default is an unshuffled 5-fold KFold.
func WithCV(cv Splitter) GridSearchOption {
	return func(g *GridSearchCV) { g.cv = cv }
}

// WithScoring sets the scorer name (see metrics.GetScorer).
func WithScoring(scoring string) GridSearchOption {
	return func(g *GridSearchCV) { g.scoring = scoring }
}

// WithNJobs sets the number of concurrent fits; -1 uses every CPU.
func WithNJobs(n int) GridSearchOption {
	return func(g *GridSearchCV) { g.nJobs = n }
}

// WithVerbose sets the log verbosity: >0 logs the fit plan, >1 every fit,
// >2 adds fold sizes.
func WithVerbose(v int) GridSearchOption {
	return func(g *GridSearchCV) { g.verbose = v }
}

// WithRefit controls whether the best candidate is refitted on the full data.
func WithRefit(refit bool) GridSearchOption {
	return func(g *GridSearchCV) { g.refit = refit }
}

// NewGridSearchCV creates a search over grids for estimator. The estimator
// itself is never fitted; every fit uses a clone.
func NewGridSearchCV(estimator model.Tunable, grids []ParamGrid, options ...GridSearchOption) *GridSearchCV {
	g := &GridSearchCV{
		estimator: estimator,
		grids:     grids,
		cv:        NewKFold(5),
		nJobs:     1,
		refit:     true,
		BestIndex: -1,
	}
	for _, opt := range options {
		opt(g)
	}
	return g
}

type fitTask struct {
	candidate int
	fold      int
}

// Fit runs the search. See FitContext.
func (g *GridSearchCV) Fit(X, y mat.Matrix) error {
	return g.FitContext(context.Background(), X, y)
}

// FitContext runs every candidate × fold fit on at most n_jobs goroutines.
// The first failing fit cancels the remaining ones and its error is returned
// as is.
func (g *GridSearchCV) FitContext(ctx context.Context, X, y mat.Matrix) error {
	if g.estimator == nil {
		return errors.NewValueError("GridSearchCV.Fit", "estimator is nil")
	}
	n, err := checkXY("GridSearchCV.Fit", X, y)
	if err != nil {
		return err
	}
	scorer, err := metrics.GetScorer(g.scoring)
	if err != nil {
		return err
	}
	candidates, err := ParameterGrid(g.grids...)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return errors.NewValueError("GridSearchCV.Fit", "parameter grid is empty")
	}
	folds, err := g.cv.Split(n)
	if err != nil {
		return err
	}
	data := materialise(X, y, folds)

	nFolds := len(folds)
	workers := parallel.Workers(g.nJobs)
	logger := log.GetLogger().With(
		log.ComponentKey, "model_selection",
		log.ModelNameKey, model.Name(g.estimator),
	)
	if g.verbose > 0 {
		logger.Info("Fitting folds for each candidate",
			log.FoldsKey, nFolds,
			log.CandidatesKey, len(candidates),
			log.FitsKey, nFolds*len(candidates),
			log.WorkersKey, workers,
			log.ScoringKey, g.scoring,
		)
	}

	scores := make([][]float64, len(candidates))
	fitTimes := make([][]float64, len(candidates))
	for c := range candidates {
		scores[c] = make([]float64, nFolds)
		fitTimes[c] = make([]float64, nFolds)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for c := range candidates {
		for f := 0; f < nFolds; f++ {
			if egCtx.Err() != nil {
				break
			}
			task := fitTask{candidate: c, fold: f}
			eg.Go(func() error {
				if err := egCtx.Err(); err != nil {
					return err
				}
				return g.runTask(task, candidates[task.candidate], data[task.fold], scorer, scores, fitTimes, logger)
			})
		}
	}
	err = eg.Wait()
	if err == nil {
		// 親コンテキストの取り消しでタスクが投入されなかった場合
		err = ctx.Err()
	}
	if err != nil {
		logger.Error("Grid search failed", err)
		return err
	}

	g.CVResults = summarise(candidates, scores, fitTimes)
	g.BestIndex = 0
	for i, r := range g.CVResults.RankTestScore {
		if r == 1 {
			g.BestIndex = i
			break
		}
	}
	g.BestScore = g.CVResults.MeanTestScore[g.BestIndex]
	g.BestParams = copyParams(candidates[g.BestIndex])

	if g.verbose > 0 {
		logger.Info("Grid search finished",
			log.CandidateKey, g.BestIndex,
			log.ParamsKey, model.FormatParams(g.BestParams),
			log.ScoreKey, g.BestScore,
		)
	}

	g.BestEstimator = nil
	if g.refit {
		best, err := g.configured(g.BestParams)
		if err != nil {
			return err
		}
		if err := errors.SafeExecute(model.Name(best)+".Fit", func() error { return best.Fit(X, y) }); err != nil {
			logger.Error("Refit failed", err, log.ParamsKey, model.FormatParams(g.BestParams))
			return err
		}
		g.BestEstimator = best
	}
	return nil
}

// configured returns a clone of the base estimator with params applied.
func (g *GridSearchCV) configured(params map[string]interface{}) (model.Tunable, error) {
	cloned := g.estimator.Clone()
	m, ok := cloned.(model.Tunable)
	if !ok {
		return nil, errors.NewModelError("GridSearchCV.Fit", "clone is not tunable", errors.Newf("%T", cloned))
	}
	if err := m.SetParams(params); err != nil {
		return nil, err
	}
	return m, nil
}

func (g *GridSearchCV) runTask(task fitTask, params map[string]interface{}, fd foldData, scorer metrics.Scorer,
	scores, fitTimes [][]float64, logger log.Logger) error {
	m, err := g.configured(params)
	if err != nil {
		return err
	}

	start := time.Now()
	score, err := fitAndScore(m, fd, scorer)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}
	if err := errors.CheckScalar("GridSearchCV.score", score); err != nil {
		return err
	}

	// 各タスクは自分のセルにだけ書き込む
	scores[task.candidate][task.fold] = score
	fitTimes[task.candidate][task.fold] = elapsed.Seconds()

	if g.verbose > 1 {
		fields := []any{
			log.CandidateKey, task.candidate,
			log.FoldKey, task.fold,
			log.ParamsKey, model.FormatParams(params),
			log.ScoreKey, score,
			log.DurationMsKey, elapsed.Milliseconds(),
		}
		if g.verbose > 2 {
			trainRows, _ := fd.XTrain.Dims()
			testRows, _ := fd.XTest.Dims()
			fields = append(fields, log.TrainKey, trainRows, log.TestKey, testRows)
		}
		logger.Info("CV fit", fields...)
	}
	return nil
}

func summarise(candidates []map[string]interface{}, scores, fitTimes [][]float64) *CVResults {
	res := &CVResults{
		Params:          make([]map[string]interface{}, len(candidates)),
		MeanTestScore:   make([]float64, len(candidates)),
		StdTestScore:    make([]float64, len(candidates)),
		SplitTestScores: scores,
		MeanFitTime:     make([]float64, len(candidates)),
	}
	for i := range candidates {
		res.Params[i] = copyParams(candidates[i])
		res.MeanTestScore[i], res.StdTestScore[i] = stat.PopMeanStdDev(scores[i], nil)
		res.MeanFitTime[i] = stat.Mean(fitTimes[i], nil)
	}
	res.RankTestScore = rankDescending(res.MeanTestScore)
	return res
}

// rankDescending ranks values from highest (1) to lowest with "min" tie handling.
func rankDescending(values []float64) []int {
	ranks := make([]int, len(values))
	for i, v := range values {
		rank := 1
		for j, w := range values {
			if j != i && w > v {
				rank++
			}
		}
		ranks[i] = rank
	}
	return ranks
}

func copyParams(p map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

