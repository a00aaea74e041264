// Package regexplore is a toolkit for comparing and tuning regression models
// on log-transformed targets, built on gonum matrices.
//
// The explore package holds the four helpers the rest of the module exists to
// serve:
//
//   - GetScores: fit every model on a fresh 80/20 split and rank them by RMSE
//     on the original scale (worst first)
//   - GridSearch: 5-fold cross-validated grid search reported as RMSLE (best first)
//   - ReportCVScores: one "Model: <name>, CV score:<score>" line per model
//   - AverageBlending: fit each model and average their predictions
//
// # Quick Start
//
//	X, y := loadHousing() // y already log1p-transformed
//
//	models := []model.Model{
//	    linear_model.NewLinearRegression(),
//	    linear_model.NewRidge(linear_model.WithAlpha(10)),
//	    neighbors.NewKNeighborsRegressor(),
//	}
//	scores, err := explore.GetScores(models, X, y, model_selection.NewRand(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.ScoreTableString(scores))
//
// # Packages
//
//   - explore: the comparison, tuning, reporting and blending helpers
//   - sklearn/model_selection: TrainTestSplit, KFold, CrossValScore, GridSearchCV
//   - sklearn/linear_model, sklearn/neighbors, sklearn/dummy: regressors
//   - sklearn/estimators: build regressors from a kind tag and params
//   - preprocessing: StandardScaler and ScaledRegressor
//   - metrics: MSE, RMSE, MAE, R², expm1 RMSE and named scorers
//   - dataset: CSV-backed numeric frames
//   - report: lipgloss tables and gonum/plot charts
//   - core/model, core/parallel: interfaces and worker fan-out
//   - pkg/errors, pkg/log, pkg/config: errors, zerolog logging, YAML experiments
//
// The regexplore command in cmd/regexplore drives all of the above from a
// YAML experiment file.
package regexplore
