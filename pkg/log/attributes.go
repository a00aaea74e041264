package log

// Model and operation context.
const (
	// ModelNameKey identifies the model type, e.g. "LinearRegression".
	ModelNameKey = "model.name"

	// OperationKey is the operation being performed ("fit", "predict", "score").
	OperationKey = "ml.operation"

	// ComponentKey identifies the package emitting the record.
	ComponentKey = "ml.component"
)

// Data shape.
const (
	SamplesKey  = "data.samples"
	FeaturesKey = "data.features"
	TrainKey    = "data.train_samples"
	TestKey     = "data.test_samples"
)

// Cross-validation and grid search.
const (
	FoldKey       = "cv.fold"
	FoldsKey      = "cv.n_splits"
	CandidateKey  = "grid.candidate"
	CandidatesKey = "grid.n_candidates"
	FitsKey       = "grid.n_fits"
	ParamsKey     = "grid.params"
	WorkersKey    = "grid.n_jobs"
	ScoringKey    = "metrics.scoring"
	ScoreKey      = "metrics.score"
	RMSEKey       = "metrics.rmse"
	ModelsKey     = "blend.n_models"
)

// Performance.
const (
	DurationMsKey = "perf.duration_ms"
)

// Errors.
const (
	ErrorKey      = "error"
	ErrorTypeKey  = "error.type"
	StacktraceKey = "error.stacktrace"
)

// Standard operation values.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"
	OperationSplit   = "split"
	OperationBlend   = "blend"
)
