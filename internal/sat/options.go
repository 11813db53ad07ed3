package sat

// Options configures the solver. All fields are scalars; zero values are not
// meaningful defaults, start from DefaultOptions instead.
type Options struct {
	// ReduceInterval is the base growth of the conflict threshold between
	// clause database reductions (>= 0).
	ReduceInterval int

	// RestartInterval is the number of conflicts between restart checks
	// (>= 0).
	RestartInterval int

	// RestartMargin is the fast/slow glue EMA ratio above which the solver
	// restarts (>= 1.0).
	RestartMargin float64

	// RestartBlockMargin is the factor by which the trail must exceed its
	// running average for a restart to be blocked (>= 1.0).
	RestartBlockMargin float64

	// FastGlueWindow and SlowGlueWindow are the step counts of the glue
	// moving averages.
	FastGlueWindow int
	SlowGlueWindow int

	// Minimize enables learned clause minimization.
	Minimize bool

	// Phase enables phase saving; when false decisions always pick the
	// negative polarity.
	Phase bool

	// Seed is reserved for randomized tie-breaking. The core itself is
	// deterministic and does not consume it.
	Seed int64

	// MaxConflicts stops the search with an unknown result once reached.
	// Negative means no limit.
	MaxConflicts int64
}

var DefaultOptions = Options{
	ReduceInterval:     300,
	RestartInterval:    50,
	RestartMargin:      1.25,
	RestartBlockMargin: 1.4,
	FastGlueWindow:     33,
	SlowGlueWindow:     100000,
	Minimize:           true,
	Phase:              true,
	Seed:               0,
	MaxConflicts:       -1,
}

// trailAvgWindow is the window of the running trail size average used to
// block restarts.
const trailAvgWindow = 5000
