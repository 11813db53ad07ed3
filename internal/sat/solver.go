package sat

import (
	"errors"
	"math"
	"sort"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Status is the result of Solve, encoded with the conventional SAT
// competition exit codes.
type Status int

const (
	Unknown       Status = 0
	Satisfiable   Status = 10
	Unsatisfiable Status = 20
)

func (st Status) String() string {
	switch st {
	case Satisfiable:
		return "SATISFIABLE"
	case Unsatisfiable:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

var (
	// ErrSolveFinished is returned when clauses are added after Solve has
	// returned. The solver is not incremental.
	ErrSolveFinished = errors.New("sat: clause added after solving finished")

	// ErrInvalidLiteral is returned for the literal zero or the minimum
	// signed integer.
	ErrInvalidLiteral = errors.New("sat: invalid literal")
)

// Var carries the per-variable solver state. Variables are indexed from 1.
type Var struct {
	reason   *Clause // the clause that forced the assignment, nil otherwise
	level    int     // decision level of the assignment
	trailPos int     // position on the trail when assigned
	bumped   int64   // stamp of the last move to the front of the queue

	prev, next int // decision queue links, 0 terminates

	// Conflict analysis marks. seen is set while the variable takes part in
	// the current resolution; poison and removable memoize minimization.
	seen      bool
	poison    bool
	removable bool
}

// levelInfo is the per-decision-level entry of the control stack.
type levelInfo struct {
	decision int // literal that opened the level, 0 for the root
	trail    int // trail height when the level was opened

	// seen marks levels pulled into the clause under construction during
	// conflict analysis.
	seen bool
}

type limits struct {
	reduce struct {
		conflicts int64
		fixed     int64
	}
	restart  struct{ conflicts int64 }
	blocking int64
}

type increments struct {
	reduce   int64
	blocking int64
}

// Solver owns all solving state. It is not safe for concurrent use except
// for Terminate.
type Solver struct {
	opts Options

	maxVar int
	vars   []Var     // indexed by variable, entry 0 unused
	vals   []int8    // current value of the positive literal, 0 = unassigned
	phases []int8    // saved polarity for phase saving
	wtab   [][]watch // watch lists, indexed by vlit

	queue queue
	stamp int64 // source of bump stamps

	unsat        bool
	clashingUnit bool

	level      int
	control    []levelInfo // control[0] is the root level
	trail      []int
	propagated int // next trail position to propagate

	clause  []int // temporary clause during ingestion and learning
	adding  []int // buffer filled by AddLiteral
	clauses []*Clause

	conflict *Clause // set on a failed propagation, cleared by backtrack

	iterating bool // a root-level unit was learned, report it

	analyzed  []int     // literals marked seen during analysis
	levels    []int     // decision levels pulled into the learned clause
	minimized []int     // variables marked removable or poison
	resolved  []*Clause // redundant clauses resolved during analysis

	fastGlueAvg EMA
	slowGlueAvg EMA
	trailAvg    EMA
	jumpAvg     AVG

	limits limits
	inc    increments

	proof Proof
	log   logrus.FieldLogger

	stats Stats
	mem   memory

	terminate atomic.Bool
	solved    bool
}

// NewSolver returns a solver configured with the given options.
func NewSolver(opts Options) *Solver {
	s := &Solver{
		opts:        opts,
		vars:        make([]Var, 1),
		vals:        make([]int8, 1),
		phases:      make([]int8, 1),
		wtab:        make([][]watch, 2),
		control:     []levelInfo{{}},
		fastGlueAvg: NewEMA(opts.FastGlueWindow),
		slowGlueAvg: NewEMA(opts.SlowGlueWindow),
		trailAvg:    NewEMA(trailAvgWindow),
	}
	s.inc.reduce = int64(opts.ReduceInterval)
	s.inc.blocking = int64(opts.RestartInterval)
	s.limits.reduce.conflicts = s.inc.reduce
	s.limits.restart.conflicts = int64(opts.RestartInterval)
	s.limits.blocking = s.inc.blocking
	return s
}

// NewDefaultSolver is equivalent to NewSolver(DefaultOptions).
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// Reserve grows the variable tables to hold variables up to maxVar. Calling
// it with a smaller bound is a no-op, so ingesting clauses that mention new
// variables extends the tables incrementally.
func (s *Solver) Reserve(maxVar int) {
	if maxVar <= s.maxVar {
		return
	}
	const bytesPerVar = 56 + 2 + 48 // Var record, value/phase bytes, watch headers
	s.incBytes((maxVar - s.maxVar) * bytesPerVar)

	for idx := s.maxVar + 1; idx <= maxVar; idx++ {
		s.vars = append(s.vars, Var{})
		s.vals = append(s.vals, 0)
		s.phases = append(s.phases, -1)
		s.wtab = append(s.wtab, nil, nil)
	}
	first := s.maxVar + 1
	s.maxVar = maxVar
	for idx := first; idx <= maxVar; idx++ {
		s.enqueue(idx)
	}
}

// NumVariables returns the highest reserved variable index.
func (s *Solver) NumVariables() int {
	return s.maxVar
}

// val returns the current value of a literal: -1 false, 0 unassigned,
// +1 true.
func (s *Solver) val(lit int) int8 {
	v := s.vals[vidx(lit)]
	if lit < 0 {
		v = -v
	}
	return v
}

// fixedVal is like val restricted to root-level assignments.
func (s *Solver) fixedVal(lit int) int8 {
	idx := vidx(lit)
	v := s.vals[idx]
	if v != 0 && s.vars[idx].level != 0 {
		v = 0
	}
	if lit < 0 {
		v = -v
	}
	return v
}

// Val returns the value of a literal in the current assignment: -1 false,
// 0 unassigned, +1 true.
func (s *Solver) Val(lit int) int {
	return int(s.val(lit))
}

// Fixed returns the root-level value of a literal, 0 if it is not fixed.
func (s *Solver) Fixed(lit int) int {
	return int(s.fixedVal(lit))
}

// Terminate asks the search to stop. It may be called asynchronously, for
// example from a signal handler; the search loop polls it and returns
// Unknown with the solver left in a consistent state.
func (s *Solver) Terminate() {
	s.terminate.Store(true)
}

func (s *Solver) terminated() bool {
	return s.terminate.Load()
}

// AddLiteral appends a literal to the clause being built. Together with
// FinishClause it is the streaming alternative to AddOriginalClause.
func (s *Solver) AddLiteral(lit int) error {
	if s.solved {
		return ErrSolveFinished
	}
	if lit == 0 || lit == math.MinInt {
		return ErrInvalidLiteral
	}
	s.adding = append(s.adding, lit)
	return nil
}

// FinishClause ingests the literals accumulated by AddLiteral as one
// original clause.
func (s *Solver) FinishClause() error {
	lits := s.adding
	s.adding = s.adding[:0]
	return s.AddOriginalClause(lits)
}

// AddOriginalClause ingests one original clause. The literals are copied;
// tautologies are dropped, duplicated literals removed, and root-level
// values applied before the clause is stored.
func (s *Solver) AddOriginalClause(lits []int) error {
	if s.solved {
		return ErrSolveFinished
	}
	max := 0
	for _, lit := range lits {
		if lit == 0 || lit == math.MinInt {
			return ErrInvalidLiteral
		}
		if idx := vidx(lit); idx > max {
			max = idx
		}
	}
	s.Reserve(max)
	s.addNewOriginalClause(lits)
	return nil
}

// addNewOriginalClause normalizes the clause in the temporary buffer and
// either discards it, absorbs it into the trail, or stores and watches it.
func (s *Solver) addNewOriginalClause(lits []int) {
	s.clause = append(s.clause[:0], lits...)
	sort.Slice(s.clause, func(i, j int) bool {
		return vlit(s.clause[i]) < vlit(s.clause[j])
	})

	// Both polarities of a variable sort next to each other, so duplicates
	// and tautologies show up as equal or complementary neighbors.
	j := 0
	for i := 0; i < len(s.clause); i++ {
		lit := s.clause[i]
		if j > 0 && s.clause[j-1] == lit {
			continue
		}
		if j > 0 && s.clause[j-1] == -lit {
			return // tautology
		}
		s.clause[j] = lit
		j++
	}
	s.clause = s.clause[:j]

	// Apply root-level values.
	wasUnit := len(s.clause) == 1
	j = 0
	for _, lit := range s.clause {
		switch s.fixedVal(lit) {
		case 1:
			return // already satisfied
		case -1:
			// drop the falsified literal
		default:
			s.clause[j] = lit
			j++
		}
	}
	s.clause = s.clause[:j]

	switch len(s.clause) {
	case 0:
		if wasUnit {
			s.clashingUnit = true
		}
		s.unsat = true
	case 1:
		s.assign(s.clause[0], nil)
	default:
		s.newClause(false, 0)
	}
}

// ClashingUnit reports whether two contradicting original unit clauses were
// ingested.
func (s *Solver) ClashingUnit() bool {
	return s.clashingUnit
}

// satisfied reports whether the trail covers all variables.
func (s *Solver) satisfied() bool {
	return len(s.trail) == s.maxVar
}

func (s *Solver) conflictLimitReached() bool {
	return s.opts.MaxConflicts >= 0 && s.stats.Conflicts >= s.opts.MaxConflicts
}

// iterate acknowledges a freshly learned root-level unit.
func (s *Solver) iterate() {
	s.iterating = false
	s.report("i")
}

// search runs the CDCL loop until a result is established or a limit hit.
func (s *Solver) search() Status {
	for {
		if s.terminated() {
			return Unknown
		}
		if !s.propagate() {
			s.analyze()
			if s.unsat {
				return Unsatisfiable
			}
		} else if s.unsat {
			return Unsatisfiable
		} else if s.iterating {
			s.iterate()
		} else if s.satisfied() {
			return Satisfiable
		} else if s.conflictLimitReached() {
			return Unknown
		} else if s.reducing() {
			s.reduce()
		} else if s.restarting() {
			s.restart()
		} else {
			s.decide()
		}
	}
}

// Solve runs the search and returns its status. The assignment behind a
// Satisfiable result is read through Val. Further clauses cannot be added
// once Solve has returned.
func (s *Solver) Solve() Status {
	s.solved = true
	status := s.search()
	s.report("*")
	return status
}
