package sat

// Clause is a stored clause of size >= 2. Unit clauses are absorbed into the
// trail and the empty clause makes the formula unsatisfiable, so neither is
// ever allocated.
type Clause struct {
	redundant bool // learned, candidate for reduction
	garbage   bool // selected for collection
	reason    bool // referenced by the trail while the reducer runs
	used      bool // learned or resolved in a conflict since the last reduction

	// The number of distinct decision levels among the literals when the
	// clause was learned. Always 0 for original clauses.
	glue int

	// The clause's literals. The first two are the watched literals.
	literals []int
}

func (c *Clause) size() int {
	return len(c.literals)
}

// clauseOverheadBytes approximates the fixed cost of a clause record plus its
// two watch entries.
const clauseOverheadBytes = 80

func bytesClause(size int) int {
	return clauseOverheadBytes + 8*size
}

// newClause allocates a clause holding the literals of the temporary clause
// buffer and installs its watches. The buffer must hold at least two
// literals.
func (s *Solver) newClause(redundant bool, glue int) *Clause {
	lits := make([]int, len(s.clause))
	copy(lits, s.clause)
	c := &Clause{
		redundant: redundant,
		glue:      glue,
		literals:  lits,
	}
	s.incBytes(bytesClause(len(lits)))
	s.clauses = append(s.clauses, c)
	s.watchClause(c)
	return c
}

// watchClause installs the watches on the first two literals, each blocked by
// the other.
func (s *Solver) watchClause(c *Clause) {
	s.watchLiteral(c.literals[0], c.literals[1], c)
	s.watchLiteral(c.literals[1], c.literals[0], c)
}

// deleteClause frees a garbage clause during collection and reports it to the
// proof sink.
func (s *Solver) deleteClause(c *Clause) {
	if s.proof != nil {
		s.proof.Delete(c.literals)
	}
	s.decBytes(bytesClause(len(c.literals)))
	s.stats.Collected++

	// Cut the reference to the literals so the slice can be reclaimed even
	// while stale pointers to the record remain.
	c.literals = nil
}

// satisfiedAtRoot reports whether the clause contains a root-level true
// literal.
func (s *Solver) satisfiedAtRoot(c *Clause) bool {
	for _, lit := range c.literals {
		if s.fixedVal(lit) > 0 {
			return true
		}
	}
	return false
}
