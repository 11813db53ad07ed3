package sat

// watch represents a clause attached to the watch list of one of its two
// watched literals.
type watch struct {
	// One of the clause's literals, different from the watched one. If it is
	// already true the clause cannot propagate and need not be loaded.
	blocker int

	clause *Clause
}

// watches returns the watch list of the given literal.
func (s *Solver) watches(lit int) *[]watch {
	return &s.wtab[vlit(lit)]
}

// watchLiteral registers clause c on the watch list of lit with the given
// blocking literal.
func (s *Solver) watchLiteral(lit int, blocker int, c *Clause) {
	ws := s.watches(lit)
	*ws = append(*ws, watch{blocker: blocker, clause: c})
}
