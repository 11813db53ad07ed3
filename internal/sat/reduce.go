package sat

import "github.com/rhartert/yagh"

// reducing reports whether the conflict threshold for the next clause
// database reduction has been reached.
func (s *Solver) reducing() bool {
	return s.stats.Conflicts >= s.limits.reduce.conflicts
}

// protectReasons marks every clause referenced as an antecedent by the
// current trail so the reduction cannot collect it.
func (s *Solver) protectReasons() {
	for _, lit := range s.trail {
		if r := s.vars[vidx(lit)].reason; r != nil {
			r.reason = true
		}
	}
}

func (s *Solver) unprotectReasons() {
	for _, lit := range s.trail {
		if r := s.vars[vidx(lit)].reason; r != nil {
			r.reason = false
		}
	}
}

// flushFalsifiedLiterals removes root-level falsified literals from the
// non-watched part of a clause. The watched slots cannot hold root-falsified
// literals once propagation has settled.
func (s *Solver) flushFalsifiedLiterals(c *Clause) {
	j := 2
	for i := 2; i < len(c.literals); i++ {
		lit := c.literals[i]
		if s.fixedVal(lit) < 0 {
			continue
		}
		c.literals[j] = lit
		j++
	}
	if j == len(c.literals) {
		return
	}
	s.decBytes(8 * (len(c.literals) - j))
	c.literals = c.literals[:j]
}

// markSatisfiedClausesAsGarbage marks clauses with a root-level satisfied
// literal as garbage and shrinks the remaining clauses by their root-level
// falsified literals.
func (s *Solver) markSatisfiedClausesAsGarbage() {
	for _, c := range s.clauses {
		if c.garbage || c.reason {
			continue
		}
		if s.satisfiedAtRoot(c) {
			c.garbage = true
			continue
		}
		s.flushFalsifiedLiterals(c)
	}
}

// markUselessRedundantClausesAsGarbage orders the redundant clauses that
// were not used since the last reduction by quality, glue first and size
// second, and marks the worst half as garbage. The used marks of the
// survivors are cleared, opening the next epoch.
func (s *Solver) markUselessRedundantClausesAsGarbage() {
	var candidates []*Clause
	for _, c := range s.clauses {
		if !c.redundant || c.garbage || c.reason {
			continue
		}
		if c.used {
			c.used = false
			continue
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return
	}

	// Lower keys are better clauses; popping in order yields the survivors
	// first. Glue dominates, size breaks ties.
	order := yagh.New[float64](len(candidates))
	for i, c := range candidates {
		order.Put(i, float64(c.glue)*(1<<32)+float64(c.size()))
	}
	keep := len(candidates) / 2
	for i := 0; ; i++ {
		entry, ok := order.Pop()
		if !ok {
			break
		}
		if i < keep {
			continue
		}
		candidates[entry.Elem].garbage = true
	}
}

// flushWatches rebuilds every watch list from the clause store, skipping
// garbage clauses.
func (s *Solver) flushWatches() {
	for i := range s.wtab {
		s.wtab[i] = s.wtab[i][:0]
	}
	for _, c := range s.clauses {
		if c.garbage {
			continue
		}
		s.watchClause(c)
	}
}

// collectGarbage compacts the clause store, freeing all garbage clauses.
// Reason pointers held by the trail stay valid since clause records never
// move.
func (s *Solver) collectGarbage() {
	j := 0
	for _, c := range s.clauses {
		if c.garbage {
			s.deleteClause(c)
			continue
		}
		s.clauses[j] = c
		j++
	}
	s.clauses = s.clauses[:j]
}

// reduce garbage collects low quality learned clauses and advances the next
// reduction threshold by a growing interval. Calling it again before new
// conflicts arrive is a no-op.
func (s *Solver) reduce() {
	if s.stats.Conflicts < s.limits.reduce.conflicts {
		return
	}
	s.stats.Reductions++

	s.protectReasons()
	if s.stats.Fixed > s.limits.reduce.fixed {
		s.markSatisfiedClausesAsGarbage()
	}
	s.markUselessRedundantClausesAsGarbage()
	s.flushWatches()
	s.collectGarbage()
	s.unprotectReasons()

	s.inc.reduce += int64(s.opts.ReduceInterval)
	s.limits.reduce.conflicts = s.stats.Conflicts + s.inc.reduce
	s.limits.reduce.fixed = s.stats.Fixed
	s.report("-")
}
