package sat

import "sort"

// maxMinimizeDepth bounds the recursion of learned clause minimization.
const maxMinimizeDepth = 1000

// learnEmptyClause records that the formula is unsatisfiable.
func (s *Solver) learnEmptyClause() {
	s.unsat = true
	if s.proof != nil {
		s.proof.Add(nil)
	}
}

// learnUnitClause records a learned root-level unit and schedules an iterate
// report.
func (s *Solver) learnUnitClause(lit int) {
	if s.proof != nil {
		s.proof.Add([]int{lit})
	}
	s.stats.Units++
	s.iterating = true
}

// analyzeLiteral marks a conflict literal as seen. Literals at the current
// decision level keep the resolution open; literals below it go into the
// learned clause.
func (s *Solver) analyzeLiteral(lit int) int {
	idx := vidx(lit)
	v := &s.vars[idx]
	if v.seen || v.level == 0 {
		return 0
	}
	v.seen = true
	s.analyzed = append(s.analyzed, lit)
	if !s.control[v.level].seen {
		s.control[v.level].seen = true
		s.levels = append(s.levels, v.level)
	}
	if v.level == s.level {
		return 1
	}
	s.clause = append(s.clause, lit)
	return 0
}

// resolveClause feeds all literals of a clause into the resolution and
// returns the number of newly opened paths at the current level. Redundant
// clauses are recorded for glue bumping and marked used.
func (s *Solver) resolveClause(c *Clause) int {
	s.stats.Resolutions++
	if c.redundant {
		c.used = true
		s.resolved = append(s.resolved, c)
	}
	open := 0
	for _, lit := range c.literals {
		open += s.analyzeLiteral(lit)
	}
	return open
}

// minimizeLiteral reports whether a learned clause literal is implied by the
// rest of the clause and can be removed. Results are memoized through the
// removable and poison marks so the whole minimization is linear in the
// visited reasons.
func (s *Solver) minimizeLiteral(lit int, depth int) bool {
	idx := vidx(lit)
	v := &s.vars[idx]
	if v.level == 0 || v.removable {
		return true
	}
	if depth > 0 && v.seen {
		return true // already part of the learned clause
	}
	if v.reason == nil || v.poison || v.level == s.level {
		return false
	}
	if !s.control[v.level].seen {
		return false // level not represented in the learned clause
	}
	if depth > maxMinimizeDepth {
		return false
	}
	res := true
	for _, other := range v.reason.literals {
		if vidx(other) == idx {
			continue
		}
		if !s.minimizeLiteral(other, depth+1) {
			res = false
			break
		}
	}
	if res {
		v.removable = true
	} else {
		v.poison = true
	}
	s.minimized = append(s.minimized, idx)
	return res
}

// minimizeClause removes all removable literals from the learned clause in
// the temporary buffer. Slot 0 holds the asserting literal and is never
// considered.
func (s *Solver) minimizeClause() {
	j := 1
	for i := 1; i < len(s.clause); i++ {
		if s.minimizeLiteral(s.clause[i], 0) {
			s.stats.Minimized++
		} else {
			s.clause[j] = s.clause[i]
			j++
		}
	}
	s.clause = s.clause[:j]
	for _, idx := range s.minimized {
		s.vars[idx].poison = false
		s.vars[idx].removable = false
	}
	s.minimized = s.minimized[:0]
}

// clauseGlue counts the distinct decision levels among the literals.
func (s *Solver) clauseGlue(lits []int) int {
	seen := map[int]struct{}{}
	for _, lit := range lits {
		seen[s.vars[vidx(lit)].level] = struct{}{}
	}
	return len(seen)
}

// bumpSeenVariables moves every variable that took part in the resolution to
// the front of the decision queue, in trail order so that later assignments
// end up nearest the front, and clears the seen marks.
func (s *Solver) bumpSeenVariables() {
	sort.Slice(s.analyzed, func(i, j int) bool {
		return s.vars[vidx(s.analyzed[i])].trailPos < s.vars[vidx(s.analyzed[j])].trailPos
	})
	for _, lit := range s.analyzed {
		idx := vidx(lit)
		s.bumpVariable(idx)
		s.vars[idx].seen = false
	}
	s.analyzed = s.analyzed[:0]
}

// bumpResolvedClauses improves the recorded glue of the clauses resolved in
// this conflict where the current assignment gives a strictly smaller one.
func (s *Solver) bumpResolvedClauses() {
	for _, c := range s.resolved {
		if glue := s.clauseGlue(c.literals); glue < c.glue {
			c.glue = glue
		}
	}
	s.resolved = s.resolved[:0]
}

func (s *Solver) clearLevels() {
	for _, lvl := range s.levels {
		s.control[lvl].seen = false
	}
	s.levels = s.levels[:0]
}

// analyze derives the first-UIP learned clause from the pending conflict,
// minimizes it, backtracks to the second-highest level among its literals
// and asserts the UIP. A conflict at the root level derives the empty
// clause.
func (s *Solver) analyze() {
	s.stats.Conflicts++
	if s.level == 0 {
		s.learnEmptyClause()
		return
	}

	// Resolve backward over the trail until a single open path at the
	// current level remains; the literal closing it is the first UIP.
	s.clause = append(s.clause[:0], 0) // slot 0 is reserved for the UIP
	open := s.resolveClause(s.conflict)
	i := len(s.trail) - 1
	uip := 0
	for {
		for !s.vars[vidx(s.trail[i])].seen {
			i--
		}
		uip = s.trail[i]
		i--
		open--
		if open == 0 {
			break
		}
		open += s.resolveClause(s.vars[vidx(uip)].reason)
	}
	s.clause[0] = -uip

	if s.opts.Minimize {
		s.minimizeClause()
	}
	glue := s.clauseGlue(s.clause)

	s.bumpSeenVariables()
	s.bumpResolvedClauses()

	s.fastGlueAvg.Add(float64(glue))
	s.slowGlueAvg.Add(float64(glue))
	s.trailAvg.Add(float64(len(s.trail)))
	s.clearLevels()

	// The backjump level is the second-highest decision level among the
	// learned literals; move its literal into the second watched slot.
	jump := 0
	if len(s.clause) > 1 {
		m := 1
		for k := 2; k < len(s.clause); k++ {
			if s.vars[vidx(s.clause[k])].level > s.vars[vidx(s.clause[m])].level {
				m = k
			}
		}
		s.clause[1], s.clause[m] = s.clause[m], s.clause[1]
		jump = s.vars[vidx(s.clause[1])].level
	}
	s.jumpAvg.Add(float64(s.level - jump))

	s.backtrack(jump)

	if len(s.clause) == 1 {
		s.learnUnitClause(s.clause[0])
		s.assign(s.clause[0], nil)
	} else {
		if s.proof != nil {
			s.proof.Add(s.clause)
		}
		c := s.newClause(true, glue)
		c.used = true
		s.stats.Learned++
		s.assign(c.literals[0], c)
	}
}
