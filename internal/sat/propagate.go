package sat

// assign puts a literal on the trail. A nil reason marks a decision or a
// root-level unit; reasons of root-level assignments are always dropped
// since level 0 literals never take part in conflict analysis.
func (s *Solver) assign(lit int, reason *Clause) {
	idx := vidx(lit)
	if s.level == 0 {
		reason = nil
		s.stats.Fixed++
	}
	v := &s.vars[idx]
	v.reason = reason
	v.level = s.level
	v.trailPos = len(s.trail)
	s.vals[idx] = sign(lit)
	s.trail = append(s.trail, lit)
}

// propagate performs boolean constraint propagation over the two watched
// literals until the trail is fully propagated. It returns false on
// conflict, leaving the conflicting clause in s.conflict and all watch lists
// intact.
func (s *Solver) propagate() bool {
	for s.propagated < len(s.trail) {
		lit := s.trail[s.propagated]
		s.propagated++
		s.stats.Propagations++

		// Visit the clauses watching the literal that just became false.
		ws := s.watches(-lit)
		i, j := 0, 0
		for i < len(*ws) {
			w := (*ws)[i]
			i++

			// Fast path: the clause is satisfied through its blocking
			// literal without being loaded.
			if s.val(w.blocker) > 0 {
				(*ws)[j] = w
				j++
				continue
			}

			c := w.clause
			lits := c.literals

			// Normalize so the false watched literal sits in slot 1.
			if lits[0] == -lit {
				lits[0], lits[1] = lits[1], lits[0]
			}
			other := lits[0]

			if s.val(other) > 0 {
				// Keep the watch but remember the satisfied literal as the
				// new blocker.
				(*ws)[j] = watch{blocker: other, clause: c}
				j++
				continue
			}

			// Search a replacement watch among the remaining literals.
			replaced := false
			for k := 2; k < len(lits); k++ {
				if s.val(lits[k]) >= 0 {
					lits[1], lits[k] = lits[k], lits[1]
					s.watchLiteral(lits[1], other, c)
					replaced = true
					break
				}
			}
			if replaced {
				continue // watch moved to the replacement literal
			}

			// No replacement: the clause is unit or conflicting.
			(*ws)[j] = watch{blocker: other, clause: c}
			j++
			if s.val(other) < 0 {
				s.conflict = c
				for i < len(*ws) {
					(*ws)[j] = (*ws)[i]
					i++
					j++
				}
				*ws = (*ws)[:j]
				return false
			}
			s.assign(other, c)
		}
		*ws = (*ws)[:j]
	}
	return true
}
