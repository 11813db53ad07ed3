package sat

// unassign removes a literal from the assignment, saves its polarity for
// phase saving, and refreshes the decision queue's search cache if the
// variable was bumped more recently than the cached one.
func (s *Solver) unassign(lit int) {
	idx := vidx(lit)
	s.vals[idx] = 0
	s.phases[idx] = sign(lit)
	v := &s.vars[idx]
	v.reason = nil
	if v.bumped > s.queue.bumped {
		s.updateQueueSearched(idx)
	}
}

// backtrack pops all literals assigned above the target level, truncates the
// control stack and clears any pending conflict. Backtracking to the current
// level is a no-op.
func (s *Solver) backtrack(target int) {
	if target >= s.level {
		return
	}
	begin := s.control[target+1].trail
	for len(s.trail) > begin {
		lit := s.trail[len(s.trail)-1]
		s.trail = s.trail[:len(s.trail)-1]
		s.unassign(lit)
	}
	s.control = s.control[:target+1]
	s.level = target
	s.propagated = len(s.trail)
	s.conflict = nil
}
