package sat

// nextDecisionVariable walks the decision queue from the search cache toward
// the less recently bumped end until it finds an unassigned variable, and
// caches the position for the next search.
func (s *Solver) nextDecisionVariable() int {
	idx := s.queue.searched
	for s.vals[idx] != 0 {
		idx = s.vars[idx].prev
	}
	s.updateQueueSearched(idx)
	return idx
}

// decide opens a new decision level and assigns the next queue variable with
// its saved phase.
func (s *Solver) decide() {
	s.level++
	idx := s.nextDecisionVariable()
	lit := idx
	if !s.opts.Phase || s.phases[idx] < 0 {
		lit = -idx
	}
	s.control = append(s.control, levelInfo{decision: lit, trail: len(s.trail)})
	s.stats.Decisions++
	s.assign(lit, nil)
}
