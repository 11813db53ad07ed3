package sat

// restarting reports whether enough conflicts have accumulated and the
// recent learned clause quality degraded enough, relative to its long-term
// average, to warrant a restart. Each check advances the conflict threshold
// by the restart interval.
func (s *Solver) restarting() bool {
	if s.stats.Conflicts < s.limits.restart.conflicts {
		return false
	}
	s.limits.restart.conflicts = s.stats.Conflicts + int64(s.opts.RestartInterval)
	if s.fastGlueAvg.Val() <= s.opts.RestartMargin*s.slowGlueAvg.Val() {
		return false
	}
	if s.blockingRestart() {
		return false
	}
	return true
}

// blockingRestart suppresses a pending restart while the trail is much
// larger than its running average: the search is probably deep in a
// satisfying region and the assignment worth keeping. Each block grows the
// interval until blocking is considered again.
func (s *Solver) blockingRestart() bool {
	if s.stats.Conflicts < s.limits.blocking {
		return false
	}
	if float64(len(s.trail)) <= s.opts.RestartBlockMargin*s.trailAvg.Val() {
		return false
	}
	s.inc.blocking += int64(s.opts.RestartInterval)
	s.limits.blocking = s.stats.Conflicts + s.inc.blocking
	s.stats.Blocked++
	return true
}

// reuseTrail returns the highest decision level such that the decision
// variables of that level and of every level below it were bumped more
// recently than the variable the next decision would pick. The scan stops at
// the first level, counting up from 1, whose decision variable is not.
// Restarting only backtracks that far, keeping the part of the trail the
// decision heuristic would rebuild identically.
func (s *Solver) reuseTrail() int {
	limit := s.vars[s.nextDecisionVariable()].bumped
	target := 0
	for lvl := 1; lvl <= s.level; lvl++ {
		idx := vidx(s.control[lvl].decision)
		if s.vars[idx].bumped <= limit {
			break
		}
		target = lvl
	}
	return target
}

func (s *Solver) restart() {
	s.stats.Restarts++
	s.backtrack(s.reuseTrail())
	s.report("R")
}
