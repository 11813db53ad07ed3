package sat

// Byte accounting for clauses, watch lists and the per-variable tables. Each
// clause is accounted together with its two watch entries; the tables are
// accounted when Reserve grows them.
type memory struct {
	current int64
	peak    int64
}

func (s *Solver) incBytes(n int) {
	s.mem.current += int64(n)
	if s.mem.current > s.mem.peak {
		s.mem.peak = s.mem.current
	}
}

func (s *Solver) decBytes(n int) {
	s.mem.current -= int64(n)
}

// CurrentBytes returns the bytes currently accounted to the solver.
func (s *Solver) CurrentBytes() int64 {
	return s.mem.current
}

// MaxBytes returns the peak of CurrentBytes over the solver's lifetime.
func (s *Solver) MaxBytes() int64 {
	return s.mem.peak
}
