package sat

// Stats counts search events. A snapshot is returned by Statistics.
type Stats struct {
	Conflicts    int64
	Decisions    int64
	Propagations int64
	Restarts     int64
	Blocked      int64
	Reductions   int64
	Collected    int64
	Learned      int64
	Units        int64
	Fixed        int64
	Bumped       int64
	Resolutions  int64
	Minimized    int64
}

// Statistics returns a snapshot of the search counters.
func (s *Solver) Statistics() Stats {
	return s.stats
}
