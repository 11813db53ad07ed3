package sat

import "github.com/sirupsen/logrus"

// SetLogger installs the reporting sink. A nil logger disables reporting.
func (s *Solver) SetLogger(log logrus.FieldLogger) {
	s.log = log
}

// report emits a one-line progress summary for a search event. Events follow
// the usual single-character convention: 'i' for a learned root-level unit,
// 'R' for a restart, '-' for a reduction, '*' for the final result.
func (s *Solver) report(event string) {
	if s.log == nil {
		return
	}
	s.log.WithFields(logrus.Fields{
		"conflicts": s.stats.Conflicts,
		"restarts":  s.stats.Restarts,
		"learned":   s.stats.Learned,
		"collected": s.stats.Collected,
		"fixed":     s.stats.Fixed,
		"fast_glue": s.fastGlueAvg.Val(),
		"slow_glue": s.slowGlueAvg.Val(),
		"trail":     len(s.trail),
		"level":     s.level,
	}).Info(event)
}
