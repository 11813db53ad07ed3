package sat

import "testing"

func TestPropagate_unitChain(t *testing.T) {
	s := NewDefaultSolver()
	addAll(t, s, [][]int{{-1, 2}, {-2, 3}, {-3, 4}})

	decideLiteral(s, 1)
	if !s.propagate() {
		t.Fatal("propagate(): unexpected conflict")
	}

	for _, idx := range []int{2, 3, 4} {
		if got := s.val(idx); got != 1 {
			t.Errorf("val(%d): got %d, want 1", idx, got)
		}
		if s.vars[idx].reason == nil {
			t.Errorf("variable %d propagated without a reason", idx)
		}
		if s.vars[idx].level != 1 {
			t.Errorf("level(%d): got %d, want 1", idx, s.vars[idx].level)
		}
	}
}

func TestPropagate_conflictKeepsWatches(t *testing.T) {
	s := NewDefaultSolver()
	addAll(t, s, [][]int{{-1, 2}, {-1, -2}, {-1, 3}, {-1, 4}})

	decideLiteral(s, 1)
	if s.propagate() {
		t.Fatal("propagate(): expected a conflict")
	}
	if s.conflict == nil {
		t.Fatal("conflict clause not recorded")
	}

	// Every stored clause must still be watched exactly twice (I2), even
	// though propagation stopped mid-list.
	counts := map[*Clause]int{}
	for _, ws := range s.wtab {
		for _, w := range ws {
			counts[w.clause]++
		}
	}
	for _, c := range s.clauses {
		if counts[c] != 2 {
			t.Errorf("clause %v watched %d times, want 2", c.literals, counts[c])
		}
	}
}

func TestPropagate_blockingLiteralSkipsClause(t *testing.T) {
	s := NewDefaultSolver()
	addAll(t, s, [][]int{{2, 3, -1}})

	decideLiteral(s, 2)
	if !s.propagate() {
		t.Fatal("propagate(): unexpected conflict")
	}
	decideLiteral(s, 1)
	if !s.propagate() {
		t.Fatal("propagate(): unexpected conflict")
	}

	// With blocking literal 2 true the clause is skipped unchanged; nothing
	// may have been forced.
	if got := s.val(3); got != 0 {
		t.Errorf("val(3): got %d, want 0", got)
	}
	ws := *s.watches(-1)
	if len(ws) != 1 || ws[0].blocker != 2 {
		t.Errorf("watch list of -1 changed: %+v", ws)
	}
}

func TestPropagate_trailOrderIsBreadthFirst(t *testing.T) {
	s := NewDefaultSolver()
	addAll(t, s, [][]int{{-1, 2}, {-1, 3}, {-2, 4}})

	decideLiteral(s, 1)
	if !s.propagate() {
		t.Fatal("propagate(): unexpected conflict")
	}

	// 2 and 3 are forced directly by the decision and must precede 4,
	// which needs 2 first.
	want := []int{1, 2, 3, 4}
	if len(s.trail) != len(want) {
		t.Fatalf("trail: got %v, want %v", s.trail, want)
	}
	for i, lit := range want {
		if s.trail[i] != lit {
			t.Fatalf("trail: got %v, want %v", s.trail, want)
		}
	}
}
