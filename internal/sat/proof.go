package sat

// Proof receives the clausal proof events of the search. The solver calls
// Add exactly once per learned clause (including units and the empty clause)
// and Delete exactly once per garbage-collected clause, in the order the
// events occur. The literal slice is only valid for the duration of the
// call.
type Proof interface {
	Add(lits []int)
	Delete(lits []int)
}

// SetProof installs a proof sink. It must be called before Solve. A nil sink
// disables proof tracing.
func (s *Solver) SetProof(p Proof) {
	s.proof = p
}
