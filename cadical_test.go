package main

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hukaisdu/cadical/internal/dimacs"
	"github.com/hukaisdu/cadical/internal/sat"
)

// This test suite validates the solver end to end on the DIMACS instances
// under testdataDir. The expected status is encoded in the file name:
// instances ending in "_sat.cnf" must be satisfiable and their model is
// checked against every clause; instances ending in "_unsat.cnf" must be
// unsatisfiable.
var testdataDir = "testdata"

type testCase struct {
	name string
	file string
	want sat.Status
}

func listTestCases(dir string) ([]testCase, error) {
	testCases := []testCase{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch {
		case strings.HasSuffix(path, "_sat.cnf"):
			testCases = append(testCases, testCase{d.Name(), path, sat.Satisfiable})
		case strings.HasSuffix(path, "_unsat.cnf"):
			testCases = append(testCases, testCase{d.Name(), path, sat.Unsatisfiable})
		}
		return nil
	})
	return testCases, err
}

// instance records the clauses of a loaded file so models can be checked by
// direct evaluation.
type instance struct {
	maxVar  int
	clauses [][]int
}

func (in *instance) Reserve(maxVar int) {
	if maxVar > in.maxVar {
		in.maxVar = maxVar
	}
}

func (in *instance) AddOriginalClause(lits []int) error {
	in.clauses = append(in.clauses, append([]int{}, lits...))
	return nil
}

func TestSolveTestdata(t *testing.T) {
	testCases, err := listTestCases(testdataDir)
	if err != nil {
		t.Fatalf("Error listing test cases: %s", err)
	}
	if len(testCases) == 0 {
		t.Fatalf("No test cases found in %q", testdataDir)
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			in := &instance{}
			if err := dimacs.LoadFile(tc.file, in); err != nil {
				t.Fatalf("Instance parsing error: %s", err)
			}

			solver := sat.NewDefaultSolver()
			if err := dimacs.LoadFile(tc.file, solver); err != nil {
				t.Fatalf("Instance parsing error: %s", err)
			}

			if got := solver.Solve(); got != tc.want {
				t.Fatalf("Solve(): got %s, want %s", got, tc.want)
			}
			if tc.want != sat.Satisfiable {
				return
			}
			for _, clause := range in.clauses {
				satisfied := false
				for _, lit := range clause {
					if solver.Val(lit) > 0 {
						satisfied = true
						break
					}
				}
				if !satisfied {
					t.Errorf("model does not satisfy clause %v", clause)
				}
			}
		})
	}
}
