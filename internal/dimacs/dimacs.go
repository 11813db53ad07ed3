// Package dimacs loads DIMACS CNF instances into a solver.
package dimacs

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rhartert/dimacs"
)

// Solver is the ingestion interface the loader feeds.
type Solver interface {
	Reserve(maxVar int)
	AddOriginalClause(lits []int) error
}

// builder wraps the solver to implement dimacs.Builder.
type builder struct {
	solver Solver
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return errors.Errorf("unsupported problem type %q", problem)
	}
	b.solver.Reserve(nVars)
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	return b.solver.AddOriginalClause(tmpClause)
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

// Load reads a DIMACS CNF formula and adds its variables and clauses to the
// given solver.
func Load(r io.Reader, solver Solver) error {
	return dimacs.ReadBuilder(r, &builder{solver})
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			file.Close()
			return nil, err
		}
	}
	return rc, nil
}

// LoadFile parses the DIMACS CNF file and loads its formula in the given
// solver. Files with a ".gz" extension are decompressed transparently.
func LoadFile(filename string, solver Solver) error {
	rc, err := reader(filename, strings.HasSuffix(filename, ".gz"))
	if err != nil {
		return errors.Wrapf(err, "error reading file %q", filename)
	}
	defer rc.Close()

	if err := Load(rc, solver); err != nil {
		return errors.Wrapf(err, "error parsing file %q", filename)
	}
	return nil
}
