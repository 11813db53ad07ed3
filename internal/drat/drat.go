// Package drat emits clausal proofs in the textual DRAT format: one clause
// per line terminated by 0, deletions prefixed with "d".
package drat

import (
	"bufio"
	"io"
	"strconv"
)

// Tracer writes proof events to an underlying writer. It implements the
// solver's proof sink interface.
type Tracer struct {
	w   *bufio.Writer
	err error
}

// New returns a tracer writing to w.
func New(w io.Writer) *Tracer {
	return &Tracer{w: bufio.NewWriter(w)}
}

// Add records the addition of a learned clause.
func (t *Tracer) Add(lits []int) {
	t.line("", lits)
}

// Delete records the deletion of a clause.
func (t *Tracer) Delete(lits []int) {
	t.line("d ", lits)
}

func (t *Tracer) line(prefix string, lits []int) {
	if t.err != nil {
		return
	}
	if _, err := t.w.WriteString(prefix); err != nil {
		t.err = err
		return
	}
	for _, lit := range lits {
		if _, err := t.w.WriteString(strconv.Itoa(lit)); err != nil {
			t.err = err
			return
		}
		if err := t.w.WriteByte(' '); err != nil {
			t.err = err
			return
		}
	}
	if _, err := t.w.WriteString("0\n"); err != nil {
		t.err = err
	}
}

// Flush writes out any buffered proof lines and returns the first error
// encountered while tracing.
func (t *Tracer) Flush() error {
	if t.err != nil {
		return t.err
	}
	return t.w.Flush()
}
