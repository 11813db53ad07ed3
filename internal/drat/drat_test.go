package drat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracer(t *testing.T) {
	sb := &strings.Builder{}
	tracer := New(sb)

	tracer.Add([]int{1, -2})
	tracer.Delete([]int{-3, 4, 5})
	tracer.Add([]int{2})
	tracer.Add(nil)
	require.NoError(t, tracer.Flush())

	want := "1 -2 0\nd -3 4 5 0\n2 0\n0\n"
	assert.Equal(t, want, sb.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, assert.AnError
}

func TestTracer_flushReportsWriteError(t *testing.T) {
	tracer := New(failingWriter{})
	for i := 0; i < 10000; i++ {
		tracer.Add([]int{1, 2, 3})
	}
	require.Error(t, tracer.Flush())
}
