package tnfa

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"gotest.tools/v3/assert"
)

func TestDumpProducesOneLinePerInstruction(t *testing.T) {
	prog := MustCompile("a*b")
	var buf bytes.Buffer
	assert.NilError(t, prog.Dump(&buf))

	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.Assert(t, lines > 0)
	assert.Assert(t, bytes.Contains(buf.Bytes(), []byte("match")))
}

type erroringWriter struct{}

func (erroringWriter) Write(p []byte) (int, error) { return 0, errors.New("boom") }

func TestDumpPropagatesWriterError(t *testing.T) {
	prog := MustCompile("a")
	var w io.Writer = erroringWriter{}
	err := prog.Dump(w)
	assert.ErrorContains(t, err, "boom")
}
