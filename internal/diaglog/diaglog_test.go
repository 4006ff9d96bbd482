package diaglog_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeycumines/go-anneal/internal/diaglog"
	"github.com/joeycumines/go-anneal/kv"
)

func TestLogger_reanneal(t *testing.T) {
	var buf bytes.Buffer
	l := diaglog.New(zerolog.New(&buf).Level(zerolog.DebugLevel))

	fields := kv.New(0).Set("t", 5.0).Set("ra_fi", true)
	l.Reanneal("fixed", fields)

	out := buf.String()
	assert.Contains(t, out, `"kind":"fixed"`)
	assert.Contains(t, out, `"ra_fi":true`)
	assert.Contains(t, out, "reanneal triggered")
}

func TestLogger_terminated(t *testing.T) {
	var buf bytes.Buffer
	l := diaglog.New(zerolog.New(&buf).Level(zerolog.InfoLevel))

	l.Terminated("AcceptedStallIterExceeded", 42)

	out := buf.String()
	assert.Contains(t, out, `"reason":"AcceptedStallIterExceeded"`)
	assert.Contains(t, out, `"iter":42`)
}

func TestLogger_invalidParameter(t *testing.T) {
	var buf bytes.Buffer
	l := diaglog.New(zerolog.New(&buf).Level(zerolog.WarnLevel))

	l.InvalidParameter("initial temperature must be > 0")

	out := buf.String()
	assert.Contains(t, out, "initial temperature must be > 0")
}

func TestLogger_disabledByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := diaglog.New(zerolog.New(&buf).Level(zerolog.Disabled))

	l.Reanneal("fixed", kv.New(0))
	l.Terminated("x", 1)
	l.InvalidParameter("y")

	require.Empty(t, buf.String())
}
