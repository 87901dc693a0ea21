package render_test

import (
	"bytes"
	"testing"

	"github.com/bjaus/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSeq(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := render.WriteSeq(&buf, render.Items([]int{1, 2, 3}))
	require.NoError(t, err)
	// Concatenation semantics, same as Write.
	assert.Equal(t, "123", buf.String())
}

func TestWriteSeqComposites(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	seq := render.Items([]render.Pair{
		{First: 1, Second: 2},
		{First: 3, Second: 4},
	})
	err := render.WriteSeq(&buf, seq)
	require.NoError(t, err)
	assert.Equal(t, "(1, 2)(3, 4)", buf.String())
}

func TestWriteSeqEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := render.WriteSeq(&buf, render.Items([]int{}))
	require.NoError(t, err)
	assert.Equal(t, "", buf.String())
}

func TestWriteSeqUnprintableMidStream(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := render.WriteSeq(&buf, render.Items([]any{"ok", opaque{}}))
	require.Error(t, err)
	assert.ErrorIs(t, err, render.ErrUnprintable)
	// Streaming cannot pre-classify; output up to the failure survives.
	assert.Equal(t, "ok", buf.String())
}

func TestWriteSeqWriteError(t *testing.T) {
	t.Parallel()
	err := render.WriteSeq(&errWriter{}, render.Items([]string{"a"}))
	assert.ErrorIs(t, err, errWriteFailed)
}

func TestWriteChan(t *testing.T) {
	t.Parallel()
	ch := make(chan any, 3)
	ch <- "n="
	ch <- 7
	ch <- []int{8, 9}
	close(ch)
	var buf bytes.Buffer
	err := render.WriteChan(&buf, ch)
	require.NoError(t, err)
	assert.Equal(t, "n=7[8, 9]", buf.String())
}

func TestItemsAsValue(t *testing.T) {
	t.Parallel()
	// An iter.Seq[any] passed as a value classifies as iterable.
	got, err := render.String(render.Items([]string{"a", "b"}))
	require.NoError(t, err)
	assert.Equal(t, "[a, b]", got)
}
