package render

import (
	"io"
	"iter"
)

// WriteSeq renders values from an iterator and writes them to w as they
// arrive, with [Write]'s concatenation semantics. Because values stream in
// one at a time, an unprintable value fails the call at the point it is
// reached rather than up front.
func WriteSeq(w io.Writer, seq iter.Seq[any]) error {
	for v := range seq {
		if err := renderTo(w, v); err != nil {
			return err
		}
	}
	return nil
}

// WriteChan renders values from a channel and writes them to w.
// It is a thin wrapper around [WriteSeq].
func WriteChan(w io.Writer, ch <-chan any) error {
	return WriteSeq(w, chanToSeq(ch))
}

func chanToSeq(ch <-chan any) iter.Seq[any] {
	return func(yield func(any) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}
}

// Items adapts a slice of any element type to iter.Seq[any], so typed slices
// render as sequences:
//
//	render.String(render.Items([]time.Duration{a, b}))
func Items[S ~[]E, E any](s S) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, e := range s {
			if !yield(e) {
				return
			}
		}
	}
}
