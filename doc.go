// Package render produces a canonical human-readable text form of arbitrary
// values without per-type formatting code at the call site.
//
// The central entry points are [Write] and [String], which render variadic
// values back to back, and [Writef] and [Stringf], which substitute rendered
// values into a %s template. Each value's type is classified into exactly one
// [Kind], and the kind decides the output shape.
//
// # Kinds
//
// Classification probes run in a fixed order; the first match wins:
//
//   - streamable — native text form, written verbatim: string, bool, the
//     int/uint and float kinds, []byte, and any [fmt.Stringer] or error.
//   - pair — implements [Pairer]; renders "(first, second)".
//   - tuple — implements [Tupler]; renders "(e1, e2, ..., eN)".
//   - iterable — implements [Iterable], or is an iter.Seq[any] or a common
//     slice type; renders "[e1, e2, ...]", "[]" when empty.
//
// The order means a type that both has a String method and implements
// [Pairer] always renders via its String method. Elements of composites are
// rendered recursively with their own classification, to any nesting depth.
//
// A type matching none of the probes is unprintable: rendering it fails with
// [ErrUnprintable] before any output is produced for the call. Because
// classification sees dynamic types only, a defined type like "type ID int"
// needs a String method (or a conversion at the call site) to be streamable.
// Use [Renderable] to assert a type's renderability in init or test code.
//
// # Composites
//
// [Pair], [Tuple], and [List] are ready-made renderable composites, and
// [Items] adapts a typed slice for sequence rendering:
//
//	render.String(render.List{1, "two", render.Pair{3, 4}})  // [1, two, (3, 4)]
//	render.String(render.Items(ports))
//
// # Templates
//
// [Writef] and [Stringf] interpret a template left to right. %s substitutes
// the rendered form of the next value, %% emits a literal percent sign, and
// any other use of % is an error. Values beyond the template's placeholders
// are discarded without error; a placeholder beyond the values is not:
//
//	render.Stringf("%s of %s done", 7, 10)  // "7 of 10 done"
//
// # Streaming
//
// [WriteSeq] and [WriteChan] render values as they arrive from an
// iter.Seq[any] or a channel, for output too large or too slow to collect
// first.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnprintable] — no rendering rule applies to a value's type
//   - [ErrMissingArgument] — template has a %s but no value remains
//   - [ErrBadSpecifier] — % followed by a character other than s or %
//   - [ErrTrailingPercent] — template ends immediately after %
//
// Write errors from the destination io.Writer are returned unmodified. The
// package holds no state between calls; concurrent calls are safe as long as
// each targets its own writer.
package render
