package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnprintable     = errors.New("unprintable value")
	ErrMissingArgument = errors.New("template requests more arguments than provided")
	ErrBadSpecifier    = errors.New("illegal format specifier")
	ErrTrailingPercent = errors.New("unmatched trailing %")
)

// Kind is the rendering category of a value's type.
type Kind int

const (
	KindUnprintable Kind = iota
	KindIterable
	KindPair
	KindTuple
	KindStreamable
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindStreamable:
		return "streamable"
	case KindPair:
		return "pair"
	case KindTuple:
		return "tuple"
	case KindIterable:
		return "iterable"
	default:
		return "unprintable"
	}
}

// --- Capability Interfaces ---

// Pairer exposes a fixed two-element composite. Renders as "(first, second)".
type Pairer interface {
	Pair() (first, second any)
}

// Tupler exposes a fixed-arity positional composite. Renders as
// "(e1, e2, ..., eN)".
type Tupler interface {
	Tuple() []any
}

// Iterable exposes forward traversal over a sequence of elements. Renders as
// "[e1, e2, ...]". A bare iter.Seq[any] works too.
type Iterable interface {
	Elems() iter.Seq[any]
}

// --- Ready-made composites ---

// Pair is a renderable two-element composite.
type Pair struct {
	First, Second any
}

// Pair implements [Pairer].
func (p Pair) Pair() (first, second any) { return p.First, p.Second }

// Tuple is a renderable fixed-arity composite.
type Tuple []any

// Tuple implements [Tupler].
func (t Tuple) Tuple() []any { return t }

// List is a renderable sequence.
type List []any

// Elems implements [Iterable].
func (l List) Elems() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, e := range l {
			if !yield(e) {
				return
			}
		}
	}
}

// Classify reports the rendering kind of v's dynamic type. Probes run in a
// fixed order and the first match wins: streamable, then pair, then tuple,
// then iterable. A type satisfying several capabilities therefore always
// classifies the same way. Classify is pure and never inspects v beyond
// interface satisfaction.
func Classify(v any) Kind {
	if isStreamable(v) {
		return KindStreamable
	}
	if _, ok := v.(Pairer); ok {
		return KindPair
	}
	if _, ok := v.(Tupler); ok {
		return KindTuple
	}
	if isIterable(v) {
		return KindIterable
	}
	return KindUnprintable
}

// Renderable reports whether type T classifies as something other than
// unprintable. Useful as a guard in callers' init or test code:
//
//	if !render.Renderable[MyType]() { ... }
func Renderable[T any]() bool {
	var zero T
	return Classify(any(zero)) != KindUnprintable
}

func isStreamable(v any) bool {
	switch v.(type) {
	case string, []byte, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	if _, ok := v.(fmt.Stringer); ok {
		return true
	}
	_, ok := v.(error)
	return ok
}

func isIterable(v any) bool {
	switch v.(type) {
	case iter.Seq[any], []any, []string, []int, []int64, []float64, []bool:
		return true
	}
	_, ok := v.(Iterable)
	return ok
}

// Write renders values to w in argument order, with no separators and no
// enclosing punctuation. Every top-level value is classified before anything
// is written; an unprintable value fails the whole call up front.
func Write(w io.Writer, values ...any) error {
	if err := checkValues(values); err != nil {
		return err
	}
	for _, v := range values {
		if err := renderTo(w, v); err != nil {
			return err
		}
	}
	return nil
}

// String renders values and returns the concatenated text.
func String(values ...any) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, values...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func checkValues(values []any) error {
	for _, v := range values {
		if Classify(v) == KindUnprintable {
			return fmt.Errorf("%w: no rendering rule applies to %T", ErrUnprintable, v)
		}
	}
	return nil
}

func renderTo(w io.Writer, v any) error {
	switch Classify(v) {
	case KindStreamable:
		return renderStreamable(w, v)
	case KindPair:
		first, second := v.(Pairer).Pair()
		return renderParen(w, []any{first, second})
	case KindTuple:
		return renderParen(w, v.(Tupler).Tuple())
	case KindIterable:
		return renderSeq(w, elems(v))
	default:
		return fmt.Errorf("%w: no rendering rule applies to %T", ErrUnprintable, v)
	}
}

func renderStreamable(w io.Writer, v any) error {
	switch t := v.(type) {
	case string:
		return emit(w, t)
	case []byte:
		_, err := w.Write(t)
		return err
	case bool:
		return emit(w, strconv.FormatBool(t))
	case int:
		return emit(w, strconv.Itoa(t))
	case int8:
		return emit(w, strconv.FormatInt(int64(t), 10))
	case int16:
		return emit(w, strconv.FormatInt(int64(t), 10))
	case int32:
		return emit(w, strconv.FormatInt(int64(t), 10))
	case int64:
		return emit(w, strconv.FormatInt(t, 10))
	case uint:
		return emit(w, strconv.FormatUint(uint64(t), 10))
	case uint8:
		return emit(w, strconv.FormatUint(uint64(t), 10))
	case uint16:
		return emit(w, strconv.FormatUint(uint64(t), 10))
	case uint32:
		return emit(w, strconv.FormatUint(uint64(t), 10))
	case uint64:
		return emit(w, strconv.FormatUint(t, 10))
	case float32:
		return emit(w, strconv.FormatFloat(float64(t), 'g', -1, 32))
	case float64:
		return emit(w, strconv.FormatFloat(t, 'g', -1, 64))
	}
	if s, ok := v.(fmt.Stringer); ok {
		return emit(w, s.String())
	}
	if e, ok := v.(error); ok {
		return emit(w, e.Error())
	}
	return fmt.Errorf("%w: no rendering rule applies to %T", ErrUnprintable, v)
}

func renderParen(w io.Writer, parts []any) error {
	if err := emit(w, "("); err != nil {
		return err
	}
	for i, e := range parts {
		if i > 0 {
			if err := emit(w, ", "); err != nil {
				return err
			}
		}
		if err := renderTo(w, e); err != nil {
			return err
		}
	}
	return emit(w, ")")
}

func renderSeq(w io.Writer, seq iter.Seq[any]) error {
	if err := emit(w, "["); err != nil {
		return err
	}
	first := true
	for e := range seq {
		if !first {
			if err := emit(w, ", "); err != nil {
				return err
			}
		}
		first = false
		if err := renderTo(w, e); err != nil {
			return err
		}
	}
	return emit(w, "]")
}

// elems normalizes every iterable shape to a single traversal protocol.
func elems(v any) iter.Seq[any] {
	switch t := v.(type) {
	case iter.Seq[any]:
		return t
	case []any:
		return List(t).Elems()
	case []string:
		return Items(t)
	case []int:
		return Items(t)
	case []int64:
		return Items(t)
	case []float64:
		return Items(t)
	case []bool:
		return Items(t)
	}
	return v.(Iterable).Elems()
}

func emit(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
