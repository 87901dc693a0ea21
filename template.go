package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Writef interprets format left to right, writing literal text verbatim and
// substituting each %s with the rendered form of the next value. %% writes a
// single literal %. A %s with no value left fails with [ErrMissingArgument];
// values left over after the format is consumed are silently discarded.
// Every value is classified before anything is written, discarded ones
// included.
func Writef(w io.Writer, format string, values ...any) error {
	if err := checkValues(values); err != nil {
		return err
	}
	rest := format
	for _, v := range values {
		n, hole, err := scanLiteral(w, rest)
		if err != nil {
			return err
		}
		if !hole {
			return nil
		}
		rest = rest[n:]
		if err := renderTo(w, v); err != nil {
			return err
		}
	}
	_, hole, err := scanLiteral(w, rest)
	if err != nil {
		return err
	}
	if hole {
		return fmt.Errorf("%w: %q", ErrMissingArgument, format)
	}
	return nil
}

// Stringf interprets format as in [Writef] and returns the text.
func Stringf(format string, values ...any) (string, error) {
	var buf bytes.Buffer
	if err := Writef(&buf, format, values...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// scanLiteral copies literal text from format to w up to and including the
// next %s placeholder. It returns how many bytes of format were consumed and
// whether a placeholder was reached; hole == false means the whole format
// was copied out.
func scanLiteral(w io.Writer, format string) (n int, hole bool, err error) {
	i := 0
	for {
		j := strings.IndexByte(format[i:], '%')
		if j < 0 {
			return len(format), false, emit(w, format[i:])
		}
		if err := emit(w, format[i:i+j]); err != nil {
			return 0, false, err
		}
		i += j + 1
		if i == len(format) {
			return 0, false, fmt.Errorf("%w: %q", ErrTrailingPercent, format)
		}
		switch format[i] {
		case '%':
			if err := emit(w, "%"); err != nil {
				return 0, false, err
			}
			i++
		case 's':
			return i + 1, true, nil
		default:
			return 0, false, fmt.Errorf("%w: %%%c in %q", ErrBadSpecifier, format[i], format)
		}
	}
}
