package svgpath

import (
	"fmt"
	"strings"

	gl "github.com/rustyoz/genericlexer"
)

const transformSeparators = " \t\r\n\f,"

// ParseTransform parses an SVG transform attribute such as
// "translate(10 20) rotate(45)". Functions are composed left to right, so
// the rightmost one is applied to points first.
func ParseTransform(s string) (Matrix, error) {
	m := Identity
	for {
		s = strings.TrimLeft(s, transformSeparators)
		if s == "" {
			return m, nil
		}
		open := strings.IndexByte(s, '(')
		if open < 0 {
			return Identity, fmt.Errorf("%w: %s without arguments", ErrMalformedTransform, strings.TrimSpace(s))
		}
		name, err := transformName(s[:open])
		if err != nil {
			return Identity, err
		}
		end := strings.IndexByte(s[open:], ')')
		if end < 0 {
			return Identity, fmt.Errorf("%w: %s: missing )", ErrMalformedTransform, name)
		}
		end += open
		args, err := transformArgs(s[open+1 : end])
		if err != nil {
			return Identity, fmt.Errorf("%w: %s: %v", ErrMalformedTransform, name, err)
		}
		f, err := transformFunc(name, args)
		if err != nil {
			return Identity, err
		}
		m = m.Mult(f)
		s = s[end+1:]
	}
}

// transformName lexes the text before a function's opening parenthesis,
// which must hold exactly one word. The lexer ends the stream early on a
// character it does not know, so the items must cover all of s.
func transformName(s string) (string, error) {
	s = strings.TrimSpace(s)
	l, _ := gl.Lex("transform", s)
	defer drain(l)
	var name string
	n := 0
	for {
		i := l.NextItem()
		v := strings.TrimSpace(i.Value)
		n += len(i.Value)
		switch {
		case i.Type == gl.ItemEOS:
			if n < len(s) {
				return "", fmt.Errorf("%w: unexpected %q", ErrMalformedTransform, s[n:])
			}
			if name == "" {
				return "", fmt.Errorf("%w: arguments without a function name", ErrMalformedTransform)
			}
			return name, nil
		case i.Type == gl.ItemError:
			return "", fmt.Errorf("%w: %s", ErrMalformedTransform, i.Value)
		case v == "":
		case isWord(v) && name == "":
			name = v
		default:
			return "", fmt.Errorf("%w: unexpected %q", ErrMalformedTransform, i.Value)
		}
	}
}

// transformArgs scans a function's argument list with the path data
// tokenizer, so it accepts the same number grammar as path data.
func transformArgs(s string) ([]float64, error) {
	toks, err := Tokens(s)
	if err != nil {
		return nil, err
	}
	args := make([]float64, 0, len(toks))
	for _, t := range toks {
		if t.Kind != NumberToken {
			return nil, fmt.Errorf("unexpected %v", t)
		}
		args = append(args, t.Number)
	}
	return args, nil
}

func transformFunc(name string, a []float64) (Matrix, error) {
	switch {
	case name == "matrix" && len(a) == 6:
		return Matrix{A: a[0], B: a[1], C: a[2], D: a[3], E: a[4], F: a[5]}, nil
	case name == "translate" && len(a) == 1:
		return Translate(a[0], 0), nil
	case name == "translate" && len(a) == 2:
		return Translate(a[0], a[1]), nil
	case name == "scale" && len(a) == 1:
		return Scale(a[0], a[0]), nil
	case name == "scale" && len(a) == 2:
		return Scale(a[0], a[1]), nil
	case name == "rotate" && len(a) == 1:
		return Rotate(a[0]), nil
	case name == "rotate" && len(a) == 3:
		return Translate(a[1], a[2]).Mult(Rotate(a[0])).Mult(Translate(-a[1], -a[2])), nil
	case name == "skewX" && len(a) == 1:
		return SkewX(a[0]), nil
	case name == "skewY" && len(a) == 1:
		return SkewY(a[0]), nil
	}
	return Identity, fmt.Errorf("%w: %s with %d arguments", ErrMalformedTransform, name, len(a))
}

// drain reads the lexer's channel until it is closed so the lexing
// goroutine can exit.
func drain(l *gl.Lexer) {
	for range l.Items {
	}
}

func isWord(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return s != ""
}
