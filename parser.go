package svgpath

import (
	"fmt"
	"io"
)

type curveKind int

const (
	noCurve curveKind = iota
	cubicCurve
	quadCurve
)

// pathState is the pen state carried between commands of a single parse.
// ctrl is only meaningful while last is not noCurve: it holds the second
// control point of a cubic, or the original control point of a quadratic.
type pathState struct {
	cur, start Tuple
	ctrl       Tuple
	last       curveKind
	started    bool
}

func (s *pathState) resolve(rel bool, x, y float64) Tuple {
	if rel {
		return s.cur.add(Tuple{x, y})
	}
	return Tuple{x, y}
}

func (s *pathState) moveTo(p Tuple) DrawingInstruction {
	s.cur, s.start, s.started = p, p, true
	s.last = noCurve
	return moveTo(p)
}

func (s *pathState) lineTo(p Tuple) DrawingInstruction {
	s.cur = p
	s.last = noCurve
	return lineTo(p)
}

func (s *pathState) cubicTo(c1, c2, p Tuple) DrawingInstruction {
	s.cur, s.ctrl, s.last = p, c2, cubicCurve
	return curveTo(c1, c2, p)
}

// smoothCubicTo reflects the previous cubic's second control point about
// the pen. Without a preceding cubic the first control point is the pen.
func (s *pathState) smoothCubicTo(c2, p Tuple) DrawingInstruction {
	c1 := s.cur
	if s.last == cubicCurve {
		c1 = s.cur.reflect(s.ctrl)
	}
	return s.cubicTo(c1, c2, p)
}

// quadTo emits the degree elevated cubic of the quadratic (cur, q, p).
func (s *pathState) quadTo(q, p Tuple) DrawingInstruction {
	c1 := s.cur.add(q.sub(s.cur).scale(2.0 / 3))
	c2 := p.add(q.sub(p).scale(2.0 / 3))
	s.cur, s.ctrl, s.last = p, q, quadCurve
	return curveTo(c1, c2, p)
}

func (s *pathState) smoothQuadTo(p Tuple) DrawingInstruction {
	q := s.cur
	if s.last == quadCurve {
		q = s.cur.reflect(s.ctrl)
	}
	return s.quadTo(q, p)
}

func (s *pathState) closePath() DrawingInstruction {
	s.cur = s.start
	s.last = noCurve
	return closePath()
}

// operand counts per command group, keyed by upper case letter
var arity = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'Z': 0,
}

type pathDescriptionParser struct {
	lex     *Tokenizer
	end     int
	peeked  bool
	peekTok Token
	peekErr error
	state   pathState
	emit    func(DrawingInstruction)
	args    [6]float64
}

func newPathDParse(d string, emit func(DrawingInstruction)) *pathDescriptionParser {
	return &pathDescriptionParser{lex: NewTokenizer(d), end: len(d), emit: emit}
}

func (pdp *pathDescriptionParser) next() (Token, error) {
	if pdp.peeked {
		pdp.peeked = false
		return pdp.peekTok, pdp.peekErr
	}
	return pdp.lex.Next()
}

func (pdp *pathDescriptionParser) peek() (Token, error) {
	if !pdp.peeked {
		pdp.peekTok, pdp.peekErr = pdp.lex.Next()
		pdp.peeked = true
	}
	return pdp.peekTok, pdp.peekErr
}

func (pdp *pathDescriptionParser) peekNumber() (Token, bool) {
	t, err := pdp.peek()
	return t, err == nil && t.Kind == NumberToken
}

// parse interprets the whole token stream, stopping at the first error.
func (pdp *pathDescriptionParser) parse() error {
	for {
		t, err := pdp.next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if t.Kind != CommandToken {
			return &ParseError{Pos: t.Pos, Err: fmt.Errorf("%w: number %v before any command", ErrUnexpectedCommand, t)}
		}
		if err := pdp.parseCommand(t); err != nil {
			return err
		}
	}
}

func (pdp *pathDescriptionParser) parseCommand(cmd Token) error {
	c := cmd.Command
	upper := c &^ 0x20
	rel := c != upper

	switch {
	case upper == 'A':
		return &ParseError{Pos: cmd.Pos, Command: c, Err: fmt.Errorf("%w: elliptical arcs are not handled", ErrUnsupportedCommand)}
	case !pdp.state.started && upper != 'M':
		return &ParseError{Pos: cmd.Pos, Command: c, Err: fmt.Errorf("%w: path data must begin with a moveto", ErrUnexpectedCommand)}
	case upper == 'Z':
		pdp.emit(pdp.state.closePath())
		if t, ok := pdp.peekNumber(); ok {
			return &ParseError{Pos: t.Pos, Command: c, Err: fmt.Errorf("%w: closepath takes no operands", ErrArityMismatch)}
		}
		return nil
	}

	// the first moveto of a path is absolute whatever its case
	if upper == 'M' && !pdp.state.started {
		rel = false
	}

	args := pdp.args[:arity[upper]]
	for group := 0; ; group++ {
		if group > 0 {
			if _, ok := pdp.peekNumber(); !ok {
				return nil
			}
		}
		if err := pdp.operands(cmd, args); err != nil {
			return err
		}
		pdp.emit(pdp.apply(upper, rel, group, args))
		if upper == 'M' {
			// later pairs of a moveto are linetos relative to the new pen
			rel = c == 'm'
		}
	}
}

// apply runs one operand group of a command through the state machine.
func (pdp *pathDescriptionParser) apply(cmd byte, rel bool, group int, a []float64) DrawingInstruction {
	s := &pdp.state
	switch cmd {
	case 'M':
		if group > 0 {
			return s.lineTo(s.resolve(rel, a[0], a[1]))
		}
		return s.moveTo(s.resolve(rel, a[0], a[1]))
	case 'L':
		return s.lineTo(s.resolve(rel, a[0], a[1]))
	case 'H':
		x := a[0]
		if rel {
			x += s.cur[0]
		}
		return s.lineTo(Tuple{x, s.cur[1]})
	case 'V':
		y := a[0]
		if rel {
			y += s.cur[1]
		}
		return s.lineTo(Tuple{s.cur[0], y})
	case 'C':
		c1 := s.resolve(rel, a[0], a[1])
		c2 := s.resolve(rel, a[2], a[3])
		return s.cubicTo(c1, c2, s.resolve(rel, a[4], a[5]))
	case 'S':
		c2 := s.resolve(rel, a[0], a[1])
		return s.smoothCubicTo(c2, s.resolve(rel, a[2], a[3]))
	case 'Q':
		q := s.resolve(rel, a[0], a[1])
		return s.quadTo(q, s.resolve(rel, a[2], a[3]))
	case 'T':
		return s.smoothQuadTo(s.resolve(rel, a[0], a[1]))
	}
	panic("svgpath: unhandled command " + string(cmd))
}

// operands fills args with the next len(args) numbers.
func (pdp *pathDescriptionParser) operands(cmd Token, args []float64) error {
	for i := range args {
		t, err := pdp.next()
		if err == io.EOF {
			return &ParseError{Pos: pdp.end, Command: cmd.Command,
				Err: fmt.Errorf("%w: expected %d numbers, got %d", ErrArityMismatch, len(args), i)}
		}
		if err != nil {
			return err
		}
		if t.Kind != NumberToken {
			return &ParseError{Pos: t.Pos, Command: cmd.Command,
				Err: fmt.Errorf("%w: expected %d numbers, got %d", ErrArityMismatch, len(args), i)}
		}
		args[i] = t.Number
	}
	return nil
}
