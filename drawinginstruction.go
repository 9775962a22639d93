package svgpath

// Tuple is an X,Y coordinate
type Tuple [2]float64

func (t Tuple) add(o Tuple) Tuple { return Tuple{t[0] + o[0], t[1] + o[1]} }

func (t Tuple) sub(o Tuple) Tuple { return Tuple{t[0] - o[0], t[1] - o[1]} }

func (t Tuple) scale(f float64) Tuple { return Tuple{t[0] * f, t[1] * f} }

// reflect returns the point symmetric to r about t.
func (t Tuple) reflect(r Tuple) Tuple { return Tuple{2*t[0] - r[0], 2*t[1] - r[1]} }

// InstructionType tells a path drawing library which function it has
// to call
type InstructionType int

// These are the only instruction kinds a parsed path contains. Every
// relative, horizontal, vertical, quadratic and smooth command is
// normalized to one of them.
const (
	MoveInstruction InstructionType = iota
	LineInstruction
	CurveInstruction
	CloseInstruction
)

func (t InstructionType) String() string {
	switch t {
	case MoveInstruction:
		return "MoveTo"
	case LineInstruction:
		return "LineTo"
	case CurveInstruction:
		return "CurveTo"
	case CloseInstruction:
		return "ClosePath"
	}
	return "Unknown"
}

// DrawingInstruction contains enough information that a simple drawing
// library can draw the shape. All points are absolute.
//
// M is set for MoveInstruction and LineInstruction. C1, C2 and T are the
// control points and end point of a CurveInstruction.
type DrawingInstruction struct {
	Kind InstructionType
	M    Tuple
	C1   Tuple
	C2   Tuple
	T    Tuple
}

// End returns the pen position after the instruction. It is the zero
// Tuple for CloseInstruction, which carries no point.
func (di DrawingInstruction) End() Tuple {
	switch di.Kind {
	case MoveInstruction, LineInstruction:
		return di.M
	case CurveInstruction:
		return di.T
	}
	return Tuple{}
}

func moveTo(p Tuple) DrawingInstruction { return DrawingInstruction{Kind: MoveInstruction, M: p} }

func lineTo(p Tuple) DrawingInstruction { return DrawingInstruction{Kind: LineInstruction, M: p} }

func curveTo(c1, c2, t Tuple) DrawingInstruction {
	return DrawingInstruction{Kind: CurveInstruction, C1: c1, C2: c2, T: t}
}

func closePath() DrawingInstruction { return DrawingInstruction{Kind: CloseInstruction} }
