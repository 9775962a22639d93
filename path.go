// Package svgpath parses SVG path data into absolute move, line, cubic
// curve and close instructions for a rendering backend.
package svgpath

import (
	"strconv"
	"strings"
)

// Path is the parsed form of SVG path data: an ordered list of absolute
// move, line, cubic curve and close instructions.
type Path struct {
	Instructions []DrawingInstruction
}

// Drawer is a rendering backend a Path can be replayed into.
type Drawer interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubeTo(x1, y1, x2, y2, x, y float64)
	ClosePath()
}

// Parse interprets path data d. Parsing is all or nothing: on error no
// path is returned.
func Parse(d string) (*Path, error) {
	return ParseTransformed(d, Identity)
}

// ParseTransformed interprets path data d and maps every emitted point
// through m.
func ParseTransformed(d string, m Matrix) (*Path, error) {
	b := &pathBuilder{m: m, identity: m.IsIdentity()}
	if err := newPathDParse(d, b.add).parse(); err != nil {
		return nil, err
	}
	return &b.path, nil
}

// MustParse is like Parse but panics on error. It simplifies the
// initialization of package level paths.
func MustParse(d string) *Path {
	p, err := Parse(d)
	if err != nil {
		panic(err)
	}
	return p
}

type pathBuilder struct {
	m        Matrix
	identity bool
	path     Path
}

func (b *pathBuilder) add(di DrawingInstruction) {
	if !b.identity {
		di = transformInstruction(b.m, di)
	}
	b.path.Instructions = append(b.path.Instructions, di)
}

func transformInstruction(m Matrix, di DrawingInstruction) DrawingInstruction {
	switch di.Kind {
	case MoveInstruction, LineInstruction:
		di.M = m.ApplyTuple(di.M)
	case CurveInstruction:
		di.C1 = m.ApplyTuple(di.C1)
		di.C2 = m.ApplyTuple(di.C2)
		di.T = m.ApplyTuple(di.T)
	}
	return di
}

// Transform returns a copy of p with every point mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	out := &Path{Instructions: make([]DrawingInstruction, len(p.Instructions))}
	for i, di := range p.Instructions {
		out.Instructions[i] = transformInstruction(m, di)
	}
	return out
}

// Replay draws p into d, in order.
func (p *Path) Replay(d Drawer) {
	for _, di := range p.Instructions {
		switch di.Kind {
		case MoveInstruction:
			d.MoveTo(di.M[0], di.M[1])
		case LineInstruction:
			d.LineTo(di.M[0], di.M[1])
		case CurveInstruction:
			d.CubeTo(di.C1[0], di.C1[1], di.C2[0], di.C2[1], di.T[0], di.T[1])
		case CloseInstruction:
			d.ClosePath()
		}
	}
}

// Bounds returns the bounding box of every stored point, control points
// included, so it contains the curves but may be larger than them. ok is
// false for a path without points.
func (p *Path) Bounds() (min, max Tuple, ok bool) {
	add := func(t Tuple) {
		if !ok {
			min, max, ok = t, t, true
			return
		}
		for i := range t {
			if t[i] < min[i] {
				min[i] = t[i]
			}
			if t[i] > max[i] {
				max[i] = t[i]
			}
		}
	}
	for _, di := range p.Instructions {
		switch di.Kind {
		case MoveInstruction, LineInstruction:
			add(di.M)
		case CurveInstruction:
			add(di.C1)
			add(di.C2)
			add(di.T)
		}
	}
	return min, max, ok
}

// String returns p as absolute path data. Numbers use the shortest
// representation that parses back to the same value, so Parse(p.String())
// reproduces p.
func (p *Path) String() string {
	var sb strings.Builder
	for i, di := range p.Instructions {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch di.Kind {
		case MoveInstruction:
			sb.WriteByte('M')
			writeTuple(&sb, di.M)
		case LineInstruction:
			sb.WriteByte('L')
			writeTuple(&sb, di.M)
		case CurveInstruction:
			sb.WriteByte('C')
			writeTuple(&sb, di.C1)
			sb.WriteByte(' ')
			writeTuple(&sb, di.C2)
			sb.WriteByte(' ')
			writeTuple(&sb, di.T)
		case CloseInstruction:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func writeTuple(sb *strings.Builder, t Tuple) {
	sb.WriteString(strconv.FormatFloat(t[0], 'g', -1, 64))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatFloat(t[1], 'g', -1, 64))
}
