package svgpath

import (
	"testing"

	"github.com/cheekybits/is"
)

func TestClosePathReturnsToSubpathStart(t *testing.T) {
	is := is.New(t)

	var got []DrawingInstruction
	pdp := newPathDParse("M0,0 L10,0 L10,10 Z", func(di DrawingInstruction) { got = append(got, di) })
	is.NoErr(pdp.parse())

	is.Equal(len(got), 4)
	is.Equal(got[0], moveTo(Tuple{0, 0}))
	is.Equal(got[1], lineTo(Tuple{10, 0}))
	is.Equal(got[2], lineTo(Tuple{10, 10}))
	is.Equal(got[3], closePath())
	is.Equal(pdp.state.cur, Tuple{0, 0})
	is.Equal(pdp.state.start, Tuple{0, 0})
}

func TestStateTracksLastCurve(t *testing.T) {
	is := is.New(t)

	var s pathState
	s.moveTo(Tuple{0, 0})
	is.Equal(s.last, noCurve)

	s.cubicTo(Tuple{10, 10}, Tuple{20, 10}, Tuple{30, 0})
	is.Equal(s.last, cubicCurve)
	is.Equal(s.ctrl, Tuple{20, 10})

	di := s.smoothCubicTo(Tuple{40, -10}, Tuple{50, 0})
	is.Equal(di.C1, Tuple{40, -10})
	is.Equal(s.ctrl, Tuple{40, -10})

	s.quadTo(Tuple{60, 30}, Tuple{70, 0})
	is.Equal(s.last, quadCurve)
	is.Equal(s.ctrl, Tuple{60, 30})

	s.lineTo(Tuple{80, 0})
	is.Equal(s.last, noCurve)

	s.closePath()
	is.Equal(s.cur, Tuple{0, 0})
	is.Equal(s.last, noCurve)
}

func TestMoveToRedefinesSubpathStart(t *testing.T) {
	is := is.New(t)

	var s pathState
	s.moveTo(Tuple{1, 2})
	s.lineTo(Tuple{5, 5})
	s.moveTo(Tuple{7, 8})
	s.lineTo(Tuple{9, 9})
	s.closePath()
	is.Equal(s.cur, Tuple{7, 8})
	is.True(s.started)
}

func TestResolve(t *testing.T) {
	is := is.New(t)

	s := pathState{cur: Tuple{10, 10}}
	is.Equal(s.resolve(true, 5, -5), Tuple{15, 5})
	is.Equal(s.resolve(false, 5, -5), Tuple{5, -5})
}

func TestParseStopsAtFirstError(t *testing.T) {
	is := is.New(t)

	var n int
	pdp := newPathDParse("M0,0 L1,1 X", func(DrawingInstruction) { n++ })
	err := pdp.parse()
	is.Err(err)
	is.Equal(n, 2)

	p, err := Parse("M0,0 L1,1 X")
	is.Err(err)
	is.Nil(p)
}
