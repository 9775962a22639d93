// Command svgpath normalizes SVG path data to absolute move, line, cubic
// curve and close commands.
//
// Usage:
//
//	svgpath [-d data] [-transform attr] [-svg] [-width n] [-height n]
//
// Path data is read from stdin when -d is not given. With -svg the path is
// written as a standalone SVG document whose viewBox is the path bounds.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/vasalvit/svgpath"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("svgpath: ")
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("svgpath", flag.ContinueOnError)
	var (
		data      = fs.String("d", "", "path data; read from stdin when empty")
		transform = fs.String("transform", "", "SVG transform attribute applied to every point")
		asSVG     = fs.Bool("svg", false, "write an SVG document instead of path data")
		width     = fs.Int("width", 256, "SVG document width")
		height    = fs.Int("height", 256, "SVG document height")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	d := *data
	if d == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading path data: %w", err)
		}
		d = string(b)
	}

	m := svgpath.Identity
	if *transform != "" {
		var err error
		if m, err = svgpath.ParseTransform(*transform); err != nil {
			return err
		}
	}

	p, err := svgpath.ParseTransformed(d, m)
	if err != nil {
		return err
	}
	if *asSVG {
		writeSVG(stdout, p, *width, *height)
		return nil
	}
	_, err = fmt.Fprintln(stdout, p)
	return err
}

// writeSVG writes p as a standalone document. The viewBox is the exact
// path bounds; a zero extent is widened to 1 so the box stays renderable.
func writeSVG(w io.Writer, p *svgpath.Path, width, height int) {
	canvas := svg.New(w)
	if lo, hi, ok := p.Bounds(); ok {
		canvas.Start(width, height, viewBox(lo, hi))
	} else {
		canvas.Start(width, height)
	}
	canvas.Path(p.String(), "fill:none;stroke:black")
	canvas.End()
}

// viewBox formats the box from lo to hi without rounding, since svgo's
// Startview only takes integers.
func viewBox(lo, hi svgpath.Tuple) string {
	vw, vh := hi[0]-lo[0], hi[1]-lo[1]
	if vw == 0 {
		vw = 1
	}
	if vh == 0 {
		vh = 1
	}
	return fmt.Sprintf(`viewBox="%s %s %s %s"`, ftoa(lo[0]), ftoa(lo[1]), ftoa(vw), ftoa(vh))
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
