package svgpath

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// Element is a <path> element of an SVG document. Path holds the parsed
// path data with the transforms of the element and all its ancestors
// already applied.
type Element struct {
	ID   string
	Path *Path
}

// Document holds the paths of an SVG document in document order.
type Document struct {
	Title    string
	Elements []Element
}

// ParseDocument reads the <path> elements of an SVG document. Transform
// attributes of enclosing groups are composed with the path's own
// transform. Any invalid path data or transform fails the whole document.
func ParseDocument(r io.Reader) (*Document, error) {
	var doc Document
	decoder := xml.NewDecoder(r)
	stack := []mt.Transform{mt.Identity()}
	inTitle := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return &doc, nil
		}
		if err != nil {
			return nil, fmt.Errorf("svgpath: decoding document: %w", err)
		}

		switch tok := token.(type) {
		case xml.StartElement:
			transform := stack[len(stack)-1]
			if v, ok := attr(tok, "transform"); ok {
				t, err := ParseTransform(v)
				if err != nil {
					return nil, fmt.Errorf("svgpath: <%s> transform: %w", tok.Name.Local, err)
				}
				transform = mt.MultiplyTransforms(transform, t.Transform())
			}
			stack = append(stack, transform)

			switch tok.Name.Local {
			case "path":
				id, _ := attr(tok, "id")
				d, _ := attr(tok, "d")
				p, err := ParseTransformed(d, MatrixFromTransform(transform))
				if err != nil {
					return nil, fmt.Errorf("svgpath: path %q: %w", id, err)
				}
				doc.Elements = append(doc.Elements, Element{ID: id, Path: p})
			case "title":
				inTitle = doc.Title == ""
			}

		case xml.CharData:
			if inTitle {
				doc.Title += string(tok)
			}

		case xml.EndElement:
			stack = stack[:len(stack)-1]
			if tok.Name.Local == "title" {
				inTitle = false
				doc.Title = strings.TrimSpace(doc.Title)
			}
		}
	}
}

// ParseDocumentString is ParseDocument over a string.
func ParseDocumentString(s string) (*Document, error) {
	return ParseDocument(strings.NewReader(s))
}

func attr(se xml.StartElement, name string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
