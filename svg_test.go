package svgpath

import (
	"errors"
	"strings"
	"testing"

	"github.com/cheekybits/is"
	"github.com/stretchr/testify/require"
)

const testSvg = `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg version="1.1" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
<title> Icons </title>
<path id="plain" d="M0,0 L10,0 L10,10 Z"/>
<g transform="translate(10,0)">
	<path id="moved" d="M0,0 l1,1" transform="translate(0,5)"/>
	<g transform="translate(0,100)">
		<rect x="0" y="0" width="1" height="1"/>
		<path id="nested" d="M1,1"/>
	</g>
	<path id="after" d="M2,2"/>
</g>
<g transform="scale(2)"><path id="ordered" d="M1,0" transform="translate(10,0)"/></g>
<g transform="translate(.5 .25)"><path id="fractional" d="M1,1" transform="scale(1E1)"/></g>
<g transform="scale(2)"><path id="scaled" d="M1,1 Q2,2 3,1" transform="scale(3)"></path></g>
</svg>`

func TestParseDocument(t *testing.T) {
	is := is.New(t)

	doc, err := ParseDocumentString(testSvg)
	is.NoErr(err)
	is.NotNil(doc)

	doc, err = ParseDocument(strings.NewReader(testSvg))
	is.NoErr(err)
	is.Equal(doc.Title, "Icons")
	is.Equal(len(doc.Elements), 7)
}

func TestParseDocumentTransforms(t *testing.T) {
	doc, err := ParseDocumentString(testSvg)
	require.NoError(t, err)

	byID := map[string]*Path{}
	for _, e := range doc.Elements {
		byID[e.ID] = e.Path
	}

	require.Equal(t, "M0,0 L10,0 L10,10 Z", byID["plain"].String())
	require.Equal(t, "M10,5 L11,6", byID["moved"].String())
	require.Equal(t, "M11,101", byID["nested"].String())
	require.Equal(t, "M12,2", byID["after"].String())
	// group scale applies after the path's own translate
	require.Equal(t, "M22,0", byID["ordered"].String())
	require.Equal(t, "M10.5,10.25", byID["fractional"].String())

	scaled := byID["scaled"].Instructions
	require.Len(t, scaled, 2)
	require.Equal(t, Tuple{6, 6}, scaled[0].M)
	require.Equal(t, Tuple{18, 6}, scaled[1].T)
}

func TestParseDocumentErrors(t *testing.T) {
	_, err := ParseDocumentString(`<svg><path id="bad" d="M0,0 X1,1"/></svg>`)
	require.True(t, errors.Is(err, ErrMalformedToken), "%v", err)
	require.Contains(t, err.Error(), `path "bad"`)

	_, err = ParseDocumentString(`<svg><g transform="bogus(1)"><path d="M0,0"/></g></svg>`)
	require.True(t, errors.Is(err, ErrMalformedTransform), "%v", err)

	_, err = ParseDocumentString(`<svg><path d="M0,0"></svg>`)
	require.Error(t, err)
}
