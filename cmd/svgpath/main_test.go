package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vasalvit/svgpath"
)

func TestRun(t *testing.T) {
	testCases := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"flag", []string{"-d", "m0 0 h10 v10 z"}, "", "M0,0 L10,0 L10,10 Z\n"},
		{"stdin", nil, "M0,0 c1,2 3,4 5,6\n", "M0,0 C1,2 3,4 5,6\n"},
		{"transform", []string{"-transform", "translate(5,5)", "-d", "M0,0 L10,0"}, "", "M5,5 L15,5\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(tc.args, strings.NewReader(tc.stdin), &out)
			require.NoError(t, err)
			require.Equal(t, tc.want, out.String())
		})
	}
}

func TestRunSVG(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-svg", "-width", "64", "-height", "64", "-d", "M0,0 L10,0 L10,10 Z"}, strings.NewReader(""), &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), `d="M0,0 L10,0 L10,10 Z"`)
	require.Contains(t, out.String(), `viewBox="0 0 10 10"`)
	require.Contains(t, out.String(), "</svg>")
}

func TestRunSVGFractionalBounds(t *testing.T) {
	testCases := []struct {
		d       string
		viewBox string
	}{
		{"M0.5,0.25 L1.75,1.5", `viewBox="0.5 0.25 1.25 1.25"`},
		{"M-0.5,-2.5 L0.25,-1.5", `viewBox="-0.5 -2.5 0.75 1"`},
		{"M3,3", `viewBox="3 3 1 1"`},
	}

	for _, tc := range testCases {
		var out bytes.Buffer
		err := run([]string{"-svg", "-d", tc.d}, strings.NewReader(""), &out)
		require.NoError(t, err, tc.d)
		require.Contains(t, out.String(), tc.viewBox, tc.d)
	}
}

func TestRunErrors(t *testing.T) {
	err := run([]string{"-d", "M0,0 L1"}, strings.NewReader(""), &bytes.Buffer{})
	require.True(t, errors.Is(err, svgpath.ErrArityMismatch), "%v", err)

	err = run([]string{"-transform", "bogus(1)", "-d", "M0,0"}, strings.NewReader(""), &bytes.Buffer{})
	require.True(t, errors.Is(err, svgpath.ErrMalformedTransform), "%v", err)
}
