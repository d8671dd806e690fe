// Package msvlib renders Mermaid sequence diagrams to SVG in one call.
package msvlib

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"oss.terrastruct.com/xdefer"

	"github.com/Hebububu/msv/msvast"
	"github.com/Hebububu/msv/msvlayouts/msvsequence"
	"github.com/Hebububu/msv/msvparser"
	"github.com/Hebububu/msv/msvrenderers/msvsvg"
)

// ErrUnsupportedDiagram is returned for recognized diagram types other than
// sequence diagrams. Match it with errors.Is.
var ErrUnsupportedDiagram = errors.New("unsupported diagram type")

// Parse parses input and rejects diagrams that are not sequence diagrams.
func Parse(path, input string) (*msvast.Diagram, error) {
	d, err := msvparser.Parse(path, strings.NewReader(input))
	if err != nil {
		return nil, err
	}
	if err := checkSupported(d); err != nil {
		return nil, err
	}
	return d, nil
}

func checkSupported(d *msvast.Diagram) error {
	if !d.IsSequence() {
		return fmt.Errorf("%w: %s, expected %s", ErrUnsupportedDiagram, d.Type, msvast.Sequence)
	}
	return nil
}

// Render parses input and renders it as an SVG document.
func Render(ctx context.Context, input string, opts *msvsvg.RenderOpts) (_ []byte, err error) {
	defer xdefer.Errorf(&err, "failed to render")

	d, err := Parse("", input)
	if err != nil {
		return nil, err
	}
	return msvsvg.Render(ctx, d, opts)
}

// RenderDiagram renders an already parsed diagram.
func RenderDiagram(ctx context.Context, d *msvast.Diagram, opts *msvsvg.RenderOpts) (_ []byte, err error) {
	defer xdefer.Errorf(&err, "failed to render")

	if err := checkSupported(d); err != nil {
		return nil, err
	}
	return msvsvg.Render(ctx, d, opts)
}

// Layout parses input and returns its computed layout without drawing it.
func Layout(ctx context.Context, input string, opts *msvsvg.RenderOpts) (_ *msvsequence.Diagram, err error) {
	defer xdefer.Errorf(&err, "failed to lay out")

	d, err := Parse("", input)
	if err != nil {
		return nil, err
	}
	return msvsequence.Layout(ctx, d, opts.LayoutOpts()), nil
}
