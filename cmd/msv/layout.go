package main

import (
	"context"

	"oss.terrastruct.com/xdefer"
	"oss.terrastruct.com/xjson"

	"github.com/Hebububu/msv/lib/xmain"
	"github.com/Hebububu/msv/msvlayouts/msvsequence"
)

// layoutCmd writes the computed layout of a file as JSON, to stdout unless
// an output path is given.
func layoutCmd(ctx context.Context, ms *xmain.State, f *flags, args []string) (err error) {
	defer xdefer.Errorf(&err, "failed to lay out")

	if len(args) == 0 || len(args) > 2 {
		return xmain.UsageErrorf("layout must be passed an input file and optionally an output file")
	}
	inputPath := args[0]
	outputPath := "-"
	if len(args) == 2 {
		outputPath = args[1]
	}

	opts, err := f.renderOpts(ms)
	if err != nil {
		return err
	}
	d, err := parse(ms, inputPath)
	if err != nil {
		return err
	}

	sd := msvsequence.Layout(ctx, d, opts.LayoutOpts())
	b := xjson.Marshal(sd)
	b = append(b, '\n')
	return ms.WritePath(outputPath, b)
}
