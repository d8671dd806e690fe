package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"oss.terrastruct.com/xdefer"

	"github.com/Hebububu/msv/lib/go2"
	"github.com/Hebububu/msv/lib/log"
	"github.com/Hebububu/msv/lib/textmeasure"
	"github.com/Hebububu/msv/lib/version"
	"github.com/Hebububu/msv/lib/xmain"
	"github.com/Hebububu/msv/msvast"
	"github.com/Hebububu/msv/msvlayouts/msvsequence"
	"github.com/Hebububu/msv/msvlib"
	"github.com/Hebububu/msv/msvparser"
	"github.com/Hebububu/msv/msvrenderers/msvsvg"
	"github.com/Hebububu/msv/msvthemes/msvthemescatalog"
)

// ParseErrorCode is the exit code for input that fails to parse.
const ParseErrorCode = 2

func main() {
	xmain.Main(run)
}

type flags struct {
	watch       *bool
	host        *string
	port        *string
	theme       *string
	pad         *float64
	fontSize    *int
	fontFamily  *string
	transparent *bool
	width       *int
	height      *int
	ruler       *string
	strict      *bool
	debug       *bool
	version     *bool
}

// registerFlags must stay in sync with the usage in help.go.
func registerFlags(ms *xmain.State) (f *flags, err error) {
	f = &flags{}
	f.watch, err = ms.Opts.Bool("MSV_WATCH", "watch", "w", false, "watch for changes to input and live reload. Use $HOST and $PORT to specify the listening address.\n(default localhost:0, which will open on a randomly available local port).")
	if err != nil {
		return nil, err
	}
	f.host = ms.Opts.String("HOST", "host", "h", "localhost", "host listening address when used with watch")
	f.port = ms.Opts.String("PORT", "port", "p", "0", "port listening address when used with watch")
	f.theme = ms.Opts.String("MSV_THEME", "theme", "t", msvsvg.DEFAULT_THEME, "the diagram theme name. Run `msv themes` to list them")
	f.pad, err = ms.Opts.Float64("MSV_PAD", "pad", "", msvsequence.DEFAULT_PAD, "pixels padded around the rendered diagram")
	if err != nil {
		return nil, err
	}
	f.fontSize, err = ms.Opts.Int("MSV_FONT_SIZE", "font-size", "", msvsequence.DEFAULT_FONT_SIZE, "font size used to measure and draw text")
	if err != nil {
		return nil, err
	}
	f.fontFamily = ms.Opts.String("MSV_FONT_FAMILY", "font-family", "", msvsvg.DEFAULT_FONT_FAMILY, "font-family written to every text element")
	f.transparent, err = ms.Opts.Bool("MSV_TRANSPARENT", "transparent", "", false, "omit the background")
	if err != nil {
		return nil, err
	}
	f.width, err = ms.Opts.Int("", "width", "", 0, "fixed document width. 0 sizes the document to fit")
	if err != nil {
		return nil, err
	}
	f.height, err = ms.Opts.Int("", "height", "", 0, "fixed document height. 0 sizes the document to fit")
	if err != nil {
		return nil, err
	}
	f.ruler = ms.Opts.String("MSV_RULER", "ruler", "", "table", "text measurement: table (fixed character widths) or ttf (Go Regular glyph advances)")
	f.strict, err = ms.Opts.Bool("MSV_STRICT", "strict", "", false, "fail on ignored lines and messages that reference unknown participants")
	if err != nil {
		return nil, err
	}
	f.debug, err = ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		return nil, err
	}
	f.version, err = ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return nil, err
	}
	return f, nil
}

func run(ctx context.Context, ms *xmain.State) (err error) {
	f, err := registerFlags(ms)
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}
	if err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}

	if *f.debug {
		ms.Env.Setenv("DEBUG", "1")
	}
	ctx = ms.LogContext(ctx)

	args := ms.Opts.Flags.Args()
	if len(args) > 0 {
		switch args[0] {
		case "validate":
			return validateCmd(ctx, ms, args[1:])
		case "layout":
			return layoutCmd(ctx, ms, f, args[1:])
		case "themes":
			if len(args) > 1 {
				return xmain.UsageErrorf("themes subcommand accepts no arguments")
			}
			fmt.Fprint(ms.Stdout, msvthemescatalog.CLIString())
			return nil
		case "version":
			if len(args) > 1 {
				return xmain.UsageErrorf("version subcommand accepts no arguments")
			}
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
	}

	if len(args) == 0 {
		if *f.version {
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
		help(ms)
		return nil
	} else if len(args) > 2 {
		return xmain.UsageErrorf("too many arguments passed")
	}

	inputPath := args[0]
	var outputPath string
	if len(args) == 2 {
		outputPath = args[1]
	} else if inputPath == "-" {
		outputPath = "-"
	} else {
		outputPath = renameExt(inputPath, ".svg")
	}

	opts, err := f.renderOpts(ms)
	if err != nil {
		return err
	}

	if *f.watch {
		if inputPath == "-" {
			return xmain.UsageErrorf("-w[atch] cannot be combined with reading input from stdin")
		}
		ms.Log.SetTS(true)
		w, err := newWatcher(ctx, ms, watcherOpts{
			host:       *f.host,
			port:       *f.port,
			inputPath:  inputPath,
			outputPath: outputPath,
			strict:     *f.strict,
			render:     opts,
		})
		if err != nil {
			return err
		}
		return w.run()
	}

	ctx, cancel := log.WithTimeout(ctx, time.Minute*2)
	defer cancel()

	_, err = compile(ctx, ms, opts, *f.strict, inputPath, outputPath)
	if err != nil {
		return err
	}
	ms.Log.Success.Printf("successfully compiled %v to %v", ms.HumanPath(inputPath), ms.HumanPath(outputPath))
	return nil
}

// renderOpts resolves the flags into render options, rejecting an unknown
// theme or ruler before any input is read.
func (f *flags) renderOpts(ms *xmain.State) (*msvsvg.RenderOpts, error) {
	theme, ok := msvthemescatalog.Find(*f.theme)
	if !ok {
		return nil, xmain.UsageErrorf("-t[heme] could not be found. The available options are:\n%s\nYou provided: %s", msvthemescatalog.CLIString(), *f.theme)
	}
	ms.Log.Debug.Printf("using theme %s (ID: %d)", theme.Name, theme.ID)

	if *f.fontSize <= 0 {
		return nil, xmain.UsageErrorf("--font-size must be positive, got %d", *f.fontSize)
	}
	if *f.pad < 0 {
		return nil, xmain.UsageErrorf("--pad must not be negative, got %v", *f.pad)
	}

	opts := &msvsvg.RenderOpts{
		ThemeName:   go2.Pointer(theme.Name),
		Pad:         go2.Pointer(*f.pad),
		FontSize:    go2.Pointer(*f.fontSize),
		FontFamily:  *f.fontFamily,
		Transparent: go2.Pointer(*f.transparent),
	}
	if *f.width > 0 {
		opts.Width = go2.Pointer(*f.width)
	}
	if *f.height > 0 {
		opts.Height = go2.Pointer(*f.height)
	}

	switch strings.ToLower(*f.ruler) {
	case "", "table":
	case "ttf":
		ruler, err := textmeasure.NewTTFRuler()
		if err != nil {
			return nil, err
		}
		opts.Ruler = ruler
	default:
		return nil, xmain.UsageErrorf("--ruler must be table or ttf, got %q", *f.ruler)
	}
	ms.Log.Debug.Printf("using %s ruler", *f.ruler)
	return opts, nil
}

// parse reads and parses inputPath. Parse errors exit with ParseErrorCode.
func parse(ms *xmain.State, inputPath string) (*msvast.Diagram, error) {
	input, err := ms.ReadPath(inputPath)
	if err != nil {
		return nil, err
	}

	d, err := msvlib.Parse(inputPath, string(input))
	if err != nil {
		var perr *msvparser.ParseError
		if errors.As(err, &perr) {
			return nil, xmain.ExitErrorf(ParseErrorCode, "%v", err)
		}
		return nil, err
	}
	return d, nil
}

// reportIssues logs every validation issue as a warning. In strict mode any
// issue is an error.
func reportIssues(ms *xmain.State, d *msvast.Diagram, strict bool) error {
	issues := msvlib.Validate(d)
	for _, is := range issues {
		ms.Log.Warn.Print(is)
	}
	if strict && len(issues) > 0 {
		return xmain.ExitErrorf(1, "strict mode: %d %s", len(issues), pluralize(len(issues), "issue"))
	}
	return nil
}

func compile(ctx context.Context, ms *xmain.State, opts *msvsvg.RenderOpts, strict bool, inputPath, outputPath string) (_ []byte, err error) {
	defer xdefer.Errorf(&err, "failed to compile %s", ms.HumanPath(inputPath))

	d, err := parse(ms, inputPath)
	if err != nil {
		return nil, err
	}
	err = reportIssues(ms, d, strict)
	if err != nil {
		return nil, err
	}

	svg, err := msvlib.RenderDiagram(ctx, d, opts)
	if err != nil {
		return nil, err
	}

	out := svg
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	err = ms.WritePath(outputPath, out)
	if err != nil {
		return nil, err
	}
	return svg, nil
}

// newExt must include leading .
func renameExt(fp string, newExt string) string {
	ext := filepath.Ext(fp)
	if ext == "" {
		return fp + newExt
	}
	return strings.TrimSuffix(fp, ext) + newExt
}

func pluralize(n int, s string) string {
	if n == 1 {
		return s
	}
	return s + "s"
}
