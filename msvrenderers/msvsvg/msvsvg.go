// msvsvg implements an SVG renderer for laid out sequence diagrams.
package msvsvg

import (
	"context"
	"fmt"

	"cdr.dev/slog"

	"github.com/Hebububu/msv/lib/color"
	"github.com/Hebububu/msv/lib/go2"
	"github.com/Hebububu/msv/lib/log"
	"github.com/Hebububu/msv/lib/svg"
	"github.com/Hebububu/msv/lib/textmeasure"
	"github.com/Hebububu/msv/msvast"
	"github.com/Hebububu/msv/msvlayouts/msvsequence"
	"github.com/Hebububu/msv/msvthemes"
	"github.com/Hebububu/msv/msvthemes/msvthemescatalog"
)

const DEFAULT_THEME = "light"
const DEFAULT_FONT_FAMILY = "Arial, sans-serif"

// labels below this contrast against the participant fill are hard to read
const MIN_LABEL_CONTRAST = 3.

type RenderOpts struct {
	ThemeName      *string
	ThemeOverrides *msvthemes.Overrides
	// Pad is the margin around the content. Defaults to 20.
	Pad *float64
	// FontSize drives text measurement and is written to every text
	// element. Defaults to 14.
	FontSize *int
	// Ruler measures text. Defaults to the fixed character table.
	Ruler textmeasure.Ruler
	// FontFamily is written to every text element verbatim.
	FontFamily string
	// Transparent omits the background rect.
	Transparent *bool
	// Width and Height replace the computed canvas size on their axis.
	// Layout is unaffected.
	Width  *int
	Height *int
}

// LayoutOpts returns the subset of opts the layout pass reads.
func (opts *RenderOpts) LayoutOpts() *msvsequence.Opts {
	if opts == nil {
		return &msvsequence.Opts{}
	}
	return &msvsequence.Opts{
		FontSize: go2.Deref(opts.FontSize, 0),
		Pad:      opts.Pad,
		Ruler:    opts.Ruler,
	}
}

type arrowStyle struct {
	line  svg.LineStyle
	start svg.HeadKind
	end   svg.HeadKind
}

var arrowStyles = map[msvast.ArrowKind]arrowStyle{
	msvast.SolidOpen:           {svg.Solid, svg.HeadNone, svg.HeadNone},
	msvast.SolidClosed:         {svg.Solid, svg.HeadNone, svg.HeadClosed},
	msvast.Cross:               {svg.Solid, svg.HeadNone, svg.HeadCross},
	msvast.Point:               {svg.Solid, svg.HeadNone, svg.HeadOpen},
	msvast.BiDirectionalSolid:  {svg.Solid, svg.HeadClosed, svg.HeadClosed},
	msvast.DottedOpen:          {svg.Dotted, svg.HeadNone, svg.HeadNone},
	msvast.DottedClosed:        {svg.Dotted, svg.HeadNone, svg.HeadClosed},
	msvast.BiDirectionalDotted: {svg.Dotted, svg.HeadClosed, svg.HeadClosed},
}

// ArrowStyle returns the line style and the start and end markers for kind.
func ArrowStyle(kind msvast.ArrowKind) (line svg.LineStyle, start, end svg.HeadKind) {
	s := arrowStyles[kind]
	return s.line, s.start, s.end
}

// Theme resolves the named theme and applies overrides.
func Theme(opts *RenderOpts) (msvthemes.Theme, error) {
	if opts == nil {
		opts = &RenderOpts{}
	}
	name := go2.Deref(opts.ThemeName, DEFAULT_THEME)
	theme, ok := msvthemescatalog.Find(name)
	if !ok {
		return msvthemes.Theme{}, fmt.Errorf("unknown theme %q, available themes:\n%s", name, msvthemescatalog.CLIString())
	}
	return theme.ApplyOverrides(opts.ThemeOverrides)
}

type renderer struct {
	sd    *msvsequence.Diagram
	doc   *svg.Document
	theme msvthemes.Theme
	text  svg.TextStyle
}

// Render lays d out and draws it.
func Render(ctx context.Context, d *msvast.Diagram, opts *RenderOpts) ([]byte, error) {
	return RenderLayout(ctx, msvsequence.Layout(ctx, d, opts.LayoutOpts()), opts)
}

// RenderLayout draws an already laid out diagram. Everything is placed from
// the layout; nothing is measured again.
func RenderLayout(ctx context.Context, sd *msvsequence.Diagram, opts *RenderOpts) ([]byte, error) {
	if opts == nil {
		opts = &RenderOpts{}
	}
	theme, err := Theme(opts)
	if err != nil {
		return nil, err
	}
	if ratio, err := color.ContrastRatio(theme.Colors.Text, theme.Colors.ParticipantFill); err == nil && ratio < MIN_LABEL_CONTRAST {
		log.Warn(ctx, "participant labels have low contrast against their fill",
			slog.F("text", theme.Colors.Text),
			slog.F("fill", theme.Colors.ParticipantFill),
			slog.F("ratio", ratio),
		)
	}

	width, height := sd.Width, sd.Height
	if opts.Width != nil && *opts.Width > 0 {
		width = *opts.Width
	}
	if opts.Height != nil && *opts.Height > 0 {
		height = *opts.Height
	}
	fontFamily := opts.FontFamily
	if fontFamily == "" {
		fontFamily = DEFAULT_FONT_FAMILY
	}

	r := &renderer{
		sd:    sd,
		doc:   svg.NewDocument(width, height, theme.Colors.Background, go2.Deref(opts.Transparent, false)),
		theme: theme,
		text: svg.TextStyle{
			Fill:       theme.Colors.Text,
			FontFamily: fontFamily,
			FontSize:   sd.FontSize,
		},
	}
	for _, p := range sd.Participants {
		r.drawParticipant(p)
	}
	for _, row := range sd.Rows {
		r.drawRow(row)
	}

	log.Debug(ctx, "rendered svg",
		slog.F("theme", theme.Name),
		slog.F("elements", r.doc.Len()),
		slog.F("width", width),
		slog.F("height", height),
	)
	return r.doc.Bytes(), nil
}

// drawParticipant draws the top box and label, the lifeline, then the bottom
// box and label.
func (r *renderer) drawParticipant(p *msvsequence.Participant) {
	h := r.sd.ParticipantHeight
	top, bottom := r.sd.Top, r.sd.BottomBoxY
	c := r.theme.Colors

	r.doc.Add(
		svg.Rect(p.LeftEdge(), top, p.Width, h, c.ParticipantFill, c.ParticipantBorder),
		r.participantLabel(p, top+h/2),
		svg.Line(p.CenterX, top+h, p.CenterX, bottom, c.Line, svg.Solid),
		svg.Rect(p.LeftEdge(), bottom, p.Width, h, c.ParticipantFill, c.ParticipantBorder),
		r.participantLabel(p, bottom+h/2),
	)
}

func (r *renderer) participantLabel(p *msvsequence.Participant, centerY float64) string {
	if len(p.Lines) == 1 {
		// single lines use a fixed baseline nudge
		return svg.Text(p.CenterX, centerY+5, p.Lines[0], r.text, svg.AnchorMiddle)
	}
	return svg.MultilineText(p.CenterX, centerY, p.Lines, r.text, msvsequence.LINE_HEIGHT, svg.AnchorMiddle)
}

func (r *renderer) drawRow(row *msvsequence.Row) {
	line, start, end := ArrowStyle(row.Message.Arrow)
	stroke := r.theme.Colors.Line

	if row.IsSelf() {
		if row.Y+msvsequence.SELF_MESSAGE_HEIGHT > r.sd.BottomBoxY {
			return
		}
		x := row.From.CenterX
		r.doc.Add(
			svg.SelfLoop(x, row.Y, stroke, line),
			svg.Text(x+msvsequence.SELF_LOOP_TEXT_OFFSET, row.Y+msvsequence.SELF_MESSAGE_HEIGHT/2, row.Message.Text, r.text, svg.AnchorStart),
		)
		return
	}

	fx, tx := row.From.CenterX, row.To.CenterX
	r.doc.Add(
		svg.Arrow(fx, row.Y, tx, row.Y, stroke, line, start, end),
		svg.Text((fx+tx)/2, row.Y-msvsequence.MESSAGE_LABEL_OFFSET, row.Message.Text, r.text, svg.AnchorMiddle),
	)
}
