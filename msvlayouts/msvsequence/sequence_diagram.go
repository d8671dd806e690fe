package msvsequence

import (
	"math"

	"golang.org/x/exp/slices"

	"github.com/Hebububu/msv/lib/geo"
	"github.com/Hebububu/msv/lib/go2"
	"github.com/Hebububu/msv/lib/svg"
	"github.com/Hebububu/msv/lib/textmeasure"
	"github.com/Hebububu/msv/msvast"
)

type sequenceDiagram struct {
	d      *msvast.Diagram
	ruler  textmeasure.Ruler
	bounds *geo.Bounds

	out *Diagram
}

func newSequenceDiagram(d *msvast.Diagram, opts *Opts) *sequenceDiagram {
	if opts == nil {
		opts = &Opts{}
	}
	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = DEFAULT_FONT_SIZE
	}
	ruler := opts.Ruler
	if ruler == nil {
		ruler = textmeasure.Table
	}

	return &sequenceDiagram{
		d:      d,
		ruler:  ruler,
		bounds: geo.NewBounds(),
		out: &Diagram{
			FontSize: fontSize,
			Pad:      go2.Deref(opts.Pad, DEFAULT_PAD),
			Ruler:    ruler,
		},
	}
}

func (sd *sequenceDiagram) layout() {
	sd.sizeParticipants()
	sd.spaceGaps()
	sd.placeParticipants()
	sd.placeRows()
	sd.measure()
}

func (sd *sequenceDiagram) textWidth(s string) float64 {
	return sd.ruler.Width(s, sd.out.FontSize)
}

// sizeParticipants gives every participant the same box: the largest box
// any label needs, floored at the minimum size.
func (sd *sequenceDiagram) sizeParticipants() {
	width := MIN_PARTICIPANT_WIDTH
	height := MIN_PARTICIPANT_HEIGHT
	for _, p := range sd.d.Participants {
		lines := textmeasure.SplitLines(p.Label())
		labelWidth := textmeasure.MaxWidth(sd.ruler, lines, sd.out.FontSize)
		sd.out.Participants = append(sd.out.Participants, &Participant{
			Actor:      p.Actor,
			Lines:      lines,
			LabelWidth: labelWidth,
		})
		width = math.Max(width, labelWidth+PARTICIPANT_PADDING)
		height = math.Max(height, textmeasure.BoxHeight(len(lines), LINE_HEIGHT, PARTICIPANT_VERTICAL_PADDING))
	}
	for _, p := range sd.out.Participants {
		p.Width = width
	}
	sd.out.ParticipantHeight = height
}

func (sd *sequenceDiagram) index(actor string) int {
	return slices.IndexFunc(sd.out.Participants, func(p *Participant) bool {
		return p.Actor == actor
	})
}

// spaceGaps widens the gaps between participants so every message label
// fits over the gaps its arrow crosses. Growth is cumulative: a gap widened
// for one message is never narrowed for a later, shorter one.
func (sd *sequenceDiagram) spaceGaps() {
	ps := sd.out.Participants
	if len(ps) <= 1 {
		return
	}

	gaps := make([]float64, len(ps)-1)
	for i := range gaps {
		gaps[i] = ps[i].Width/2 + MIN_PARTICIPANT_SPACING + ps[i+1].Width/2
	}

	for _, m := range sd.d.Messages() {
		if m.IsSelf() {
			continue
		}
		from, to := sd.index(m.From), sd.index(m.To)
		if from == -1 || to == -1 {
			continue
		}
		lo, hi := go2.Min(from, to), go2.Max(from, to)

		required := sd.textWidth(m.Text) + MESSAGE_TEXT_MARGIN
		span := go2.Fold(gaps[lo:hi], 0., func(acc, g float64) float64 { return acc + g })
		if required <= span {
			continue
		}
		extra := (required - span) / float64(hi-lo)
		for i := lo; i < hi; i++ {
			gaps[i] += extra
		}
	}
	sd.out.Gaps = gaps
}

func (sd *sequenceDiagram) placeParticipants() {
	sd.out.Top = sd.out.Pad

	ps := sd.out.Participants
	first := MIN_PARTICIPANT_WIDTH
	if len(ps) > 0 {
		first = ps[0].Width
	}
	x := sd.out.Pad + first/2
	for i, p := range ps {
		p.CenterX = x
		if i < len(sd.out.Gaps) {
			x += sd.out.Gaps[i]
		}
	}
}

// placeRows walks the messages in order with a single y cursor. Regular
// messages advance it by MESSAGE_SPACING and self messages additionally by
// SELF_MESSAGE_HEIGHT. The bottom boxes go wherever the cursor ends.
func (sd *sequenceDiagram) placeRows() {
	y := sd.out.Top + sd.out.ParticipantHeight + MESSAGE_SPACING
	for _, m := range sd.d.Messages() {
		from := sd.out.Participant(m.From)
		to := sd.out.Participant(m.To)
		if from == nil || to == nil {
			sd.out.Skipped = append(sd.out.Skipped, m)
			continue
		}
		row := &Row{
			Message:   m,
			From:      from,
			To:        to,
			Y:         y,
			TextWidth: sd.textWidth(m.Text),
		}
		sd.out.Rows = append(sd.out.Rows, row)
		if row.IsSelf() {
			y += MESSAGE_SPACING + SELF_MESSAGE_HEIGHT
		} else {
			y += MESSAGE_SPACING
		}
	}
	sd.out.BottomBoxY = y
}

// measure includes everything the renderer draws in the bounds and derives
// the canvas size.
func (sd *sequenceDiagram) measure() {
	h := sd.out.ParticipantHeight
	for _, p := range sd.out.Participants {
		sd.bounds.IncludeRect(p.LeftEdge(), sd.out.Top, p.Width, h)
		sd.bounds.IncludeText(p.CenterX, sd.out.Top+h, p.LabelWidth, svg.AnchorMiddle)
	}

	for _, r := range sd.out.Rows {
		if r.IsSelf() {
			x := r.From.CenterX
			sd.bounds.IncludePoint(x+SELF_LOOP_WIDTH, r.Y+SELF_MESSAGE_HEIGHT)
			sd.bounds.IncludeText(x+SELF_LOOP_TEXT_OFFSET, r.Y+SELF_MESSAGE_HEIGHT, r.TextWidth, svg.AnchorStart)
			continue
		}
		fx, tx := r.From.CenterX, r.To.CenterX
		sd.bounds.IncludePoint(math.Max(fx, tx), r.Y)
		sd.bounds.IncludeText((fx+tx)/2, r.Y, r.TextWidth, svg.AnchorMiddle)
	}

	for _, p := range sd.out.Participants {
		sd.bounds.IncludeRect(p.LeftEdge(), sd.out.BottomBoxY, p.Width, h)
		sd.bounds.IncludeText(p.CenterX, sd.out.BottomBoxY+h, p.LabelWidth, svg.AnchorMiddle)
	}

	sd.out.Width, sd.out.Height = sd.bounds.Size(sd.out.Pad)
}
