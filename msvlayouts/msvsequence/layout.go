package msvsequence

import (
	"context"

	"cdr.dev/slog"

	"github.com/Hebububu/msv/lib/log"
	"github.com/Hebububu/msv/lib/textmeasure"
	"github.com/Hebububu/msv/msvast"
)

type Opts struct {
	// FontSize drives text width estimates. Defaults to DEFAULT_FONT_SIZE.
	FontSize int
	// Pad is the margin around the content. Defaults to DEFAULT_PAD.
	Pad *float64
	// Ruler measures text. Defaults to textmeasure.Table.
	Ruler textmeasure.Ruler
}

// Diagram is a laid out sequence diagram. It is computed once per render
// and only read afterwards.
type Diagram struct {
	Participants []*Participant `json:"participants"`
	// Gaps[i] is the distance between the centers of participants i and i+1.
	Gaps []float64 `json:"gaps"`
	// ParticipantHeight is shared by every participant box.
	ParticipantHeight float64 `json:"participantHeight"`
	// Top is the y of the top row of participant boxes.
	Top float64 `json:"top"`
	// BottomBoxY is the y of the bottom row of participant boxes and the
	// end of every lifeline.
	BottomBoxY float64 `json:"bottomBoxY"`

	// Rows are the drawable messages in statement order.
	Rows []*Row `json:"rows"`
	// Skipped holds messages that name an unknown participant. They take
	// no space and are never drawn.
	Skipped []*msvast.Message `json:"skipped,omitempty"`

	FontSize int     `json:"fontSize"`
	Pad      float64 `json:"pad"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`

	Ruler textmeasure.Ruler `json:"-"`
}

type Participant struct {
	Actor string   `json:"actor"`
	Lines []string `json:"lines"`
	// LabelWidth is the width of the widest line.
	LabelWidth float64 `json:"labelWidth"`
	CenterX    float64 `json:"centerX"`
	Width      float64 `json:"width"`
}

func (p *Participant) LeftEdge() float64 {
	return p.CenterX - p.Width/2
}

// Row is a message placed at a vertical position.
type Row struct {
	Message *msvast.Message `json:"message"`
	From    *Participant    `json:"-"`
	To      *Participant    `json:"-"`
	Y       float64         `json:"y"`
	// TextWidth is the measured width of the message label.
	TextWidth float64 `json:"textWidth"`
}

func (r *Row) IsSelf() bool {
	return r.From == r.To
}

// Participant returns the layout of actor, or nil.
func (d *Diagram) Participant(actor string) *Participant {
	for _, p := range d.Participants {
		if p.Actor == actor {
			return p
		}
	}
	return nil
}

// Layout sizes, spaces and places the participants of d and assigns each
// message a row. It measures everything a renderer will draw so the canvas
// fits the content.
//
// Messages naming a participant that is not in d are skipped silently.
func Layout(ctx context.Context, d *msvast.Diagram, opts *Opts) *Diagram {
	sd := newSequenceDiagram(d, opts)
	sd.layout()

	for _, m := range sd.out.Skipped {
		log.Debug(ctx, "skipping message with unknown participant",
			slog.F("from", m.From),
			slog.F("to", m.To),
			slog.F("range", m.Range.String()),
		)
	}
	log.Debug(ctx, "laid out sequence diagram",
		slog.F("participants", len(sd.out.Participants)),
		slog.F("rows", len(sd.out.Rows)),
		slog.F("width", sd.out.Width),
		slog.F("height", sd.out.Height),
	)
	return sd.out
}
