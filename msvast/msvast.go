// Package msvast holds the syntax tree of a parsed diagram.
//
// A Diagram carries its declared type. Only sequence diagrams have a body:
// an ordered participant list and an ordered statement list. Statement order
// is the only ordering guarantee and drives vertical placement.
package msvast

import (
	"fmt"
	"strings"
)

// DiagramType is the header keyword that opened the diagram.
type DiagramType string

const (
	Sequence DiagramType = "sequenceDiagram"

	Flowchart     DiagramType = "flowchart"
	Graph         DiagramType = "graph"
	Class         DiagramType = "classDiagram"
	State         DiagramType = "stateDiagram"
	StateV2       DiagramType = "stateDiagram-v2"
	ER            DiagramType = "erDiagram"
	Gantt         DiagramType = "gantt"
	Pie           DiagramType = "pie"
	Journey       DiagramType = "journey"
	GitGraph      DiagramType = "gitGraph"
	Mindmap       DiagramType = "mindmap"
	Timeline      DiagramType = "timeline"
	QuadrantChart DiagramType = "quadrantChart"
)

// DiagramTypes lists every recognized header keyword.
var DiagramTypes = []DiagramType{
	Sequence,
	Flowchart,
	Graph,
	Class,
	State,
	StateV2,
	ER,
	Gantt,
	Pie,
	Journey,
	GitGraph,
	Mindmap,
	Timeline,
	QuadrantChart,
}

func LookupDiagramType(keyword string) (DiagramType, bool) {
	for _, t := range DiagramTypes {
		if string(t) == keyword {
			return t, true
		}
	}
	return "", false
}

type Diagram struct {
	Type DiagramType `json:"type"`

	Participants []*Participant `json:"participants"`
	Statements   []Statement    `json:"statements"`

	// Ignored lists body lines that were skipped while parsing.
	Ignored []*IgnoredLine `json:"ignored,omitempty"`
}

type IgnoredLine struct {
	Range  Range  `json:"range"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

func (d *Diagram) IsSequence() bool {
	return d.Type == Sequence
}

// Participant returns the participant whose actor is actor, or nil.
func (d *Diagram) Participant(actor string) *Participant {
	for _, p := range d.Participants {
		if p.Actor == actor {
			return p
		}
	}
	return nil
}

// Messages returns the message statements in order.
func (d *Diagram) Messages() []*Message {
	var msgs []*Message
	for _, s := range d.Statements {
		if m, ok := s.(*Message); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}

type Participant struct {
	Actor string `json:"actor"`
	Alias string `json:"alias,omitempty"`
	// IsActor is set when declared with the actor keyword. It is drawn the
	// same as any participant.
	IsActor bool `json:"isActor,omitempty"`

	Range Range `json:"range"`
}

// Label is the display text: the alias when present, else the actor.
func (p *Participant) Label() string {
	if p.Alias != "" {
		return p.Alias
	}
	return p.Actor
}

type Statement interface {
	GetRange() Range
	statement()
}

var _ Statement = &Message{}

type Message struct {
	From  string    `json:"from"`
	To    string    `json:"to"`
	Text  string    `json:"text"`
	Arrow ArrowKind `json:"arrow"`

	Range Range `json:"range"`
}

func (m *Message) GetRange() Range { return m.Range }
func (m *Message) statement()      {}

func (m *Message) IsSelf() bool {
	return m.From == m.To
}

func (m *Message) String() string {
	return fmt.Sprintf("%s%s%s: %s", m.From, m.Arrow.Token(), m.To, m.Text)
}

// Range is a span of source text. Lines and columns are zero based.
type Range struct {
	Path  string   `json:"path,omitempty"`
	Start Position `json:"start"`
	End   Position `json:"end"`
}

var _ fmt.Stringer = Range{}

func (r Range) String() string {
	var s strings.Builder
	if r.Path != "" {
		s.WriteString(r.Path)
		s.WriteByte(':')
	}
	s.WriteString(r.Start.String())
	return s.String()
}

type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// String returns a one based line:column suitable for error messages.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// Error is an error positioned in the source.
type Error struct {
	Range   Range  `json:"range"`
	Message string `json:"errmsg"`
}

func (e Error) Error() string {
	return e.Message
}
