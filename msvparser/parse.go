// Package msvparser reads the Mermaid sequence diagram subset into an
// msvast.Diagram.
//
// Parsing is lenient. Lines that are not a participant declaration or a
// message (notes, loops, activations, autonumber and so on) are ignored
// rather than rejected. Only a missing or unknown header is an error.
package msvparser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"oss.terrastruct.com/xdefer"

	"github.com/Hebububu/msv/msvast"
)

type ParseError struct {
	Errors []msvast.Error `json:"errs"`
}

func (pe *ParseError) Empty() bool {
	if pe == nil {
		return true
	}
	return len(pe.Errors) == 0
}

func (pe *ParseError) Error() string {
	var sb strings.Builder
	for i, err := range pe.Errors {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

type parser struct {
	path string
	err  *ParseError

	d *msvast.Diagram
}

// Parse parses a diagram from r. path is only used in error messages.
func Parse(path string, r io.Reader) (_ *msvast.Diagram, err error) {
	defer xdefer.Errorf(&err, "failed to parse %s", displayPath(path))

	p := &parser{
		path: path,
		err:  &ParseError{},
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := -1
	for sc.Scan() {
		line++
		text := sc.Text()
		if line == 0 {
			text = strings.TrimPrefix(text, "\uFEFF")
		}
		p.parseLine(line, text)
		if !p.err.Empty() {
			return nil, p.err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if p.d == nil {
		p.errorf(msvast.Position{Line: max(line, 0)}, msvast.Position{Line: max(line, 0)}, "empty diagram: expected a diagram type header such as sequenceDiagram")
		return nil, p.err
	}
	return p.d, nil
}

func displayPath(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (p *parser) errorf(start, end msvast.Position, f string, v ...interface{}) {
	r := msvast.Range{
		Path:  p.path,
		Start: start,
		End:   end,
	}
	f = "%v: " + f
	v = append([]interface{}{r}, v...)
	p.err.Errors = append(p.err.Errors, msvast.Error{
		Range:   r,
		Message: fmt.Sprintf(f, v...),
	})
}

func (p *parser) rangeOf(line int, raw, trimmed string) msvast.Range {
	col := utf8.RuneCountInString(raw[:strings.Index(raw, trimmed)])
	return msvast.Range{
		Path:  p.path,
		Start: msvast.Position{Line: line, Column: col},
		End:   msvast.Position{Line: line, Column: col + utf8.RuneCountInString(trimmed)},
	}
}

func (p *parser) parseLine(line int, raw string) {
	text := strings.TrimSpace(raw)
	if text == "" || strings.HasPrefix(text, "%%") {
		return
	}
	r := p.rangeOf(line, raw, text)

	if p.d == nil {
		p.parseHeader(r, text)
		return
	}
	if !p.d.IsSequence() {
		return
	}

	keyword, rest := splitKeyword(text)
	lower := strings.TrimSuffix(strings.ToLower(keyword), ":")
	switch {
	case keyword == "participant", keyword == "actor":
		p.declare(r, rest, keyword == "actor")
		return
	case ignoredKeywords[lower]:
		p.ignore(r, text, lower+" is not supported")
		return
	}
	m, reason := parseMessage(text)
	if m == nil {
		p.ignore(r, text, reason)
		return
	}
	m.Range = r
	p.ensureParticipant(r, m.From)
	p.ensureParticipant(r, m.To)
	p.d.Statements = append(p.d.Statements, m)
}

func (p *parser) ignore(r msvast.Range, text, reason string) {
	p.d.Ignored = append(p.d.Ignored, &msvast.IgnoredLine{
		Range:  r,
		Text:   text,
		Reason: reason,
	})
}

func (p *parser) parseHeader(r msvast.Range, text string) {
	keyword, _ := splitKeyword(text)
	typ, ok := msvast.LookupDiagramType(keyword)
	if !ok {
		p.errorf(r.Start, r.End, "unknown diagram type %q", keyword)
		return
	}
	p.d = &msvast.Diagram{Type: typ}
}

// ignoredKeywords open statements that are not drawn.
var ignoredKeywords = map[string]bool{
	"note":       true,
	"loop":       true,
	"alt":        true,
	"else":       true,
	"opt":        true,
	"par":        true,
	"and":        true,
	"critical":   true,
	"option":     true,
	"break":      true,
	"rect":       true,
	"box":        true,
	"end":        true,
	"activate":   true,
	"deactivate": true,
	"autonumber": true,
	"title":      true,
	"link":       true,
	"links":      true,
	"create":     true,
	"destroy":    true,
	"acctitle":   true,
	"accdescr":   true,
}

func splitKeyword(text string) (keyword, rest string) {
	i := strings.IndexAny(text, " \t")
	if i == -1 {
		return text, ""
	}
	return text[:i], strings.TrimSpace(text[i+1:])
}

// declare handles `participant X` and `participant X as Alias`. Declaring
// an existing participant again keeps its position and updates the alias.
func (p *parser) declare(r msvast.Range, rest string, isActor bool) {
	actor, alias := rest, ""
	if i := strings.Index(rest, " as "); i != -1 {
		actor = strings.TrimSpace(rest[:i])
		alias = strings.TrimSpace(rest[i+len(" as "):])
	}
	if actor == "" {
		return
	}

	if existing := p.d.Participant(actor); existing != nil {
		if alias != "" {
			existing.Alias = alias
		}
		existing.IsActor = existing.IsActor || isActor
		return
	}
	p.d.Participants = append(p.d.Participants, &msvast.Participant{
		Actor:   actor,
		Alias:   alias,
		IsActor: isActor,
		Range:   r,
	})
}

func (p *parser) ensureParticipant(r msvast.Range, actor string) {
	if p.d.Participant(actor) != nil {
		return
	}
	p.d.Participants = append(p.d.Participants, &msvast.Participant{
		Actor: actor,
		Range: r,
	})
}
