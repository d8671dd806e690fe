package msvlib

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Hebububu/msv/msvast"
)

// Issue is a problem rendering tolerates but a strict caller may not.
type Issue struct {
	Range   msvast.Range `json:"range"`
	Message string       `json:"message"`
}

func (i *Issue) Error() string {
	return fmt.Sprintf("%v: %s", i.Range, i.Message)
}

// Validate reports what rendering tolerates silently: lines the parser
// ignored and messages that name an unknown participant.
func Validate(d *msvast.Diagram) []*Issue {
	var issues []*Issue
	for _, l := range d.Ignored {
		issues = append(issues, &Issue{
			Range:   l.Range,
			Message: fmt.Sprintf("ignored %q: %s", l.Text, l.Reason),
		})
	}
	for _, m := range d.Messages() {
		var unknown []string
		if d.Participant(m.From) == nil {
			unknown = append(unknown, fmt.Sprintf("%q", m.From))
		}
		if m.To != m.From && d.Participant(m.To) == nil {
			unknown = append(unknown, fmt.Sprintf("%q", m.To))
		}
		if len(unknown) == 0 {
			continue
		}
		noun := "participant"
		if len(unknown) > 1 {
			noun += "s"
		}
		issues = append(issues, &Issue{
			Range:   m.Range,
			Message: fmt.Sprintf("message references unknown %s %s and will not be drawn", noun, strings.Join(unknown, " and ")),
		})
	}
	return issues
}

// IssuesError joins issues into one error, or returns nil for none.
func IssuesError(issues []*Issue) error {
	if len(issues) == 0 {
		return nil
	}
	var sb strings.Builder
	for i, is := range issues {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(is.Error())
	}
	return errors.New(sb.String())
}
