package msvparser

import (
	"fmt"
	"strings"

	"github.com/Hebububu/msv/msvast"
)

type arrowToken struct {
	token string
	kind  msvast.ArrowKind
	// unsupported arrows are recognized so they are not mistaken for a
	// shorter arrow, but the message is dropped.
	unsupported bool
}

// arrowTokens is ordered longest first so the longest arrow wins at any
// position.
var arrowTokens = []arrowToken{
	{token: "<<-->>", kind: msvast.BiDirectionalDotted},
	{token: "<<->>", kind: msvast.BiDirectionalSolid},
	{token: "-->>", kind: msvast.DottedClosed},
	{token: "-->", kind: msvast.DottedOpen},
	{token: "--x", unsupported: true},
	{token: "--)", unsupported: true},
	{token: "->>", kind: msvast.SolidClosed},
	{token: "->", kind: msvast.SolidOpen},
	{token: "-x", kind: msvast.Cross},
	{token: "-)", kind: msvast.Point},
}

// parseMessage parses `From<arrow>To: text`. The earliest arrow in the line
// splits the endpoints. A line with an arrow that still cannot be used
// returns a reason.
func parseMessage(text string) (m *msvast.Message, reason string) {
	head, label := text, ""
	if i := strings.IndexByte(text, ':'); i != -1 {
		head = text[:i]
		label = strings.TrimSpace(text[i+1:])
	}

	for i := 0; i < len(head); i++ {
		for _, at := range arrowTokens {
			if !strings.HasPrefix(head[i:], at.token) {
				continue
			}
			if at.unsupported {
				return nil, fmt.Sprintf("unsupported arrow %q", at.token)
			}
			from := strings.TrimSpace(head[:i])
			to := strings.TrimSpace(head[i+len(at.token):])
			to = strings.TrimSpace(strings.TrimLeft(to, "+-"))
			if from == "" || to == "" {
				return nil, "message is missing an endpoint"
			}
			return &msvast.Message{
				From:  from,
				To:    to,
				Text:  label,
				Arrow: at.kind,
			}, ""
		}
	}
	return nil, "unrecognized statement"
}
