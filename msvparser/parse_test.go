package msvparser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hebububu/msv/msvast"
	"github.com/Hebububu/msv/msvparser"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		text   string
		expErr string
		assert func(t testing.TB, d *msvast.Diagram)
	}{
		{
			name: "basic",
			text: `sequenceDiagram
    Alice->>Bob: Hello Bob!
    Bob-->>Alice: Hello Alice!
`,
			assert: func(t testing.TB, d *msvast.Diagram) {
				assert.Equal(t, msvast.Sequence, d.Type)
				assert.Equal(t, []string{"Alice", "Bob"}, actors(d))
				msgs := d.Messages()
				require.Len(t, msgs, 2)
				assert.Equal(t, &msvast.Message{
					From:  "Alice",
					To:    "Bob",
					Text:  "Hello Bob!",
					Arrow: msvast.SolidClosed,
					Range: msgs[0].Range,
				}, msgs[0])
				assert.Equal(t, msvast.DottedClosed, msgs[1].Arrow)
				assert.Equal(t, 1, msgs[0].Range.Start.Line)
				assert.Equal(t, 4, msgs[0].Range.Start.Column)
			},
		},
		{
			name: "all_arrows",
			text: `sequenceDiagram
A->B: solid open
A->>B: solid closed
A-xB: cross
A-)B: point
A<<->>B: bidi solid
A-->B: dotted open
A-->>B: dotted closed
A<<-->>B: bidi dotted
`,
			assert: func(t testing.TB, d *msvast.Diagram) {
				var kinds []msvast.ArrowKind
				for _, m := range d.Messages() {
					assert.Equal(t, "A", m.From)
					assert.Equal(t, "B", m.To)
					kinds = append(kinds, m.Arrow)
				}
				assert.Equal(t, msvast.ArrowKinds, kinds)
			},
		},
		{
			name: "declarations",
			text: `sequenceDiagram
    participant B as Bob<br/>the builder
    actor A as Alice
    participant C
    A->>C: hi
    participant B as Robert
`,
			assert: func(t testing.TB, d *msvast.Diagram) {
				assert.Equal(t, []string{"B", "A", "C"}, actors(d))
				assert.Equal(t, "Robert", d.Participant("B").Label())
				assert.Equal(t, "Alice", d.Participant("A").Label())
				assert.True(t, d.Participant("A").IsActor)
				assert.Equal(t, "C", d.Participant("C").Label())
			},
		},
		{
			name: "auto_created_in_order",
			text: `sequenceDiagram
    participant Z
    X->>Y: one
    Y->>W: two
`,
			assert: func(t testing.TB, d *msvast.Diagram) {
				assert.Equal(t, []string{"Z", "X", "Y", "W"}, actors(d))
			},
		},
		{
			name: "ignored_lines",
			text: `%% leading comment

sequenceDiagram
    autonumber
    Note right of A: a->b is not a message
    loop Every-x minute
        A->>+B: ping
        B-->>-A: pong
    end
    activate A
    A--xB: dotted cross is unsupported
    A--)B: dotted async is unsupported
    just some words
    %% A->>B: commented out
`,
			assert: func(t testing.TB, d *msvast.Diagram) {
				assert.Equal(t, []string{"A", "B"}, actors(d))
				msgs := d.Messages()
				require.Len(t, msgs, 2)
				assert.Equal(t, "B", msgs[0].To)
				assert.Equal(t, "A", msgs[1].To)
				assert.Equal(t, "pong", msgs[1].Text)

				require.Len(t, d.Ignored, 8)
				assert.Equal(t, "autonumber is not supported", d.Ignored[0].Reason)
				assert.Equal(t, "note is not supported", d.Ignored[1].Reason)
				assert.Equal(t, `unsupported arrow "--x"`, d.Ignored[5].Reason)
				assert.Equal(t, "unrecognized statement", d.Ignored[7].Reason)
				assert.Equal(t, "just some words", d.Ignored[7].Text)
				assert.Equal(t, 12, d.Ignored[7].Range.Start.Line)
			},
		},
		{
			name: "missing_text",
			text: `sequenceDiagram
A->>B
A->>A:   
`,
			assert: func(t testing.TB, d *msvast.Diagram) {
				msgs := d.Messages()
				require.Len(t, msgs, 2)
				assert.Equal(t, "", msgs[0].Text)
				assert.True(t, msgs[1].IsSelf())
			},
		},
		{
			name: "text_with_colons_and_specials",
			text: `sequenceDiagram
A->>B: time: 12:30 & <b>"ok"</b>
`,
			assert: func(t testing.TB, d *msvast.Diagram) {
				assert.Equal(t, `time: 12:30 & <b>"ok"</b>`, d.Messages()[0].Text)
			},
		},
		{
			name: "spaces_around_arrow",
			text: `sequenceDiagram
web server ->> db : query
`,
			assert: func(t testing.TB, d *msvast.Diagram) {
				assert.Equal(t, []string{"web server", "db"}, actors(d))
				assert.Equal(t, "query", d.Messages()[0].Text)
			},
		},
		{
			name: "bom",
			text: "\uFEFFsequenceDiagram\nA->>B: x\n",
			assert: func(t testing.TB, d *msvast.Diagram) {
				assert.Len(t, d.Messages(), 1)
			},
		},
		{
			name: "other_diagram",
			text: `flowchart TD
    A-->B
`,
			assert: func(t testing.TB, d *msvast.Diagram) {
				assert.Equal(t, msvast.Flowchart, d.Type)
				assert.False(t, d.IsSequence())
				assert.Empty(t, d.Participants)
				assert.Empty(t, d.Statements)
			},
		},
		{
			name:   "empty",
			text:   "",
			expErr: `x.mmd:1:1: empty diagram: expected a diagram type header such as sequenceDiagram`,
		},
		{
			name:   "only_comments",
			text:   "%% nothing\n\n",
			expErr: `x.mmd:2:1: empty diagram: expected a diagram type header such as sequenceDiagram`,
		},
		{
			name:   "unknown_header",
			text:   "\n  sequence\nA->>B: x\n",
			expErr: `x.mmd:2:3: unknown diagram type "sequence"`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d, err := msvparser.Parse("x.mmd", strings.NewReader(tc.text))
			if tc.expErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to parse x.mmd")
				var pe *msvparser.ParseError
				require.True(t, errors.As(err, &pe))
				assert.Equal(t, tc.expErr, pe.Error())
				return
			}
			require.NoError(t, err)
			tc.assert(t, d)
		})
	}
}

func actors(d *msvast.Diagram) []string {
	var out []string
	for _, p := range d.Participants {
		out = append(out, p.Actor)
	}
	return out
}
