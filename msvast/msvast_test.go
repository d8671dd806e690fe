package msvast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"oss.terrastruct.com/xjson"

	"github.com/Hebububu/msv/msvast"
)

func TestDiagram(t *testing.T) {
	t.Parallel()

	d := &msvast.Diagram{
		Type: msvast.Sequence,
		Participants: []*msvast.Participant{
			{Actor: "A", Alias: "Alice"},
			{Actor: "B"},
		},
		Statements: []msvast.Statement{
			&msvast.Message{From: "A", To: "B", Text: "hi", Arrow: msvast.SolidClosed},
			&msvast.Message{From: "B", To: "B", Text: "think", Arrow: msvast.DottedOpen},
		},
	}

	assert.True(t, d.IsSequence())
	assert.Equal(t, "Alice", d.Participant("A").Label())
	assert.Equal(t, "B", d.Participant("B").Label())
	assert.Nil(t, d.Participant("Alice"))

	msgs := d.Messages()
	assert.Len(t, msgs, 2)
	assert.False(t, msgs[0].IsSelf())
	assert.True(t, msgs[1].IsSelf())
	assert.Equal(t, "A->>B: hi", msgs[0].String())
}

func TestArrowKind(t *testing.T) {
	t.Parallel()

	assert.Len(t, msvast.ArrowKinds, 8)
	seen := map[string]bool{}
	for _, k := range msvast.ArrowKinds {
		assert.NotEmpty(t, k.Token())
		assert.False(t, seen[k.Token()], k.Token())
		seen[k.Token()] = true

		b, err := k.MarshalText()
		assert.NoError(t, err)
		var got msvast.ArrowKind
		assert.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, k, got)
	}

	assert.Equal(t, "ArrowKind(42)", msvast.ArrowKind(42).String())
	_, err := msvast.ArrowKind(42).MarshalText()
	assert.Error(t, err)

	m := &msvast.Message{From: "a", To: "b", Arrow: msvast.BiDirectionalDotted}
	assert.Contains(t, string(xjson.Marshal(m)), `"bidirectional_dotted"`)
}

func TestLookupDiagramType(t *testing.T) {
	t.Parallel()

	typ, ok := msvast.LookupDiagramType("stateDiagram-v2")
	assert.True(t, ok)
	assert.Equal(t, msvast.StateV2, typ)

	_, ok = msvast.LookupDiagramType("sequencediagram")
	assert.False(t, ok)
}

func TestRange(t *testing.T) {
	t.Parallel()

	r := msvast.Range{Path: "x.mmd", Start: msvast.Position{Line: 2, Column: 4}}
	assert.Equal(t, "x.mmd:3:5", r.String())
	assert.Equal(t, "3:5", msvast.Range{Start: r.Start}.String())
}
