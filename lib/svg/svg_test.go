package svg_test

import (
	"math"
	math_rand "math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"oss.terrastruct.com/diff"
	"oss.terrastruct.com/xrand"

	"github.com/Hebububu/msv/lib/geo"
	"github.com/Hebububu/msv/lib/svg"
)

const stroke = "#333333"

func assertString(t *testing.T, exp, got string) {
	t.Helper()
	ds, err := diff.Strings(exp, got)
	if err != nil {
		t.Fatal(err)
	}
	if ds != "" {
		t.Fatalf("exp != got:\n%s", ds)
	}
}

func TestShapes(t *testing.T) {
	t.Parallel()

	style := svg.TextStyle{Fill: stroke, FontFamily: "Arial, sans-serif", FontSize: 14}

	testCases := []struct {
		name string
		got  string
		exp  string
	}{
		{
			name: "solid_line",
			got:  svg.Line(0, 10, 100, 10, stroke, svg.Solid),
			exp:  `<line x1="0" y1="10" x2="100" y2="10" stroke="#333333" stroke-width="1"/>`,
		},
		{
			name: "dotted_line",
			got:  svg.Line(0, 10, 100.5, 10, stroke, svg.Dotted),
			exp:  `<line x1="0" y1="10" x2="100.5" y2="10" stroke="#333333" stroke-width="1" stroke-dasharray="5,5"/>`,
		},
		{
			name: "closed_head",
			got:  svg.Arrowhead(100, 50, 0, stroke, svg.HeadClosed),
			exp:  `<polygon points="100,50 91.2242,54.7943 91.2242,45.2057" fill="#333333"/>`,
		},
		{
			name: "open_head",
			got:  svg.Arrowhead(100, 50, 0, stroke, svg.HeadOpen),
			exp: `<line x1="91.2242" y1="54.7943" x2="100" y2="50" stroke="#333333" stroke-width="1"/>
<line x1="91.2242" y1="45.2057" x2="100" y2="50" stroke="#333333" stroke-width="1"/>`,
		},
		{
			name: "cross_head",
			got:  svg.Arrowhead(10, 10, 1.234, stroke, svg.HeadCross),
			exp: `<line x1="4" y1="4" x2="16" y2="16" stroke="#333333" stroke-width="1"/>
<line x1="4" y1="16" x2="16" y2="4" stroke="#333333" stroke-width="1"/>`,
		},
		{
			name: "no_head",
			got:  svg.Arrowhead(10, 10, 0, stroke, svg.HeadNone),
			exp:  ``,
		},
		{
			name: "self_loop",
			got:  svg.SelfLoop(100, 50, stroke, svg.Solid),
			exp: `<path d="M 100 50 Q 140 50 140 65 Q 140 80 100 80" fill="none" stroke="#333333" stroke-width="1"/>
<polygon points="100,80 108,75 108,85" fill="#333333"/>`,
		},
		{
			name: "dotted_self_loop",
			got:  svg.SelfLoop(0, 0, stroke, svg.Dotted),
			exp: `<path d="M 0 0 Q 40 0 40 15 Q 40 30 0 30" fill="none" stroke="#333333" stroke-width="1" stroke-dasharray="5,5"/>
<polygon points="0,30 8,25 8,35" fill="#333333"/>`,
		},
		{
			name: "rect",
			got:  svg.Rect(10, 20, 80, 40, "#ecf0f1", stroke),
			exp:  `<rect x="10" y="20" width="80" height="40" rx="4" fill="#ecf0f1" stroke="#333333" stroke-width="1"/>`,
		},
		{
			name: "text_escaped",
			got:  svg.Text(50, 30, `a<b & "c" 'd'>`, style, svg.AnchorMiddle),
			exp:  `<text x="50" y="30" fill="#333333" font-size="14" font-family="Arial, sans-serif" text-anchor="middle">a&lt;b &amp; &quot;c&quot; &apos;d&apos;&gt;</text>`,
		},
		{
			name: "empty_text",
			got:  svg.Text(1, 2, "", style, svg.AnchorStart),
			exp:  `<text x="1" y="2" fill="#333333" font-size="14" font-family="Arial, sans-serif" text-anchor="start"></text>`,
		},
		{
			name: "multiline_text",
			got:  svg.MultilineText(50, 40, []string{"a", "b"}, style, 18, svg.AnchorMiddle),
			exp: `<text x="50" y="35.9" fill="#333333" font-size="14" font-family="Arial, sans-serif" text-anchor="middle">a</text>
<text x="50" y="53.9" fill="#333333" font-size="14" font-family="Arial, sans-serif" text-anchor="middle">b</text>`,
		},
		{
			name: "multiline_empty",
			got:  svg.MultilineText(50, 40, nil, style, 18, svg.AnchorMiddle),
			exp:  ``,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assertString(t, tc.exp, tc.got)
		})
	}
}

func TestArrow(t *testing.T) {
	t.Parallel()

	t.Run("plain", func(t *testing.T) {
		t.Parallel()
		got := svg.Arrow(10, 50, 100, 50, stroke, svg.Solid, svg.HeadNone, svg.HeadNone)
		assertString(t, svg.Line(10, 50, 100, 50, stroke, svg.Solid), got)
	})

	t.Run("end_only", func(t *testing.T) {
		t.Parallel()
		got := svg.Arrow(10, 50, 100, 50, stroke, svg.Solid, svg.HeadNone, svg.HeadClosed)
		exp := svg.Line(10, 50, 100, 50, stroke, svg.Solid) + "\n" +
			`<polygon points="100,50 91.2242,54.7943 91.2242,45.2057" fill="#333333"/>`
		assertString(t, exp, got)
	})

	t.Run("both_ends", func(t *testing.T) {
		t.Parallel()
		got := svg.Arrow(10, 50, 100, 50, stroke, svg.Dotted, svg.HeadClosed, svg.HeadClosed)
		exp := svg.Line(10, 50, 100, 50, stroke, svg.Dotted) + "\n" +
			`<polygon points="100,50 91.2242,54.7943 91.2242,45.2057" fill="#333333"/>` + "\n" +
			`<polygon points="10,50 18.7758,45.2057 18.7758,54.7943" fill="#333333"/>`
		assertString(t, exp, got)
	})

	t.Run("leftward", func(t *testing.T) {
		t.Parallel()
		got := svg.Arrow(100, 50, 10, 50, stroke, svg.Solid, svg.HeadNone, svg.HeadClosed)
		assert.Contains(t, got, `<polygon points="10,50 18.7758,45.2057 18.7758,54.7943" fill="#333333"/>`)
	})
}

func TestEscapeText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "&amp;&lt;&gt;&quot;&apos;", svg.EscapeText(`&<>"'`))
	assert.Equal(t, "&amp;amp;", svg.EscapeText("&amp;"))
	assert.Equal(t, "日本語 🎉 café", svg.EscapeText("日本語 🎉 café"))

	for i := 0; i < 200; i++ {
		i := i
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Parallel()

			s := xrand.String(math_rand.Intn(64), nil)
			t.Logf("testing: %q", s)

			got := svg.EscapeText(s)
			for _, r := range []string{"<", ">", `"`, "'"} {
				assert.NotContains(t, got, r)
			}
			unescaped := strings.NewReplacer(
				"&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'", "&amp;", "&",
			).Replace(got)
			assert.Equal(t, s, unescaped)
		})
	}
}

func TestFormatFloat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "20", svg.FormatFloat(20))
	assert.Equal(t, "0.1235", svg.FormatFloat(0.123456))
	assert.Equal(t, "0", svg.FormatFloat(-0.00001))
	assert.Equal(t, "-3.5", svg.FormatFloat(-3.5))
	assert.False(t, strings.Contains(svg.FormatFloat(math.Pi), "e"))
}

func TestDocument(t *testing.T) {
	t.Parallel()

	t.Run("background", func(t *testing.T) {
		t.Parallel()
		doc := svg.NewDocument(200, 100, "#ffffff", false)
		doc.Add(svg.Rect(0, 0, 10, 10, "#ecf0f1", stroke), "")
		doc.Add(svg.Line(0, 0, 1, 1, stroke, svg.Solid))
		assert.Equal(t, 2, doc.Len())

		exp := `<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100" viewBox="0 0 200 100">
  <rect width="100%" height="100%" fill="#ffffff"/>
  <rect x="0" y="0" width="10" height="10" rx="4" fill="#ecf0f1" stroke="#333333" stroke-width="1"/>
  <line x1="0" y1="0" x2="1" y2="1" stroke="#333333" stroke-width="1"/>
</svg>`
		assertString(t, exp, doc.String())
	})

	t.Run("transparent", func(t *testing.T) {
		t.Parallel()
		doc := svg.NewDocument(200, 100, "#ffffff", true)
		doc.Add(svg.Line(0, 0, 1, 1, stroke, svg.Solid))

		exp := `<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100" viewBox="0 0 200 100">
  <line x1="0" y1="0" x2="1" y2="1" stroke="#333333" stroke-width="1"/>
</svg>`
		assertString(t, exp, string(doc.Bytes()))
		assert.NotContains(t, doc.String(), `width="100%"`)
	})
}

func TestPathContext(t *testing.T) {
	t.Parallel()

	pc := svg.NewPathContext()
	pc.StartAt(geo.NewPoint(0, 0))
	pc.L(10, 0)
	pc.Q(20, 0, 20, 10)
	pc.Z()
	assert.Equal(t, "M 0 0 L 10 0 Q 20 0 20 10 Z", pc.PathData())
	assert.Equal(t, 0., pc.Current.X)
}
