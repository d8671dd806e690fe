package textmeasure

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// TTFRuler measures text with real glyph advances from a TrueType face.
// Glyphs are measured once at BaseFontSize and scaled linearly, so results
// agree with the table ruler on how size affects width.
type TTFRuler struct {
	mu       sync.Mutex
	ttf      *truetype.Font
	face     font.Face
	fallback Ruler
}

// NewTTFRuler loads the Go Regular face. Glyphs missing from the face are
// measured by the character table instead.
func NewTTFRuler() (*TTFRuler, error) {
	return NewTTFRulerFromBytes(goregular.TTF)
}

func NewTTFRulerFromBytes(ttf []byte) (*TTFRuler, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    BaseFontSize,
		Hinting: font.HintingNone,
	})
	return &TTFRuler{
		ttf:      f,
		face:     face,
		fallback: Table,
	}, nil
}

func (r *TTFRuler) Width(text string, fontSize int) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	var w fixed.Int26_6
	var extra float64
	prev := rune(-1)
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		// Combining marks and joiners render within the cluster's first rune.
		c := gr.Runes()[0]
		adv, ok := r.face.GlyphAdvance(c)
		if !ok || r.ttf.Index(c) == 0 {
			extra += r.fallback.Width(gr.Str(), BaseFontSize)
			prev = -1
			continue
		}
		if prev >= 0 {
			w += r.face.Kern(prev, c)
		}
		w += adv
		prev = c
	}
	base := float64(w)/64 + extra
	return base * float64(fontSize) / BaseFontSize
}
