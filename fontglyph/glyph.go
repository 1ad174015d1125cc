// Package fontglyph loads glyph outlines from compiled fonts into
// [outline.PackedPath] values.
//
// Two readers are provided: one backed by golang.org/x/image/font/sfnt
// ([LoadSFNT], [SFNTGlyph]) and one backed by go-text
// ([LoadFace], [FaceGlyph]). Both return outlines in font units with the
// y axis pointing up. Every contour of a glyph is closed.
package fontglyph

import (
	"errors"
	"iter"

	"honnef.co/go/outline"
)

// ErrNoGlyph is returned for runes the font doesn't map to a glyph.
var ErrNoGlyph = errors.New("font has no glyph for rune")

// Glyph is a glyph outline loaded from a font.
type Glyph struct {
	Rune rune
	// GlyphID is the glyph's index in the font.
	GlyphID uint16
	// Advance is the horizontal advance in font units.
	Advance float64
	// UnitsPerEm is the size of the font's design grid.
	UnitsPerEm int
	Path       *outline.PackedPath
}

// contours splits bp at its MoveTo elements. ClosePath elements are
// dropped and elements before the first MoveTo are ignored.
func contours(bp outline.BezPath) iter.Seq[outline.BezPath] {
	return func(yield func(outline.BezPath) bool) {
		var cur outline.BezPath
		for _, el := range bp {
			switch el.Kind {
			case outline.MoveToKind:
				if len(cur) > 0 && !yield(cur) {
					return
				}
				cur = outline.BezPath{el}
			case outline.ClosePathKind:
			default:
				if len(cur) > 0 {
					cur = append(cur, el)
				}
			}
		}
		if len(cur) > 0 {
			yield(cur)
		}
	}
}

// buildPath converts the segments of a glyph into a packed path, closing
// every contour. It returns the number of contours that were dropped
// because they consist of a lone MoveTo.
func buildPath(bp outline.BezPath) (*outline.PackedPath, int) {
	pen := outline.NewPackedPathPointPen()
	sp := outline.NewSegmentToPointPen(pen)
	var dropped int
	for c := range contours(bp) {
		if len(c) < 2 {
			dropped++
			continue
		}
		c.Replay(sp)
		sp.ClosePath()
	}
	return pen.Path(), dropped
}

func newGlyph(r rune, gid uint16, advance float64, upem int, bp outline.BezPath) *Glyph {
	p, dropped := buildPath(bp)
	log := Logger()
	if dropped > 0 {
		log.Warn("dropped degenerate contours", "rune", string(r), "glyph", gid, "count", dropped)
	}
	log.Debug("loaded glyph", "rune", string(r), "glyph", gid, "contours", p.NumContours(), "points", p.NumPoints())
	return &Glyph{
		Rune:       r,
		GlyphID:    gid,
		Advance:    advance,
		UnitsPerEm: upem,
		Path:       p,
	}
}
