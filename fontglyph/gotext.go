package fontglyph

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"honnef.co/go/outline"
)

// LoadFace parses a TrueType or OpenType font with go-text.
func LoadFace(data []byte) (*font.Face, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return face, nil
}

// FaceGlyph loads the outline of the glyph that face maps r to. Glyphs
// stored as bitmaps or SVG documents are reported as [ErrNoGlyph].
func FaceGlyph(face *font.Face, r rune) (*Glyph, error) {
	gid, ok := face.Cmap.Lookup(r)
	if !ok || gid == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoGlyph, r)
	}
	data, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return nil, fmt.Errorf("%w %q: glyph %d has no outline", ErrNoGlyph, r, gid)
	}

	var bp outline.BezPath
	for _, s := range data.Segments {
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			bp.MoveTo(fromSegmentPoint(s.Args[0]))
		case opentype.SegmentOpLineTo:
			bp.LineTo(fromSegmentPoint(s.Args[0]))
		case opentype.SegmentOpQuadTo:
			bp.QuadTo(fromSegmentPoint(s.Args[0]), fromSegmentPoint(s.Args[1]))
		case opentype.SegmentOpCubeTo:
			bp.CubicTo(fromSegmentPoint(s.Args[0]), fromSegmentPoint(s.Args[1]), fromSegmentPoint(s.Args[2]))
		}
	}
	adv := float64(face.HorizontalAdvance(gid))
	return newGlyph(r, uint16(gid), adv, int(face.Upem()), bp), nil
}

func fromSegmentPoint(p opentype.SegmentPoint) outline.Vec2 {
	return outline.Vec(float64(p.X), float64(p.Y))
}
