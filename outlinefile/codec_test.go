package outlinefile

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/outline"
)

var formats = []Format{JSON, YAML, TOML}

func testPaths(t *testing.T) map[string]*outline.PackedPath {
	t.Helper()
	withAttrs, err := outline.FromUnpackedContours([]outline.Contour{
		{
			Points: []outline.Point{
				{X: 60, Y: 0},
				{X: 110, Y: 0, Attrs: outline.Attrs{"name": "corner", "tags": []any{"a", "b"}}},
				{X: 110, Y: 120, Kind: outline.OffCurveCubicKind},
				{X: 60, Y: 120, Kind: outline.OffCurveCubicKind},
				{X: 60.5, Y: 60, Smooth: true},
			},
			Closed: true,
		},
		{
			Points: []outline.Point{{X: -1, Y: -2}, {X: 3, Y: 4}},
		},
	})
	require.NoError(t, err)

	blob, err := outline.NewPackedPath(
		[]float64{0, 0, 0, 100, 100, 100, 100, 0},
		[]outline.PointType{outline.OffCurveQuad, outline.OffCurveQuad, outline.OffCurveQuad, outline.OffCurveQuad},
		[]outline.ContourInfo{{EndPoint: 3, Closed: true}},
	)
	require.NoError(t, err)

	return map[string]*outline.PackedPath{
		"attributes": withAttrs,
		"quad blob":  blob,
		"empty":      &outline.PackedPath{},
	}
}

func TestFormatFromExt(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"glyph.json", JSON},
		{"dir/glyph.yaml", YAML},
		{"glyph.YML", YAML},
		{"/abs/glyph.toml", TOML},
	}
	for _, tt := range tests {
		got, err := FormatFromExt(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := FormatFromExt("glyph.glif")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	_, err = FormatFromExt("glyph")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "JSON", JSON.String())
	assert.Equal(t, "YAML", YAML.String())
	assert.Equal(t, "TOML", TOML.String())
	assert.Equal(t, "Format(7)", Format(7).String())
}

func TestRoundTrip(t *testing.T) {
	for _, f := range formats {
		for name, p := range testPaths(t) {
			t.Run(f.String()+"/"+name, func(t *testing.T) {
				data, err := Marshal(f, p)
				require.NoError(t, err)
				got, err := Unmarshal(f, data)
				require.NoError(t, err)
				assert.True(t, p.Equal(got), "got %s, want %s", got, p)
			})
		}
	}
}

func TestPathRoundTrip(t *testing.T) {
	for _, f := range formats {
		for name, p := range testPaths(t) {
			t.Run(f.String()+"/"+name, func(t *testing.T) {
				path := p.AsPath()
				data, err := MarshalPath(f, path)
				require.NoError(t, err)
				got, err := UnmarshalPath(f, data)
				require.NoError(t, err)
				assert.True(t, path.Equal(got), "got %s, want %s", got, path)
			})
		}
	}
}

func TestMetadataColumnSurvives(t *testing.T) {
	p, err := outline.NewPackedPath(
		[]float64{0, 0, 10, 10},
		[]outline.PointType{outline.OnCurve, outline.OnCurve},
		[]outline.ContourInfo{{EndPoint: 1}},
	)
	require.NoError(t, err)
	p.PointAttributes = outline.MaterializedAttributes(nil, nil)

	for _, f := range formats {
		data, err := Marshal(f, p)
		require.NoError(t, err)
		got, err := Unmarshal(f, data)
		require.NoError(t, err, f.String())
		assert.True(t, got.PointAttributes.Materialized(), f.String())
		assert.Equal(t, 2, got.PointAttributes.Len(), f.String())
		assert.False(t, got.PointAttributes.Any(), f.String())
	}
}

func TestTOMLOmitsAbsentColumn(t *testing.T) {
	p := testPaths(t)["quad blob"]
	data, err := Marshal(TOML, p)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "pointAttributes")

	data, err = Marshal(YAML, p)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pointAttributes: null")
}

func TestTOMLEmptyMetadata(t *testing.T) {
	p := &outline.PackedPath{
		Coordinates:     []float64{0, 0, 10, 0},
		PointTypes:      []outline.PointType{outline.OnCurve, outline.OnCurve},
		ContourInfo:     []outline.ContourInfo{{EndPoint: 1}},
		PointAttributes: outline.MaterializedAttributes(outline.Attrs{}, outline.Attrs{"a": "b"}),
	}
	for _, f := range []Format{JSON, YAML} {
		data, err := Marshal(f, p)
		require.NoError(t, err, f)
		got, err := Unmarshal(f, data)
		require.NoError(t, err, f)
		assert.Equal(t, outline.Attrs{}, got.PointAttributes.At(0), f)
		assert.True(t, p.Equal(got), f)
	}

	// TOML can't tell an empty table from a missing entry.
	data, err := Marshal(TOML, p)
	require.NoError(t, err)
	got, err := Unmarshal(TOML, data)
	require.NoError(t, err)
	assert.Nil(t, got.PointAttributes.At(0))
	assert.Equal(t, outline.Attrs{"a": "b"}, got.PointAttributes.At(1))
	assert.False(t, p.Equal(got))
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		format Format
		input  string
		want   string
	}{
		{JSON, `{"coordinates": [0, 0`, "decoding JSON"},
		{YAML, "coordinates: [0, 0\n", "decoding YAML"},
		{TOML, "coordinates = [0, 0", "decoding TOML"},
	}
	for _, tt := range tests {
		_, err := Unmarshal(tt.format, []byte(tt.input))
		require.Error(t, err)
		assert.Contains(t, err.Error(), tt.want)
	}

	// Well-formed documents describing malformed paths.
	malformed := map[Format]string{
		JSON: `{"coordinates": [0, 0], "pointTypes": [0, 0], "contourInfo": [{"endPoint": 1}]}`,
		YAML: "coordinates: [0, 0]\npointTypes: [3]\ncontourInfo: [{endPoint: 0}]\n",
		TOML: "coordinates = [0, 0]\npointTypes = [0]\n[[contourInfo]]\nendPoint = 1\n",
	}
	for f, input := range malformed {
		_, err := Unmarshal(f, []byte(input))
		assert.ErrorIs(t, err, outline.ErrMalformedPath, f.String())
		assert.ErrorContains(t, err, "decoding "+f.String(), f.String())
	}

	_, err := Unmarshal(Format(9), []byte("{}"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestEncodeDecode(t *testing.T) {
	p := testPaths(t)["attributes"]
	for _, f := range formats {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, f, p))
		got, err := Decode(&buf, f)
		require.NoError(t, err)
		assert.True(t, p.Equal(got), f.String())
	}
}

func TestYAMLDocument(t *testing.T) {
	data, err := Marshal(YAML, testPaths(t)["quad blob"])
	require.NoError(t, err)
	doc := string(data)
	assert.True(t, strings.HasPrefix(doc, "contourInfo:\n"), doc)
	assert.Contains(t, doc, "- endPoint: 3\n")
	assert.Contains(t, doc, "isClosed: true\n")
	assert.Contains(t, doc, "pointAttributes: null\n")
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	for name, p := range testPaths(t) {
		for _, ext := range []string{".json", ".yaml", ".toml"} {
			filename := filepath.Join(dir, strings.ReplaceAll(name, " ", "_")+ext)
			require.NoError(t, Save(filename, p))
			got, err := Open(filename)
			require.NoError(t, err)
			assert.True(t, p.Equal(got), filename)
		}
	}

	err := Save(filepath.Join(dir, "glyph.txt"), &outline.PackedPath{})
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Open(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestOpenFS(t *testing.T) {
	data, err := Marshal(JSON, testPaths(t)["quad blob"])
	require.NoError(t, err)
	fsys := fstest.MapFS{"glyphs/o.json": {Data: data}}

	got, err := OpenFS(fsys, "glyphs/o.json")
	require.NoError(t, err)
	assert.Equal(t, 4, got.NumPoints())

	_, err = OpenFS(fsys, "glyphs/missing.json")
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}
