package outlinefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
	"honnef.co/go/outline"
)

type encoder interface {
	Encode(v any) error
}

type decoder interface {
	Decode(v any) error
}

type encoderFunc func(w io.Writer) encoder

type decoderFunc func(r io.Reader) decoder

func newEncoderFunc[T encoder](f func(w io.Writer) T) encoderFunc {
	return func(w io.Writer) encoder { return f(w) }
}

func newDecoderFunc[T decoder](f func(r io.Reader) T) decoderFunc {
	return func(r io.Reader) decoder { return f(r) }
}

// yamlEncoder closes the underlying encoder after every document so that
// the document is flushed to the writer.
type yamlEncoder struct {
	enc *yaml.Encoder
}

func newYAMLEncoder(w io.Writer) yamlEncoder {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return yamlEncoder{enc}
}

func (e yamlEncoder) Encode(v any) error {
	if err := e.enc.Encode(v); err != nil {
		return err
	}
	return e.enc.Close()
}

func (f Format) codec() (encoderFunc, decoderFunc, error) {
	switch f {
	case JSON:
		return newEncoderFunc(json.NewEncoder), newDecoderFunc(json.NewDecoder), nil
	case YAML:
		return newEncoderFunc(newYAMLEncoder), newDecoderFunc(yaml.NewDecoder), nil
	case TOML:
		return newEncoderFunc(toml.NewEncoder), newDecoderFunc(toml.NewDecoder), nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

func (f Format) encode(w io.Writer, obj map[string]any) error {
	enc, _, err := f.codec()
	if err != nil {
		return err
	}
	if f == TOML {
		obj = toTOML(obj).(map[string]any)
	}
	if err := enc(w).Encode(obj); err != nil {
		return fmt.Errorf("encoding %s: %w", f, err)
	}
	return nil
}

func (f Format) decode(r io.Reader) (map[string]any, error) {
	_, dec, err := f.codec()
	if err != nil {
		return nil, err
	}
	var obj map[string]any
	if err := dec(r).Decode(&obj); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", f, err)
	}
	return obj, nil
}

// toTOML rewrites the nulls of v into a form TOML can represent: null
// table values are dropped and null list entries become empty tables.
func toTOML(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			if e != nil {
				out[k] = toTOML(e)
			}
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			if e == nil {
				out[i] = map[string]any{}
			} else {
				out[i] = toTOML(e)
			}
		}
		return out
	default:
		return v
	}
}

// fromTOML turns the empty tables of a decoded metadata column back into
// absent entries.
func fromTOML(obj map[string]any) {
	list, ok := obj["pointAttributes"].([]any)
	if !ok {
		return
	}
	for i, e := range list {
		if m, ok := e.(map[string]any); ok && len(m) == 0 {
			list[i] = nil
		}
	}
}

// Encode writes p to w as a document of format f.
func Encode(w io.Writer, f Format, p *outline.PackedPath) error {
	return f.encode(w, p.Object())
}

// Decode reads a packed path from r. The result is validated.
func Decode(r io.Reader, f Format) (*outline.PackedPath, error) {
	obj, err := f.decode(r)
	if err != nil {
		return nil, err
	}
	if f == TOML {
		fromTOML(obj)
	}
	p, err := outline.PackedPathFromObject(obj)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", f, err)
	}
	return p, nil
}

func Marshal(f Format, p *outline.PackedPath) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, f, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unmarshal(f Format, data []byte) (*outline.PackedPath, error) {
	return Decode(bytes.NewReader(data), f)
}

// EncodePath writes the unpacked path p to w.
func EncodePath(w io.Writer, f Format, p outline.Path) error {
	return f.encode(w, p.Object())
}

// DecodePath reads an unpacked path from r.
func DecodePath(r io.Reader, f Format) (outline.Path, error) {
	obj, err := f.decode(r)
	if err != nil {
		return outline.Path{}, err
	}
	p, err := outline.PathFromObject(obj)
	if err != nil {
		return outline.Path{}, fmt.Errorf("decoding %s: %w", f, err)
	}
	return p, nil
}

func MarshalPath(f Format, p outline.Path) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePath(&buf, f, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func UnmarshalPath(f Format, data []byte) (outline.Path, error) {
	return DecodePath(bytes.NewReader(data), f)
}
