package trace

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"
	"gopkg.in/yaml.v3"
)

// File extensions for supported codecs.
const (
	jsonExtension = ".json"
	yamlExtension = ".yaml"
	lz4Extension  = ".json.lz4"
)

// jsonIndent is the indentation for pretty-printed JSON traces.
const jsonIndent = "  "

// ErrUnsupportedFormat indicates a trace file extension with no codec.
var ErrUnsupportedFormat = errors.New("unsupported trace file format")

// Codec defines how a trace is serialized and deserialized.
type Codec interface {
	// Encode writes the trace to the writer.
	Encode(w io.Writer, t *Trace) error
	// Decode reads a trace from the reader.
	Decode(r io.Reader) (*Trace, error)
	// Extension returns the file extension for this codec.
	Extension() string
}

// JSONCodec implements Codec using pretty-printed JSON.
type JSONCodec struct{}

// Encode implements Codec.Encode using JSON encoding.
func (c JSONCodec) Encode(w io.Writer, t *Trace) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", jsonIndent)

	err := encoder.Encode(t)
	if err != nil {
		return fmt.Errorf("json encode: %w", err)
	}

	return nil
}

// Decode implements Codec.Decode using JSON decoding.
func (c JSONCodec) Decode(r io.Reader) (*Trace, error) {
	var t Trace

	err := json.NewDecoder(r).Decode(&t)
	if err != nil {
		return nil, fmt.Errorf("json decode: %w", err)
	}

	return &t, nil
}

// Extension implements Codec.Extension for JSON files.
func (c JSONCodec) Extension() string {
	return jsonExtension
}

// YAMLCodec implements Codec using YAML.
type YAMLCodec struct{}

// Encode implements Codec.Encode using YAML encoding.
func (c YAMLCodec) Encode(w io.Writer, t *Trace) error {
	encoder := yaml.NewEncoder(w)

	encodeErr := encoder.Encode(t)
	if encodeErr != nil {
		_ = encoder.Close()

		return fmt.Errorf("yaml encode: %w", encodeErr)
	}

	closeErr := encoder.Close()
	if closeErr != nil {
		return fmt.Errorf("yaml flush: %w", closeErr)
	}

	return nil
}

// Decode implements Codec.Decode using YAML decoding.
func (c YAMLCodec) Decode(r io.Reader) (*Trace, error) {
	var t Trace

	err := yaml.NewDecoder(r).Decode(&t)
	if err != nil {
		return nil, fmt.Errorf("yaml decode: %w", err)
	}

	return &t, nil
}

// Extension implements Codec.Extension for YAML files.
func (c YAMLCodec) Extension() string {
	return yamlExtension
}

// LZ4Codec implements Codec as lz4-framed compact JSON. Large traces (a
// quicksort over a few hundred elements snapshots the whole array every
// step) shrink well under frame compression.
type LZ4Codec struct{}

// Encode implements Codec.Encode as compressed JSON.
func (c LZ4Codec) Encode(w io.Writer, t *Trace) error {
	zw := lz4.NewWriter(w)

	encodeErr := json.NewEncoder(zw).Encode(t)
	if encodeErr != nil {
		_ = zw.Close()

		return fmt.Errorf("lz4 encode: %w", encodeErr)
	}

	closeErr := zw.Close()
	if closeErr != nil {
		return fmt.Errorf("lz4 flush: %w", closeErr)
	}

	return nil
}

// Decode implements Codec.Decode from compressed JSON.
func (c LZ4Codec) Decode(r io.Reader) (*Trace, error) {
	var t Trace

	err := json.NewDecoder(lz4.NewReader(r)).Decode(&t)
	if err != nil {
		return nil, fmt.Errorf("lz4 decode: %w", err)
	}

	return &t, nil
}

// Extension implements Codec.Extension for compressed JSON files.
func (c LZ4Codec) Extension() string {
	return lz4Extension
}

// CodecFor picks the codec matching a file path's extension.
func CodecFor(path string) (Codec, error) {
	name := strings.ToLower(filepath.Base(path))

	switch {
	case strings.HasSuffix(name, lz4Extension):
		return LZ4Codec{}, nil
	case strings.HasSuffix(name, jsonExtension):
		return JSONCodec{}, nil
	case strings.HasSuffix(name, yamlExtension), strings.HasSuffix(name, ".yml"):
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// Save writes a trace to path, picking the codec from the extension.
func Save(path string, t *Trace) error {
	codec, codecErr := CodecFor(path)
	if codecErr != nil {
		return codecErr
	}

	file, createErr := os.Create(path)
	if createErr != nil {
		return fmt.Errorf("create trace file: %w", createErr)
	}
	defer file.Close()

	encodeErr := codec.Encode(file, t)
	if encodeErr != nil {
		return fmt.Errorf("encode trace: %w", encodeErr)
	}

	return nil
}

// Load reads a trace from path, picking the codec from the extension. The
// result is decoded only; callers decide whether to Validate before use.
func Load(path string) (*Trace, error) {
	codec, codecErr := CodecFor(path)
	if codecErr != nil {
		return nil, codecErr
	}

	file, openErr := os.Open(path)
	if openErr != nil {
		return nil, fmt.Errorf("open trace file: %w", openErr)
	}
	defer file.Close()

	t, decodeErr := codec.Decode(file)
	if decodeErr != nil {
		return nil, fmt.Errorf("decode trace: %w", decodeErr)
	}

	return t, nil
}

// LoadValidated reads a trace and runs both schema validation (for JSON
// documents) and the structural invariant checks. This is the ingestion
// boundary for externally produced traces.
func LoadValidated(path string) (*Trace, error) {
	codec, codecErr := CodecFor(path)
	if codecErr != nil {
		return nil, codecErr
	}

	raw, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, fmt.Errorf("read trace file: %w", readErr)
	}

	if _, isJSON := codec.(JSONCodec); isJSON {
		schemaErr := ValidateDocument(raw)
		if schemaErr != nil {
			return nil, schemaErr
		}
	}

	t, decodeErr := codec.Decode(bytes.NewReader(raw))
	if decodeErr != nil {
		return nil, fmt.Errorf("decode trace: %w", decodeErr)
	}

	validateErr := t.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("invalid trace: %w", validateErr)
	}

	return t, nil
}
