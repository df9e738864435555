package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"bonemap/internal/common"
)

// FilePerm is the mode of written document files.
const FilePerm = common.FilePerm

// Format selects the on-disk encoding of a document.
type Format string

const (
	// FormatJSON is the canonical format.
	FormatJSON Format = "json"
	// FormatYAML carries the same fields as YAML.
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension. Anything other than
// .yaml or .yml is JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile reads and parses a document file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, errors.Join(ErrIO, zerr.With(zerr.Wrap(err, "failed to read mapping document"), "path", path))
	}

	return ParseFormat(data, FormatFor(path))
}

// Parse parses a JSON document.
func Parse(data []byte) (*Document, error) {
	return ParseFormat(data, FormatJSON)
}

// ParseFormat parses a document in the given format and checks required fields.
// Unknown fields are ignored.
func ParseFormat(data []byte, format Format) (*Document, error) {
	var raw rawDocument

	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}

	if err != nil {
		return nil, errors.Join(ErrMalformedDocument, zerr.Wrap(err, "failed to decode mapping document"))
	}

	return raw.toDocument()
}

func (r *rawDocument) toDocument() (*Document, error) {
	switch {
	case r.Parent == nil:
		return nil, missingField("parent")
	case r.Target == nil:
		return nil, missingField("target")
	case r.Constraints == nil:
		return nil, missingField("constraints")
	}

	doc := &Document{
		Parent:      *r.Parent,
		Target:      *r.Target,
		Constraints: make([]Constraint, 0, len(*r.Constraints)),
	}

	for i, rc := range *r.Constraints {
		switch {
		case rc.Parent == nil:
			return nil, missingField(fmt.Sprintf("constraints[%d].parent", i))
		case rc.Target == nil:
			return nil, missingField(fmt.Sprintf("constraints[%d].target", i))
		case rc.Type == nil:
			return nil, missingField(fmt.Sprintf("constraints[%d].type", i))
		}

		doc.Constraints = append(doc.Constraints, Constraint{
			Parent: *rc.Parent,
			Target: *rc.Target,
			Type:   *rc.Type,
		})
	}

	if err := Validate(doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// Validate checks that every constraint carries a known type token.
func Validate(doc *Document) error {
	if doc == nil {
		return errors.Join(ErrMalformedDocument, zerr.New("document is nil"))
	}

	for i, c := range doc.Constraints {
		if _, err := c.Kind(); err != nil {
			return errors.Join(ErrMalformedDocument, zerr.With(err, "index", i))
		}
	}

	return nil
}

func missingField(field string) error {
	return errors.Join(ErrMalformedDocument, zerr.With(zerr.New("missing required field"), "field", field))
}

// Marshal serializes a document as 2-space indented JSON with a trailing newline.
func Marshal(doc *Document) ([]byte, error) {
	return MarshalFormat(doc, FormatJSON)
}

// MarshalFormat serializes a document in the given format.
func MarshalFormat(doc *Document, format Format) ([]byte, error) {
	out := *doc
	if out.Constraints == nil {
		out.Constraints = []Constraint{}
	}

	if format == FormatYAML {
		data, err := yaml.Marshal(&out)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to marshal mapping document")
		}

		return data, nil
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(&out); err != nil {
		return nil, zerr.Wrap(err, "failed to marshal mapping document")
	}

	return buf.Bytes(), nil
}

// WriteFile writes a document to path, choosing the format from the extension.
// The file is replaced atomically: a failed write leaves any existing file untouched.
func WriteFile(doc *Document, path string) error {
	data, err := MarshalFormat(doc, FormatFor(path))
	if err != nil {
		return err
	}

	if err := common.WriteFileAtomic(path, data, FilePerm); err != nil {
		return errors.Join(ErrIO, zerr.With(err, "path", path))
	}

	return nil
}
