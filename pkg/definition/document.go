package definition

import (
	"bytes"
	"errors"
	"unicode"
)

// Format identifies the serialisation of a definition payload.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DetectFormat sniffs a raw payload. A document whose first non-space byte
// opens a JSON object is JSON; everything else is treated as YAML, which is
// a superset for our purposes.
func DetectFormat(raw []byte) Format {
	trimmed := bytes.TrimLeftFunc(raw, unicode.IsSpace)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatYAML
}

// Document is one fetched interview definition: the raw payload, where it
// came from, and the serialisation detected at load time.
type Document struct {
	origin string
	format Format
	raw    []byte
}

// NewDocument wraps a fetched payload, recording its origin and sniffing the
// format so Parse does not have to.
func NewDocument(origin string, raw []byte) (Document, error) {
	if origin == "" {
		return Document{}, errors.New("definition: document origin is required")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Document{}, errors.New("definition: document " + origin + " is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{origin: origin, format: DetectFormat(clone), raw: clone}, nil
}

// Origin returns the path or URL the document was loaded from.
func (d Document) Origin() string { return d.origin }

// Format returns the serialisation detected at load time.
func (d Document) Format() Format { return d.format }

// Raw returns a defensive copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Parse decodes the payload into a Definition using the detected format.
func (d Document) Parse() (Definition, error) {
	if len(d.raw) == 0 {
		return Definition{}, errors.New("definition: document is empty")
	}
	return parseAs(d.format, d.raw)
}
