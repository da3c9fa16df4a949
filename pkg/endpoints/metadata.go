package endpoints

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// MetadataKind discriminates the two shapes of MetadataItem.
type MetadataKind string

const (
	// MetadataKindSimple is a plain record: id, free-form data, creation time.
	MetadataKindSimple MetadataKind = "simple"

	// MetadataKindExtracted is a record produced by AI extraction from a
	// source file or text.
	MetadataKindExtracted MetadataKind = "extracted"
)

// extractionKeys mark a payload as the extracted shape when no explicit kind
// is present.
var extractionKeys = []string{"originalText", "entities", "fileType", "summary", "filePath"}

// SimpleMetadata is the plain record shape. Data is opaque.
type SimpleMetadata struct {
	ID        string                 `json:"id"`
	Data      map[string]interface{} `json:"data"`
	CreatedAt string                 `json:"createdAt"`
}

// ExtractedEntity is a named entity found during extraction.
type ExtractedEntity struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Role string `json:"role,omitempty"`
}

// ExtractedMetadata is the extraction-rich record shape.
type ExtractedMetadata struct {
	ID           string            `json:"id,omitempty"`
	CreatedAt    string            `json:"createdAt,omitempty"`
	FilePath     *string           `json:"filePath"`
	FileType     string            `json:"fileType"`
	FileSize     *int64            `json:"fileSize,omitempty"`
	OriginalText string            `json:"originalText"`
	Summary      string            `json:"summary"`
	Entities     []ExtractedEntity `json:"entities"`
}

// MetadataItem is one record of an endpoint. It holds exactly one of the two
// shapes; use Kind, AsSimple or AsExtracted to read it.
type MetadataItem struct {
	kind      MetadataKind
	simple    *SimpleMetadata
	extracted *ExtractedMetadata
}

// NewSimpleMetadata wraps a simple record.
func NewSimpleMetadata(m SimpleMetadata) MetadataItem {
	return MetadataItem{kind: MetadataKindSimple, simple: &m}
}

// NewExtractedMetadata wraps an extracted record.
func NewExtractedMetadata(m ExtractedMetadata) MetadataItem {
	return MetadataItem{kind: MetadataKindExtracted, extracted: &m}
}

// Kind returns the shape held by the item, or "" for the zero value.
func (m MetadataItem) Kind() MetadataKind {
	return m.kind
}

// AsSimple returns the simple record and true if the item holds one.
func (m MetadataItem) AsSimple() (SimpleMetadata, bool) {
	if m.kind != MetadataKindSimple || m.simple == nil {
		return SimpleMetadata{}, false
	}
	return *m.simple, true
}

// AsExtracted returns the extracted record and true if the item holds one.
func (m MetadataItem) AsExtracted() (ExtractedMetadata, bool) {
	if m.kind != MetadataKindExtracted || m.extracted == nil {
		return ExtractedMetadata{}, false
	}
	return *m.extracted, true
}

// ID returns the record ID for either shape.
func (m MetadataItem) ID() string {
	switch {
	case m.simple != nil:
		return m.simple.ID
	case m.extracted != nil:
		return m.extracted.ID
	}
	return ""
}

// CreatedAt returns the creation timestamp for either shape.
func (m MetadataItem) CreatedAt() string {
	switch {
	case m.simple != nil:
		return m.simple.CreatedAt
	case m.extracted != nil:
		return m.extracted.CreatedAt
	}
	return ""
}

// UnmarshalJSON decodes either shape. An explicit "kind" field wins;
// otherwise the presence of any extraction field selects the extracted shape.
func (m *MetadataItem) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if raw == nil {
		*m = MetadataItem{}
		return nil
	}

	kind := detectKind(raw)
	delete(raw, "kind")

	switch kind {
	case MetadataKindExtracted:
		var e ExtractedMetadata
		if err := decodeMetadata(raw, &e); err != nil {
			return fmt.Errorf("decoding extracted metadata: %w", err)
		}
		*m = NewExtractedMetadata(e)
	default:
		var s SimpleMetadata
		if err := decodeMetadata(raw, &s); err != nil {
			return fmt.Errorf("decoding simple metadata: %w", err)
		}
		*m = NewSimpleMetadata(s)
	}

	return nil
}

// MarshalJSON encodes the held shape with an explicit "kind" field.
func (m MetadataItem) MarshalJSON() ([]byte, error) {
	switch {
	case m.kind == MetadataKindSimple && m.simple != nil:
		return json.Marshal(struct {
			Kind MetadataKind `json:"kind"`
			SimpleMetadata
		}{m.kind, *m.simple})
	case m.kind == MetadataKindExtracted && m.extracted != nil:
		return json.Marshal(struct {
			Kind MetadataKind `json:"kind"`
			ExtractedMetadata
		}{m.kind, *m.extracted})
	}
	return []byte("null"), nil
}

func detectKind(raw map[string]interface{}) MetadataKind {
	if k, ok := raw["kind"].(string); ok {
		switch MetadataKind(k) {
		case MetadataKindSimple, MetadataKindExtracted:
			return MetadataKind(k)
		}
	}
	for _, key := range extractionKeys {
		if _, ok := raw[key]; ok {
			return MetadataKindExtracted
		}
	}
	return MetadataKindSimple
}

// decodeMetadata maps a generic JSON object onto one of the metadata structs.
// IDs arrive as numbers or strings depending on the server version, so input
// is weakly typed.
func decodeMetadata(raw map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}
