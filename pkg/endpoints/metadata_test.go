package endpoints

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataItem_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     MetadataKind
		id       string
		validate func(t *testing.T, m MetadataItem)
	}{
		{
			name:  "simple with numeric id",
			input: `{"id": 101, "data": {"company": "Acme Corp", "count": 3}, "createdAt": "2026-01-01T00:00:00Z"}`,
			kind:  MetadataKindSimple,
			id:    "101",
			validate: func(t *testing.T, m MetadataItem) {
				s, ok := m.AsSimple()
				require.True(t, ok)
				assert.Equal(t, "Acme Corp", s.Data["company"])
				assert.Equal(t, json.Number("3"), s.Data["count"])
				assert.Equal(t, "2026-01-01T00:00:00Z", m.CreatedAt())

				_, ok = m.AsExtracted()
				assert.False(t, ok)
			},
		},
		{
			name:  "simple with string id",
			input: `{"id": "abc12345", "data": {}, "createdAt": "2026-01-01T00:00:00Z"}`,
			kind:  MetadataKindSimple,
			id:    "abc12345",
		},
		{
			name: "extracted detected by fields",
			input: `{
			  "id": 7,
			  "createdAt": "2026-01-02T00:00:00Z",
			  "filePath": "123/job-tracker/offer.pdf",
			  "fileType": "application/pdf",
			  "fileSize": 20480,
			  "originalText": "Acme Corp offers Jane the role",
			  "summary": "Offer letter",
			  "entities": [{"name": "Acme Corp", "type": "company", "role": "employer"}, {"name": "Jane", "type": "person"}]
			}`,
			kind: MetadataKindExtracted,
			id:   "7",
			validate: func(t *testing.T, m MetadataItem) {
				e, ok := m.AsExtracted()
				require.True(t, ok)
				require.NotNil(t, e.FilePath)
				assert.Equal(t, "123/job-tracker/offer.pdf", *e.FilePath)
				require.NotNil(t, e.FileSize)
				assert.Equal(t, int64(20480), *e.FileSize)
				assert.Equal(t, "Offer letter", e.Summary)
				assert.Equal(t, []ExtractedEntity{
					{Name: "Acme Corp", Type: "company", Role: "employer"},
					{Name: "Jane", Type: "person"},
				}, e.Entities)
			},
		},
		{
			name:  "extracted text source has null file path",
			input: `{"filePath": null, "fileType": "text", "originalText": "hello", "summary": "", "entities": []}`,
			kind:  MetadataKindExtracted,
			validate: func(t *testing.T, m MetadataItem) {
				e, ok := m.AsExtracted()
				require.True(t, ok)
				assert.Nil(t, e.FilePath)
				assert.Nil(t, e.FileSize)
				assert.Equal(t, "text", e.FileType)
			},
		},
		{
			name:  "explicit kind wins",
			input: `{"kind": "simple", "id": "x1", "data": {"summary": "looks extracted"}, "createdAt": "2026-01-03T00:00:00Z"}`,
			kind:  MetadataKindSimple,
			id:    "x1",
		},
		{
			name:  "unknown kind falls back to detection",
			input: `{"kind": "other", "id": 3, "summary": "s", "entities": []}`,
			kind:  MetadataKindExtracted,
			id:    "3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m MetadataItem
			require.NoError(t, json.Unmarshal([]byte(tt.input), &m))

			assert.Equal(t, tt.kind, m.Kind())
			assert.Equal(t, tt.id, m.ID())
			if tt.validate != nil {
				tt.validate(t, m)
			}
		})
	}
}

func TestMetadataItem_UnmarshalJSON_Invalid(t *testing.T) {
	var m MetadataItem
	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &m))
	assert.Error(t, json.Unmarshal([]byte(`{"id": 1, "data": "not an object"}`), &m))
}

func TestMetadataItem_MarshalJSON(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		m := NewSimpleMetadata(SimpleMetadata{
			ID:        "101",
			Data:      map[string]interface{}{"company": "Acme Corp"},
			CreatedAt: "2026-01-01T00:00:00Z",
		})

		out, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `{
		  "kind": "simple",
		  "id": "101",
		  "data": {"company": "Acme Corp"},
		  "createdAt": "2026-01-01T00:00:00Z"
		}`, string(out))
	})

	t.Run("extracted", func(t *testing.T) {
		m := NewExtractedMetadata(ExtractedMetadata{
			FileType:     "text",
			OriginalText: "hello",
			Entities:     []ExtractedEntity{{Name: "Jane", Type: "person"}},
		})

		out, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `{
		  "kind": "extracted",
		  "filePath": null,
		  "fileType": "text",
		  "originalText": "hello",
		  "summary": "",
		  "entities": [{"name": "Jane", "type": "person"}]
		}`, string(out))
	})

	t.Run("zero value", func(t *testing.T) {
		out, err := json.Marshal(MetadataItem{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(out))
	})
}

func TestMetadataItem_RoundTripKeepsKind(t *testing.T) {
	input := `[
	  {"id": 1, "data": {"summary": "a"}, "createdAt": "2026-01-01T00:00:00Z"},
	  {"id": 2, "summary": "b", "entities": [], "fileType": "text", "filePath": null, "originalText": "b"}
	]`

	var items []MetadataItem
	require.NoError(t, json.Unmarshal([]byte(input), &items))
	require.Len(t, items, 2)

	out, err := json.Marshal(items)
	require.NoError(t, err)

	var again []MetadataItem
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, items, again)
	assert.Equal(t, MetadataKindSimple, again[0].Kind())
	assert.Equal(t, MetadataKindExtracted, again[1].Kind())
}
