package inspect

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/endpoints-sh/endpoints-cli/internal/cmd/base/basetest"
)

const detailsResponse = `{
  "endpoint": {"id": 1, "path": "/job-tracker/january-2026", "category": "job-tracker", "slug": "january-2026"},
  "metadata": {
    "oldMetadata": [
      {"id": 100, "data": {"company": "Old Co"}, "createdAt": "2025-12-01T00:00:00Z"}
    ],
    "newMetadata": [
      {"id": 101, "data": {"company": "Acme Corp"}, "createdAt": "2026-01-01T00:00:00Z"},
      {"id": 102, "filePath": "123/job-tracker/offer.pdf", "fileType": "application/pdf",
       "originalText": "...", "summary": "Offer letter",
       "entities": [{"name": "Acme Corp", "type": "company", "role": "employer"}, {"name": "Jane", "type": "person"}]},
      {"id": 103, "data": {"company": "Gamma"}, "createdAt": "2026-01-03T00:00:00Z"},
      {"id": 104, "data": {"company": "Delta"}, "createdAt": "2026-01-04T00:00:00Z"}
    ]
  },
  "totalItems": 5
}`

func newHarness(t *testing.T) *basetest.Harness {
	return basetest.New(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/endpoints/job-tracker/january-2026", r.RequestURI)
		_, _ = io.WriteString(w, detailsResponse)
	})
}

func TestInspect_Text(t *testing.T) {
	h := newHarness(t)

	c := &Command{Command: h.Command}
	code := c.Run([]string{"/job-tracker/january-2026"})
	require.Equal(t, 0, code, h.UI.ErrorWriter.String())

	out := h.UI.OutputWriter.String()
	assert.Contains(t, out, "Path:     /job-tracker/january-2026")
	assert.Contains(t, out, "Category: job-tracker")
	assert.Contains(t, out, "ID:       1")
	assert.Contains(t, out, "Total Items: 5")
	assert.Contains(t, out, "  Old Metadata: 1")
	assert.Contains(t, out, "  New Metadata: 4")

	assert.Contains(t, out, "  ID: 101")
	assert.Contains(t, out, `"company": "Acme Corp"`)
	assert.Contains(t, out, "  Source: 123/job-tracker/offer.pdf (application/pdf)")
	assert.Contains(t, out, "  Summary: Offer letter")
	assert.Contains(t, out, "  - Acme Corp (company, employer)")
	assert.Contains(t, out, "  - Jane (person)")
	assert.Contains(t, out, "  ID: 103")
	assert.NotContains(t, out, "ID: 104")
	assert.NotContains(t, out, "Old Co")
}

func TestInspect_JSON(t *testing.T) {
	h := newHarness(t)

	c := &Command{Command: h.Command}
	code := c.Run([]string{"/job-tracker/january-2026", "-format", "json"})
	require.Equal(t, 0, code, h.UI.ErrorWriter.String())

	assert.JSONEq(t, detailsResponse, h.UI.OutputWriter.String())
	assert.NotContains(t, h.UI.OutputWriter.String(), `"kind"`)
}

func TestInspect_YAML(t *testing.T) {
	h := newHarness(t)

	c := &Command{Command: h.Command}
	code := c.Run([]string{"-format=yaml", "/job-tracker/january-2026"})
	require.Equal(t, 0, code, h.UI.ErrorWriter.String())

	var out struct {
		Endpoint struct {
			Path string `yaml:"path"`
		} `yaml:"endpoint"`
		TotalItems int `yaml:"totalItems"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(h.UI.OutputWriter.String()), &out))
	assert.Equal(t, "/job-tracker/january-2026", out.Endpoint.Path)
	assert.Equal(t, 5, out.TotalItems)
}

const unmodeledResponse = `{
  "endpoint": {"id": 3, "path": "/receipts/2026-q1", "category": "receipts", "slug": "2026-q1", "createdAt": "2026-01-01T00:00:00Z"},
  "metadata": {
    "oldMetadata": [],
    "newMetadata": [
      {"id": 7, "data": {"total": 12.5}, "createdAt": "2026-01-02T00:00:00Z", "fileKey": "123/receipts/r.pdf"},
      {"id": 8, "filePath": null, "fileType": "text", "originalText": "paid", "summary": "", "entities": [], "confidence": 0.92}
    ]
  },
  "totalItems": 2
}`

func TestInspect_KeepsUnmodeledFields(t *testing.T) {
	newUnmodeled := func(t *testing.T) *basetest.Harness {
		return basetest.New(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, unmodeledResponse)
		})
	}

	t.Run("json", func(t *testing.T) {
		h := newUnmodeled(t)

		c := &Command{Command: h.Command}
		require.Equal(t, 0, c.Run([]string{"/receipts/2026-q1", "-format", "json"}), h.UI.ErrorWriter.String())
		assert.JSONEq(t, unmodeledResponse, h.UI.OutputWriter.String())
	})

	t.Run("yaml", func(t *testing.T) {
		h := newUnmodeled(t)

		c := &Command{Command: h.Command}
		require.Equal(t, 0, c.Run([]string{"/receipts/2026-q1", "-format", "yaml"}), h.UI.ErrorWriter.String())

		var out struct {
			Endpoint struct {
				CreatedAt string `yaml:"createdAt"`
			} `yaml:"endpoint"`
			Metadata struct {
				NewMetadata []map[string]interface{} `yaml:"newMetadata"`
			} `yaml:"metadata"`
		}
		require.NoError(t, yaml.Unmarshal([]byte(h.UI.OutputWriter.String()), &out))
		assert.Equal(t, "2026-01-01T00:00:00Z", out.Endpoint.CreatedAt)
		require.Len(t, out.Metadata.NewMetadata, 2)
		assert.Equal(t, 7, out.Metadata.NewMetadata[0]["id"])
		assert.Equal(t, "123/receipts/r.pdf", out.Metadata.NewMetadata[0]["fileKey"])
		assert.Equal(t, 0.92, out.Metadata.NewMetadata[1]["confidence"])
		assert.NotContains(t, h.UI.OutputWriter.String(), "kind:")
	})
}

func TestInspect_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing path", nil, "Usage: endpoints inspect <path>"},
		{"bad format", []string{"/a/b", "-format", "xml"}, `unsupported format "xml"`},
		{"unknown flag", []string{"/a/b", "-verbose"}, "error parsing flags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := basetest.New(t, basetest.Unreachable(t))

			c := &Command{Command: h.Command}
			assert.Equal(t, 1, c.Run(tt.args))
			assert.Contains(t, h.UI.ErrorWriter.String(), tt.want)
		})
	}
}

func TestInspect_NotFound(t *testing.T) {
	h := basetest.New(t, func(w http.ResponseWriter, r *http.Request) {
		basetest.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
	})

	c := &Command{Command: h.Command}
	assert.Equal(t, 1, c.Run([]string{"/non-existent/endpoint"}))
	assert.Contains(t, h.UI.ErrorWriter.String(), "Error: HTTP 404")
}
