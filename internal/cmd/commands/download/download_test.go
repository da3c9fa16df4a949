package download

import (
	"net/http"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endpoints-sh/endpoints-cli/internal/cmd/base/basetest"
	"github.com/endpoints-sh/endpoints-cli/pkg/endpoints"
)

func newHarness(t *testing.T, content []byte) *basetest.Harness {
	var h *basetest.Harness
	h = basetest.New(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/files/123/job-tracker/file.pdf":
			basetest.WriteJSON(w, http.StatusOK, endpoints.FileURLResponse{
				URL:       h.Server.URL + "/storage/file.pdf?signature=xxx",
				ExpiresIn: 3600,
			})
		case "/storage/file.pdf":
			_, _ = w.Write(content)
		default:
			basetest.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
		}
	})
	return h
}

func TestDownload(t *testing.T) {
	content := []byte("%PDF-1.7 test content")

	tests := []struct {
		name       string
		args       []string
		resultsDir string
		expected   string
	}{
		{"default results dir", []string{"123/job-tracker/file.pdf"}, "results", "results/file.pdf"},
		{"configured results dir", []string{"123/job-tracker/file.pdf"}, "out", "out/file.pdf"},
		{"output dir flag", []string{"123/job-tracker/file.pdf", "-output-dir", "downloads/jan"}, "results", "downloads/jan/file.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, content)
			h.Command.ResultsDir = tt.resultsDir

			c := &Command{Command: h.Command}
			code := c.Run(tt.args)
			require.Equal(t, 0, code, h.UI.ErrorWriter.String())

			got, err := afero.ReadFile(h.Fs, tt.expected)
			require.NoError(t, err)
			assert.Equal(t, content, got)
			assert.Contains(t, h.UI.OutputWriter.String(), "✓ Saved to: "+tt.expected)
		})
	}
}

func TestDownload_Errors(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		h := basetest.New(t, basetest.Unreachable(t))

		c := &Command{Command: h.Command}
		assert.Equal(t, 1, c.Run(nil))
		assert.Contains(t, h.UI.ErrorWriter.String(), "Usage: endpoints download <key>")
	})

	t.Run("unknown key", func(t *testing.T) {
		h := newHarness(t, nil)

		c := &Command{Command: h.Command}
		assert.Equal(t, 1, c.Run([]string{"123/other/missing.pdf"}))
		assert.Contains(t, h.UI.ErrorWriter.String(), "Error: HTTP 404")
	})
}
