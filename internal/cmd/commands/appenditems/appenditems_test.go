package appenditems

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endpoints-sh/endpoints-cli/internal/cmd/base/basetest"
)

func TestAppend(t *testing.T) {
	h := basetest.New(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/endpoints/job-tracker/january-2026", r.RequestURI)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"items":[{"data":{"company":"Acme"}}]}`, string(raw))

		basetest.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"endpoint":   map[string]interface{}{"id": 1, "path": "/job-tracker/january-2026"},
			"itemsAdded": 1,
			"totalItems": 6,
		})
	})

	c := &Command{Command: h.Command}
	require.Equal(t, 0, c.Run([]string{"/job-tracker/january-2026", `[{"data":{"company":"Acme"}}]`}), h.UI.ErrorWriter.String())

	out := h.UI.OutputWriter.String()
	assert.Contains(t, out, "✓ Appended to: /job-tracker/january-2026")
	assert.Contains(t, out, "Items added: 1")
	assert.Contains(t, out, "Total items: 6")
}

func TestAppend_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing args", nil, "Usage: endpoints append <path> <items-json>"},
		{"missing items", []string{"/job-tracker/january-2026"}, "Usage: endpoints append <path> <items-json>"},
		{"invalid json", []string{"/job-tracker/january-2026", "[{"}, "Error: invalid items JSON: "},
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
