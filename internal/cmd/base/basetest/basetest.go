// Package basetest builds base.Command values wired to a mock API server for
// command tests.
package basetest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/endpoints-sh/endpoints-cli/internal/cmd/base"
	"github.com/endpoints-sh/endpoints-cli/pkg/endpoints"
)

// APIKey is the key every test client sends.
const APIKey = "ep_test_key_123"

// Harness bundles a command base with the mock UI and server behind it.
type Harness struct {
	Command *base.Command
	UI      *cli.MockUi
	Fs      afero.Fs
	Server  *httptest.Server
}

// New starts a mock API server running handler and returns a command base
// whose client points at it. Files go to an in-memory filesystem.
func New(t *testing.T, handler http.HandlerFunc) *Harness {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	ui := cli.NewMockUi()
	fs := afero.NewMemMapFs()
	log := hclog.NewNullLogger()

	clients := endpoints.NewAccessor(func() (*endpoints.Client, error) {
		return endpoints.NewClient(&endpoints.Config{
			BaseURL: srv.URL,
			APIKey:  APIKey,
			Logger:  log,
			Fs:      fs,
		})
	})

	b := base.NewCommand(ui, log, clients)
	b.Fs = fs

	return &Harness{
		Command: b,
		UI:      ui,
		Fs:      fs,
		Server:  srv,
	}
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Unreachable fails the test if the command makes any API request.
func Unreachable(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	}
}
