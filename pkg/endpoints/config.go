package endpoints

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// Config contains configuration for the Endpoints API client.
type Config struct {
	// BaseURL is the base URL of the Endpoints API.
	// Example: "https://endpoints.example.com"
	BaseURL string

	// APIKey is sent as a Bearer token on every request.
	APIKey string

	// HTTPClient overrides the transport. Optional.
	HTTPClient *http.Client

	// Logger receives per-request debug logs. Optional.
	Logger hclog.Logger

	// Fs is where downloaded files are written. Defaults to the OS filesystem.
	Fs afero.Fs
}

// Validate checks that the client can address the API.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL,
			validation.Required.Error("base URL is required"),
			validation.By(apiBaseURL),
		),
		validation.Field(&c.APIKey,
			validation.Required.Error("API key is required"),
		),
	)
}

// apiBaseURL accepts absolute http(s) URLs with a host, such as
// "https://endpoints.example.com" or "http://localhost:3000/".
func apiBaseURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("base URL is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL scheme %q is not supported; use http or https", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("base URL %q has no host", s)
	}
	return nil
}

// newHTTPClient creates the default HTTP client on a copy of the default
// transport. No overall timeout is set; requests are bounded only by their
// context.
func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
	}
}

func trimBaseURL(s string) string {
	return strings.TrimSuffix(s, "/")
}
