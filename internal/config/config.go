// Package config resolves the settings the endpoints CLI needs to reach the
// remote API.
//
// Settings are read once at process start from an optional HCL file and the
// environment, then passed down explicitly. Environment values win over the
// file.
//
// Example configuration (HCL):
//
//	api_url     = "https://endpoints.example.com"
//	api_key     = "ep_live_..."
//	results_dir = "./results"
//	log_level   = "debug"
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"
)

const (
	EnvAPIURL     = "ENDPOINTS_API_URL"
	EnvAPIKey     = "ENDPOINTS_API_KEY"
	EnvResultsDir = "ENDPOINTS_RESULTS_DIR"
	EnvLogLevel   = "ENDPOINTS_LOG_LEVEL"
	EnvConfigFile = "ENDPOINTS_CONFIG"

	DefaultResultsDir = "results"
	DefaultLogLevel   = "warn"
)

var logLevels = []interface{}{"trace", "debug", "info", "warn", "error", "off"}

// Settings holds the resolved configuration for one process run.
type Settings struct {
	// APIURL is the base URL of the Endpoints API, e.g. "https://endpoints.example.com".
	APIURL string `hcl:"api_url,optional"`

	// APIKey is sent as a bearer token on every request. Never logged.
	APIKey string `hcl:"api_key,optional"`

	// ResultsDir is where downloads and exports land by default.
	ResultsDir string `hcl:"results_dir,optional"`

	// LogLevel is an hclog level name.
	LogLevel string `hcl:"log_level,optional"`
}

// LookupFunc looks up a single environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// ValidationResult reports every settings problem found in one pass.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// Err returns the problems as one combined error, or nil when valid.
func (r ValidationResult) Err() error {
	var result *multierror.Error
	for _, msg := range r.Errors {
		result = multierror.Append(result, errors.New(msg))
	}
	if result == nil {
		return nil
	}
	result.ErrorFormat = formatErrors
	return result.ErrorOrNil()
}

func formatErrors(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return "Missing required environment variables: " + strings.Join(msgs, ", ")
}

// Resolve reads settings from the HCL file named by ENDPOINTS_CONFIG (if any)
// and overlays the environment. The result is not validated.
func Resolve(lookup LookupFunc) (*Settings, error) {
	s := &Settings{}

	if path, ok := lookup(EnvConfigFile); ok && path != "" {
		if err := hclsimple.DecodeFile(path, nil, s); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	overlay(&s.APIURL, lookup, EnvAPIURL)
	overlay(&s.APIKey, lookup, EnvAPIKey)
	overlay(&s.ResultsDir, lookup, EnvResultsDir)
	overlay(&s.LogLevel, lookup, EnvLogLevel)

	if s.ResultsDir == "" {
		s.ResultsDir = DefaultResultsDir
	}
	if s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}

	return s, nil
}

func overlay(dst *string, lookup LookupFunc, key string) {
	if val, ok := lookup(key); ok && val != "" {
		*dst = val
	}
}

// Validate checks the settings and collects all problems rather than stopping
// at the first one.
func (s *Settings) Validate() ValidationResult {
	var errs []string

	if err := validation.Validate(s.APIURL,
		validation.Required.Error(EnvAPIURL+" is required"),
		validation.By(httpURL),
	); err != nil {
		errs = append(errs, err.Error())
	}

	if err := validation.Validate(s.APIKey,
		validation.Required.Error(EnvAPIKey+" is required"),
	); err != nil {
		errs = append(errs, err.Error())
	}

	if err := validation.Validate(strings.ToLower(s.LogLevel),
		validation.In(logLevels...).Error(EnvLogLevel+" must be one of trace, debug, info, warn, error, off"),
	); err != nil {
		errs = append(errs, err.Error())
	}

	return ValidationResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

func httpURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New(EnvAPIURL + " must be an http or https URL")
	}
	return nil
}

// Load resolves and validates settings in one step. When only validation
// fails, the resolved settings are returned along with the error so callers
// can still use the results dir and log level.
func Load(lookup LookupFunc) (*Settings, error) {
	s, err := Resolve(lookup)
	if err != nil {
		return nil, err
	}
	return s, s.Validate().Err()
}
