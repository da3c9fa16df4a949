package version

// Version is the current version of the endpoints CLI. It is overridden at
// build time with -ldflags "-X .../internal/version.Version=<v>".
var Version = "0.1.0-dev"
