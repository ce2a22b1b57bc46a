// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults for fields no source has set
//
// The main entry points are [GetClientConfig] for the TUI client binary and
// [GetStubServerConfig] for the development stub server.
package config
