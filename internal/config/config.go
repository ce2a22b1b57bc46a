// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-food-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the catalog user id and
	// the application version.
	App App `envPrefix:"APP_"`

	// Adapter holds settings for the outbound food API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local cache database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Connectivity holds settings for the network reachability probe.
	Connectivity Connectivity `envPrefix:"CONNECTIVITY_"`

	// StubServer holds settings for the local development stub server.
	StubServer StubServer `envPrefix:"STUB_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged with the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// UserID is the catalog user whose feed and likes this client operates
	// on. It becomes the {userId} path segment of every API call.
	// Env: APP_USER_ID
	UserID int64 `env:"USER_ID"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown in the TUI build info view.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds settings for the outbound HTTP client that talks to the
// food catalog API.
type Adapter struct {
	// BaseURL is the root of the food API, host or full URL
	// (e.g. "localhost:8080" or "https://food.example.com").
	// The scheme defaults to http when omitted.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound request (e.g. "12s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backends.
type Storage struct {
	// DB holds the cache database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local cache database.
type DB struct {
	// DSN is the SQLite file path of the local cache
	// (e.g. "food_cache.db"). In-memory databases are rejected: the cache
	// must survive restarts to be of any use offline.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval is how often the periodic feed refresh runs.
	// Zero disables the job; reconnects and explicit refreshes remain the
	// only sync triggers then.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Connectivity holds settings for the reachability probe that drives the
// online/offline signal.
type Connectivity struct {
	// ProbeInterval is the pause between reachability probes (e.g. "5s").
	// Env: CONNECTIVITY_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// ProbeTimeout bounds a single probe attempt (e.g. "2s").
	// Env: CONNECTIVITY_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`
}

// StubServer holds settings for the bundled in-memory development server.
type StubServer struct {
	// HTTPAddress is the TCP address the stub listens on, in "host:port"
	// format (e.g. "localhost:8080").
	// Env: STUB_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// PageSize is how many items the stub serves per catalog page.
	// Env: STUB_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults for whatever is still unset
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
