package config

import "errors"

// Validation errors returned by the per-binary config views when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid food API client settings
	// (for example, missing base URL or non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid cache storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing or non-positive user id).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background job settings
	// (for example, a negative refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidConnectivityConfigs indicates invalid reachability probe
	// settings (for example, a non-positive probe interval or timeout).
	ErrInvalidConnectivityConfigs = errors.New("invalid connectivity configuration")
	// ErrInvalidStubServerConfigs indicates invalid development stub server
	// settings (for example, a missing address or non-positive page size).
	ErrInvalidStubServerConfigs = errors.New("invalid stub server configuration")
)
