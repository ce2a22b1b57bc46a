package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// UserID is the catalog user the client acts for.
	UserID int64
	// Version is the application version shown in the TUI.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the food API root used by the client.
	BaseURL string
	// RequestTimeout is the timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local cache database settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the local cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the periodic refresh runs;
	// zero keeps it off.
	RefreshInterval time.Duration
}

// ClientConnectivity contains reachability probe settings.
type ClientConnectivity struct {
	// ProbeInterval is the pause between reachability probes.
	ProbeInterval time.Duration
	// ProbeTimeout bounds a single probe attempt.
	ProbeTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the food API address and timeout.
	Adapter ClientAdapter
	// Storage contains client cache settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Connectivity contains reachability probe settings.
	Connectivity ClientConnectivity
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			UserID:  cfg.App.UserID,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
		Connectivity: ClientConnectivity{
			ProbeInterval: cfg.Connectivity.ProbeInterval,
			ProbeTimeout:  cfg.Connectivity.ProbeTimeout,
		},
	}

	return clientCfg, clientCfg.validate()
}
