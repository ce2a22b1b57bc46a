package config

import "fmt"

// StubServerConfig is the configuration view consumed by the development
// stub server binary.
type StubServerConfig struct {
	// HTTPAddress is the TCP address the stub listens on.
	HTTPAddress string
	// PageSize is how many items the stub serves per catalog page.
	PageSize int
}

// GetStubServerConfig builds and validates the stub server view from the
// merged structured configuration.
func GetStubServerConfig() (*StubServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	stubCfg := &StubServerConfig{
		HTTPAddress: cfg.StubServer.HTTPAddress,
		PageSize:    cfg.StubServer.PageSize,
	}

	return stubCfg, stubCfg.validate()
}
