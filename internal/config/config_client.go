package config

import "os"

// ClientConfig is the configuration consumed by cmd/client.
type ClientConfig struct {
	Adapter     Adapter
	Credentials Client
	LogLevel    string

	// Args are the positional arguments naming the command to run
	// (e.g. "list", "get <id>", "create <title>").
	Args []string
}

// GetClientConfig loads the client configuration from the same sources as
// [GetStructuredConfig] and validates the client-facing part of it.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, rest, err := load(args)
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Adapter:     cfg.Adapter,
		Credentials: cfg.Client,
		LogLevel:    cfg.App.LogLevel,
		Args:        rest,
	}

	return clientCfg, clientCfg.validate()
}
