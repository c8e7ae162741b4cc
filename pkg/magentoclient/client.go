// Package magentoclient provides the entry point for creating Magento API
// clients.
package magentoclient

import (
	"context"

	"github.com/magerest/magento-go/internal/client"
	"github.com/magerest/magento-go/pkg/magento"
)

// New creates a Magento API client from the provided configuration.
//
// Example:
//
//	c, err := magentoclient.New(ctx, &magento.Config{
//		Domain:   "store.example.com",
//		Username: "admin",
//		Password: "secret",
//		Login:    true,
//	})
func New(ctx context.Context, config *magento.Config) (magento.Client, error) {
	return client.New(ctx, config)
}

// FromSettings creates a client from previously exported settings. A
// stored token is seeded into the client, so no authentication happens
// until the token expires.
func FromSettings(ctx context.Context, settings *magento.Settings, logger magento.Logger) (magento.Client, error) {
	if settings == nil {
		return nil, magento.ErrConfigRequired
	}

	c, err := client.New(ctx, &magento.Config{
		Domain:    settings.Domain,
		Username:  settings.Username,
		Password:  settings.Password,
		Scope:     settings.Scope,
		Local:     settings.Local,
		UserAgent: settings.UserAgent,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	if settings.Token != "" {
		c.SetToken(settings.Token)
	}
	return c, nil
}

// LoadAndConnect reads a settings file and builds a client from it.
func LoadAndConnect(ctx context.Context, path string, logger magento.Logger) (magento.Client, error) {
	settings, err := magento.LoadSettings(path)
	if err != nil {
		return nil, err
	}
	return FromSettings(ctx, settings, logger)
}
