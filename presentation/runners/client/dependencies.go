package client

import (
	"fmt"

	"whispertunnel/application"
	clientConfiguration "whispertunnel/infrastructure/PAL/configuration/client"
	"whispertunnel/infrastructure/PAL/tun_manager"
)

type AppDependencies interface {
	Initialize() error
	Configuration() clientConfiguration.Configuration
	SessionKey() []byte
	TunManager() application.TunManager
}

type Dependencies struct {
	conf       clientConfiguration.Configuration
	key        []byte
	tun        application.TunManager
	cfgManager clientConfiguration.ConfigurationManager
}

func NewDependencies(cfgManager clientConfiguration.ConfigurationManager) AppDependencies {
	return &Dependencies{cfgManager: cfgManager}
}

func (c *Dependencies) Initialize() error {
	conf, err := c.cfgManager.Configuration()
	if err != nil {
		return fmt.Errorf("failed to read client configuration: %w", err)
	}

	key, keyErr := conf.SessionKey()
	if keyErr != nil {
		return fmt.Errorf("failed to decode session key: %w", keyErr)
	}

	c.tun, err = tun_manager.NewPlatformTunManager(conf.Settings)
	if err != nil {
		return fmt.Errorf("failed to configure tun: %w", err)
	}

	c.conf = *conf
	c.key = key
	return nil
}

func (c *Dependencies) Configuration() clientConfiguration.Configuration {
	return c.conf
}

func (c *Dependencies) SessionKey() []byte {
	return c.key
}

func (c *Dependencies) TunManager() application.TunManager {
	return c.tun
}
