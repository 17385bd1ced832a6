package server

import (
	"fmt"

	"whispertunnel/application"
	serverConfiguration "whispertunnel/infrastructure/PAL/configuration/server"
	"whispertunnel/infrastructure/PAL/tun_manager"
)

type AppDependencies interface {
	Initialize() error
	Configuration() serverConfiguration.Configuration
	SessionKey() []byte
	TunManager() application.TunManager
}

type Dependencies struct {
	conf       serverConfiguration.Configuration
	key        []byte
	tun        application.TunManager
	cfgManager serverConfiguration.ConfigurationManager
}

func NewDependencies(cfgManager serverConfiguration.ConfigurationManager) AppDependencies {
	return &Dependencies{cfgManager: cfgManager}
}

func (s *Dependencies) Initialize() error {
	conf, err := s.cfgManager.Configuration()
	if err != nil {
		return fmt.Errorf("failed to read server configuration: %w", err)
	}

	key, keyErr := conf.SessionKey()
	if keyErr != nil {
		return fmt.Errorf("failed to decode session key: %w", keyErr)
	}

	s.tun, err = tun_manager.NewPlatformTunManager(conf.Settings)
	if err != nil {
		return fmt.Errorf("failed to configure tun: %w", err)
	}

	s.conf = *conf
	s.key = key
	return nil
}

func (s *Dependencies) Configuration() serverConfiguration.Configuration {
	return s.conf
}

func (s *Dependencies) SessionKey() []byte {
	return s.key
}

func (s *Dependencies) TunManager() application.TunManager {
	return s.tun
}
