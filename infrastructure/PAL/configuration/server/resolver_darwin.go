package server

const defaultConfigurationPath = "/usr/local/etc/whispertunnel/server_configuration.json"

type Resolver struct {
}

func NewResolver() Resolver {
	return Resolver{}
}

func (r Resolver) Resolve() (string, error) {
	return defaultConfigurationPath, nil
}
