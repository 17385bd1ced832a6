package client

const defaultConfigurationPath = "/usr/local/etc/whispertunnel/client_configuration.json"

type Resolver struct {
}

func NewResolver() Resolver {
	return Resolver{}
}

func (r Resolver) Resolve() (string, error) {
	return defaultConfigurationPath, nil
}
