package configuration

// Resolver resolves a configuration file path.
type Resolver interface {
	Resolve() (string, error)
}

// StaticResolver returns a fixed path; used for --config style overrides
// and in tests.
type StaticResolver struct {
	path string
}

func NewStaticResolver(path string) StaticResolver {
	return StaticResolver{path: path}
}

func (r StaticResolver) Resolve() (string, error) {
	return r.path, nil
}
