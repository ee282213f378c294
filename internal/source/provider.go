package source

import "errors"

// Sampler refreshes one data model from its backing source.
type Sampler interface {
	Sample() error
}

// Provider fans one update out to a set of samplers. It satisfies the
// dashboard's DataProvider interface. A failing sampler does not stop
// the others; their errors are joined.
type Provider struct {
	samplers []Sampler
}

// NewProvider creates a provider over the given samplers.
func NewProvider(samplers ...Sampler) *Provider {
	return &Provider{samplers: samplers}
}

// Add appends a sampler.
func (p *Provider) Add(s Sampler) {
	p.samplers = append(p.samplers, s)
}

// Update samples every source once.
func (p *Provider) Update() error {
	var errs []error
	for _, s := range p.samplers {
		if err := s.Sample(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
