package airtable

import "sync"

// Provisioner hands out one memoized client for the process lifetime. The
// handle is built on first use and never torn down or refreshed. Construction
// failure is NOT memoized: a later call after configuration is fixed may still
// succeed, which is why this is a mutex and a nil check rather than sync.Once.
type Provisioner struct {
	mu     sync.Mutex
	cfg    func() Config
	client *Client
}

// NewProvisioner takes a config source instead of a snapshot so that the first
// successful call sees the configuration current at that moment.
func NewProvisioner(cfg func() Config) *Provisioner {
	return &Provisioner{cfg: cfg}
}

// Client returns the shared handle, constructing it on first use.
func (p *Provisioner) Client() (*Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}

	client, err := NewClient(p.cfg())
	if err != nil {
		return nil, err
	}

	p.client = client
	return p.client, nil
}
