package endpoints

import "sync"

// Accessor lazily builds a Client on first use and hands out the same
// instance until Reset is called. The CLI creates one per process; tests use
// Reset to start over with different settings.
type Accessor struct {
	mu     sync.Mutex
	load   func() (*Client, error)
	client *Client
}

// NewAccessor returns an Accessor that calls load to build its client.
func NewAccessor(load func() (*Client, error)) *Accessor {
	return &Accessor{load: load}
}

// Client returns the cached client, building it on first call. A load error is
// returned as-is and nothing is cached.
func (a *Accessor) Client() (*Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	c, err := a.load()
	if err != nil {
		return nil, err
	}
	a.client = c
	return c, nil
}

// Reset discards the cached client.
func (a *Accessor) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.client = nil
}
