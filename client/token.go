package client

import "sync"

// tokenCache holds the current access token in memory. The token is never
// written to disk; a fresh process starts empty and recovers through
// Hydrate's cookie exchange.
type tokenCache struct {
	mu    sync.Mutex
	token string
}

func (c *tokenCache) Set(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *tokenCache) Get() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *tokenCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}
