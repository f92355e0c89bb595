package remote

import "github.com/standards-watch/activities/lib/cache"

// Client is a page store shared between runs. Get returns nil without error
// when the key is absent.
type Client interface {
	Get(key string) (*cache.Page, error)
	Set(key string, page *cache.Page) error
	Ready() bool
}
