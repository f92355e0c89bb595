package local

import (
	"sync"

	"github.com/standards-watch/activities/lib/cache"
	"github.com/standards-watch/activities/lib/cache/remote"
)

func New() Client {
	return &local{
		store: make(map[string]*cache.Page),
		mut:   &sync.RWMutex{},
	}
}

type Client interface {
	Get(key string) *cache.Page
	Set(key string, page *cache.Page)
	Delete(key string)
}

type local struct {
	store map[string]*cache.Page
	mut   *sync.RWMutex
}

func (l *local) Get(key string) *cache.Page {
	l.mut.RLock()
	defer l.mut.RUnlock()

	page, ok := l.store[key]
	if !ok {
		return nil
	}

	return page
}

func (l *local) Set(key string, page *cache.Page) {
	l.mut.Lock()
	defer l.mut.Unlock()

	l.store[key] = page
}

func (l *local) Delete(key string) {
	l.mut.Lock()
	defer l.mut.Unlock()

	delete(l.store, key)
}

// NewStore wraps the map store in the remote.Client interface so it can
// serve as a page cache backend. Pages only live for the duration of the
// process.
func NewStore() remote.Client {
	return &store{client: New()}
}

type store struct {
	client Client
}

func (s *store) Get(key string) (*cache.Page, error) {
	return s.client.Get(key), nil
}

func (s *store) Set(key string, page *cache.Page) error {
	s.client.Set(key, page)
	return nil
}

func (s *store) Ready() bool {
	return true
}
