// Package inflight allows at most one running mutation per key.
package inflight

import (
	"errors"
	"sync"
)

var ErrBusy = errors.New("operation already in flight")

type Guard struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

func New() *Guard {
	return &Guard{busy: make(map[string]struct{})}
}

// Acquire marks key as busy. It fails with ErrBusy while another holder has
// not called its release func yet.
func (g *Guard) Acquire(key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.busy[key]; ok {
		return nil, ErrBusy
	}
	g.busy[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.busy, key)
			g.mu.Unlock()
		})
	}, nil
}
