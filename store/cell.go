package store

import "sync"

// cell is a mutex-guarded state value with change listeners. Listeners run
// outside the lock, in registration order, with a copy of the new state.
type cell[S any] struct {
	mu    sync.Mutex
	state S
	clone func(S) S
	subs  map[int]func(S)
	order []int
	next  int
}

func newCell[S any](initial S, clone func(S) S) *cell[S] {
	return &cell[S]{state: initial, clone: clone, subs: map[int]func(S){}}
}

func (c *cell[S]) snapshot() S {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clone(c.state)
}

func (c *cell[S]) update(fn func(*S)) {
	c.mu.Lock()
	fn(&c.state)
	snap := c.clone(c.state)
	subs := make([]func(S), 0, len(c.order))
	for _, id := range c.order {
		subs = append(subs, c.subs[id])
	}
	c.mu.Unlock()

	for _, f := range subs {
		f(snap)
	}
}

func (c *cell[S]) subscribe(fn func(S)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.next
	c.next++
	c.subs[id] = fn
	c.order = append(c.order, id)
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subs, id)
			for i, v := range c.order {
				if v == id {
					c.order = append(c.order[:i], c.order[i+1:]...)
					break
				}
			}
		})
	}
}
