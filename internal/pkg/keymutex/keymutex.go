// Package keymutex provides a mutex registry keyed by string, used to
// serialize order lifecycle transitions per order. Entries are reference
// counted and removed once the last holder releases the key, so the
// registry does not grow with the number of orders ever seen.
package keymutex

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// KeyMutex serializes critical sections per key. The zero value is not
// usable; create instances with New.
type KeyMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// New creates an empty KeyMutex.
func New() *KeyMutex {
	return &KeyMutex{entries: make(map[string]*entry)}
}

// Lock acquires the mutex for key, blocking until it is available, and
// returns the function releasing it. Locks for distinct keys never contend
// beyond the registry bookkeeping.
//
//	unlock := locks.Lock(orderID.String())
//	defer unlock()
func (k *KeyMutex) Lock(key string) func() {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			k.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(k.entries, key)
			}
			k.mu.Unlock()
		})
	}
}
