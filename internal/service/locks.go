package service

import "sync"

// keyedLocks serializes the multi-write operations per affected
// startup/user id. Entries are never evicted; the key space is bounded
// by the number of live entities.
type keyedLocks struct {
	m sync.Map // key -> *sync.Mutex
}

func (k *keyedLocks) lock(key string) func() {
	v, _ := k.m.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
