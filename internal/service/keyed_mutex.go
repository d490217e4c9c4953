package service

import "sync"

// keyedMutex serializes critical sections per string key. Entries are kept
// for the process lifetime; the key space is bounded by distinct
// (user, course) pairs seen by this instance.
type keyedMutex struct {
	locks sync.Map // key -> *sync.Mutex
}

func (k *keyedMutex) Lock(key string) *sync.Mutex {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu
}
