package services

import "sync"

// Durable storage keys. The blob shapes under these keys are the persistence
// contract; renaming one orphans previously saved state.
const (
	keyUser        = "user"
	keyProducts    = "products"
	keyCart        = "cart"
	keySubmissions = "contactSubmissions"
)

// notifier gives a store observer semantics: Subscribe returns an
// unsubscribe handle, and mutations call notify synchronously after the
// persisted write completes.
type notifier struct {
	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

func (n *notifier) Subscribe(fn func()) (unsubscribe func()) {
	n.subMu.Lock()
	defer n.subMu.Unlock()
	if n.subs == nil {
		n.subs = map[int]func(){}
	}
	id := n.nextSub
	n.nextSub++
	n.subs[id] = fn
	return func() {
		n.subMu.Lock()
		defer n.subMu.Unlock()
		delete(n.subs, id)
	}
}

func (n *notifier) notify() {
	n.subMu.Lock()
	fns := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
