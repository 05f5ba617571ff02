// Package binding provides the observable integer shared by the stepper
// components and their host.
//
// The host owns the value. Components read it with Get, write it with Set,
// and learn about writes made elsewhere by comparing Version or by
// subscribing. Subscribers are called synchronously after every change,
// in subscription order, outside the internal lock, so a subscriber may
// safely call Get.
//
//	v := binding.NewInt(5)
//	cancel := v.Subscribe(func(prev, next int) {
//	    logging.Info("value changed", zap.Int("old", prev), zap.Int("new", next))
//	})
//	defer cancel()
//	v.Set(6)
package binding

import "sync"

// ChangeFunc is called with the previous and the new value.
type ChangeFunc func(prev, next int)

// Int is a read/write integer with change notification.
type Int struct {
	mu      sync.Mutex
	value   int
	version uint64
	nextID  int
	subs    []subscriber
}

type subscriber struct {
	id int
	fn ChangeFunc
}

// NewInt returns a binding seeded with v.
func NewInt(v int) *Int {
	return &Int{value: v}
}

// Get returns the current value.
func (b *Int) Get() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

// Version returns a counter that increases on every change.
func (b *Int) Version() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.version
}

// Set stores v and notifies subscribers. Setting the current value is a
// no-op and does not notify.
func (b *Int) Set(v int) {
	b.mu.Lock()
	old := b.value
	if old == v {
		b.mu.Unlock()
		return
	}
	b.value = v
	b.version++
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(old, v)
	}
}

// Subscribe registers fn and returns a func that removes it. The returned
// func may be called more than once.
func (b *Int) Subscribe(fn ChangeFunc) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}
