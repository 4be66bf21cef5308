package sift

import "sync"

// ItemPool stores the shared items and remembers how many of them the
// consumer has already taken, so that the consumer can repeatedly claim
// just the items appended since its last call without re-scanning the
// collection.
//
// Any number of producers may Append concurrently. Take must not be called
// from more than one goroutine at a time; this is a precondition of the
// design, not something the pool checks at runtime.
type ItemPool struct {
	mutex sync.Mutex
	pool  []*Item

	// Number of items that were taken
	taken int
}

// NewItemPool returns an empty pool
func NewItemPool() *ItemPool {
	return &ItemPool{pool: make([]*Item, 0, itemPoolCapacity)}
}

// Len returns the number of stored items
func (p *ItemPool) Len() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return len(p.pool)
}

// Clear discards all stored items and rewinds the cursor
func (p *ItemPool) Clear() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.pool = make([]*Item, 0, itemPoolCapacity)
	p.taken = 0
}

// Reset rewinds the cursor so that every stored item is offered to the
// next Take again, without re-reading input.
//
// The lock is acquired even though the storage is untouched: Reset must
// not interleave with an in-flight Append or Take.
func (p *ItemPool) Reset() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.taken = 0
}

// Append moves the items onto the end of the pool, preserving arrival
// order. It never touches the cursor.
func (p *ItemPool) Append(items []*Item) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.pool = append(p.pool, items...)
}

// Take claims the items appended since the previous Take and returns them
// in storage order. An immediately repeated call returns an empty slice.
func (p *ItemPool) Take() []*Item {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	taken := p.taken
	p.taken = len(p.pool)
	ret := make([]*Item, len(p.pool)-taken)
	copy(ret, p.pool[taken:])
	return ret
}
