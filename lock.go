package natorder

import (
	"reflect"
	"sync"
)

// lockTable serializes sorts of collections that share elements.
// A collection is identified by the address range of its elements in the backing array,
// so overlapping views of one array exclude each other while disjoint ones don't.
type lockTable struct {
	mu   sync.Mutex
	cond *sync.Cond
	held []*addrRange
}

// addrRange is the inclusive range of element addresses of a collection.
type addrRange struct {
	first uintptr
	last  uintptr
}

func (r *addrRange) overlaps(other *addrRange) bool {
	return r.first <= other.last && other.first <= r.last
}

func newLockTable() *lockTable {
	table := &lockTable{}
	table.cond = sync.NewCond(&table.mu)
	return table
}

// lock blocks until no other goroutine holds a range overlapping rows, and returns the function to release it.
// rows must not be empty.
func (table *lockTable) lock(rows []Row) func() {
	key := &addrRange{
		first: reflect.ValueOf(&rows[0]).Pointer(),
		last:  reflect.ValueOf(&rows[len(rows)-1]).Pointer(),
	}

	table.mu.Lock()
	for table.overlapsLocked(key) {
		table.cond.Wait()
	}
	table.held = append(table.held, key)
	table.mu.Unlock()

	return func() {
		table.mu.Lock()
		for i, r := range table.held {
			if r == key {
				table.held = append(table.held[:i], table.held[i+1:]...)
				break
			}
		}
		table.mu.Unlock()
		table.cond.Broadcast()
	}
}

func (table *lockTable) overlapsLocked(key *addrRange) bool {
	for _, r := range table.held {
		if r.overlaps(key) {
			return true
		}
	}
	return false
}

// len returns the number of collections that are locked.
func (table *lockTable) len() int {
	table.mu.Lock()
	defer table.mu.Unlock()
	return len(table.held)
}
