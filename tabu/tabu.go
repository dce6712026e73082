// Package tabu implements the bounded, hash-indexed FIFO memory used by
// Tabu Search to forbid cycling back to recently visited moves.
package tabu

import (
	"container/list"
	"fmt"

	"gomets/move"
)

// SimpleList is a bounded FIFO of cloned move tokens with an O(1)
// average membership test. Capacity K > 0; recording a K+1-th token
// evicts the oldest.
//
// M is the concrete move type (an F-bounded ManaMove[S, M]) so that
// Clone, Hash and Equal are used without any interface-to-concrete
// type assertion.
type SimpleList[S any, M move.ManaMove[S, M]] struct {
	capacity int
	queue    *list.List // of M, oldest at Front
	index    map[uint64][]*list.Element
}

// NewSimpleList returns an empty tabu list of the given capacity.
func NewSimpleList[S any, M move.ManaMove[S, M]](capacity int) (*SimpleList[S, M], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("tabu: capacity must be > 0 (got %d)", capacity)
	}
	return &SimpleList[S, M]{
		capacity: capacity,
		queue:    list.New(),
		index:    make(map[uint64][]*list.Element),
	}, nil
}

// Capacity returns K.
func (t *SimpleList[S, M]) Capacity() int { return t.capacity }

// Len returns the current number of recorded tokens (0 <= Len <= K).
func (t *SimpleList[S, M]) Len() int { return t.queue.Len() }

// Tabu reports whether m's equality class is currently present in the
// list, independent of the current solution.
func (t *SimpleList[S, M]) Tabu(m M) bool {
	h := m.Hash()
	for _, el := range t.index[h] {
		if el.Value.(M).Equal(m) {
			return true
		}
	}
	return false
}

// TabuWithSolution is the solution-aware membership hook; the simple
// list ignores s and defers to Tabu, but the signature exists so
// callers can substitute a solution-dependent tabu list without
// changing the search engine's contract.
func (t *SimpleList[S, M]) TabuWithSolution(s S, m M) bool {
	return t.Tabu(m)
}

// Record clones m and pushes it onto the FIFO, evicting the oldest
// token first if the list is already at capacity.
func (t *SimpleList[S, M]) Record(m M) {
	if t.queue.Len() >= t.capacity {
		t.evictOldest()
	}
	clone := m.Clone()
	el := t.queue.PushBack(clone)
	h := clone.Hash()
	t.index[h] = append(t.index[h], el)
}

// Reset empties the queue and the membership index.
func (t *SimpleList[S, M]) Reset() {
	t.queue.Init()
	t.index = make(map[uint64][]*list.Element)
}

func (t *SimpleList[S, M]) evictOldest() {
	front := t.queue.Front()
	if front == nil {
		return
	}
	t.queue.Remove(front)
	oldest := front.Value.(M)
	h := oldest.Hash()
	bucket := t.index[h]
	for i, el := range bucket {
		if el == front {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(t.index, h)
	} else {
		t.index[h] = bucket
	}
}
