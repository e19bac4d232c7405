package sat

// KeyedVec is a dense vector indexed by an integer-like key. It grows only
// through GrowTo, GrowToWith and Push; Get, Set and Ptr panic on a key past
// the end. Every "allocate a fresh variable" call grows every keyed vector
// that is indexed by variable.
type KeyedVec[K ~int32 | ~int, V any] struct {
	data []V
}

// Len returns the number of slots currently allocated.
func (kv *KeyedVec[K, V]) Len() int {
	return len(kv.data)
}

// GrowTo ensures the vector has at least n slots, filling new slots with the
// zero value of V.
func (kv *KeyedVec[K, V]) GrowTo(n int) {
	for len(kv.data) < n {
		var zero V
		kv.data = append(kv.data, zero)
	}
}

// GrowToWith ensures the vector has at least n slots, filling new slots by
// calling make.
func (kv *KeyedVec[K, V]) GrowToWith(n int, make func() V) {
	for len(kv.data) < n {
		kv.data = append(kv.data, make())
	}
}

// Push appends a value and returns its key.
func (kv *KeyedVec[K, V]) Push(v V) K {
	kv.data = append(kv.data, v)
	return K(len(kv.data) - 1)
}

func (kv *KeyedVec[K, V]) Get(k K) V {
	return kv.data[k]
}

func (kv *KeyedVec[K, V]) Set(k K, v V) {
	kv.data[k] = v
}

// Ptr returns a pointer to the slot for k, for in-place mutation.
func (kv *KeyedVec[K, V]) Ptr(k K) *V {
	return &kv.data[k]
}

// PresentSet is a bitset over a dense integer key space, used wherever a
// "membership" test is all that is needed (the propagator queue's
// de-duplication gate, in particular). Unlike a timestamp-based reset set it
// supports clearing single members in O(1), which the queue needs on pop.
type PresentSet struct {
	present []bool
}

func (ps *PresentSet) GrowTo(n int) {
	for len(ps.present) < n {
		ps.present = append(ps.present, false)
	}
}

func (ps *PresentSet) Contains(i int) bool {
	return ps.present[i]
}

func (ps *PresentSet) Add(i int) {
	ps.present[i] = true
}

func (ps *PresentSet) Remove(i int) {
	ps.present[i] = false
}
