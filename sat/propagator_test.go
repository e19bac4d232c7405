package sat

import "testing"

// TestPropQueue_PushDedupsAgainstPresentSet confirms that pushing an id
// already in the queue is a no-op (the data model's membership guarantee),
// not a second enqueue that would make a propagator run twice per fixpoint.
func TestPropQueue_PushDedupsAgainstPresentSet(t *testing.T) {
	var pq propQueue
	pq.growTo(4)

	pq.push(PropagatorID(1))
	pq.push(PropagatorID(2))
	pq.push(PropagatorID(1))

	var popped []PropagatorID
	for !pq.empty() {
		popped = append(popped, pq.pop())
	}

	want := []PropagatorID{1, 2}
	if len(popped) != len(want) || popped[0] != want[0] || popped[1] != want[1] {
		t.Fatalf("popped = %v, want %v", popped, want)
	}
}

// TestPropQueue_PopAllowsRepush checks that once an id has been popped it can
// be pushed again, since present-set membership should be cleared on pop.
func TestPropQueue_PopAllowsRepush(t *testing.T) {
	var pq propQueue
	pq.growTo(2)

	pq.push(PropagatorID(0))
	if got := pq.pop(); got != PropagatorID(0) {
		t.Fatalf("pop() = %d, want 0", got)
	}
	if !pq.empty() {
		t.Fatal("expected queue to be empty after popping its only entry")
	}

	pq.push(PropagatorID(0))
	if pq.empty() {
		t.Fatal("expected re-pushed id to be present again")
	}
	if got := pq.pop(); got != PropagatorID(0) {
		t.Fatalf("pop() after repush = %d, want 0", got)
	}
}

// TestPropQueue_Clear empties the queue and its present-set bookkeeping so a
// later push of any previously-queued id is accepted again.
func TestPropQueue_Clear(t *testing.T) {
	var pq propQueue
	pq.growTo(3)

	pq.push(PropagatorID(0))
	pq.push(PropagatorID(1))
	pq.clear()

	if !pq.empty() {
		t.Fatal("expected queue to be empty after clear")
	}

	pq.push(PropagatorID(0))
	popped := pq.pop()
	if popped != PropagatorID(0) {
		t.Fatalf("pop() after clear+repush = %d, want 0", popped)
	}
}
