package sim

import "testing"

func TestLevelQueue_FIFOOrder(t *testing.T) {
	// GIVEN a queue with processes [A, B, C]
	lq := &LevelQueue{}
	a, b, c := &Process{PID: "A"}, &Process{PID: "B"}, &Process{PID: "C"}
	lq.Enqueue(a)
	lq.Enqueue(b)
	lq.Enqueue(c)

	// WHEN all are dequeued
	// THEN they come out in insertion order
	want := []string{"A", "B", "C"}
	for i, w := range want {
		got := lq.Dequeue()
		if got.PID != w {
			t.Errorf("Dequeue[%d]: got %s, want %s", i, got.PID, w)
		}
	}
	if lq.Dequeue() != nil {
		t.Error("Dequeue on empty queue: want nil")
	}
}

func TestLevelQueue_PushFront_InsertsAtHead(t *testing.T) {
	lq := &LevelQueue{}
	lq.Enqueue(&Process{PID: "A"})
	lq.Enqueue(&Process{PID: "B"})

	x := &Process{PID: "X"}
	lq.PushFront(x)

	if lq.Peek() != x {
		t.Errorf("PushFront: Peek() got %v, want X", lq.Peek().PID)
	}
	if lq.Len() != 3 {
		t.Errorf("PushFront: Len() got %d, want 3", lq.Len())
	}
}

func TestLevelQueue_Remove_PreservesOrder(t *testing.T) {
	lq := &LevelQueue{}
	a, b, c := &Process{PID: "A"}, &Process{PID: "B"}, &Process{PID: "C"}
	lq.Enqueue(a)
	lq.Enqueue(b)
	lq.Enqueue(c)

	if !lq.Remove(b) {
		t.Fatal("Remove(B): got false, want true")
	}
	if lq.Remove(b) {
		t.Error("Remove(B) twice: got true, want false")
	}

	want := []string{"A", "C"}
	for i, w := range want {
		got := lq.Dequeue()
		if got.PID != w {
			t.Errorf("after Remove, Dequeue[%d]: got %s, want %s", i, got.PID, w)
		}
	}
}

func TestLevelQueue_Items_ReturnsStableSnapshot(t *testing.T) {
	// The aging phase mutates the queue while scanning; Items must return a
	// copy that is unaffected by concurrent removal.
	lq := &LevelQueue{}
	a, b := &Process{PID: "A"}, &Process{PID: "B"}
	lq.Enqueue(a)
	lq.Enqueue(b)

	items := lq.Items()
	lq.Remove(a)

	if len(items) != 2 {
		t.Fatalf("Items snapshot: got %d elements, want 2", len(items))
	}
	if items[0] != a || items[1] != b {
		t.Error("Items snapshot changed after Remove")
	}
}

func TestQueueSet_Enqueue_SetsStateAndHistory(t *testing.T) {
	qs := NewQueueSet(3)
	p := newProcess(ProcessSpec{PID: "A", BurstTime: 5})

	qs.Enqueue(p, 1, 4)

	if p.State != StateReady {
		t.Errorf("state: got %s, want %s", p.State, StateReady)
	}
	if p.Queue != 1 {
		t.Errorf("queue: got %d, want 1", p.Queue)
	}
	if len(p.QueueHistory) != 1 || p.QueueHistory[0] != (QueueChange{Tick: 4, Level: 1}) {
		t.Errorf("queue history: got %v, want [{4 1}]", p.QueueHistory)
	}

	// re-enqueueing at the same level must not duplicate the history entry
	qs.Level(1).Remove(p)
	qs.Enqueue(p, 1, 9)
	if len(p.QueueHistory) != 1 {
		t.Errorf("queue history after same-level enqueue: got %v, want 1 entry", p.QueueHistory)
	}
}

func TestQueueSet_FirstNonEmpty_ScansUpward(t *testing.T) {
	qs := NewQueueSet(3)
	if _, ok := qs.FirstNonEmpty(); ok {
		t.Error("FirstNonEmpty on empty set: got ok=true")
	}

	qs.Enqueue(newProcess(ProcessSpec{PID: "low"}), 2, 0)
	if level, ok := qs.FirstNonEmpty(); !ok || level != 2 {
		t.Errorf("FirstNonEmpty: got (%d, %v), want (2, true)", level, ok)
	}

	qs.Enqueue(newProcess(ProcessSpec{PID: "high"}), 0, 0)
	if level, ok := qs.FirstNonEmpty(); !ok || level != 0 {
		t.Errorf("FirstNonEmpty: got (%d, %v), want (0, true)", level, ok)
	}
}

func TestQueueSet_AnyAbove(t *testing.T) {
	qs := NewQueueSet(3)
	qs.Enqueue(newProcess(ProcessSpec{PID: "mid"}), 1, 0)

	if qs.AnyAbove(1) {
		t.Error("AnyAbove(1): got true, want false")
	}
	if !qs.AnyAbove(2) {
		t.Error("AnyAbove(2): got false, want true")
	}
	if qs.AnyAbove(0) {
		t.Error("AnyAbove(0): got true, want false")
	}
}
