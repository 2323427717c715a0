// Implements the LevelQueue and QueueSet, the ordered FIFO priority levels
// that hold Ready processes. Level 0 is the highest priority.

package sim

import (
	"fmt"
	"strings"
)

// LevelQueue is a FIFO queue of processes resident at one priority level.
type LevelQueue struct {
	queue []*Process
}

// Enqueue adds a process to the back of the level queue.
func (lq *LevelQueue) Enqueue(p *Process) {
	lq.queue = append(lq.queue, p)
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (lq *LevelQueue) Dequeue() *Process {
	if len(lq.queue) == 0 {
		return nil
	}
	p := lq.queue[0]
	lq.queue = lq.queue[1:]
	return p
}

// PushFront inserts a process at the front of the queue. Used by the
// preemption check: a preempted process keeps its position at its own level.
func (lq *LevelQueue) PushFront(p *Process) {
	if p == nil {
		panic("PushFront: p must not be nil")
	}
	lq.queue = append([]*Process{p}, lq.queue...)
}

// Remove deletes the given process from the queue, preserving order.
// Returns false if the process is not resident.
func (lq *LevelQueue) Remove(p *Process) bool {
	for i, q := range lq.queue {
		if q == p {
			lq.queue = append(lq.queue[:i], lq.queue[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of processes in the queue.
func (lq *LevelQueue) Len() int {
	return len(lq.queue)
}

// Peek returns the front process without removing it, nil if empty.
func (lq *LevelQueue) Peek() *Process {
	if len(lq.queue) == 0 {
		return nil
	}
	return lq.queue[0]
}

// Items returns the queue contents for iteration. The returned slice is a
// copy: the aging and boost phases mutate the queue while scanning, so
// callers always iterate over a stable snapshot.
func (lq *LevelQueue) Items() []*Process {
	out := make([]*Process, len(lq.queue))
	copy(out, lq.queue)
	return out
}

func (lq *LevelQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range lq.queue {
		sb.WriteString(p.PID)
		if i < len(lq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// QueueSet holds the ordered priority levels of the scheduler.
// Level 0 is the highest priority; selection scans levels upward.
type QueueSet struct {
	levels []*LevelQueue
}

// NewQueueSet creates a QueueSet with n empty levels.
func NewQueueSet(n int) *QueueSet {
	levels := make([]*LevelQueue, n)
	for i := range levels {
		levels[i] = &LevelQueue{}
	}
	return &QueueSet{levels: levels}
}

// NumLevels returns the number of priority levels.
func (qs *QueueSet) NumLevels() int {
	return len(qs.levels)
}

// Level returns the queue at the given level index.
func (qs *QueueSet) Level(i int) *LevelQueue {
	return qs.levels[i]
}

// Enqueue places a process at the tail of the given level and marks it Ready.
// A queue-history entry is recorded only if the level actually changed.
func (qs *QueueSet) Enqueue(p *Process, level int, tick int64) {
	p.Queue = level
	p.State = StateReady
	p.recordQueue(tick, level)
	qs.levels[level].Enqueue(p)
}

// FirstNonEmpty returns the index of the highest-priority non-empty level.
// The second return value is false if every level is empty.
func (qs *QueueSet) FirstNonEmpty() (int, bool) {
	for i, lq := range qs.levels {
		if lq.Len() > 0 {
			return i, true
		}
	}
	return 0, false
}

// AnyAbove reports whether any level strictly higher priority than the given
// level (numerically lower index) holds a process.
func (qs *QueueSet) AnyAbove(level int) bool {
	for i := 0; i < level && i < len(qs.levels); i++ {
		if qs.levels[i].Len() > 0 {
			return true
		}
	}
	return false
}

// TotalLen returns the number of Ready processes across all levels.
func (qs *QueueSet) TotalLen() int {
	total := 0
	for _, lq := range qs.levels {
		total += lq.Len()
	}
	return total
}

func (qs *QueueSet) String() string {
	parts := make([]string, len(qs.levels))
	for i, lq := range qs.levels {
		parts[i] = fmt.Sprintf("Q%d=%s", i, lq)
	}
	return strings.Join(parts, " ")
}
