package events

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/constant"
)

// slot holds one event; ready flips true only after ev is fully written
type slot struct {
	ev    GameEvent
	ready atomic.Bool
}

// EventQueue is a bounded multi-producer, single-consumer ring of game events
// Producers claim a slot index with CAS on tail; the frame loop is the only consumer
// When full, the oldest unread events are overwritten and counted in Dropped
type EventQueue struct {
	slots   [constant.EventQueueSize]slot
	head    atomic.Uint64 // Next index to read
	tail    atomic.Uint64 // Next index to claim
	dropped atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest one on overflow
func (eq *EventQueue) Push(event GameEvent) {
	pos := eq.tail.Add(1) - 1
	s := &eq.slots[pos&constant.EventBufferMask]
	s.ev = event
	s.ready.Store(true)

	// Drag head forward past overwritten entries
	for {
		head := eq.head.Load()
		if pos+1-head <= constant.EventQueueSize {
			return
		}
		if eq.head.CompareAndSwap(head, pos+1-constant.EventQueueSize) {
			eq.dropped.Add(pos + 1 - constant.EventQueueSize - head)
			return
		}
	}
}

// Len returns the number of unread events, capped at capacity
func (eq *EventQueue) Len() int {
	n := eq.tail.Load() - eq.head.Load()
	return int(min(n, constant.EventQueueSize))
}

// Dropped returns how many events were overwritten before being read
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}

// Consume returns all pending events in FIFO order, nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	out := eq.ConsumeInto(nil)
	if len(out) == 0 {
		return nil
	}
	return out
}

// ConsumeInto appends pending events to dst and returns it
// Stops at the first slot a producer has claimed but not finished writing
func (eq *EventQueue) ConsumeInto(dst []GameEvent) []GameEvent {
	for {
		head := eq.head.Load()
		tail := eq.tail.Load()
		if tail == head {
			return dst
		}

		base := len(dst)
		for pos := head; pos < tail; pos++ {
			s := &eq.slots[pos&constant.EventBufferMask]
			if !s.ready.Load() {
				break
			}
			dst = append(dst, s.ev)
		}

		n := uint64(len(dst) - base)
		if eq.head.CompareAndSwap(head, head+n) {
			for pos := head; pos < head+n; pos++ {
				eq.slots[pos&constant.EventBufferMask].ready.Store(false)
			}
			return dst
		}
		// A producer overran head while reading; retry from the new head
		dst = dst[:base]
	}
}
