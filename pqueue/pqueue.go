// Package pqueue provides a minimum-priority queue over integers, backed by a
// slice that is kept fully sorted in ascending order.
//
// This is not a binary heap. Insert is O(n) because later elements shift to make
// room; Peek and ExtractMin are O(1). Extraction order is the same as a heap's.
//
// A Queue is not safe for concurrent use.
package pqueue

import (
	"errors"
	"iter"
	"slices"
)

// ErrEmptyQueue is returned when reading from a queue that has no elements.
var ErrEmptyQueue = errors.New("priority queue is empty")

// Queue is a minimum-priority queue. The zero value is an empty queue ready
// to use.
type Queue struct {
	// items is sorted ascending at all times; items[0] is the minimum.
	items []int
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{}
}

// Insert adds value to the queue. Equal values are placed after the ones
// already queued.
func (q *Queue) Insert(value int) {
	// Step past any run of equal values.
	idx, found := slices.BinarySearch(q.items, value)
	if found {
		for idx < len(q.items) && q.items[idx] == value {
			idx++
		}
	}

	q.items = slices.Insert(q.items, idx, value)
}

// InsertAll inserts values in argument order.
func (q *Queue) InsertAll(values ...int) {
	for _, value := range values {
		q.Insert(value)
	}
}

// ExtractMin removes and returns the smallest value. It returns ErrEmptyQueue,
// and leaves the queue untouched, if there is nothing to extract.
func (q *Queue) ExtractMin() (int, error) {
	if len(q.items) == 0 {
		return 0, ErrEmptyQueue
	}

	minVal := q.items[0]
	q.items = q.items[1:]

	if len(q.items) == 0 {
		// Drop the old backing array once drained.
		q.items = nil
	}

	return minVal, nil
}

// Peek returns the smallest value without removing it, or ErrEmptyQueue.
func (q *Queue) Peek() (int, error) {
	if len(q.items) == 0 {
		return 0, ErrEmptyQueue
	}

	return q.items[0], nil
}

// Len returns the number of queued values.
func (q *Queue) Len() int {
	return len(q.items)
}

// Empty reports whether the queue has no values.
func (q *Queue) Empty() bool {
	return len(q.items) == 0
}

// Drain returns an iterator that extracts values in ascending order until the
// queue is empty. Stopping the range early leaves the remaining values queued.
func (q *Queue) Drain() iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			value, err := q.ExtractMin()
			if err != nil {
				return
			}

			if !yield(value) {
				return
			}
		}
	}
}
