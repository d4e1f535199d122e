package queue

import (
	"container/list"

	"github.com/sirupsen/logrus"
)

// OrderedQueue keeps its elements sorted by a comparator and hands them out
// front first. Elements of equal rank come out in the order they were pushed.
//
// OrderedQueue is not safe for concurrent use.
type OrderedQueue[T any] struct {
	items   *list.List
	compare Comparator[T]
	logger  *logrus.Logger
}

var _ Queue[int] = (*OrderedQueue[int])(nil)

// New returns an empty queue ordered by compare. It panics if compare is nil.
func New[T any](compare Comparator[T], opts ...Option) *OrderedQueue[T] {
	if compare == nil {
		panic("queue: nil comparator")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &OrderedQueue[T]{
		items:   list.New(),
		compare: compare,
		logger:  cfg.logger,
	}
}

// NewNumeric returns an empty queue of numbers polled in ascending order.
func NewNumeric[T Number](opts ...Option) *OrderedQueue[T] {
	return New[T](Compare[T], opts...)
}

// Push inserts value before the first element that sorts strictly after it,
// so it lands behind every element of equal rank.
func (que *OrderedQueue[T]) Push(value T) {
	e := que.items.Front()
	for e != nil && que.compare(valueOf[T](e), value) <= 0 {
		e = e.Next()
	}
	if e == nil {
		que.items.PushBack(value)
	} else {
		que.items.InsertBefore(value, e)
	}
	if que.logger.IsLevelEnabled(logrus.DebugLevel) {
		que.logger.WithField("len", que.items.Len()).Debug("pushed item to ordered queue")
	}
}

// Poll removes and returns the front element.
func (que *OrderedQueue[T]) Poll() (T, error) {
	front := que.items.Front()
	if front == nil {
		que.logger.Debug("poll an empty ordered queue")
		return *new(T), ErrEmptyQueue
	}
	que.items.Remove(front)
	return valueOf[T](front), nil
}

// Peek returns the front element without removing it.
func (que *OrderedQueue[T]) Peek() (T, error) {
	front := que.items.Front()
	if front == nil {
		que.logger.Debug("peek an empty ordered queue")
		return *new(T), ErrEmptyQueue
	}
	return valueOf[T](front), nil
}

func (que *OrderedQueue[T]) Len() int {
	return que.items.Len()
}

func (que *OrderedQueue[T]) IsEmpty() bool {
	return que.items.Len() == 0
}

// valueOf unwraps a list element. A nil interface value stored for an
// interface-typed T unwraps to the zero T instead of panicking.
func valueOf[T any](e *list.Element) T {
	v, _ := e.Value.(T)
	return v
}
