package queue

// EmptyQueueError is returned when an element is requested from an empty queue.
type EmptyQueueError struct{}

func (EmptyQueueError) Error() string {
	return "PriorityQueue is empty!"
}

// ErrEmptyQueue can be matched with errors.Is.
var ErrEmptyQueue error = EmptyQueueError{}
