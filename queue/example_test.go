package queue_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LiuYuuChen/priorityqueue/queue"
)

func ExampleNewNumeric() {
	que := queue.NewNumeric[int]()
	que.Push(5)
	que.Push(1)
	que.Push(3)

	for {
		v, err := que.Poll()
		if errors.Is(err, queue.ErrEmptyQueue) {
			fmt.Println(err)
			break
		}
		fmt.Println(v)
	}
	// Output:
	// 1
	// 3
	// 5
	// PriorityQueue is empty!
}

// ExampleNew orders jobs by name length, longest first.
func ExampleNew() {
	byLength := func(a, b string) int {
		return len(a) - len(b)
	}
	que := queue.New[string](queue.Reverse[string](byLength))
	for _, job := range strings.Fields("gc compact flush snapshot") {
		que.Push(job)
	}

	for !que.IsEmpty() {
		job, _ := que.Poll()
		fmt.Println(job)
	}
	// Output:
	// snapshot
	// compact
	// flush
	// gc
}
