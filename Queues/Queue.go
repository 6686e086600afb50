package Queues

// Queue is a FIFO container. Pop on an empty Queue returns *EmptyQueueError.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	//Peek the head without removing it. The bool is false when the queue is empty.
	Peek() (T, bool)
	Empty() bool
}

// ArrayQueue is a Queue backed by a circular slice.
type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
