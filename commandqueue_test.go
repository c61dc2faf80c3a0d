package engine

import "testing"

func TestCommandQueuePushPopOrder(t *testing.T) {
	q := NewCommandQueue(4)

	if err := q.Push(PlayCmd{}); err != nil {
		t.Fatal(err)
	}
	if err := q.Push(PauseCmd{}); err != nil {
		t.Fatal(err)
	}

	first, ok := q.Pop()
	if !ok {
		t.Fatal("expected a command")
	}
	if _, isPlay := first.(PlayCmd); !isPlay {
		t.Errorf("first popped command should be PlayCmd, got %T", first)
	}

	second, ok := q.Pop()
	if !ok {
		t.Fatal("expected a second command")
	}
	if _, isPause := second.(PauseCmd); !isPause {
		t.Errorf("second popped command should be PauseCmd, got %T", second)
	}
}

func TestCommandQueuePopEmptyReturnsFalse(t *testing.T) {
	q := NewCommandQueue(4)
	if _, ok := q.Pop(); ok {
		t.Error("Pop on an empty queue should return false")
	}
}

func TestCommandQueueFullReturnsError(t *testing.T) {
	q := NewCommandQueue(2) // rounds up to next power of two (2)

	if err := q.Push(PlayCmd{}); err != nil {
		t.Fatal(err)
	}
	if err := q.Push(PauseCmd{}); err != nil {
		t.Fatal(err)
	}
	if err := q.Push(StopCmd{}); err != ErrQueueFull {
		t.Errorf("Push on a full queue should return ErrQueueFull, got %v", err)
	}
}

func TestCommandQueueWrapsAroundRingBuffer(t *testing.T) {
	q := NewCommandQueue(2)

	for i := 0; i < 100; i++ {
		if err := q.Push(PlayCmd{}); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
		if _, ok := q.Pop(); !ok {
			t.Fatalf("pop %d: expected a command", i)
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after equal push/pop pairs", q.Len())
	}
}
