package locking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gestion_oficina/internal/usecase/interfaces"
)

func TestLocalLocker_TryOnceWhenBusy(t *testing.T) {
	l := NewLocalLocker()
	release, err := l.Obtain(context.Background(), "trabajo:t-1", time.Second, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := l.Obtain(context.Background(), "trabajo:t-1", time.Second, 0); !errors.Is(err, interfaces.ErrLockNotObtained) {
		t.Fatalf("expected ErrLockNotObtained, got %v", err)
	}

	other, err := l.Obtain(context.Background(), "trabajo:t-2", time.Second, 0)
	if err != nil {
		t.Fatalf("independent keys must not block each other: %v", err)
	}
	other()

	release()
	release() // idempotent

	again, err := l.Obtain(context.Background(), "trabajo:t-1", time.Second, 0)
	if err != nil {
		t.Fatalf("expected lock after release, got %v", err)
	}
	again()

	if len(l.slots) != 0 {
		t.Fatalf("expected slots to be cleaned up, got %d", len(l.slots))
	}
}

func TestLocalLocker_WaitTimesOut(t *testing.T) {
	l := NewLocalLocker()
	release, _ := l.Obtain(context.Background(), "k", time.Second, 0)
	defer release()

	start := time.Now()
	_, err := l.Obtain(context.Background(), "k", time.Second, 20*time.Millisecond)
	if !errors.Is(err, interfaces.ErrLockNotObtained) {
		t.Fatalf("expected ErrLockNotObtained, got %v", err)
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Fatalf("expected Obtain to wait before giving up")
	}
}

func TestLocalLocker_SerializesHolders(t *testing.T) {
	l := NewLocalLocker()
	counter := 0
	inside := 0
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Obtain(context.Background(), "shared", time.Second, 5*time.Second)
			if err != nil {
				t.Errorf("obtain: %v", err)
				return
			}
			mu.Lock()
			inside++
			if inside > 1 {
				t.Errorf("two holders inside the critical section")
			}
			mu.Unlock()

			counter++

			mu.Lock()
			inside--
			mu.Unlock()
			release()
		}()
	}
	wg.Wait()

	if counter != 20 {
		t.Fatalf("expected 20 increments, got %d", counter)
	}
}
