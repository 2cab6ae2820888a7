package locking

import (
	"context"
	"sync"
	"time"

	"gestion_oficina/internal/usecase/interfaces"
)

// LocalLocker is an in-process keyed mutex. It is used when no Redis is
// configured, i.e. when a single instance serves the office. ttl is ignored:
// a holder in the same process cannot outlive it.
type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	ch   chan struct{}
	refs int
}

var _ interfaces.ILocker = (*LocalLocker)(nil)

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{slots: make(map[string]*slot)}
}

func (l *LocalLocker) Obtain(ctx context.Context, key string, _ time.Duration, wait time.Duration) (func(), error) {
	s := l.acquireSlot(key)

	select {
	case s.ch <- struct{}{}:
		return l.releaseFunc(key, s), nil
	default:
	}

	if wait <= 0 {
		l.dropSlot(key, s)
		return nil, interfaces.ErrLockNotObtained
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case s.ch <- struct{}{}:
		return l.releaseFunc(key, s), nil
	case <-timer.C:
		l.dropSlot(key, s)
		return nil, interfaces.ErrLockNotObtained
	case <-ctx.Done():
		l.dropSlot(key, s)
		return nil, ctx.Err()
	}
}

func (l *LocalLocker) acquireSlot(key string) *slot {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.refs++
	return s
}

func (l *LocalLocker) dropSlot(key string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}

func (l *LocalLocker) releaseFunc(key string, s *slot) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.ch
			l.dropSlot(key, s)
		})
	}
}
