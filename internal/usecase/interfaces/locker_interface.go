package interfaces

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -source=locker_interface.go -destination=mocks/mock_locker_interface.go -package=mock_interfaces

var ErrLockNotObtained = errors.New("lock not obtained")

// ILocker provides named mutual exclusion (per trabajo for ledger units, one
// global key for reminder ticks).
//
// Obtain keeps trying for up to wait (0 = try once) and returns
// ErrLockNotObtained when the lock stays busy. ttl bounds how long a crashed
// holder can keep the lock.
type ILocker interface {
	Obtain(ctx context.Context, key string, ttl, wait time.Duration) (release func(), err error)
}
