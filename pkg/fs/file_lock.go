package fs

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

const (
	lockRetryInterval = 50 * time.Millisecond
	lockTimeout       = 5 * time.Second
)

// FileLock acquires an advisory lock on a sibling ".lock" file and
// returns an unlock function. The lock is held by the process, not the
// file's existence, so a lock file left behind by a dead process does
// not block later holders.
func (f *realFS) FileLock(filename string) (func(), error) {
	fl := flock.New(filename + ".lock")

	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := fl.TryLockContext(ctx, lockRetryInterval)
	if err != nil || !locked {
		return nil, fmt.Errorf("%w: %s", ErrLockTimeout, fl.Path())
	}

	return func() {
		_ = fl.Unlock()
	}, nil
}
