package kodi

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const (
	lockFileName   = ".kodisrc.lock"
	lockWait       = 10 * time.Second
	lockRetryDelay = 100 * time.Millisecond
)

// lockUserdata takes an exclusive advisory lock in dir so that two kodisrc
// runs cannot interleave their read-modify-write cycles. Kodi ignores it.
// The lock file is never removed: unlinking it would let a waiter holding
// the old inode and a newcomer creating a fresh file both own the lock.
func lockUserdata(ctx context.Context, dir string) (unlock func(), err error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, storageError("userdata", dir, err)
	}
	if !info.IsDir() {
		return nil, storageError("userdata", dir, errors.New("not a directory"))
	}

	ctx, cancel := context.WithTimeout(ctx, lockWait)
	defer cancel()

	path := filepath.Join(dir, lockFileName)
	fl := flock.New(path)
	ok, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, storageError("userdata", path, fmt.Errorf("acquire lock: %w", err))
	}
	if !ok {
		return nil, storageError("userdata", path, errors.New("locked by another kodisrc process"))
	}
	return func() { _ = fl.Unlock() }, nil
}
