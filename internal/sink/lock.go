package sink

import (
	"fmt"

	"github.com/gofrs/flock"
)

// LockPath returns the lock file guarding an artifact.
func LockPath(artifact string) string {
	return artifact + ".lock"
}

type artifactLock struct {
	path string
	lock *flock.Flock
}

func acquireLock(artifact string) (*artifactLock, error) {
	path := LockPath(artifact)
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	return &artifactLock{path: path, lock: lock}, nil
}

func (l *artifactLock) release() {
	if l == nil || l.lock == nil {
		return
	}
	// The lock file stays: unlinking it lets two writers lock different inodes.
	_ = l.lock.Unlock()
}
