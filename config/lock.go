package config

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

// Cross-process lock guarding config.json updates. The hosts file itself
// is not locked; the engine relies on atomic replace for that.

var lockFile *flock.Flock
var lockCount int
var lockMutex sync.Mutex

func tryLockLocked() (err error) {
	if lockFile == nil {
		lockFile = flock.New(filepath.Join(Home(), "config.lock"))
		lockCount = 0
	}
	if lockCount == 0 {
		ok, err := lockFile.TryLock()
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("another hostm instance holds the config lock")
		}
	}
	lockCount++
	return nil
}
func unlockLocked() {
	lockCount--
	if lockCount < 0 {
		panic("lock count < 0")
	}
	if lockCount == 0 {
		lockFile.Unlock()
		lockFile.Close()
		lockFile = nil
	}
}

func WithLock(f func() error) error {
	lockMutex.Lock()
	defer lockMutex.Unlock()
	if err := tryLockLocked(); err != nil {
		return err
	}
	defer unlockLocked()
	return f()
}
