// Package flock takes advisory locks on key directories so that two
// processes generating keys into the same directory cannot interleave
// their writes and leave a mismatched key pair behind.
package flock

import (
	"os"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/errors"
)

// Lock is an exclusive lock held on a lock file.
type Lock struct {
	file *os.File
}

// TryLock opens (creating if needed) the lock file at path and takes an
// exclusive, non-blocking lock on it. ErrKeyDirLocked is returned when
// another process already holds the lock.
func TryLock(path string) (*Lock, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, constants.KeyFilePerm) //#nosec G304 -- lock file inside the key directory
	if err != nil {
		return nil, errors.Wrapf(err, "opening lock file %s", path)
	}
	if err := exclusive(f.Fd()); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(errors.ErrKeyDirLocked, path)
	}
	return &Lock{file: f}, nil
}

// Release drops the lock and closes the lock file. The file itself is left
// in place so later writers lock the same inode.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	unlockErr := unlock(l.file.Fd())
	closeErr := l.file.Close()
	l.file = nil
	if unlockErr != nil {
		return errors.Wrap(unlockErr, "releasing key directory lock")
	}
	return closeErr
}
