// Package keystore persists textsign key material on disk.
//
// Keys are stored as raw bytes with no header or encoding, one file per
// artifact, using the file names reported by crypto.Resolve. Key directories
// are created 0700 and key files are written 0600.
package keystore

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/crypto"
	"github.com/mrz1836/textsign/internal/errors"
	"github.com/mrz1836/textsign/internal/flock"
)

// Store reads and writes key files in one directory.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// New creates a Store rooted at dir. The directory is created on first write.
func New(dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{dir: dir}
}

// Dir returns the directory the store writes to.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the full path of a key file in the store.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Existing returns the paths of the scheme's key files that are already present.
func (s *Store) Existing(caps crypto.Capabilities) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found []string
	for _, a := range caps.Artifacts {
		p := s.Path(a.FileName)
		if _, err := os.Stat(p); err == nil {
			found = append(found, p)
		}
	}
	return found
}

// Write persists generated keys under the scheme's artifact names and returns
// the written paths. keys must be in Capabilities.Artifacts order, as
// returned by crypto.Generate.
//
// Existing files are left untouched and ErrKeyExists is returned unless force
// is set. Writers in other processes are excluded by a lock file in the
// directory; ErrKeyDirLocked is returned when one is already running.
func (s *Store) Write(ctx context.Context, caps crypto.Capabilities, keys []crypto.KeyMaterial, force bool) ([]string, error) {
	if len(keys) != len(caps.Artifacts) {
		return nil, errors.Wrapf(errors.ErrInvalidArgument,
			"%s produces %d keys, got %d", caps.Scheme, len(caps.Artifacts), len(keys))
	}
	for i, a := range caps.Artifacts {
		if keys[i].Kind() != a.Kind {
			return nil, errors.Wrapf(errors.ErrKeyKindMismatch,
				"%s expects a %s, got a %s", a.FileName, a.Kind, keys[i].Kind())
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, constants.KeyDirPerm); err != nil {
		return nil, errors.Wrapf(err, "creating key directory %s", s.dir)
	}

	lock, err := flock.TryLock(s.Path(constants.KeyLockFileName))
	if err != nil {
		return nil, err
	}
	defer func() { _ = lock.Release() }()

	if !force {
		for _, a := range caps.Artifacts {
			p := s.Path(a.FileName)
			if _, err := os.Stat(p); err == nil {
				return nil, errors.Wrap(errors.ErrKeyExists, p)
			}
		}
	}

	temps := make([]string, 0, len(keys))
	defer func() {
		for _, tmp := range temps {
			_ = os.Remove(tmp)
		}
	}()
	for i := range caps.Artifacts {
		tmp, err := writeTempKeyFile(s.dir, keys[i].Bytes())
		if err != nil {
			return nil, err
		}
		temps = append(temps, tmp)
	}

	paths := make([]string, 0, len(keys))
	for i, a := range caps.Artifacts {
		p := s.Path(a.FileName)
		if err := os.Rename(temps[i], p); err != nil {
			return paths, errors.Wrapf(err, "saving key file %s", p)
		}
		paths = append(paths, p)
	}
	temps = nil

	zerolog.Ctx(ctx).Info().
		Str("scheme", caps.Scheme.String()).
		Strs("paths", paths).
		Msg("key files written")
	return paths, nil
}

// createTemp is swapped in tests to fail a write part way through.
//
//nolint:gochecknoglobals // test seam
var createTemp = os.CreateTemp

// writeTempKeyFile writes data to a new owner-only file in dir and returns
// its path. Every key of a set is staged this way before any is renamed into
// place, so a failed write leaves the previous keys untouched.
func writeTempKeyFile(dir string, data []byte) (string, error) {
	f, err := createTemp(dir, constants.KeyTempFilePattern)
	if err != nil {
		return "", errors.Wrapf(err, "creating temporary key file in %s", dir)
	}
	name := f.Name()
	if err := f.Chmod(constants.KeyFilePerm); err != nil {
		_ = f.Close()
		_ = os.Remove(name)
		return "", errors.Wrapf(err, "setting permissions on %s", name)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(name)
		return "", errors.Wrapf(err, "writing %s", name)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return "", errors.Wrapf(err, "writing %s", name)
	}
	return name, nil
}

// Read returns the raw bytes of a key file.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- key path is supplied by the user
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(errors.ErrStreamRead, err), "reading key file %s", path)
	}
	return data, nil
}

// LoadSigningKey reads a key file and loads it as the scheme's signing key.
func LoadSigningKey(s crypto.Scheme, path string) (crypto.KeyMaterial, error) {
	data, err := Read(path)
	if err != nil {
		return crypto.KeyMaterial{}, err
	}
	km, err := crypto.LoadSigningKey(s, data)
	if err != nil {
		return crypto.KeyMaterial{}, errors.Wrapf(err, "loading %s", path)
	}
	return km, nil
}

// LoadVerifyingKey reads a key file and loads it as the scheme's verifying key.
func LoadVerifyingKey(s crypto.Scheme, path string) (crypto.KeyMaterial, error) {
	data, err := Read(path)
	if err != nil {
		return crypto.KeyMaterial{}, err
	}
	km, err := crypto.LoadVerifyingKey(s, data)
	if err != nil {
		return crypto.KeyMaterial{}, errors.Wrapf(err, "loading %s", path)
	}
	return km, nil
}
