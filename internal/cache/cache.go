// Package cache persists expiring JSON records per profile on disk.
//
// Reads fail soft: a missing, malformed or expired file is reported as a miss.
// Writes fail hard. Deletes of missing files are not errors.
package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BerryBytes/awskit/internal/logger"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Store struct {
	Fs  afero.Fs
	Dir string
	Log *zap.SugaredLogger
	Now func() time.Time
}

func NewStore(fs afero.Fs, dir string, log *zap.SugaredLogger) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{
		Fs:  fs,
		Dir: dir,
		Log: logger.OrNop(log),
		Now: time.Now,
	}
}

// DefaultDir is ~/.aws/sso/cache/awskit.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".aws", "sso", "cache", "awskit"), nil
}

// ProfileKey is the filesystem-safe, stable name used for a profile.
func ProfileKey(profile string) string {
	sum := sha1.Sum([]byte(profile))
	return hex.EncodeToString(sum[:])
}

func (s *Store) Path(kind Kind, profile string) string {
	return filepath.Join(s.Dir, fmt.Sprintf("%s-%s.json", kind, ProfileKey(profile)))
}

// Read loads a valid record. The second return is false on any miss.
func Read[T any](s *Store, kind Kind, profile string) (Record[T], bool) {
	var rec Record[T]
	path := s.Path(kind, profile)

	data, err := afero.ReadFile(s.Fs, path)
	if err != nil {
		s.Log.Debugf("No cached %s record for profile %s", kind, profile)
		return rec, false
	}

	if err := json.Unmarshal(data, &rec); err != nil {
		s.Log.Debugf("Ignoring malformed %s record %s: %v", kind, path, err)
		return Record[T]{}, false
	}

	if !rec.Valid(s.Now()) {
		s.Log.Debugf("Cached %s record expired at %s", kind, rec.ExpiresAt.Format(time.RFC3339))
		return Record[T]{}, false
	}

	s.Log.Debugf("Cached %s record found", kind)
	return rec, true
}

// Write stores rec atomically: the payload goes to a temp file which is then
// renamed over the target.
func Write[T any](s *Store, kind Kind, profile string, rec Record[T]) error {
	path := s.Path(kind, profile)
	s.Log.Debugf("Persisting %s record ...", kind)

	data, err := json.Marshal(rec)
	if err != nil {
		return &IOError{Op: "encode", Path: path, Err: err}
	}

	if err := s.Fs.MkdirAll(s.Dir, 0o700); err != nil {
		return &IOError{Op: "mkdir", Path: s.Dir, Err: err}
	}

	tmp, err := afero.TempFile(s.Fs, s.Dir, fmt.Sprintf(".%s-*.tmp", kind))
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.Fs.Remove(tmpName)
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = s.Fs.Remove(tmpName)
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err := s.Fs.Chmod(tmpName, 0o600); err != nil {
		_ = s.Fs.Remove(tmpName)
		return &IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := s.Fs.Rename(tmpName, path); err != nil {
		_ = s.Fs.Remove(tmpName)
		return &IOError{Op: "rename", Path: path, Err: err}
	}

	return nil
}

func (s *Store) Delete(kind Kind, profile string) {
	path := s.Path(kind, profile)
	err := s.Fs.Remove(path)
	switch {
	case err == nil:
		s.Log.Debugf("Removed cached %s record", kind)
	case errors.Is(err, os.ErrNotExist):
	default:
		s.Log.Warnf("Failed to remove cached %s record %s: %v", kind, path, err)
	}
}

// Exists reports whether a file is present for kind, valid or not.
func (s *Store) Exists(kind Kind, profile string) bool {
	ok, err := afero.Exists(s.Fs, s.Path(kind, profile))
	return err == nil && ok
}
