package report

import (
	"encoding/hex"
	"errors"
	"hash"
	"io"
	"os"
	"path/filepath"

	"github.com/nao1215/writedist/internal/model"
	"golang.org/x/crypto/sha3"
)

// Output file permissions.
const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// ErrSinkClosed is returned when a FileSink is used after Commit or Abort.
var ErrSinkClosed = errors.New("output already closed")

// FileSink is an io.Writer for an output file that appears atomically.
// Data is written to a temporary file in the destination directory and
// hashed with SHA3-256. Commit renames the temporary file into place;
// Abort removes it along with any directory CreateFile made. Either way
// the destination never holds a partial output.
type FileSink struct {
	path    string
	tmp     *os.File
	hash    hash.Hash
	w       io.Writer
	written int64
	closed  bool
	// created lists the directories made by CreateFile, deepest first.
	created []string
}

var _ io.Writer = (*FileSink)(nil)

// CreateFile opens a FileSink for path, creating missing parent
// directories. The directories stay after Commit; Abort removes them
// again if they are still empty. Errors are *model.IOError.
func CreateFile(path string) (*FileSink, error) {
	dir := filepath.Dir(path)
	created := missingDirs(dir)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		removeDirs(created)
		return nil, &model.IOError{Op: "mkdir", Path: dir, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		removeDirs(created)
		return nil, &model.IOError{Op: "create", Path: path, Err: err}
	}

	h := sha3.New256()
	return &FileSink{
		path:    path,
		tmp:     tmp,
		hash:    h,
		w:       io.MultiWriter(tmp, h),
		created: created,
	}, nil
}

// missingDirs returns dir and those of its ancestors that do not exist,
// deepest first.
func missingDirs(dir string) []string {
	var dirs []string
	for {
		if _, err := os.Lstat(dir); !errors.Is(err, os.ErrNotExist) {
			return dirs
		}
		dirs = append(dirs, dir)
		parent := filepath.Dir(dir)
		if parent == dir {
			return dirs
		}
		dir = parent
	}
}

// removeDirs removes dirs in order, stopping at the first one that is
// not empty.
func removeDirs(dirs []string) {
	for _, dir := range dirs {
		if err := os.Remove(dir); err != nil {
			return
		}
	}
}

// Path returns the destination path.
func (s *FileSink) Path() string {
	return s.path
}

// Write writes p to the temporary file.
func (s *FileSink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, &model.IOError{Op: "write", Path: s.path, Err: ErrSinkClosed}
	}
	n, err := s.w.Write(p)
	s.written += int64(n)
	if err != nil {
		return n, &model.IOError{Op: "write", Path: s.path, Err: err}
	}
	return n, nil
}

// Commit closes the temporary file and renames it to the destination.
// records is reported back in the result. On failure the temporary file
// is removed.
func (s *FileSink) Commit(records int) (*model.OutputResult, error) {
	if s.closed {
		return nil, &model.IOError{Op: "commit", Path: s.path, Err: ErrSinkClosed}
	}
	s.closed = true

	tmpName := s.tmp.Name()
	if err := s.tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return nil, &model.IOError{Op: "close", Path: s.path, Err: err}
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		_ = os.Remove(tmpName)
		return nil, &model.IOError{Op: "chmod", Path: s.path, Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return nil, &model.IOError{Op: "rename", Path: s.path, Err: err}
	}

	return &model.OutputResult{
		Path:    s.path,
		Records: records,
		Bytes:   s.written,
		Digest:  hex.EncodeToString(s.hash.Sum(nil)),
	}, nil
}

// Abort discards the temporary file. It is a no-op after Commit, so it
// can be deferred unconditionally.
func (s *FileSink) Abort() error {
	if s.closed {
		return nil
	}
	s.closed = true

	tmpName := s.tmp.Name()
	closeErr := s.tmp.Close()
	if err := os.Remove(tmpName); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &model.IOError{Op: "remove", Path: tmpName, Err: err}
	}
	removeDirs(s.created)
	if closeErr != nil {
		return &model.IOError{Op: "close", Path: tmpName, Err: closeErr}
	}
	return nil
}
