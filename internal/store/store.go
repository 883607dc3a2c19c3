// Package store keeps the high score between runs.
package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// FileStore keeps the high score as 4 little-endian bytes in a file.
type FileStore struct {
	path string
	log  *log.Logger
}

func NewFileStore(path string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &FileStore{path: path, log: logger}
}

func (s *FileStore) Path() string { return s.path }

// Load returns 0 with a nil error when the file does not exist yet.
func (s *FileStore) Load() (uint32, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read high score: %w", err)
	}
	if len(data) < 4 {
		return 0, fmt.Errorf("read high score: %s holds %d bytes, want 4", s.path, len(data))
	}
	return binary.LittleEndian.Uint32(data), nil
}

func (s *FileStore) Save(score uint32) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create high score dir: %w", err)
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], score)

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf[:], 0o644); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace high score: %w", err)
	}
	return nil
}

// LoadHighScore treats an unreadable file as no high score.
func (s *FileStore) LoadHighScore() uint32 {
	score, err := s.Load()
	if err != nil {
		s.log.Printf("[WARN] %v", err)
		return 0
	}
	return score
}

func (s *FileStore) SaveHighScore(score uint32) {
	if err := s.Save(score); err != nil {
		s.log.Printf("[WARN] %v", err)
	}
}
