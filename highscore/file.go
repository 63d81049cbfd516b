package highscore

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// fileRecord is the TOML layout of the score file
type fileRecord struct {
	HighScore int `toml:"high_score"`
}

// FileStore keeps the score in a single file
// Files ending in ".pb" hold a protobuf Int64Value, anything else is TOML
type FileStore struct {
	path string
}

// NewFileStore creates a store at path, the file is created on first Save
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the score file location
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) binary() bool {
	return strings.EqualFold(filepath.Ext(s.path), ".pb")
}

// Load reads the score under a shared lock, a missing file reads as 0
func (s *FileStore) Load() (int, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}

	unlock, err := lockPath(s.path+".lock", false)
	if err != nil {
		return 0, fmt.Errorf("lock %s: %w", s.path, err)
	}
	defer unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", s.path, err)
	}

	score, err := s.decode(data)
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", s.path, err)
	}
	if score < 0 {
		return 0, fmt.Errorf("decode %s: %w", s.path, ErrNegativeScore)
	}
	return score, nil
}

// Save writes the score atomically under an exclusive lock
func (s *FileStore) Save(score int) error {
	if score < 0 {
		return ErrNegativeScore
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	unlock, err := lockPath(s.path+".lock", true)
	if err != nil {
		return fmt.Errorf("lock %s: %w", s.path, err)
	}
	defer unlock()

	data, err := s.encode(score)
	if err != nil {
		return fmt.Errorf("encode score: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) encode(score int) ([]byte, error) {
	if s.binary() {
		return proto.Marshal(wrapperspb.Int64(int64(score)))
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(fileRecord{HighScore: score}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *FileStore) decode(data []byte) (int, error) {
	if s.binary() {
		var v wrapperspb.Int64Value
		if err := proto.Unmarshal(data, &v); err != nil {
			return 0, err
		}
		return int(v.GetValue()), nil
	}
	var rec fileRecord
	if _, err := toml.Decode(string(data), &rec); err != nil {
		return 0, err
	}
	return rec.HighScore, nil
}
