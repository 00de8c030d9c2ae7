// Package fileutils provides the small file primitives the converter
// and the story loader share: whole-file JSON reads and atomic
// same-directory writes.
package fileutils

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadJSONFile reads path in full and unmarshals it into v.
func ReadJSONFile(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse json %s: %w", path, err)
	}
	return nil
}

// WriteJSONFileAtomic marshals v and writes it atomically to path.
func WriteJSONFileAtomic(path string, v any, pretty bool) (int64, error) {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return 0, fmt.Errorf("marshal json: %w", err)
	}
	n, err := WriteFileAtomic(path, b, 0o644)
	if err != nil {
		return n, fmt.Errorf("write json: %w", err)
	}
	return n, nil
}

// WriteFileAtomic writes data (plus a trailing newline) to path via a
// temp file in the same directory, so readers never observe a partial
// artifact. Returns the number of payload bytes written.
func WriteFileAtomic(path string, data []byte, mode fs.FileMode) (int64, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(dir, ".tmp_artifact_*.json")
	if err != nil {
		return 0, err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return 0, err
	}

	n, err := tmp.Write(data)
	if err != nil {
		_ = tmp.Close()
		return int64(n), err
	}
	if _, err := tmp.Write([]byte("\n")); err != nil {
		_ = tmp.Close()
		return int64(n), err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return int64(n), err
	}
	if err := tmp.Close(); err != nil {
		return int64(n), err
	}

	if err := os.Rename(tmpName, path); err != nil {
		return int64(n), err
	}
	return int64(n), nil
}
