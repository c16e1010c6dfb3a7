package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// EncodeSections writes sections as an indented JSON array.
// Output is byte-for-byte stable for equal input.
func EncodeSections(w io.Writer, sections []Section) error {
	if sections == nil {
		sections = []Section{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(sections)
}

// WriteSections persists sections at path. The data is written to a temporary
// file in the same directory and renamed into place, so the artifact is either
// complete or untouched. All failures wrap ErrWriteFailure.
func WriteSections(path string, sections []Section) error {
	var buf bytes.Buffer
	if err := EncodeSections(&buf, sections); err != nil {
		return fmt.Errorf("%w: encoding sections: %v", ErrWriteFailure, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrWriteFailure, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", ErrWriteFailure, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // No-op after a successful rename

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: writing %s: %v", ErrWriteFailure, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", ErrWriteFailure, tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: chmod %s: %v", ErrWriteFailure, tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: renaming into %s: %v", ErrWriteFailure, path, err)
	}
	return nil
}

// ReadSections decodes an artifact written by WriteSections.
func ReadSections(r io.Reader) ([]Section, error) {
	var sections []Section
	if err := json.NewDecoder(r).Decode(&sections); err != nil {
		return nil, fmt.Errorf("decoding sections: %w", err)
	}
	return sections, nil
}
