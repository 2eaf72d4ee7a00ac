package store

import (
	"archive/zip"
	"os"

	"linediff/internal/domain"
)

// FileStore reads input documents and writes artifacts on the local
// filesystem. Paths may be relative to the working directory or absolute.
type FileStore struct{}

func NewFileStore() *FileStore { return &FileStore{} }

// ReadText reads the whole file at path as UTF-8 text.
func (s *FileStore) ReadText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteText writes data to path via a temp file, then renames into place.
func (s *FileStore) WriteText(path string, data []byte) error {
	return writeFile(path, func(f *os.File) error {
		_, err := f.Write(data)
		return err
	})
}

// Bundle writes the entries as a ZIP archive. The archive appears at path
// only if every entry was written and the central directory closed cleanly.
func (s *FileStore) Bundle(path string, entries []domain.Entry) error {
	return writeFile(path, func(f *os.File) error {
		zw := zip.NewWriter(f)
		for _, e := range entries {
			w, err := zw.Create(e.Name)
			if err != nil {
				return err
			}
			if _, err := w.Write(e.Body); err != nil {
				return err
			}
		}
		return zw.Close()
	})
}

// Compile-time assertions that FileStore satisfies the domain contracts.
var (
	_ domain.Files    = (*FileStore)(nil)
	_ domain.Archiver = (*FileStore)(nil)
)
