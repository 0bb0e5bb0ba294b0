// Package storage persists a whole address book to a single file.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// Store loads and saves an address book as one unit.
type Store interface {
	Load() (*addressbook.AddressBook, error)
	Save(book *addressbook.AddressBook) error
}

// FileStore keeps the book in a JSON or YAML file.
type FileStore struct {
	Path   string
	Format Format
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a store for path, choosing the format from its extension.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New(config.ErrDataPathEmpty)
	}
	return &FileStore{Path: path, Format: FormatForPath(path)}, nil
}

// Load reads the file. A missing file yields an empty book.
func (s *FileStore) Load() (*addressbook.AddressBook, error) {
	log := slog.With(
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, s.Path,
	)

	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info(config.MsgBookMissing)
		return addressbook.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLoadBook, err)
	}
	defer func() { _ = f.Close() }()

	book, err := Decode(f, s.Format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLoadBook, err)
	}

	log.Info(config.MsgBookLoaded, config.LogKeyCount, book.Len())
	return book, nil
}

// Save writes the book to a temporary file next to Path and renames it over
// the target, so readers only ever see a complete file.
func (s *FileStore) Save(book *addressbook.AddressBook) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, config.DirPermUserRWX); err != nil {
		return fmt.Errorf("%s: %s: %w", config.ErrSaveBook, config.ErrCreateDir, err)
	}

	tmp, err := os.CreateTemp(dir, config.TempPattern)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrSaveBook, err)
	}
	tmpName := tmp.Name()
	// Removing after a successful rename fails harmlessly.
	defer func() { _ = os.Remove(tmpName) }()

	if err := Encode(tmp, s.Format, book); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", config.ErrSaveBook, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", config.ErrSaveBook, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSaveBook, err)
	}
	if err := os.Chmod(tmpName, config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSaveBook, err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSaveBook, err)
	}

	slog.Info(config.MsgBookSaved,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, s.Path,
		config.LogKeyCount, book.Len(),
	)
	return nil
}

// Encode writes book to w in the given format.
func Encode(w io.Writer, format Format, book *addressbook.AddressBook) error {
	if err := format.encode(w, toSnapshot(book)); err != nil {
		return fmt.Errorf("%s: %w", config.ErrEncodeSnapshot, err)
	}
	return nil
}

// Decode reads a book written by Encode.
func Decode(r io.Reader, format Format) (*addressbook.AddressBook, error) {
	s, err := format.decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrDecodeSnapshot, err)
	}
	return fromSnapshot(s)
}
