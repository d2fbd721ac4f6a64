// Package cache implements the local expense cache backends.
package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/store"
)

// File stores each user's list as <dir>/<user>/expenses.json.
type File struct {
	dir string
}

var _ store.Cache = (*File)(nil)

func NewFile(dir string) *File {
	return &File{dir: dir}
}

func (f *File) path(user string) string {
	return filepath.Join(f.dir, filepath.Base(user), store.CacheKey+".json")
}

func (f *File) Load(_ context.Context, user string) ([]models.Expense, bool, error) {
	b, err := os.ReadFile(f.path(user))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache: %w", err)
	}

	expenses, err := store.Decode(b)
	if err != nil {
		return nil, false, err
	}
	return expenses, true, nil
}

func (f *File) Save(_ context.Context, user string, expenses []models.Expense) error {
	b, err := store.Encode(expenses)
	if err != nil {
		return err
	}

	path := f.path(user)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), store.CacheKey+"-*.tmp")
	if err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("writing cache: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}

	return nil
}
