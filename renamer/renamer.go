// Package renamer renames the direct entries of one directory according to a [Rule].
// Renames are committed one at a time in listing order. The first failure stops the run
// and nothing already renamed is rolled back.
package renamer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

type (
	Rename struct {
		Old string `yaml:"old"`
		New string `yaml:"new"`
	}

	Result struct {
		// Entries is the listing the run was based on.
		Entries []string
		Renamed []Rename
	}

	Renamer struct {
		logger *zap.Logger
		rule   Rule
		dir    string
	}
)

var (
	ErrDirectoryAccess = errors.New("directory not found")
	ErrRename          = errors.New("rename failure")
)

// List returns the names of the entries directly contained in dir, sorted by name.
// Non-nil returned error wraps [ErrDirectoryAccess].
func List(dir string) ([]string, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot list %q: %w", ErrDirectoryAccess, dir, err)
	}

	names := make([]string, 0, len(items))

	for _, item := range items {
		names = append(names, item.Name())
	}

	return names, nil
}

func New(dir string, rule Rule, logger *zap.Logger) *Renamer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Renamer{logger: logger, rule: rule, dir: dir}
}

// Non-nil returned error wraps [ErrInvalidConfig].
func FromConfig(cfg Config, logger *zap.Logger) (*Renamer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return New(cfg.WorkingDirectory, cfg.Rule(), logger), nil
}

func (r *Renamer) Dir() string {
	return r.dir
}

// Run renames every entry whose name the rule changes.
// Non-nil returned error wraps [ErrDirectoryAccess] or [ErrRename].
// The returned Result holds the renames committed before any failure.
func (r *Renamer) Run() (result Result, err error) {
	result.Entries, err = List(r.dir)
	if err != nil {
		return result, err
	}

	r.logger.Debug("listed working directory", zap.String("dir", r.dir), zap.Int("entries", len(result.Entries)))

	for _, name := range result.Entries {
		newName := r.rule(name)
		if newName == name {
			continue
		}

		// The target is not checked first: overwriting or failing is up to the OS.
		err = os.Rename(filepath.Join(r.dir, name), filepath.Join(r.dir, newName))
		if err != nil {
			r.logger.Debug("rename failed", zap.String("old", name), zap.String("new", newName), zap.Error(err))

			return result, fmt.Errorf("%w: %q to %q: %w", ErrRename, name, newName, err)
		}

		r.logger.Debug("renamed", zap.String("old", name), zap.String("new", newName))

		result.Renamed = append(result.Renamed, Rename{Old: name, New: newName})
	}

	r.logger.Info("done", zap.String("dir", r.dir), zap.Int("renamed", len(result.Renamed)))

	return result, nil
}
