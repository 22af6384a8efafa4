package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
)

const fileExt = ".json"

// FileStore keeps one JSON file per slot in a directory
type FileStore struct {
	dir string
}

// NewFileStore creates the save directory if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(slot string) string {
	return filepath.Join(s.dir, slot+fileExt)
}

// Save writes the snapshot atomically: temp file then rename
func (s *FileStore) Save(ctx context.Context, slot string, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkSlot(slot); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", slot, err)
	}

	tmp, err := os.CreateTemp(s.dir, slot+"-*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", slot, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save %s: %w", slot, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", slot, err)
	}
	if err := os.Rename(tmp.Name(), s.path(slot)); err != nil {
		return fmt.Errorf("save %s: %w", slot, err)
	}
	return nil
}

func (s *FileStore) Load(ctx context.Context, slot string) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	if err := checkSlot(slot); err != nil {
		return Snapshot{}, err
	}

	data, err := os.ReadFile(s.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return Snapshot{}, fmt.Errorf("%s: %w", slot, ErrNotFound)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("load %s: %w", slot, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode %s: %w", slot, err)
	}
	return snap, nil
}

// List reads every valid slot file; unreadable files fall back to their modification time
func (s *FileStore) List(ctx context.Context) ([]Info, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}

	infos := make([]Info, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		slot, ok := strings.CutSuffix(entry.Name(), fileExt)
		if entry.IsDir() || !ok || !ValidSlot(slot) {
			continue
		}

		info := Info{Slot: slot, Name: DisplayName(slot)}
		if snap, err := s.Load(ctx, slot); err == nil && !snap.SavedAt.IsZero() {
			info.SavedAt = snap.SavedAt
			info.RunID = snap.RunID
		} else if fi, err := entry.Info(); err == nil {
			info.SavedAt = fi.ModTime()
		}
		infos = append(infos, info)
	}
	return sortNewestFirst(infos, parameter.SaveListLimit), nil
}

func (s *FileStore) Delete(ctx context.Context, slot string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkSlot(slot); err != nil {
		return err
	}
	err := os.Remove(s.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", slot, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete %s: %w", slot, err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
