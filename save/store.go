package save

import (
	"context"
	"sort"
)

// Store persists snapshots by slot
type Store interface {
	Save(ctx context.Context, slot string, snap Snapshot) error
	Load(ctx context.Context, slot string) (Snapshot, error)
	// List returns stored slots, newest first
	List(ctx context.Context) ([]Info, error)
	Delete(ctx context.Context, slot string) error
	Close() error
}

// sortNewestFirst orders listings by save time, slot name breaking ties
func sortNewestFirst(infos []Info, limit int) []Info {
	sort.Slice(infos, func(i, j int) bool {
		if !infos[i].SavedAt.Equal(infos[j].SavedAt) {
			return infos[i].SavedAt.After(infos[j].SavedAt)
		}
		return infos[i].Slot < infos[j].Slot
	})
	if limit > 0 && len(infos) > limit {
		infos = infos[:limit]
	}
	return infos
}
