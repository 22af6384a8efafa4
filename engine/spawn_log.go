package engine

import (
	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/core"
	"github.com/DanBellman/Wandern-to-kill-a-Box/vmath"
)

// SpawnAction discriminates spawn log records
type SpawnAction uint8

const (
	ActionSpawn SpawnAction = iota
	ActionDespawn
)

// SpawnRecord is a spawn or despawn request for the presentation collaborator
type SpawnRecord struct {
	Action SpawnAction
	Entity core.Entity
	Visual component.VisualHint
	Glyph  rune
	Pos    vmath.Vec2
	Vel    vmath.Vec2
}

// SpawnLog accumulates spawn records between presentation drains
type SpawnLog struct {
	records []SpawnRecord
	limit   int
}

// NewSpawnLog creates a log keeping at most limit undrained records, oldest discarded first
func NewSpawnLog(limit int) *SpawnLog {
	return &SpawnLog{limit: limit}
}

func (l *SpawnLog) append(r SpawnRecord) {
	if l.limit > 0 && len(l.records) >= l.limit {
		l.records = l.records[1:]
	}
	l.records = append(l.records, r)
}

// Drain returns and clears all pending records
func (l *SpawnLog) Drain() []SpawnRecord {
	out := l.records
	l.records = nil
	return out
}

// Len returns the pending record count
func (l *SpawnLog) Len() int {
	return len(l.records)
}
