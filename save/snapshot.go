package save

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanBellman/Wandern-to-kill-a-Box/economy"
)

// QuickSlot is the slot written by quick save and read by quick load
const QuickSlot = "quicksave"

const slotPrefix = "save_"

var (
	ErrNotFound    = errors.New("save slot not found")
	ErrInvalidSlot = errors.New("invalid save slot")
)

// Snapshot is one persisted session: the economy record stamped with its run and time
// The economy fields are inlined, keeping the top-level money/upgrades shape
type Snapshot struct {
	RunID   string    `json:"run_id"`
	SavedAt time.Time `json:"saved_at"`

	economy.State
}

// Info describes a stored slot for listing
type Info struct {
	Slot    string
	Name    string
	RunID   string
	SavedAt time.Time
}

// Slot returns the name of numbered slot n, n >= 1
func Slot(n int) string {
	return fmt.Sprintf("%s%03d", slotPrefix, n)
}

// ValidSlot reports whether slot is the quick slot or a numbered slot
func ValidSlot(slot string) bool {
	if slot == QuickSlot {
		return true
	}
	_, ok := slotNumber(slot)
	return ok
}

// ParseSlot resolves a player-facing slot reference: "quick" or a slot number
func ParseSlot(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if strings.EqualFold(ref, "quick") || ref == QuickSlot {
		return QuickSlot, nil
	}
	n, err := strconv.Atoi(ref)
	if err != nil || n < 1 {
		return "", fmt.Errorf("%q: %w", ref, ErrInvalidSlot)
	}
	return Slot(n), nil
}

// DisplayName returns the player-facing name of a slot
func DisplayName(slot string) string {
	if slot == QuickSlot {
		return "Quick Save"
	}
	if n, ok := slotNumber(slot); ok {
		return "Slot " + strconv.Itoa(n)
	}
	return slot
}

func slotNumber(slot string) (int, bool) {
	digits, ok := strings.CutPrefix(slot, slotPrefix)
	if !ok || digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func checkSlot(slot string) error {
	if !ValidSlot(slot) {
		return fmt.Errorf("%q: %w", slot, ErrInvalidSlot)
	}
	return nil
}
