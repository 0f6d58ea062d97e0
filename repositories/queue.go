//go:generate go run go.uber.org/mock/mockgen -source=queue.go -destination=../mocks/mock_queue_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	goerrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"sotd-bot/domain"
	"sotd-bot/errors"

	"github.com/samber/lo"
)

type IQueueRepository interface {
	Load() (domain.Queue, error)
	Save(queue domain.Queue) error
}

// QueueRepository persists the queue as a single JSON file holding an
// ordered array of {user_id, name} objects. A missing file reads as an
// empty queue; a file that exists but does not parse is a hard error,
// never silently discarded.
type QueueRepository struct {
	path string
}

func NewQueueRepository(path string) QueueRepository {
	return QueueRepository{path: path}
}

// diskParticipant is the on-disk shape of one queue entry.
type diskParticipant struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

func (r QueueRepository) Load() (domain.Queue, error) {
	data, err := os.ReadFile(r.path)
	if goerrors.Is(err, os.ErrNotExist) {
		return domain.Queue{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", r.path, err)
	}
	var entries []diskParticipant
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrCorruptQueueFile, r.path, err)
	}
	return lo.Map(entries, func(e diskParticipant, _ int) domain.Participant {
		return domain.Participant(e)
	}), nil
}

// Save writes the whole queue to a sibling temp file and renames it
// over the canonical path. The rename is atomic on POSIX, so a crash
// mid-write leaves the previous committed state intact and a concurrent
// Load never observes a torn file.
func (r QueueRepository) Save(queue domain.Queue) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("creating queue dir: %w", err)
	}
	entries := lo.Map(queue, func(p domain.Participant, _ int) diskParticipant {
		return diskParticipant(p)
	})
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replacing %s: %w", r.path, err)
	}
	return nil
}
