//go:generate go run go.uber.org/mock/mockgen -source=checkpoint.go -destination=../mocks/mock_checkpoint_repository.go -package=mocks
package repositories

import (
	goerrors "errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// How long a webhook message ID is remembered. GroupMe redeliveries
// arrive within seconds; a day is comfortably past that.
const seenTTL = 24 * time.Hour

const lastPingKey = "ping:last"

type ICheckpointRepository interface {
	LastPing() (string, error)
	RecordPing(date string) error
	MarkSeen(messageID string) (bool, error)
}

// CheckpointRepository keeps the bot's small bookkeeping state in
// BadgerDB: the local date of the last daily ping, and the recently
// seen inbound message IDs. Missing keys read as zero values.
type CheckpointRepository struct {
	db *badger.DB
}

func NewCheckpointRepository(db *badger.DB) CheckpointRepository {
	return CheckpointRepository{db: db}
}

// LastPing returns the local date ("2006-01-02") the daily ping last
// fired, or "" if it never has.
func (c CheckpointRepository) LastPing() (string, error) {
	var date string
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(lastPingKey))
		if goerrors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			date = string(val)
			return nil
		})
	})
	return date, err
}

func (c CheckpointRepository) RecordPing(date string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(lastPingKey), []byte(date))
	})
}

// MarkSeen records an inbound message ID and reports whether this was
// its first appearance. Entries expire after seenTTL so the store does
// not grow with chat traffic.
func (c CheckpointRepository) MarkSeen(messageID string) (bool, error) {
	first := false
	err := c.db.Update(func(txn *badger.Txn) error {
		key := []byte("seen:" + messageID)
		_, err := txn.Get(key)
		if err == nil {
			return nil
		}
		if !goerrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		first = true
		return txn.SetEntry(badger.NewEntry(key, nil).WithTTL(seenTTL))
	})
	return first, err
}
