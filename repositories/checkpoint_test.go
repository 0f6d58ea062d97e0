package repositories

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T, dir string) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	return db
}

func Test_LastPing_Defaults_To_Empty(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t, t.TempDir())
	defer db.Close()

	date, err := NewCheckpointRepository(db).LastPing()
	req.NoError(err)
	req.Empty(date)
}

func Test_RecordPing_Survives_A_Restart(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	db := openTestDB(t, dir)
	req.NoError(NewCheckpointRepository(db).RecordPing("2026-08-23"))
	req.NoError(db.Close())

	db = openTestDB(t, dir)
	defer db.Close()
	date, err := NewCheckpointRepository(db).LastPing()
	req.NoError(err)
	req.Equal("2026-08-23", date)
}

func Test_MarkSeen_Reports_First_Delivery_Only_Once(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t, t.TempDir())
	defer db.Close()

	repository := NewCheckpointRepository(db)

	first, err := repository.MarkSeen("msg-1")
	req.NoError(err)
	req.True(first)

	again, err := repository.MarkSeen("msg-1")
	req.NoError(err)
	req.False(again)

	other, err := repository.MarkSeen("msg-2")
	req.NoError(err)
	req.True(other)
}
