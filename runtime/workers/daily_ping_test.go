package workers

import (
	"context"
	"log/slog"
	"path/filepath"
	"sotd-bot/mocks"
	"sotd-bot/repositories"
	"sotd-bot/services"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pingFixture struct {
	worker     *DailyPingWorker
	engine     *services.QueueService
	checkpoint repositories.CheckpointRepository
	poster     *mocks.MockIPoster
	db         *badger.DB
}

func newPingFixture(t *testing.T, pingAt string) pingFixture {
	t.Helper()
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	queueRepository := repositories.NewQueueRepository(filepath.Join(t.TempDir(), "queue.json"))
	checkpoint := repositories.NewCheckpointRepository(db)
	engine := services.NewQueueService(queueRepository, log)
	poster := mocks.NewMockIPoster(gomock.NewController(t))

	worker, err := NewDailyPingWorker(log, engine, checkpoint, poster, pingAt, time.Second)
	req.NoError(err)

	return pingFixture{worker: worker, engine: engine, checkpoint: checkpoint, poster: poster, db: db}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, time.August, 23, hour, minute, 0, 0, time.Local)
}

func Test_Ping_Fires_At_Most_Once_Per_Day(t *testing.T) {
	req := require.New(t)
	f := newPingFixture(t, "09:00")

	_, err := f.engine.Signup("1", "Alice")
	req.NoError(err)
	_, err = f.engine.Signup("2", "Bob")
	req.NoError(err)

	// Exactly one post despite many ticks crossing the trigger.
	f.poster.EXPECT().
		Post(gomock.Any(), "@Alice it's your turn to share today's song! \U0001f3b5", gomock.Any()).
		Return(nil)

	ctx := context.Background()
	f.worker.Check(ctx, at(8, 59))
	f.worker.Check(ctx, at(9, 0))
	f.worker.Check(ctx, at(9, 0))
	f.worker.Check(ctx, at(9, 1))
	f.worker.Check(ctx, at(17, 30))

	names, err := f.engine.List()
	req.NoError(err)
	req.Equal([]string{"Bob", "Alice"}, names)

	date, err := f.checkpoint.LastPing()
	req.NoError(err)
	req.Equal("2026-08-23", date)
}

func Test_Ping_Fires_Again_The_Next_Day(t *testing.T) {
	req := require.New(t)
	f := newPingFixture(t, "09:00")

	_, err := f.engine.Signup("1", "Alice")
	req.NoError(err)
	_, err = f.engine.Signup("2", "Bob")
	req.NoError(err)

	f.poster.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	ctx := context.Background()
	f.worker.Check(ctx, at(9, 0))
	f.worker.Check(ctx, at(9, 0).Add(24*time.Hour))

	names, err := f.engine.List()
	req.NoError(err)
	req.Equal([]string{"Alice", "Bob"}, names)
}

func Test_Late_Start_Still_Serves_Todays_Slot(t *testing.T) {
	req := require.New(t)
	f := newPingFixture(t, "09:00")

	_, err := f.engine.Signup("1", "Alice")
	req.NoError(err)

	// First check of the process happens hours after the slot.
	f.poster.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.worker.Check(context.Background(), at(22, 15))
}

func Test_Empty_Queue_Slot_Is_Silent_But_Served(t *testing.T) {
	req := require.New(t)
	f := newPingFixture(t, "09:00")

	// No Post expectation: any post would fail the controller.
	f.worker.Check(context.Background(), at(9, 5))

	date, err := f.checkpoint.LastPing()
	req.NoError(err)
	req.Equal("2026-08-23", date)
}

func Test_Checkpoint_Guards_Across_Restarts(t *testing.T) {
	req := require.New(t)
	f := newPingFixture(t, "09:00")

	_, err := f.engine.Signup("1", "Alice")
	req.NoError(err)

	f.poster.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.worker.Check(context.Background(), at(9, 0))

	// A fresh worker over the same checkpoint store must not re-fire.
	restarted, err := NewDailyPingWorker(
		logs.GetLoggerFromLevel(slog.LevelDebug),
		f.engine, f.checkpoint, f.poster, "09:00", time.Second,
	)
	req.NoError(err)
	restarted.Check(context.Background(), at(10, 0))
}

func Test_Post_Failure_Does_Not_Roll_Back_The_Rotation(t *testing.T) {
	req := require.New(t)
	f := newPingFixture(t, "09:00")

	_, err := f.engine.Signup("1", "Alice")
	req.NoError(err)
	_, err = f.engine.Signup("2", "Bob")
	req.NoError(err)

	f.poster.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded)
	f.worker.Check(context.Background(), at(9, 0))

	// Queue rotated, slot consumed: best-effort notification policy.
	names, err := f.engine.List()
	req.NoError(err)
	req.Equal([]string{"Bob", "Alice"}, names)

	f.worker.Check(context.Background(), at(9, 1))
}

func Test_Invalid_Ping_Time_Is_Rejected(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	for _, bad := range []string{"", "9", "24:00", "09:60", "half past nine"} {
		_, err := NewDailyPingWorker(log, nil, nil, nil, bad, time.Second)
		req.Error(err, bad)
	}
}
