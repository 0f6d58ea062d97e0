package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sotd-bot/infrastructure/groupme"
	"sotd-bot/repositories"
	"sotd-bot/services"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DailyPingWorker rotates the queue once per local calendar day at the
// configured HH:MM and tags whoever was at the front. It polls the
// wall clock instead of arming a long timer: a process that was asleep
// or restarted at the trigger time still fires on the next tick of the
// same day, and the checkpoint date keeps it from firing twice.
type DailyPingWorker struct {
	log        *slog.Logger
	engine     *services.QueueService
	checkpoint repositories.ICheckpointRepository
	poster     groupme.IPoster
	hour       int
	minute     int
	tick       time.Duration

	// In-memory guard alongside the durable checkpoint, so a broken
	// checkpoint store cannot cause a second rotation the same day.
	lastFired string
}

// NewDailyPingWorker parses pingAt as "HH:MM" (24h, local time).
func NewDailyPingWorker(
	log *slog.Logger,
	engine *services.QueueService,
	checkpoint repositories.ICheckpointRepository,
	poster groupme.IPoster,
	pingAt string,
	tick time.Duration,
) (*DailyPingWorker, error) {
	hour, minute, err := parsePingAt(pingAt)
	if err != nil {
		return nil, err
	}
	return &DailyPingWorker{
		log:        log,
		engine:     engine,
		checkpoint: checkpoint,
		poster:     poster,
		hour:       hour,
		minute:     minute,
		tick:       tick,
	}, nil
}

func (w *DailyPingWorker) Run(ctx context.Context) error {
	w.log.Info("Starting daily ping worker",
		"at", fmt.Sprintf("%02d:%02d", w.hour, w.minute), "tick", w.tick)

	// Check immediately: if the process restarted after the slot, the
	// ping for today may still be owed.
	w.Check(ctx, time.Now())

	ticker := time.NewTicker(w.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.Check(ctx, time.Now())
		}
	}
}

// Check fires the rotation when the slot time has passed and no ping
// has been recorded for today's local date. Errors are logged and left
// for the next tick; the rotation itself is only marked done once it
// committed.
func (w *DailyPingWorker) Check(ctx context.Context, now time.Time) {
	if !w.due(now) {
		return
	}
	today := now.Format(dateLayout)
	if w.lastFired == today {
		return
	}
	last, err := w.checkpoint.LastPing()
	if err != nil {
		w.log.Error("Reading ping checkpoint failed", "error", err)
		return
	}
	if last == today {
		w.lastFired = today
		return
	}

	front, err := w.engine.Rotate()
	if err != nil {
		// Nothing was committed, retry on the next tick.
		w.log.Error("Daily rotation failed", "error", err)
		return
	}

	// The slot is served for today even when the queue was empty.
	w.lastFired = today
	if err := w.checkpoint.RecordPing(today); err != nil {
		w.log.Error("Recording ping checkpoint failed", "date", today, "error", err)
	}

	if front == nil {
		w.log.Info("Queue empty, skipping daily ping", "date", today)
		return
	}

	// Post outside the engine lock: Rotate has already committed.
	reply := services.DailyPingReply(*front)
	if err := w.poster.Post(ctx, reply.Text, reply.Mention); err != nil {
		w.log.Error("Daily ping post failed", "user_id", front.UserID, "error", err)
		return
	}
	w.log.Info("Daily ping sent", "user_id", front.UserID, "name", front.Name)
}

func (w *DailyPingWorker) due(now time.Time) bool {
	return now.Hour() > w.hour || (now.Hour() == w.hour && now.Minute() >= w.minute)
}

func parsePingAt(pingAt string) (int, int, error) {
	parts := strings.Split(pingAt, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("ping time must be HH:MM, got %q", pingAt)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("ping time must be HH:MM, got %q", pingAt)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("ping time must be HH:MM, got %q", pingAt)
	}
	return hour, minute, nil
}
