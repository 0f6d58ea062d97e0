package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"sotd-bot/infrastructure/groupme"
	"sotd-bot/infrastructure/webhook"
	"sotd-bot/repositories"
	"sotd-bot/runtime/workers"
	"sotd-bot/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

// QueueScenarioSuite runs the whole bot in-process: a real file-backed
// queue, a real badger checkpoint, the chi webhook server, and a fake
// GroupMe endpoint capturing everything the bot posts.
type QueueScenarioSuite struct {
	suite.Suite
	Config Config

	groupMe *httptest.Server
	bot     *httptest.Server
	worker  *workers.DailyPingWorker
	db      *badger.DB

	mu     sync.Mutex
	posted []map[string]any
}

func TestQueueScenarioSuite(t *testing.T) {
	suite.Run(t, new(QueueScenarioSuite))
}

func (s *QueueScenarioSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

func (s *QueueScenarioSuite) SetupTest() {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	s.posted = nil
	s.groupMe = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&payload))
		s.mu.Lock()
		s.posted = append(s.posted, payload)
		s.mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	}))

	db, err := badger.Open(badger.DefaultOptions(s.T().TempDir()).WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
	s.db = db

	queueRepository := repositories.NewQueueRepository(filepath.Join(s.T().TempDir(), "queue.json"))
	checkpoint := repositories.NewCheckpointRepository(db)
	engine := services.NewQueueService(queueRepository, log)
	poster := groupme.NewClient("bot-e2e", s.groupMe.URL, log)
	dispatcher := services.NewDispatcher(engine, checkpoint, log)

	s.worker, err = workers.NewDailyPingWorker(log, engine, checkpoint, poster, "00:00", time.Second)
	s.Require().NoError(err)

	s.bot = httptest.NewServer(webhook.NewServer(log, dispatcher, poster).Router())
}

func (s *QueueScenarioSuite) TearDownTest() {
	s.bot.Close()
	s.groupMe.Close()
	s.Require().NoError(s.db.Close())
}

// step prints a colorized header so the scenario reads as a script.
func (s *QueueScenarioSuite) step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

func (s *QueueScenarioSuite) send(id, senderType, senderID, name, text string) {
	body := fmt.Sprintf(
		`{"id":%q,"sender_type":%q,"sender_id":%q,"name":%q,"text":%q}`,
		id, senderType, senderID, name, text,
	)
	res, err := http.Post(s.bot.URL+"/callback", "application/json", strings.NewReader(body))
	s.Require().NoError(err)
	defer res.Body.Close()
	s.Require().Equal(http.StatusOK, res.StatusCode)

	if s.Config.DebugJSON {
		s.T().Logf("SENT: %s", body)
	}
}

func (s *QueueScenarioSuite) lastPosted() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Require().NotEmpty(s.posted)
	return s.posted[len(s.posted)-1]
}

func (s *QueueScenarioSuite) postedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.posted)
}

func (s *QueueScenarioSuite) Test_Signup_Rotation_Signout() {
	s.step("Three users sign up")
	s.send("m1", "user", "1", "Alice", "!signup")
	s.send("m2", "user", "2", "Bob", "!signup")
	s.send("m3", "user", "3", "Clara", "!signup")
	s.Require().Equal(3, s.postedCount())

	s.step("Queue listing")
	s.send("m4", "user", "1", "Alice", "!queue")
	s.Require().Equal(
		"Current Song-of-the-Day queue:\nAlice\nBob\nClara",
		stripNumbers(s.lastPosted()["text"].(string)),
	)

	s.step("Daily ping rotates and mentions Alice")
	s.worker.Check(context.Background(), time.Now())
	last := s.lastPosted()
	s.Require().Contains(last["text"], "@Alice it's your turn")
	attachments := last["attachments"].([]any)
	s.Require().Len(attachments, 1)
	attachment := attachments[0].(map[string]any)
	s.Require().Equal("mentions", attachment["type"])
	s.Require().Equal([]any{"1"}, attachment["user_ids"])

	s.step("Bob leaves, Alice's duplicate signup bounces")
	s.send("m5", "user", "2", "Bob", "!signout")
	s.Require().Contains(s.lastPosted()["text"], "Bob left the queue")
	s.send("m6", "user", "1", "Alice", "!signup")
	s.Require().Contains(s.lastPosted()["text"], "already in the queue")

	s.step("Final order")
	s.send("m7", "user", "1", "Alice", "!queue")
	s.Require().Equal(
		"Current Song-of-the-Day queue:\nClara\nAlice",
		stripNumbers(s.lastPosted()["text"].(string)),
	)
}

func (s *QueueScenarioSuite) Test_Redelivered_Webhook_Is_Dropped() {
	s.step("Same delivery twice")
	s.send("dup-1", "user", "1", "Alice", "!signup")
	s.send("dup-1", "user", "1", "Alice", "!signup")
	s.Require().Equal(1, s.postedCount())
}

// stripNumbers removes the "1. " position prefixes from a listing so
// assertions read as plain name sequences.
func stripNumbers(listing string) string {
	lines := strings.Split(listing, "\n")
	for i, line := range lines {
		if idx := strings.Index(line, ". "); idx > 0 && idx < 4 {
			lines[i] = line[idx+2:]
		}
	}
	return strings.Join(lines, "\n")
}
