package services

import (
	"fmt"
	"log/slog"
	"sotd-bot/domain"
	"sotd-bot/repositories"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Reply is a formatted outbound message. Mention is only set for the
// daily ping; a nil Reply means stay silent.
type Reply struct {
	Text    string
	Mention *domain.Mention
}

const helpText = "Commands:\n" +
	"!signup  - join the queue\n" +
	"!signout - leave the queue\n" +
	"!queue   - display current order\n" +
	"!help    - show command list\n\n" +
	"I'll automatically tag the next person every day at the scheduled time."

// Dispatcher maps inbound chat messages to engine operations and
// formats the replies. It never posts anything itself: the caller
// delivers the reply after this returns, outside the engine lock.
type Dispatcher struct {
	engine     *QueueService
	checkpoint repositories.ICheckpointRepository
	log        *slog.Logger
}

func NewDispatcher(engine *QueueService, checkpoint repositories.ICheckpointRepository, log *slog.Logger) *Dispatcher {
	return &Dispatcher{engine: engine, checkpoint: checkpoint, log: log}
}

// Dispatch handles one inbound message. Non-user senders, unrecognized
// text and webhook redeliveries all resolve to a silent (nil, nil).
// Engine failures return an error and no reply: the user must not be
// told "joined" when the write did not stick.
func (d *Dispatcher) Dispatch(msg domain.InboundMessage) (*Reply, error) {
	if msg.SenderType != domain.SenderTypeUser {
		return nil, nil
	}
	cmd := domain.ParseCommand(msg.Text)
	if cmd == domain.CommandUnknown {
		return nil, nil
	}
	if !d.firstDelivery(msg) {
		return nil, nil
	}

	name := msg.Name
	if name == "" {
		name = "Unknown"
	}

	switch cmd {
	case domain.CommandSignup:
		outcome, err := d.engine.Signup(msg.SenderID, name)
		if err != nil {
			return nil, err
		}
		if outcome == domain.OutcomeAlreadyQueued {
			return &Reply{Text: fmt.Sprintf("%s, you're already in the queue ✋", name)}, nil
		}
		return &Reply{Text: fmt.Sprintf("%s joined the Song-of-the-Day queue! \U0001f3b6", name)}, nil

	case domain.CommandSignout:
		outcome, err := d.engine.Signout(msg.SenderID)
		if err != nil {
			return nil, err
		}
		if outcome == domain.OutcomeNotQueued {
			return &Reply{Text: fmt.Sprintf("%s, you weren't in the queue \U0001f914", name)}, nil
		}
		return &Reply{Text: fmt.Sprintf("%s left the queue. See you next time! \U0001f44b", name)}, nil

	case domain.CommandList:
		names, err := d.engine.List()
		if err != nil {
			return nil, err
		}
		if len(names) == 0 {
			return &Reply{Text: "Queue is empty. Use !signup to claim a spot!"}, nil
		}
		listing := lo.Map(names, func(n string, i int) string {
			return fmt.Sprintf("%d. %s", i+1, n)
		})
		return &Reply{Text: "Current Song-of-the-Day queue:\n" + strings.Join(listing, "\n")}, nil

	case domain.CommandHelp:
		return &Reply{Text: helpText}, nil
	}
	return nil, nil
}

// firstDelivery reports whether this message ID has not been handled
// before. Dedup failures fail open: dropping a command on a flaky
// checkpoint store would be worse than a rare double signup, which the
// engine absorbs anyway.
func (d *Dispatcher) firstDelivery(msg domain.InboundMessage) bool {
	if msg.ID == "" {
		return true
	}
	first, err := d.checkpoint.MarkSeen(msg.ID)
	if err != nil {
		d.log.Warn("Dedup check failed, handling message anyway", "message_id", msg.ID, "error", err)
		return true
	}
	if !first {
		d.log.Debug("Dropping redelivered message", "message_id", msg.ID)
	}
	return first
}

// DailyPingReply formats the it's-your-turn message for the rotated
// participant. The mention targets the first occurrence of the literal
// "@Name" in the text; offsets are rune counts because GroupMe loci
// are character based.
func DailyPingReply(p domain.Participant) Reply {
	text := fmt.Sprintf("@%s it's your turn to share today's song! \U0001f3b5", p.Name)
	return Reply{Text: text, Mention: mentionFor(text, p)}
}

func mentionFor(text string, p domain.Participant) *domain.Mention {
	tag := "@" + p.Name
	idx := strings.Index(text, tag)
	if idx < 0 {
		return nil
	}
	return &domain.Mention{
		UserID: p.UserID,
		Name:   p.Name,
		Offset: utf8.RuneCountInString(text[:idx]),
		Length: utf8.RuneCountInString(tag),
	}
}
