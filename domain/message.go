package domain

// InboundMessage is the slice of a chat callback the core consumes.
// ID is the platform message identifier, used to drop webhook
// redeliveries before they mutate the queue twice.
type InboundMessage struct {
	ID         string
	SenderType string
	SenderID   string
	Name       string
	Text       string
}

// SenderTypeUser marks messages typed by a human. Everything else
// (bots, system events) is dropped before dispatch so the bot cannot
// trigger itself.
const SenderTypeUser = "user"

// Mention tells the outbound transport to tag one user inside a
// message. Offset and Length are rune counts, matching GroupMe's
// character-based loci.
type Mention struct {
	UserID string
	Name   string
	Offset int
	Length int
}
