package domain

import "strings"

// Command is the closed set of chat commands the bot reacts to.
// Anything else parses to CommandUnknown and must stay silent: replying
// to arbitrary chat messages would turn the bot into noise.
type Command int

const (
	CommandUnknown Command = iota
	CommandSignup
	CommandSignout
	CommandList
	CommandHelp
)

// ParseCommand matches the whole message text against the command
// tokens, case-insensitively. Leading and trailing whitespace is
// ignored; anything more than a bare token is not a command.
func ParseCommand(text string) Command {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "!signup":
		return CommandSignup
	case "!signout":
		return CommandSignout
	case "!queue":
		return CommandList
	case "!help":
		return CommandHelp
	default:
		return CommandUnknown
	}
}
