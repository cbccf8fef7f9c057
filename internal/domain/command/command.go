package command

import "strings"

// Kind identifies a bot command
type Kind int

const (
	Unknown Kind = iota
	Start
	Help
	Hello
	Inn
	Last
)

// String returns the command name without the leading slash
func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case Help:
		return "help"
	case Hello:
		return "hello"
	case Inn:
		return "inn"
	case Last:
		return "last"
	default:
		return "unknown"
	}
}

var byToken = map[string]Kind{
	"/start": Start,
	"/help":  Help,
	"/hello": Hello,
	"/inn":   Inn,
	"/last":  Last,
}

// Command is a parsed text message
type Command struct {
	Kind Kind
	// Token is the lowercased first word of the message, echoed back for unknown commands
	Token string
	Args  []string
}

// Parse classifies a text message by its first whitespace-delimited word.
// A "@botname" suffix, added by Telegram in group chats, is accepted only
// when it names botUsername; a command addressed to another bot is Unknown.
func Parse(text, botUsername string) Command {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Command{Kind: Unknown}
	}

	token := strings.ToLower(fields[0])
	name := token
	if at := strings.IndexByte(name, '@'); at > 0 {
		if botUsername == "" || !strings.EqualFold(name[at+1:], botUsername) {
			return Command{Kind: Unknown, Token: token, Args: fields[1:]}
		}
		name = name[:at]
	}

	kind, ok := byToken[name]
	if !ok {
		kind = Unknown
	}

	return Command{Kind: kind, Token: token, Args: fields[1:]}
}
