package bot

import (
	"strings"
	"unicode"
)

// Action is one decoded inbound user action.
type Action struct {
	UserID  string
	ChatID  int64
	Command string // lower-case, without the leading slash; empty for plain text
	Args    string
	Text    string
}

// Reply is the single text response to an Action.
type Reply struct {
	Text string
	// Preformatted asks the transport to render Text in a monospace block.
	Preformatted bool
	// Keyboard, when set, replaces the user's reply keyboard. Each inner slice is one row.
	Keyboard [][]string
}

// ParseCommand splits "/cmd@botname args" into a lower-case command and its arguments.
// Text not starting with "/" yields an empty command.
func ParseCommand(text string) (command, args string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", ""
	}
	head, rest := text[1:], ""
	if i := strings.IndexFunc(head, unicode.IsSpace); i >= 0 {
		head, rest = head[:i], head[i:]
	}
	if at := strings.Index(head, "@"); at >= 0 {
		head = head[:at]
	}
	return strings.ToLower(head), strings.TrimSpace(rest)
}
