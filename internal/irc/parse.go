package irc

import "strings"

const (
	// Historical cap on positional parameters. Once reached, the final
	// parameter keeps any remaining text verbatim, embedded spaces included.
	maxArgs = 14

	terminatorLen = 2 // "\r\n"
)

// Parse turns one CRLF-terminated wire line into a Message. The scan is
// strictly left to right: tag section, prefix, trailing-parameter marker,
// command, positional args. Each optional section is consumed together with
// the single space that terminates it. Parse fails with ErrEmptyInput on a
// zero-length line and with ErrMissingCommand when no command token remains
// after the optional sections.
func Parse(line string) (Message, error) {
	if len(line) == 0 {
		return Message{}, ErrEmptyInput
	}

	var msg Message
	rest := line
	msg.Tags, rest = scanTags(rest)
	msg.Prefix, rest = scanPrefix(rest)
	msg.Suffix, rest = scanSuffix(rest)

	cmd, rest, ok := scanCommand(rest)
	if !ok {
		return Message{}, ErrMissingCommand
	}
	msg.Command = cmd
	msg.Args = scanArgs(rest, msg.Suffix == nil)
	return msg, nil
}

// scanTags consumes "@k1=v1;k2 " when present. A marker without a
// terminating space swallows the remainder and records no tags.
func scanTags(rest string) ([]Tag, string) {
	if !strings.HasPrefix(rest, "@") {
		return nil, rest
	}
	i := strings.IndexByte(rest, ' ')
	if i < 0 {
		return nil, ""
	}
	return parseTags(rest[1:i]), rest[i+1:]
}

// scanPrefix consumes ":source " when present.
func scanPrefix(rest string) (*string, string) {
	if !strings.HasPrefix(rest, ":") {
		return nil, rest
	}
	i := strings.IndexByte(rest, ' ')
	if i < 0 {
		return nil, ""
	}
	prefix := rest[1:i]
	return &prefix, rest[i+1:]
}

// scanSuffix looks for the exact two-byte marker " :". Only a colon
// immediately preceded by a space opens the trailing parameter; a colon
// inside a token stays ordinary content. The suffix runs to the end of the
// line with the terminator excluded, and the space ahead of the marker is
// left on the remainder for the arg scan.
func scanSuffix(rest string) (*string, string) {
	i := strings.Index(rest, " :")
	if i < 0 {
		return nil, rest
	}
	suffix := chopTerminator(rest[i+2:])
	return &suffix, rest[:i+1]
}

// scanCommand takes the first space-delimited token. The grammar requires a
// space after the command even when nothing follows it, so a remainder
// without one yields no command.
func scanCommand(rest string) (string, string, bool) {
	i := strings.IndexByte(rest, ' ')
	if i <= 0 {
		return "", "", false
	}
	return rest[:i], rest[i+1:], true
}

// scanArgs splits the remainder into at most maxArgs tokens, dropping the
// empties produced by consecutive spaces. When no trailing parameter was
// detected the terminator is still on the remainder and is chopped first.
func scanArgs(rest string, chop bool) []string {
	if chop {
		rest = chopTerminator(rest)
	}
	var args []string
	for _, tok := range strings.SplitN(rest, " ", maxArgs) {
		if tok != "" {
			args = append(args, tok)
		}
	}
	return args
}

// parseTags splits an already delimited tag section. Empty fragments are
// dropped; a fragment without "=" is a flag-only tag.
func parseTags(section string) []Tag {
	tags := make([]Tag, 0, strings.Count(section, ";")+1)
	for _, raw := range strings.Split(section, ";") {
		if raw == "" {
			continue
		}
		key, value, found := strings.Cut(raw, "=")
		if !found {
			tags = append(tags, Tag{Key: key})
			continue
		}
		v := value
		tags = append(tags, Tag{Key: key, Value: &v})
	}
	return tags
}

func chopTerminator(s string) string {
	if len(s) < terminatorLen {
		return ""
	}
	return s[:len(s)-terminatorLen]
}
