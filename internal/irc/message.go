package irc

import "strings"

// Tag is one IRCv3.2 message tag. A nil Value marks a flag-only tag,
// which is distinct from a tag carrying an empty value.
type Tag struct {
	Key   string  `json:"key"`
	Value *string `json:"value,omitempty"`
}

// Message is one wire line in structured form. Nil Prefix/Suffix mean the
// section was absent on the wire; a nil Tags slice means no tag section,
// while a non-nil empty slice means the wire carried an empty tag section.
// Messages are value types and are not mutated after construction.
type Message struct {
	Tags    []Tag    `json:"tags,omitempty"`
	Prefix  *string  `json:"prefix,omitempty"`
	Command string   `json:"command"`
	Args    []string `json:"args,omitempty"`
	Suffix  *string  `json:"suffix,omitempty"`
}

// New builds a tagless message from component parts. Prefix and suffix are
// optional; nil means absent.
func New(prefix *string, command string, args []string, suffix *string) Message {
	return WithTags(nil, prefix, command, args, suffix)
}

// WithTags builds a message including IRCv3.2 tags.
func WithTags(tags []Tag, prefix *string, command string, args []string, suffix *string) Message {
	return Message{
		Tags:    copyTags(tags),
		Prefix:  copyString(prefix),
		Command: command,
		Args:    append([]string(nil), args...),
		Suffix:  copyString(suffix),
	}
}

// SourceNickname derives the nickname of the message source from the prefix.
// Prefixes containing a dot are server names and carry no nickname.
func (m Message) SourceNickname() (string, bool) {
	if m.Prefix == nil {
		return "", false
	}
	prefix := *m.Prefix
	if strings.IndexByte(prefix, '.') >= 0 {
		return "", false
	}
	if i := strings.IndexByte(prefix, '!'); i >= 0 {
		return prefix[:i], true
	}
	if i := strings.IndexByte(prefix, '@'); i >= 0 {
		return prefix[:i], true
	}
	return prefix, true
}

// copyTags keeps nil and present-but-empty distinct.
func copyTags(tags []Tag) []Tag {
	if tags == nil {
		return nil
	}
	return append(make([]Tag, 0, len(tags)), tags...)
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
