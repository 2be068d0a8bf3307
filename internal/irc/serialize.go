package irc

import "strings"

// String serializes the message back into one wire line, terminator
// included. Serialization is total: any Message value produces a line.
// Tags are not emitted; the trailing parameter is reintroduced with the
// " :" marker verbatim.
func (m Message) String() string {
	var b strings.Builder
	if m.Prefix != nil {
		b.WriteByte(':')
		b.WriteString(*m.Prefix)
		b.WriteByte(' ')
	}
	b.WriteString(m.Command)
	for _, arg := range m.Args {
		b.WriteByte(' ')
		b.WriteString(arg)
	}
	if m.Suffix != nil {
		b.WriteString(" :")
		b.WriteString(*m.Suffix)
	}
	b.WriteString("\r\n")
	return b.String()
}

// Bytes is String for writers that want a byte slice.
func (m Message) Bytes() []byte {
	return []byte(m.String())
}
