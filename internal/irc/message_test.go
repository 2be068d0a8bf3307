package irc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewMessage(t *testing.T) {
	want := Message{
		Command: "PRIVMSG",
		Args:    []string{"test"},
		Suffix:  ptr("Testing!"),
	}
	got := New(nil, "PRIVMSG", []string{"test"}, ptr("Testing!"))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("message mismatch (-want +got):\n%s", diff)
	}
}

func TestConstructorsCopyArguments(t *testing.T) {
	args := []string{"#chan"}
	suffix := "hello"
	msg := New(nil, "PRIVMSG", args, &suffix)
	args[0] = "#other"
	suffix = "changed"
	if msg.Args[0] != "#chan" {
		t.Fatalf("args aliased: %q", msg.Args[0])
	}
	if *msg.Suffix != "hello" {
		t.Fatalf("suffix aliased: %q", *msg.Suffix)
	}
}

func TestSourceNickname(t *testing.T) {
	tests := []struct {
		prefix *string
		nick   string
		ok     bool
	}{
		{nil, "", false},
		{ptr("irc.test.net"), "", false},
		{ptr("test!test@test"), "test", true},
		{ptr("test@test"), "test", true},
		{ptr("test"), "test", true},
	}
	for _, tt := range tests {
		msg := New(tt.prefix, "PING", nil, nil)
		nick, ok := msg.SourceNickname()
		if nick != tt.nick || ok != tt.ok {
			t.Fatalf("SourceNickname with prefix %v: got %q %v, want %q %v",
				tt.prefix, nick, ok, tt.nick, tt.ok)
		}
	}
}
