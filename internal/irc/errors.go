package irc

import "errors"

var (
	ErrEmptyInput     = errors.New("irc: empty input")
	ErrMissingCommand = errors.New("irc: missing command")
)
