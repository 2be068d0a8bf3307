// Package irc owns the wire contract for one IRC line.
//
// Ownership boundary:
// - message/tag data model
// - line parsing primitives (RFC 2812 grammar plus IRCv3.2 tags)
// - line serialization
// - capability identifier wire strings
//
// Everything here is pure and stateless. Connection handling, line framing
// and session state belong to the callers.
package irc
