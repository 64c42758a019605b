// Package terminal defines the cell vocabulary shared between the rain engine and its hosts.
//
// A Cell is a rune with 24-bit foreground/background and an attribute bitmask. The engine
// only ever emits foreground, rune, and attributes; background belongs to the host.
package terminal
