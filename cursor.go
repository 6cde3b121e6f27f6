// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstart

import "go4.org/mem"

// A cursor is a read position in an input view. A cursor is created for a
// single scan and discarded afterward.
type cursor struct {
	in    mem.RO
	pos   int // offset of the next unread byte, 0 <= pos <= in.Len()
	depth int // current nesting of objects and arrays
}

func newCursor(in mem.RO) *cursor { return &cursor{in: in} }

// next returns the next byte of the input and true, or 0 and false if the
// input is exhausted. If skipSpace is true, whitespace is discarded before the
// byte is chosen. If peek is true, the position is left before the returned
// byte, but after any whitespace that was skipped.
func (c *cursor) next(skipSpace, peek bool) (byte, bool) {
	for c.pos < c.in.Len() {
		ch := c.in.At(c.pos)
		c.pos++
		if skipSpace && isSpace(ch) {
			continue
		}
		if peek {
			c.pos--
		}
		return ch, true
	}
	return 0, false
}

// read consumes and returns the next byte, without skipping whitespace.
func (c *cursor) read() (byte, bool) { return c.next(false, false) }

// peek returns the next non-whitespace byte without consuming it.
func (c *cursor) peek() (byte, bool) { return c.next(true, true) }

// unread moves the position back one byte. Only the number production uses
// this, to give back the byte that ended the number.
func (c *cursor) unread() {
	if c.pos > 0 {
		c.pos--
	}
}

// enter records entry into a nested object or array, and reports whether the
// nesting is still within MaxDepth.
func (c *cursor) enter() bool {
	c.depth++
	return c.depth <= MaxDepth
}

// leave records exit from a nested object or array.
func (c *cursor) leave() { c.depth-- }
