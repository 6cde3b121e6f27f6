// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go4.org/mem"
)

func TestCursorNext(t *testing.T) {
	type step struct {
		Skip, Peek bool
		Byte       byte
		OK         bool
		Pos        int
	}
	tests := []struct {
		input string
		steps []step
	}{
		{"", []step{
			{Skip: true, Peek: true, Pos: 0},
			{Pos: 0},
		}},
		{"  a", []step{
			{Skip: true, Peek: true, Byte: 'a', OK: true, Pos: 2},
			{Skip: true, Peek: true, Byte: 'a', OK: true, Pos: 2},
			{Byte: 'a', OK: true, Pos: 3},
			{Skip: true, Pos: 3},
		}},
		{" \t\r\nb c", []step{
			{Byte: ' ', OK: true, Pos: 1},
			{Skip: true, Byte: 'b', OK: true, Pos: 5},
			{Peek: true, Byte: ' ', OK: true, Pos: 5},
			{Skip: true, Byte: 'c', OK: true, Pos: 7},
			{Skip: true, Peek: true, Pos: 7},
		}},
		{"   ", []step{
			{Skip: true, Peek: true, Pos: 3},
		}},
	}
	for _, tc := range tests {
		c := newCursor(mem.S(tc.input))
		for i, want := range tc.steps {
			ch, ok := c.next(want.Skip, want.Peek)
			got := step{Skip: want.Skip, Peek: want.Peek, Byte: ch, OK: ok, Pos: c.pos}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Input %#q step %d: (-want, +got)\n%s", tc.input, i+1, diff)
			}
		}
	}
}

func TestCursorUnread(t *testing.T) {
	c := newCursor(mem.S("ab"))
	c.unread() // no effect at the start
	if c.pos != 0 {
		t.Errorf("Unread at start: pos %d, want 0", c.pos)
	}
	c.read()
	c.read()
	c.unread()
	if ch, ok := c.read(); !ok || ch != 'b' {
		t.Errorf("Read after unread: got %q, %v; want 'b', true", ch, ok)
	}
}

func TestMatchWord(t *testing.T) {
	tests := []struct {
		word   string
		input  string
		want   bool
		endPos int
	}{
		{wordFalse, "false", true, 5},
		{wordFalse, "false,", true, 5},
		{wordFalse, "fal", true, 3},
		{wordFalse, "f", true, 1},
		{wordFalse, "falsi", false, 5},
		{wordFalse, "fali", false, 4},
		{wordFalse, "fai", false, 3},
		{wordFalse, "fi", false, 2},
		{wordFalse, "i", false, 1},
		{wordTrue, "true", true, 4},
		{wordTrue, "tru", true, 3},
		{wordTrue, "trui", false, 4},
		{wordTrue, "tri", false, 3},
		{wordTrue, "ti", false, 2},
		{wordNull, "null", true, 4},
		{wordNull, "nu", true, 2},
		{wordNull, "nuli", false, 4},
		{wordNull, "nui", false, 3},
		{wordNull, "n ull", false, 2},
	}
	for _, tc := range tests {
		c := newCursor(mem.S(tc.input))
		if got := matchWord(c, tc.word); got != tc.want {
			t.Errorf("matchWord(%#q, %q): got %v, want %v", tc.input, tc.word, got, tc.want)
		}
		if c.pos != tc.endPos {
			t.Errorf("matchWord(%#q, %q): pos %d, want %d", tc.input, tc.word, c.pos, tc.endPos)
		}
	}
}

// Verify where each production leaves the cursor, since the enclosing
// productions depend on it.
func TestProductionEnd(t *testing.T) {
	tests := []struct {
		input string
		scan  func(*cursor) bool
		want  bool
		pos   int
	}{
		{"0", (*cursor).scanNumber, true, 1},
		{"034", (*cursor).scanNumber, true, 1},
		{"12,", (*cursor).scanNumber, true, 2},
		{"12", (*cursor).scanNumber, true, 2},
		{"-0 ", (*cursor).scanNumber, true, 2},
		{"1.5e3]", (*cursor).scanNumber, true, 5},
		{"1.5e+", (*cursor).scanNumber, true, 5},
		{"1E-7}", (*cursor).scanNumber, true, 4},
		{"-", (*cursor).scanNumber, true, 1},
		{"-x", (*cursor).scanNumber, false, 2},
		{"1.x", (*cursor).scanNumber, false, 3},

		{`"abc" x`, (*cursor).scanString, true, 5},
		{`"a\"b"`, (*cursor).scanString, true, 6},
		{`"é"`, (*cursor).scanString, true, 4},
		{`"abc`, (*cursor).scanString, true, 4},
		{`x"`, (*cursor).scanString, false, 1},

		{`{} 1`, (*cursor).scanObject, true, 2},
		{`{"a":1} 1`, (*cursor).scanObject, true, 7},
		{`{ "a" : 1 }`, (*cursor).scanObject, true, 11},
		{`[] 1`, (*cursor).scanArray, true, 2},
		{`[1, 2.5] 1`, (*cursor).scanArray, true, 8},
	}
	for _, tc := range tests {
		c := newCursor(mem.S(tc.input))
		if got := tc.scan(c); got != tc.want {
			t.Errorf("Scan %#q: got %v, want %v", tc.input, got, tc.want)
		}
		if c.pos != tc.pos {
			t.Errorf("Scan %#q: pos %d, want %d", tc.input, c.pos, tc.pos)
		}
		if c.depth != 0 {
			t.Errorf("Scan %#q: depth %d, want 0", tc.input, c.depth)
		}
	}
}
