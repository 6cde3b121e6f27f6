// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstart

const (
	wordTrue  = "true"
	wordFalse = "false"
	wordNull  = "null"
)

// matchWord reads the bytes of word from c, and reports whether they match.
// If the input ends before the word is complete, what was read is a prefix of
// word and matchWord reports true.
func matchWord(c *cursor, word string) bool {
	for i := 0; i < len(word); i++ {
		ch, ok := c.read()
		if !ok {
			return true
		} else if ch != word[i] {
			return false
		}
	}
	return true
}
