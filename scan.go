// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstart

import "bytes"

// MaxDepth is the maximum nesting depth of objects and arrays accepted by
// Check. Input nested more deeply is reported as invalid.
const MaxDepth = 10000

// Check reports the kind of JSON value at the start of input, and whether the
// input is consistent with the JSON grammar up to the end of that value.
//
// If the input ends before the value is complete, Check reports the kind and
// true, as long as the bytes seen so far are a valid prefix. Bytes following
// the first value are not examined. If input is empty, contains only
// whitespace, or does not begin with a valid JSON value, Check returns
// Invalid, false.
//
// Check does not modify input.
func Check[T Input](input T) (Kind, bool) {
	return newCursor(viewOf(input)).check()
}

// CheckBuffer is as Check, but reads the unread contents of buf. It does not
// consume or modify the contents of buf.
func CheckBuffer(buf *bytes.Buffer) (Kind, bool) {
	return newCursor(bufferView(buf)).check()
}

func (c *cursor) check() (Kind, bool) {
	kind, ok := c.scanValue()
	if !ok || kind == Invalid {
		return Invalid, false
	}
	return kind, true
}

// scanValue consumes a single value of any type, and reports the kind of the
// value chosen along with whether it is valid. If the input is exhausted
// before any value begins, it reports Invalid, true.
func (c *cursor) scanValue() (Kind, bool) {
	ch, ok := c.peek()
	if !ok {
		return Invalid, true
	}
	switch {
	case isObjectStart(ch):
		return Object, c.scanObject()
	case isQuote(ch):
		return String, c.scanString()
	case isNumStart(ch):
		return Number, c.scanNumber()
	case isArrayStart(ch):
		return Array, c.scanArray()
	case isTrueStart(ch):
		return Boolean, matchWord(c, wordTrue)
	case isFalseStart(ch):
		return Boolean, matchWord(c, wordFalse)
	case isNullStart(ch):
		return Null, matchWord(c, wordNull)
	default:
		return Invalid, false
	}
}

// elem consumes a nested value, and reports whether it is valid.
func (c *cursor) elem() bool {
	_, ok := c.scanValue()
	return ok
}

// scanObject consumes an object, "{" members "}".
func (c *cursor) scanObject() bool {
	ch, ok := c.next(true, false)
	if !ok {
		return true
	} else if !isObjectStart(ch) {
		return false
	}
	if !c.enter() {
		return false
	}
	defer c.leave()

	// An empty object may close immediately.
	if ch, ok := c.peek(); !ok {
		return true
	} else if isObjectEnd(ch) {
		c.read()
		return true
	}
	for {
		// Parse a single member: "key": value
		if ch, ok := c.peek(); !ok {
			return true
		} else if !isQuote(ch) {
			return false // key is missing or not a string
		}
		if !c.scanString() {
			return false
		}
		if ch, ok := c.next(true, false); !ok {
			return true
		} else if !isColon(ch) {
			return false
		}
		if !c.elem() {
			return false
		}

		// Check whether we have more members (",") or are done.
		if ch, ok := c.peek(); !ok {
			return true
		} else if !isComma(ch) {
			break
		}
		c.read() // the comma
	}
	return c.closeWith(isObjectEnd)
}

// scanArray consumes an array, "[" elements "]".
func (c *cursor) scanArray() bool {
	ch, ok := c.next(true, false)
	if !ok {
		return true
	} else if !isArrayStart(ch) {
		return false
	}
	if !c.enter() {
		return false
	}
	defer c.leave()

	// An empty array may close immediately.
	if ch, ok := c.peek(); !ok {
		return true
	} else if isArrayEnd(ch) {
		c.read()
		return true
	}
	for {
		// A value is required here, including after a comma, so a close
		// bracket following a comma is rejected by scanValue.
		if kind, ok := c.scanValue(); !ok {
			return false
		} else if kind == Invalid {
			return true // input ended
		}

		if ch, ok := c.peek(); !ok {
			return true
		} else if !isComma(ch) {
			break
		}
		c.read() // the comma
	}
	return c.closeWith(isArrayEnd)
}

// closeWith consumes the next non-whitespace byte, and reports whether it
// satisfies isEnd. The end of input is also accepted.
func (c *cursor) closeWith(isEnd func(byte) bool) bool {
	ch, ok := c.next(true, false)
	return !ok || isEnd(ch)
}

// scanString consumes a quoted string.
func (c *cursor) scanString() bool {
	ch, ok := c.read()
	if !ok {
		return true
	} else if !isQuote(ch) {
		return false
	}
	for {
		ch, ok := c.read()
		if !ok {
			return true
		}
		switch {
		case isQuote(ch):
			return true
		case isControl(ch):
			return false // unescaped control
		case isBackslash(ch):
			if !c.scanEscape() {
				return false
			}
		}
	}
}

// scanEscape consumes the remainder of an escape sequence, after the
// backslash.
func (c *cursor) scanEscape() bool {
	ch, ok := c.read()
	if !ok || isEscapable(ch) {
		return true
	} else if !isUnicodeEsc(ch) {
		return false
	}
	for i := 0; i < 4; i++ {
		ch, ok := c.read()
		if !ok {
			return true
		} else if !isHexDigit(ch) {
			return false
		}
	}
	return true
}

// scanNumber consumes a number. The byte that ends the number, if any, is
// put back for the caller.
func (c *cursor) scanNumber() bool {
	ch, ok := c.read()
	if ok && isMinus(ch) {
		ch, ok = c.read()
	}
	if !ok {
		return true
	} else if !isDigit(ch) {
		return false
	}

	// Integer part. A leading zero is the whole integer part.
	if isZero(ch) {
		if ch, ok = c.read(); !ok {
			return true
		}
	} else {
		if ch, ok = c.readDigits(); !ok {
			return true
		}
	}

	// Fraction: at least one digit must follow the decimal point.
	if isDot(ch) {
		if ch, ok = c.read(); !ok {
			return true
		} else if !isDigit(ch) {
			return false
		}
		if ch, ok = c.readDigits(); !ok {
			return true
		}
	}

	// Exponent: a sign or digit must follow the marker, and a digit must
	// follow a sign.
	if isExponent(ch) {
		if ch, ok = c.read(); !ok {
			return true
		}
		if isSign(ch) {
			if ch, ok = c.read(); !ok {
				return true
			}
		}
		if !isDigit(ch) {
			return false
		}
		if _, ok = c.readDigits(); !ok {
			return true
		}
	}

	c.unread()
	return true
}

// readDigits consumes digits until the input ends or a non-digit is found.
// It returns the first non-digit, which has been consumed.
func (c *cursor) readDigits() (byte, bool) {
	for {
		ch, ok := c.read()
		if !ok || !isDigit(ch) {
			return ch, ok
		}
	}
}
