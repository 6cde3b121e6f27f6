// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstart

// Predicates over single input bytes. None of these have side effects.

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isQuote(ch byte) bool      { return ch == '"' }
func isBackslash(ch byte) bool  { return ch == '\\' }
func isUnicodeEsc(ch byte) bool { return ch == 'u' }

// isEscapable reports whether ch may directly follow a backslash in a string.
// The Unicode escape "\u" is handled separately.
func isEscapable(ch byte) bool {
	switch ch {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return true
	}
	return false
}

// isControl reports whether ch is a control byte, which must be escaped
// inside a string.
func isControl(ch byte) bool { return ch <= 0x1f }

func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isZero(ch byte) bool     { return ch == '0' }
func isDot(ch byte) bool      { return ch == '.' }
func isMinus(ch byte) bool    { return ch == '-' }
func isSign(ch byte) bool     { return ch == '-' || ch == '+' }
func isExponent(ch byte) bool { return ch == 'e' || ch == 'E' }
func isNumStart(ch byte) bool { return isMinus(ch) || isDigit(ch) }

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isObjectStart(ch byte) bool { return ch == '{' }
func isObjectEnd(ch byte) bool   { return ch == '}' }
func isArrayStart(ch byte) bool  { return ch == '[' }
func isArrayEnd(ch byte) bool    { return ch == ']' }
func isComma(ch byte) bool       { return ch == ',' }
func isColon(ch byte) bool       { return ch == ':' }

func isTrueStart(ch byte) bool  { return ch == wordTrue[0] }
func isFalseStart(ch byte) bool { return ch == wordFalse[0] }
func isNullStart(ch byte) bool  { return ch == wordNull[0] }
