// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstart

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrLimitReached is reported by a write to a Sniffer that would exceed its
// limit.
var ErrLimitReached = errors.New("sniffer limit reached")

// A Sniffer classifies a stream of input as it arrives. Write data to the
// Sniffer as it is received, and call Kind to report the kind of value the
// stream begins with so far.
//
// The zero value is ready for use and buffers without limit.
// A Sniffer is not safe for concurrent use without external synchronization.
type Sniffer struct {
	// Limit, if positive, is the maximum number of bytes the Sniffer will
	// retain. Data written beyond the limit is discarded.
	Limit int

	buf bytes.Buffer

	// The result of the last scan, which covered the first nscan bytes.
	nscan int
	kind  Kind
	bad   bool // the scanned prefix is malformed
}

// NewSniffer constructs a Sniffer that retains at most limit bytes.
// If limit <= 0, the Sniffer buffers without limit.
func NewSniffer(limit int) *Sniffer { return &Sniffer{Limit: limit} }

// Write adds data to the buffered stream. It reports an error only if the
// limit is reached, in which case it buffers as much as the limit allows and
// returns an error wrapping ErrLimitReached.
func (s *Sniffer) Write(data []byte) (int, error) {
	if s.Limit > 0 {
		if room := max(s.Limit-s.buf.Len(), 0); room < len(data) {
			s.buf.Write(data[:room])
			return room, fmt.Errorf("write %d bytes: %w (limit %d)", len(data), ErrLimitReached, s.Limit)
		}
	}
	return s.buf.Write(data)
}

// Kind reports the kind of value at the start of the data written so far, and
// whether the data are a valid prefix of that value. It reports Invalid, false
// if no data other than whitespace have been written.
//
// Once the data are found to be malformed, no further data can make them
// valid, and Kind does not scan again. Otherwise, Kind scans only when more
// data have been written since the previous call.
func (s *Sniffer) Kind() (Kind, bool) {
	if !s.bad && s.buf.Len() != s.nscan {
		kind, ok := newCursor(bufferView(&s.buf)).scanValue()
		s.nscan = s.buf.Len()
		s.kind, s.bad = kind, !ok
	}
	if s.bad || s.kind == Invalid {
		return Invalid, false
	}
	return s.kind, true
}

// Len reports the number of bytes buffered by s.
func (s *Sniffer) Len() int { return s.buf.Len() }

// Bytes returns the data buffered by s. The slice is valid only until the next
// call to Write or Reset.
func (s *Sniffer) Bytes() []byte { return s.buf.Bytes() }

// Reset discards the buffered data and the state of the previous scan, but
// keeps the limit.
func (s *Sniffer) Reset() {
	s.buf.Reset()
	s.nscan, s.kind, s.bad = 0, Invalid, false
}
