// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package decomp detects and decodes compressed input streams.
package decomp

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Format identifies the encoding of an input stream.
type Format byte

// Constants defining the recognized formats.
const (
	Plain Format = iota // not compressed
	Gzip                // gzip (RFC 1952)
	Zstd                // Zstandard frame
	LZ4                 // LZ4 frame
)

var formatStr = [...]string{
	Plain: "plain",
	Gzip:  "gzip",
	Zstd:  "zstd",
	LZ4:   "lz4",
}

func (f Format) String() string {
	if int(f) >= len(formatStr) {
		return fmt.Sprintf("Format(%d)", f)
	}
	return formatStr[f]
}

var magic = []struct {
	format Format
	prefix []byte
}{
	{Gzip, []byte{0x1f, 0x8b}},
	{Zstd, []byte{0x28, 0xb5, 0x2f, 0xfd}},
	{LZ4, []byte{0x04, 0x22, 0x4d, 0x18}},
}

// Detect reports the format indicated by the leading bytes of data.
// Data too short to contain a magic number are reported as Plain.
func Detect(data []byte) Format {
	for _, m := range magic {
		if bytes.HasPrefix(data, m.prefix) {
			return m.format
		}
	}
	return Plain
}

// Open returns a reader for the decoded contents of r, along with the format
// detected from its leading bytes. If the format is Plain, the reader returns
// the contents of r unmodified. The caller must close the reader when done.
// Closing the reader does not close r.
func Open(r io.Reader) (io.ReadCloser, Format, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return nil, Plain, fmt.Errorf("read header: %w", err)
	}
	switch f := Detect(head); f {
	case Gzip:
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, f, fmt.Errorf("open %v: %w", f, err)
		}
		return gz, f, nil
	case Zstd:
		dec, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, f, fmt.Errorf("open %v: %w", f, err)
		}
		return dec.IOReadCloser(), f, nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(br)), f, nil
	default:
		return io.NopCloser(br), Plain, nil
	}
}
