package buffer

import (
	"errors"

	"github.com/rivo/uniseg"
)

// Errors returned by buffer operations.
var (
	ErrCharOutOfRange = errors.New("character offset out of range")
	ErrRangeInvalid   = errors.New("invalid character range")
)

// Revision identifies a buffer revision. Each mutation produces a new
// revision, letting callers detect external changes between passes.
type Revision uint64

// Buffer holds a mutable run of text. The buffer is owned by the host
// application and borrowed by the engine for the duration of one update
// pass; the engine never retains a reference across passes.
//
// Text is indexed two ways: byte offsets for substring extraction and
// character offsets for cursor arithmetic. A character is a grapheme
// cluster, so multi-byte and multi-rune sequences count as one.
type Buffer struct {
	text     string
	revision Revision
}

// New creates a buffer with the given initial content.
func New(s string) *Buffer {
	return &Buffer{text: s}
}

// String returns the current text.
func (b *Buffer) String() string {
	return b.text
}

// Len returns the length of the text in bytes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Revision returns the current revision. It changes on every mutation.
func (b *Buffer) Revision() Revision {
	return b.revision
}

// CharCount returns the number of characters in the buffer.
func (b *Buffer) CharCount() int {
	return uniseg.GraphemeClusterCount(b.text)
}

// ByteOffset returns the byte offset of the character at charIdx.
// charIdx may equal CharCount, addressing the end of the text.
func (b *Buffer) ByteOffset(charIdx int) (int, error) {
	return byteOffset(b.text, charIdx)
}

// Slice returns the text between two character offsets.
func (b *Buffer) Slice(startChar, endChar int) (string, error) {
	if startChar > endChar {
		return "", ErrRangeInvalid
	}
	start, err := byteOffset(b.text, startChar)
	if err != nil {
		return "", err
	}
	end, err := byteOffset(b.text, endChar)
	if err != nil {
		return "", err
	}
	return b.text[start:end], nil
}

// Splice replaces the characters in [startChar, endChar) with s and
// bumps the revision. Equal offsets perform a pure insertion.
func (b *Buffer) Splice(startChar, endChar int, s string) error {
	if startChar > endChar {
		return ErrRangeInvalid
	}
	start, err := byteOffset(b.text, startChar)
	if err != nil {
		return err
	}
	end, err := byteOffset(b.text, endChar)
	if err != nil {
		return err
	}
	b.text = b.text[:start] + s + b.text[end:]
	b.revision++
	return nil
}

// Spliced returns the text that Splice would produce, without mutating
// the buffer. Used to evaluate a prospective edit before committing.
func (b *Buffer) Spliced(startChar, endChar int, s string) (string, error) {
	if startChar > endChar {
		return "", ErrRangeInvalid
	}
	start, err := byteOffset(b.text, startChar)
	if err != nil {
		return "", err
	}
	end, err := byteOffset(b.text, endChar)
	if err != nil {
		return "", err
	}
	return b.text[:start] + s + b.text[end:], nil
}

// CharCount returns the number of characters (grapheme clusters) in s.
func CharCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// byteOffset walks the text cluster by cluster to locate a character.
func byteOffset(text string, charIdx int) (int, error) {
	if charIdx < 0 {
		return 0, ErrCharOutOfRange
	}
	pos := 0
	rest := text
	state := -1
	for i := 0; i < charIdx; i++ {
		if len(rest) == 0 {
			return 0, ErrCharOutOfRange
		}
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(cluster)
	}
	return pos, nil
}
