package buffer

import (
	"errors"
	"testing"
)

func TestCharCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"héllo", 5},
		{"日本語", 3},
		{"áb", 2}, // combining mark joins its base
	}
	for _, tt := range tests {
		b := New(tt.text)
		if got := b.CharCount(); got != tt.want {
			t.Errorf("CharCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestByteOffset(t *testing.T) {
	b := New("héllo")
	tests := []struct {
		char int
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 3}, // é is two bytes
		{5, 6},
	}
	for _, tt := range tests {
		got, err := b.ByteOffset(tt.char)
		if err != nil {
			t.Fatalf("ByteOffset(%d): %v", tt.char, err)
		}
		if got != tt.want {
			t.Errorf("ByteOffset(%d) = %d, want %d", tt.char, got, tt.want)
		}
	}

	if _, err := b.ByteOffset(6); !errors.Is(err, ErrCharOutOfRange) {
		t.Errorf("expected ErrCharOutOfRange, got %v", err)
	}
	if _, err := b.ByteOffset(-1); !errors.Is(err, ErrCharOutOfRange) {
		t.Errorf("expected ErrCharOutOfRange for negative, got %v", err)
	}
}

func TestSlice(t *testing.T) {
	b := New("hello world")
	got, err := b.Slice(6, 11)
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if got != "world" {
		t.Errorf("Slice(6,11) = %q, want %q", got, "world")
	}

	if _, err := b.Slice(5, 3); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("expected ErrRangeInvalid, got %v", err)
	}
}

func TestSplice(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end int
		insert     string
		want       string
	}{
		{"insert at caret", "hello", 5, 5, "!", "hello!"},
		{"insert at start", "world", 0, 0, "hello ", "hello world"},
		{"replace span", "hello world", 3, 8, "", "helrld"},
		{"replace with text", "hello", 0, 5, "bye", "bye"},
		{"multibyte", "héllo", 1, 2, "e", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.text)
			if err := b.Splice(tt.start, tt.end, tt.insert); err != nil {
				t.Fatalf("Splice: %v", err)
			}
			if b.String() != tt.want {
				t.Errorf("got %q, want %q", b.String(), tt.want)
			}
		})
	}
}

func TestSpliceRevision(t *testing.T) {
	b := New("abc")
	r0 := b.Revision()
	if err := b.Splice(1, 1, "x"); err != nil {
		t.Fatalf("Splice: %v", err)
	}
	if b.Revision() == r0 {
		t.Error("expected revision to change after splice")
	}
}

func TestSplicedDoesNotMutate(t *testing.T) {
	b := New("hello")
	r0 := b.Revision()
	got, err := b.Spliced(5, 5, "!")
	if err != nil {
		t.Fatalf("Spliced: %v", err)
	}
	if got != "hello!" {
		t.Errorf("Spliced = %q, want %q", got, "hello!")
	}
	if b.String() != "hello" || b.Revision() != r0 {
		t.Error("Spliced must not mutate the buffer")
	}
}

func TestSpliceOutOfRange(t *testing.T) {
	b := New("abc")
	if err := b.Splice(0, 4, "x"); !errors.Is(err, ErrCharOutOfRange) {
		t.Errorf("expected ErrCharOutOfRange, got %v", err)
	}
	if b.String() != "abc" {
		t.Error("buffer must be unchanged after a rejected splice")
	}
}
