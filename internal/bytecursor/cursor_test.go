package bytecursor

import (
	"bytes"
	"testing"
)

func TestCursor_TakeTerminatedString(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		want      string
		remaining int
	}{
		{
			name:      "terminated string with trailing bytes",
			data:      []byte("user@example.com\x00\xc4\x2a"),
			want:      "user@example.com",
			remaining: 2,
		},
		{
			name:      "empty string",
			data:      []byte{0x00, 0xc4},
			want:      "",
			remaining: 1,
		},
		{
			name:      "terminator at end of buffer",
			data:      []byte("last\x00"),
			want:      "last",
			remaining: 0,
		},
		{
			name:      "no terminator drains the buffer",
			data:      []byte("never terminated"),
			want:      "",
			remaining: 0,
		},
		{
			name:      "empty buffer",
			data:      nil,
			want:      "",
			remaining: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.data)
			got := c.TakeTerminatedString()
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			if c.Remaining() != tt.remaining {
				t.Errorf("expected %d bytes remaining, got %d", tt.remaining, c.Remaining())
			}
		})
	}
}

func TestCursor_TakeByte(t *testing.T) {
	c := New([]byte{0xc4, 0x2a})

	b, err := c.TakeByte("rating")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b != 0xc4 {
		t.Errorf("expected 0xc4, got 0x%02x", b)
	}
	if c.Offset() != 1 {
		t.Errorf("expected offset 1, got %d", c.Offset())
	}
}

func TestCursor_TakeByte_Empty(t *testing.T) {
	c := New(nil)

	_, err := c.TakeByte("rating")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestCursor_TakeByte_Drained(t *testing.T) {
	c := New([]byte{0x01})
	if _, err := c.TakeByte("first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := c.TakeByte("second"); err == nil {
		t.Fatal("expected error after draining cursor, got nil")
	}
}

func TestCursor_TakeRemaining(t *testing.T) {
	c := New([]byte{0x01, 0x02, 0x03})
	if _, err := c.TakeByte("first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rest := c.TakeRemaining()
	if !bytes.Equal(rest, []byte{0x02, 0x03}) {
		t.Errorf("expected [0x02 0x03], got %v", rest)
	}
	if !c.Empty() {
		t.Error("cursor should be empty after TakeRemaining")
	}

	if got := c.TakeRemaining(); len(got) != 0 {
		t.Errorf("expected empty remainder, got %v", got)
	}
}

func TestCursor_Sequential(t *testing.T) {
	// Email, rating byte, two play-count bytes.
	data := []byte("a@b.com\x00\x7f\x01\x02")
	c := New(data)

	email := c.TakeTerminatedString()
	if email != "a@b.com" {
		t.Errorf("expected a@b.com, got %q", email)
	}

	rating, err := c.TakeByte("rating")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rating != 0x7f {
		t.Errorf("expected 0x7f, got 0x%02x", rating)
	}

	rest := c.TakeRemaining()
	if !bytes.Equal(rest, []byte{0x01, 0x02}) {
		t.Errorf("expected [0x01 0x02], got %v", rest)
	}
	if c.Offset() != len(data) {
		t.Errorf("expected offset %d, got %d", len(data), c.Offset())
	}
}
