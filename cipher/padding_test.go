package cipher

import (
	"bytes"
	"errors"
	"testing"
)

func TestPad(t *testing.T) {
	for n := 0; n <= 33; n++ {
		data := bytes.Repeat([]byte{'x'}, n)
		padded := Pad(data, BlockSize)

		if len(padded)%BlockSize != 0 {
			t.Errorf("len %d: padded length %d not block aligned", n, len(padded))
		}
		added := len(padded) - n
		if added < 1 || added > BlockSize {
			t.Errorf("len %d: added %d bytes", n, added)
		}
		if !bytes.Equal(padded[:n], data) {
			t.Errorf("len %d: data changed", n)
		}
		for _, b := range padded[n:] {
			if int(b) != added {
				t.Errorf("len %d: padding byte %d, want %d", n, b, added)
			}
		}
	}
}

func TestPadAlignedAddsFullBlock(t *testing.T) {
	padded := Pad([]byte("ABCDEFGH"), BlockSize)
	want := append([]byte("ABCDEFGH"), bytes.Repeat([]byte{8}, 8)...)
	if !bytes.Equal(padded, want) {
		t.Errorf("got %x, want %x", padded, want)
	}
}

func TestPadDoesNotAlias(t *testing.T) {
	data := make([]byte, 3, 16)
	Pad(data, BlockSize)
	if data[:4][3] != 0 {
		t.Error("Pad wrote into the spare capacity of its input")
	}
}

func TestUnpad(t *testing.T) {
	tests := []struct {
		in, want []byte
	}{
		{[]byte("Hello, World!\x03\x03\x03"), []byte("Hello, World!")},
		{bytes.Repeat([]byte{8}, 8), []byte{}},
		// trusted, not validated
		{[]byte("abcdefg\x02"), []byte("abcdef")},
		{[]byte("abcdefg\x00"), []byte{}},
		{[]byte("abc\x09"), []byte{}},
	}
	for _, tt := range tests {
		got, err := Unpad(tt.in)
		if err != nil {
			t.Errorf("Unpad(%q): %v", tt.in, err)
			continue
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("Unpad(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := Unpad(nil); !errors.Is(err, ErrInvalidPadding) {
		t.Errorf("Unpad(nil): got %v, want ErrInvalidPadding", err)
	}
}

func TestUnpadStrict(t *testing.T) {
	got, err := UnpadStrict([]byte("Hello, World!\x03\x03\x03"), BlockSize)
	if err != nil || string(got) != "Hello, World!" {
		t.Errorf("UnpadStrict: got %q, %v", got, err)
	}

	bad := [][]byte{
		nil,
		[]byte("abcdefg\x00"),
		[]byte("abcdefg\x09"),
		[]byte("abcdef\x01\x02"),
		[]byte("\x05\x05\x05"),
	}
	for _, in := range bad {
		if _, err := UnpadStrict(in, BlockSize); !errors.Is(err, ErrInvalidPadding) {
			t.Errorf("UnpadStrict(%q): got %v, want ErrInvalidPadding", in, err)
		}
	}
}
