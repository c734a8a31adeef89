package cipher

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func TestEngineKnownAnswer(t *testing.T) {
	e := NewEngine(0xDEADBEEF)
	plain := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	want, _ := hex.DecodeString("04651a07006cbe03")

	got, err := e.EncryptBlock(plain)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("EncryptBlock: got %x, want %x", got, want)
	}

	back, err := e.DecryptBlock(got)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, plain) {
		t.Errorf("DecryptBlock: got %x, want %x", back, plain)
	}
}

func TestEngineRoundTrip(t *testing.T) {
	blocks := [][]byte{
		make([]byte, 8),
		bytes.Repeat([]byte{0xFF}, 8),
		[]byte("ABCDEFGH"),
		{0x80, 0, 0, 0, 0, 0, 0, 1},
	}
	for _, key := range []uint32{0, 1, 0x1A2B3C4D, 0xFFFFFFFF} {
		e := NewEngine(key)
		for _, b := range blocks {
			c, err := e.EncryptBlock(b)
			if err != nil {
				t.Fatal(err)
			}
			p, err := e.DecryptBlock(c)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(p, b) {
				t.Errorf("key %#x: round trip of %x gave %x", key, b, p)
			}
		}
	}
}

func TestEngineInvalidBlockSize(t *testing.T) {
	e := NewEngine(42)
	for _, n := range []int{0, 1, 7, 9, 16} {
		if _, err := e.EncryptBlock(make([]byte, n)); !errors.Is(err, ErrInvalidBlockSize) {
			t.Errorf("EncryptBlock(%d bytes): got %v, want ErrInvalidBlockSize", n, err)
		}
		if _, err := e.DecryptBlock(make([]byte, n)); !errors.Is(err, ErrInvalidBlockSize) {
			t.Errorf("DecryptBlock(%d bytes): got %v, want ErrInvalidBlockSize", n, err)
		}
	}
}

func TestEngineDoesNotModifyInput(t *testing.T) {
	e := NewEngine(7)
	in := []byte("12345678")
	if _, err := e.EncryptBlock(in); err != nil {
		t.Fatal(err)
	}
	if string(in) != "12345678" {
		t.Errorf("input modified: %q", in)
	}
}

func TestEngineCipherBlock(t *testing.T) {
	e := NewEngine(0xDEADBEEF)
	want, _ := e.EncryptBlock([]byte{0, 1, 2, 3, 4, 5, 6, 7})

	buf := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	e.Encrypt(buf, buf)
	if !bytes.Equal(buf, want) {
		t.Errorf("in place Encrypt: got %x, want %x", buf, want)
	}
	e.Decrypt(buf, buf)
	if !bytes.Equal(buf, []byte{0, 1, 2, 3, 4, 5, 6, 7}) {
		t.Errorf("in place Decrypt: got %x", buf)
	}
}

func TestEngineCipherBlockPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Encrypt with a short block did not panic")
		}
	}()
	NewEngine(1).Encrypt(make([]byte, 8), make([]byte, 4))
}
