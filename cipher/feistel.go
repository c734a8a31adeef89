package cipher

import (
	"encoding/binary"
	"fmt"
)

// BlockSize is the engine block size in bytes: two big-endian uint32 halves.
const BlockSize = 8

// Engine is the 16-round Feistel block transform.
// Its subkeys are computed once and never change, so an Engine is safe for concurrent use.
type Engine struct {
	subkeys Subkeys
}

// NewEngine returns an engine keyed with key.
func NewEngine(key uint32) *Engine {
	return &Engine{subkeys: GenerateSubkeys(key)}
}

// Subkeys returns a copy of the round subkeys.
func (e *Engine) Subkeys() Subkeys { return e.subkeys }

// EncryptBlock encrypts exactly one 8 byte block.
func (e *Engine) EncryptBlock(block []byte) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, fmt.Errorf("encrypt block: %w: got %d bytes, need %d", ErrInvalidBlockSize, len(block), BlockSize)
	}
	dst := make([]byte, BlockSize)
	e.encrypt(dst, block)
	return dst, nil
}

// DecryptBlock decrypts exactly one 8 byte block.
func (e *Engine) DecryptBlock(block []byte) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, fmt.Errorf("decrypt block: %w: got %d bytes, need %d", ErrInvalidBlockSize, len(block), BlockSize)
	}
	dst := make([]byte, BlockSize)
	e.decrypt(dst, block)
	return dst, nil
}

// BlockSize implements cipher.Block.
func (e *Engine) BlockSize() int { return BlockSize }

// Encrypt implements cipher.Block, it panics if src or dst is shorter than a block.
func (e *Engine) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("castlite: input not full block")
	}
	if len(dst) < BlockSize {
		panic("castlite: output not full block")
	}
	e.encrypt(dst, src)
}

// Decrypt implements cipher.Block, it panics if src or dst is shorter than a block.
func (e *Engine) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("castlite: input not full block")
	}
	if len(dst) < BlockSize {
		panic("castlite: output not full block")
	}
	e.decrypt(dst, src)
}

func (e *Engine) encrypt(dst, src []byte) {
	l := binary.BigEndian.Uint32(src[0:4])
	r := binary.BigEndian.Uint32(src[4:8])
	for i := 0; i < Rounds; i++ {
		l, r = r, l^F(r, e.subkeys[i])
	}
	// halves are written swapped: (R, L)
	binary.BigEndian.PutUint32(dst[0:4], r)
	binary.BigEndian.PutUint32(dst[4:8], l)
}

func (e *Engine) decrypt(dst, src []byte) {
	r := binary.BigEndian.Uint32(src[0:4])
	l := binary.BigEndian.Uint32(src[4:8])
	for i := Rounds - 1; i >= 0; i-- {
		r, l = l, r^F(l, e.subkeys[i])
	}
	binary.BigEndian.PutUint32(dst[0:4], l)
	binary.BigEndian.PutUint32(dst[4:8], r)
}
