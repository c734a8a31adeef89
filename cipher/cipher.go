// Package cipher implements castlite, a 16-round Feistel block cipher over 64-bit blocks,
// and the PKCS7 padding and block framing that turn it into a whole-message cipher.
//
// Every block is encrypted on its own, there is no chaining between blocks.
package cipher

import (
	"crypto/cipher"
	"fmt"
	"sync"

	"github.com/nadoo/castlite/pkg/pool"
)

// BlockCrypter transforms single blocks and reports size errors instead of panicking.
type BlockCrypter interface {
	BlockSize() int
	EncryptBlock(block []byte) ([]byte, error)
	DecryptBlock(block []byte) ([]byte, error)
}

// Option configures a System.
type Option func(*System)

// WithStrict rejects misaligned ciphertext and malformed padding
// instead of trusting them.
func WithStrict() Option {
	return func(s *System) { s.strict = true }
}

// WithWorkers spreads the blocks of one message over up to n goroutines.
// n <= 1 means sequential processing.
func WithWorkers(n int) Option {
	return func(s *System) { s.workers = n }
}

// System encrypts and decrypts whole messages: pad, split, transform every block, combine.
type System struct {
	engine  BlockCrypter
	strict  bool
	workers int
}

// New returns a System using the Feistel engine keyed with key.
func New(key uint32, opts ...Option) *System {
	return newSystem(NewEngine(key), opts...)
}

// NewWithBlock returns a System running the same framing over any cipher.Block.
func NewWithBlock(b cipher.Block, opts ...Option) *System {
	if e, ok := b.(*Engine); ok {
		return newSystem(e, opts...)
	}
	return newSystem(blockAdapter{b}, opts...)
}

func newSystem(engine BlockCrypter, opts ...Option) *System {
	s := &System{engine: engine}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BlockSize returns the block size of the underlying engine.
func (s *System) BlockSize() int { return s.engine.BlockSize() }

// Encrypt pads plaintext and encrypts it block by block.
// The result is always a positive multiple of the block size.
func (s *System) Encrypt(plaintext []byte) ([]byte, error) {
	bs := s.engine.BlockSize()
	blocks := Split(Pad(plaintext, bs), bs)
	out, err := s.process(blocks, s.engine.EncryptBlock)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}
	return Combine(out), nil
}

// Decrypt decrypts ciphertext block by block and removes the padding.
func (s *System) Decrypt(ciphertext []byte) ([]byte, error) {
	bs := s.engine.BlockSize()

	var blocks [][]byte
	if s.strict {
		var err error
		if blocks, err = SplitStrict(ciphertext, bs); err != nil {
			return nil, fmt.Errorf("decrypt: %w", err)
		}
	} else {
		blocks = Split(ciphertext, bs)
	}

	out, err := s.process(blocks, s.engine.DecryptBlock)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}

	buf := pool.GetBuffer(len(ciphertext))
	defer pool.PutBuffer(buf)

	n := 0
	for _, b := range out {
		n += copy(buf[n:], b)
	}

	var plain []byte
	if s.strict {
		plain, err = UnpadStrict(buf[:n], bs)
	} else {
		plain, err = Unpad(buf[:n])
	}
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}

	return append([]byte{}, plain...), nil
}

func (s *System) process(blocks [][]byte, fn func([]byte) ([]byte, error)) ([][]byte, error) {
	out := make([][]byte, len(blocks))
	if s.workers <= 1 || len(blocks) < 2 {
		for i, b := range blocks {
			r, err := fn(b)
			if err != nil {
				return nil, fmt.Errorf("block %d: %w", i, err)
			}
			out[i] = r
		}
		return out, nil
	}

	workers := s.workers
	if workers > len(blocks) {
		workers = len(blocks)
	}

	var (
		wg   sync.WaitGroup
		once sync.Once
		ferr error
	)

	per := (len(blocks) + workers - 1) / workers
	for start := 0; start < len(blocks); start += per {
		end := start + per
		if end > len(blocks) {
			end = len(blocks)
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				r, err := fn(blocks[i])
				if err != nil {
					once.Do(func() { ferr = fmt.Errorf("block %d: %w", i, err) })
					return
				}
				out[i] = r
			}
		}(start, end)
	}
	wg.Wait()

	if ferr != nil {
		return nil, ferr
	}
	return out, nil
}

// blockAdapter turns a panicking cipher.Block into a BlockCrypter.
type blockAdapter struct{ cipher.Block }

func (b blockAdapter) EncryptBlock(block []byte) ([]byte, error) {
	if len(block) != b.BlockSize() {
		return nil, fmt.Errorf("encrypt block: %w: got %d bytes, need %d", ErrInvalidBlockSize, len(block), b.BlockSize())
	}
	dst := make([]byte, len(block))
	b.Encrypt(dst, block)
	return dst, nil
}

func (b blockAdapter) DecryptBlock(block []byte) ([]byte, error) {
	if len(block) != b.BlockSize() {
		return nil, fmt.Errorf("decrypt block: %w: got %d bytes, need %d", ErrInvalidBlockSize, len(block), b.BlockSize())
	}
	dst := make([]byte, len(block))
	b.Decrypt(dst, block)
	return dst, nil
}
