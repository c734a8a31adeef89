package cipher

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidBlockSize occurs when a block handed to the engine is not exactly one block long.
	ErrInvalidBlockSize = errors.New("invalid block size")

	// ErrInvalidPadding occurs when the trailing padding can not be removed.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrTruncatedInput occurs in strict mode when the ciphertext is not block aligned.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrCipherNotSupported occurs when a block cipher name is not in the registry.
	ErrCipherNotSupported = errors.New("cipher not supported")
)

// KeySizeError is an error about the key size.
type KeySizeError int

func (e KeySizeError) Error() string {
	return "key size error: need " + strconv.Itoa(int(e)) + " bytes"
}
